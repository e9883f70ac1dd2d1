// internal/sudoku/board.go
package sudoku

import (
	"math/rand"

	"github.com/yannage/Sudoku-Defense-beta/internal/event"
	"github.com/yannage/Sudoku-Defense-beta/pkg/grid"
)

// Board is the exclusive owner of the live puzzle: cell values, the hidden
// solution, the fixed mask, and the enemy path. All mutation goes through
// its validated setter.
type Board struct {
	dispatcher *event.Dispatcher
	rng        *rand.Rand
	gen        *Generator
	difficulty Difficulty

	cells    [grid.Size][grid.Size]int
	solution [grid.Size][grid.Size]int
	fixed    [grid.Size][grid.Size]bool
	path     []grid.Cell
	pathSet  grid.CellSet
}

func NewBoard(dispatcher *event.Dispatcher, rng *rand.Rand) *Board {
	return &Board{
		dispatcher: dispatcher,
		rng:        rng,
		gen:        NewGenerator(rng),
	}
}

// Init generates a fresh solution, path, and puzzle for the difficulty and
// announces the result. A generation failure is fatal to puzzle construction
// and leaves the previous board untouched.
func (b *Board) Init(difficulty Difficulty) error {
	solution, err := b.gen.CompleteSolution()
	if err != nil {
		return err
	}
	path := grid.GeneratePath(b.rng)
	cells, fixed := b.gen.PuzzleFromSolution(solution, path, RevealCount(difficulty))

	b.difficulty = difficulty
	b.solution = solution
	b.cells = cells
	b.fixed = fixed
	b.path = path
	b.pathSet = grid.NewCellSet(path)

	b.dispatcher.Dispatch(event.Event{Type: event.PuzzleGenerated, Data: event.PuzzlePayload{
		Board:    b.cells,
		Solution: b.solution,
		Fixed:    b.fixed,
		Path:     b.Path(),
	}})
	return nil
}

// Reset regenerates everything at the last difficulty.
func (b *Board) Reset() error {
	return b.Init(b.difficulty)
}

// SetCellValue writes value at (row, col). Fixed and path cells reject with
// a status message. Zero always clears. Nonzero values must be 1-9 and pass
// the row/column/box check; duplicate rejections announce the legal
// alternatives.
func (b *Board) SetCellValue(row, col, value int) bool {
	cell := grid.Cell{Row: row, Col: col}
	if !cell.InBounds() {
		b.status("That cell is outside the board")
		return false
	}
	if b.fixed[row][col] {
		b.status("That cell is a puzzle given")
		return false
	}
	if b.pathSet.Has(cell) {
		b.status("That cell is on the enemy path")
		return false
	}

	if value == 0 {
		b.cells[row][col] = 0
		b.dispatcher.Dispatch(event.Event{Type: event.CellCleared, Data: event.CellPayload{Row: row, Col: col}})
		return true
	}
	if value < 1 || value > grid.Size {
		b.status("Values must be between 1 and 9")
		return false
	}

	if !IsValidMove(&b.cells, row, col, value) {
		b.dispatcher.Dispatch(event.Event{Type: event.CellInvalid, Data: event.CellPayload{
			Row:      row,
			Col:      col,
			Value:    value,
			Possible: PossibleValues(&b.cells, row, col),
		}})
		return false
	}

	b.cells[row][col] = value
	b.dispatcher.Dispatch(event.Event{Type: event.CellValid, Data: event.CellPayload{Row: row, Col: col, Value: value}})
	if b.IsComplete() {
		b.dispatcher.Dispatch(event.Event{Type: event.SudokuComplete})
	}
	return true
}

// IsComplete reports whether every non-path cell is filled and the whole
// board is valid.
func (b *Board) IsComplete() bool {
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if b.cells[r][c] == 0 && !b.pathSet.Has(grid.Cell{Row: r, Col: c}) {
				return false
			}
		}
	}
	return IsBoardValid(&b.cells, b.pathSet)
}

// SetPath replaces the enemy path for the next wave. Values and fixed flags
// under the new path are deliberately left untouched; only the exclusion set
// changes, matching the original rules.
func (b *Board) SetPath(path []grid.Cell) {
	b.path = append([]grid.Cell(nil), path...)
	b.pathSet = grid.NewCellSet(path)
}

func (b *Board) status(text string) {
	b.dispatcher.Dispatch(event.Event{Type: event.StatusMessage, Data: text})
}

// Value returns the current value at (row, col), 0 when empty.
func (b *Board) Value(row, col int) int { return b.cells[row][col] }

// SolutionValue returns the hidden solution at (row, col).
func (b *Board) SolutionValue(row, col int) int { return b.solution[row][col] }

// IsFixed reports whether (row, col) is a pre-revealed given.
func (b *Board) IsFixed(row, col int) bool { return b.fixed[row][col] }

// IsPathCell reports whether the cell is on the enemy path.
func (b *Board) IsPathCell(cell grid.Cell) bool { return b.pathSet.Has(cell) }

// Path returns a copy of the path cells in walk order.
func (b *Board) Path() []grid.Cell { return append([]grid.Cell(nil), b.path...) }

// Cells returns a snapshot of the current values.
func (b *Board) Cells() [grid.Size][grid.Size]int { return b.cells }

// Difficulty returns the difficulty the board was generated with.
func (b *Board) Difficulty() Difficulty { return b.difficulty }
