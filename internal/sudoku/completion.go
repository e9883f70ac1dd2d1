// internal/sudoku/completion.go
package sudoku

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/yannage/Sudoku-Defense-beta/internal/event"
	"github.com/yannage/Sudoku-Defense-beta/pkg/grid"
)

// Unit keys identify a row, column, or box of the board.
func RowKey(row int) string         { return fmt.Sprintf("row-%d", row) }
func ColKey(col int) string         { return fmt.Sprintf("col-%d", col) }
func BoxKey(boxRow, boxCol int) string { return fmt.Sprintf("box-%d-%d", boxRow, boxCol) }

// CompletionTracker derives which units are currently fully and validly
// filled and announces transitions into completeness exactly once per
// completion episode. A unit leaving completeness is dropped silently;
// downstream bonus revocation observes the disappearance.
type CompletionTracker struct {
	board      *Board
	dispatcher *event.Dispatcher
	completed  map[string]bool
}

func NewCompletionTracker(board *Board, dispatcher *event.Dispatcher) *CompletionTracker {
	return &CompletionTracker{
		board:      board,
		dispatcher: dispatcher,
		completed:  make(map[string]bool),
	}
}

// CheckCompletions recomputes every unit's completeness and emits
// UnitCompleted for each unit that just became complete. Calling it again
// without a board change emits nothing.
func (t *CompletionTracker) CheckCompletions() {
	current := make(map[string]bool)
	for i := 0; i < grid.Size; i++ {
		if t.unitComplete(rowCells(i)) {
			current[RowKey(i)] = true
		}
		if t.unitComplete(colCells(i)) {
			current[ColKey(i)] = true
		}
	}
	for br := 0; br < grid.BoxSize; br++ {
		for bc := 0; bc < grid.BoxSize; bc++ {
			if t.unitComplete(boxCells(br, bc)) {
				current[BoxKey(br, bc)] = true
			}
		}
	}

	for key := range current {
		if !t.completed[key] {
			t.dispatcher.Dispatch(event.Event{Type: event.UnitCompleted, Data: event.UnitPayload{Key: key}})
		}
	}
	t.completed = current
}

// IsUnitComplete answers from the live board, independent of the last
// CheckCompletions pass.
func (t *CompletionTracker) IsUnitComplete(key string) bool {
	cells, ok := unitCells(key)
	if !ok {
		log.Printf("CompletionTracker: unknown unit key %q", key)
		return false
	}
	return t.unitComplete(cells)
}

// Completed returns the keys of the units complete as of the last check.
func (t *CompletionTracker) Completed() map[string]bool {
	out := make(map[string]bool, len(t.completed))
	for k, v := range t.completed {
		out[k] = v
	}
	return out
}

// unitComplete: every non-path cell nonzero, all values pairwise distinct.
// A unit entirely covered by the path does not count.
func (t *CompletionTracker) unitComplete(cells []grid.Cell) bool {
	mask := 0
	filled := 0
	for _, cell := range cells {
		if t.board.IsPathCell(cell) {
			continue
		}
		v := t.board.Value(cell.Row, cell.Col)
		if v == 0 {
			return false
		}
		bit := 1 << v
		if mask&bit != 0 {
			return false
		}
		mask |= bit
		filled++
	}
	return filled > 0
}

func rowCells(row int) []grid.Cell {
	cells := make([]grid.Cell, grid.Size)
	for c := 0; c < grid.Size; c++ {
		cells[c] = grid.Cell{Row: row, Col: c}
	}
	return cells
}

func colCells(col int) []grid.Cell {
	cells := make([]grid.Cell, grid.Size)
	for r := 0; r < grid.Size; r++ {
		cells[r] = grid.Cell{Row: r, Col: col}
	}
	return cells
}

func boxCells(boxRow, boxCol int) []grid.Cell {
	cells := make([]grid.Cell, 0, grid.Size)
	for r := boxRow * grid.BoxSize; r < (boxRow+1)*grid.BoxSize; r++ {
		for c := boxCol * grid.BoxSize; c < (boxCol+1)*grid.BoxSize; c++ {
			cells = append(cells, grid.Cell{Row: r, Col: c})
		}
	}
	return cells
}

func unitCells(key string) ([]grid.Cell, bool) {
	parts := strings.Split(key, "-")
	switch {
	case len(parts) == 2 && parts[0] == "row":
		if i, err := strconv.Atoi(parts[1]); err == nil && i >= 0 && i < grid.Size {
			return rowCells(i), true
		}
	case len(parts) == 2 && parts[0] == "col":
		if i, err := strconv.Atoi(parts[1]); err == nil && i >= 0 && i < grid.Size {
			return colCells(i), true
		}
	case len(parts) == 3 && parts[0] == "box":
		br, err1 := strconv.Atoi(parts[1])
		bc, err2 := strconv.Atoi(parts[2])
		if err1 == nil && err2 == nil && br >= 0 && br < grid.BoxSize && bc >= 0 && bc < grid.BoxSize {
			return boxCells(br, bc), true
		}
	}
	return nil, false
}
