// internal/sudoku/generator.go
package sudoku

import (
	"errors"
	"math/rand"

	"github.com/yannage/Sudoku-Defense-beta/internal/config"
	"github.com/yannage/Sudoku-Defense-beta/pkg/grid"
)

// ErrGeneration is returned when the backtracking fill cannot complete a
// solution. For an empty 9x9 grid this is unreachable; seeing it means an
// invariant was broken upstream.
var ErrGeneration = errors.New("sudoku: failed to generate a complete solution")

// Difficulty selects how many givens a fresh puzzle reveals.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// RevealCount maps a difficulty to its number of revealed cells.
func RevealCount(d Difficulty) int {
	switch d {
	case Easy:
		return config.RevealEasy
	case Hard:
		return config.RevealHard
	default:
		return config.RevealMedium
	}
}

// Generator produces solutions and puzzles from a seeded random source.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// CompleteSolution fills the three diagonal boxes with independent random
// permutations of 1-9 (they share no row, column, or box, so any permutation
// is legal), then completes the rest by backtracking over the first empty
// cell in row-major order.
func (g *Generator) CompleteSolution() ([grid.Size][grid.Size]int, error) {
	var board [grid.Size][grid.Size]int

	for box := 0; box < grid.Size; box += grid.BoxSize {
		perm := g.rng.Perm(grid.Size)
		for i, v := range perm {
			board[box+i/grid.BoxSize][box+i%grid.BoxSize] = v + 1
		}
	}

	if !solve(&board) {
		return board, ErrGeneration
	}
	return board, nil
}

func solve(board *[grid.Size][grid.Size]int) bool {
	row, col, found := findEmpty(board)
	if !found {
		return true
	}
	for v := 1; v <= grid.Size; v++ {
		if IsValidMove(board, row, col, v) {
			board[row][col] = v
			if solve(board) {
				return true
			}
			board[row][col] = 0
		}
	}
	return false
}

func findEmpty(board *[grid.Size][grid.Size]int) (int, int, bool) {
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if board[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// PuzzleFromSolution clones the solution, blanks every path cell, keeps a
// random selection of `reveal` remaining cells visible as fixed givens, and
// blanks the rest.
func (g *Generator) PuzzleFromSolution(solution [grid.Size][grid.Size]int, path []grid.Cell, reveal int) ([grid.Size][grid.Size]int, [grid.Size][grid.Size]bool) {
	board := solution
	var fixed [grid.Size][grid.Size]bool

	pathSet := grid.NewCellSet(path)
	var candidates []grid.Cell
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			cell := grid.Cell{Row: r, Col: c}
			if pathSet.Has(cell) {
				board[r][c] = 0
				continue
			}
			candidates = append(candidates, cell)
		}
	}

	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if reveal > len(candidates) {
		reveal = len(candidates)
	}
	for _, cell := range candidates[:reveal] {
		fixed[cell.Row][cell.Col] = true
	}
	for _, cell := range candidates[reveal:] {
		board[cell.Row][cell.Col] = 0
	}

	return board, fixed
}
