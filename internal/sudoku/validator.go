// internal/sudoku/validator.go
package sudoku

import "github.com/yannage/Sudoku-Defense-beta/pkg/grid"

// IsValidMove reports whether value may be written at (row, col): it must
// not already appear elsewhere in the same row, column, or box. The board is
// not mutated.
func IsValidMove(board *[grid.Size][grid.Size]int, row, col, value int) bool {
	for i := 0; i < grid.Size; i++ {
		if i != col && board[row][i] == value {
			return false
		}
		if i != row && board[i][col] == value {
			return false
		}
	}
	br, bc := (row/grid.BoxSize)*grid.BoxSize, (col/grid.BoxSize)*grid.BoxSize
	for r := br; r < br+grid.BoxSize; r++ {
		for c := bc; c < bc+grid.BoxSize; c++ {
			if (r != row || c != col) && board[r][c] == value {
				return false
			}
		}
	}
	return true
}

// PossibleValues lists every value 1-9 that IsValidMove accepts at (row, col).
func PossibleValues(board *[grid.Size][grid.Size]int, row, col int) []int {
	var out []int
	for v := 1; v <= grid.Size; v++ {
		if IsValidMove(board, row, col, v) {
			out = append(out, v)
		}
	}
	return out
}

// IsBoardValid reports whether no row, column, or box contains a duplicate
// nonzero value, ignoring cells on the enemy path.
func IsBoardValid(board *[grid.Size][grid.Size]int, path grid.CellSet) bool {
	// Rows and columns in one pass, bitmask per unit.
	for i := 0; i < grid.Size; i++ {
		rowMask, colMask := 0, 0
		for j := 0; j < grid.Size; j++ {
			if v := board[i][j]; v != 0 && !path.Has(grid.Cell{Row: i, Col: j}) {
				bit := 1 << v
				if rowMask&bit != 0 {
					return false
				}
				rowMask |= bit
			}
			if v := board[j][i]; v != 0 && !path.Has(grid.Cell{Row: j, Col: i}) {
				bit := 1 << v
				if colMask&bit != 0 {
					return false
				}
				colMask |= bit
			}
		}
	}
	for br := 0; br < grid.Size; br += grid.BoxSize {
		for bc := 0; bc < grid.Size; bc += grid.BoxSize {
			mask := 0
			for r := br; r < br+grid.BoxSize; r++ {
				for c := bc; c < bc+grid.BoxSize; c++ {
					if v := board[r][c]; v != 0 && !path.Has(grid.Cell{Row: r, Col: c}) {
						bit := 1 << v
						if mask&bit != 0 {
							return false
						}
						mask |= bit
					}
				}
			}
		}
	}
	return true
}

// MatchesSolution reports whether every nonzero non-path cell of board agrees
// with the solution.
func MatchesSolution(board, solution *[grid.Size][grid.Size]int, path grid.CellSet) bool {
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if path.Has(grid.Cell{Row: r, Col: c}) {
				continue
			}
			if v := board[r][c]; v != 0 && v != solution[r][c] {
				return false
			}
		}
	}
	return true
}
