// pkg/grid/grid.go
package grid

import "fmt"

const (
	// Size is the board edge length in cells.
	Size = 9
	// BoxSize is the edge length of one sudoku box.
	BoxSize = 3
)

// Cell addresses one square of the board.
type Cell struct {
	Row int
	Col int
}

// InBounds reports whether the cell lies on the board.
func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Box returns the box-row and box-column containing the cell.
func (c Cell) Box() (int, int) {
	return c.Row / BoxSize, c.Col / BoxSize
}

// BoxKey returns the containing box as a "br-bc" string.
func (c Cell) BoxKey() string {
	br, bc := c.Box()
	return fmt.Sprintf("%d-%d", br, bc)
}

// Center returns the pixel-space center of the cell for the given cell size.
func (c Cell) Center(cellSize float64) (float64, float64) {
	return (float64(c.Col) + 0.5) * cellSize, (float64(c.Row) + 0.5) * cellSize
}

// CellSet is a set of cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from a slice of cells.
func NewCellSet(cells []Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}
