// component/movement.go
package component

import "github.com/yannage/Sudoku-Defense-beta/pkg/grid"

// Position is a continuous pixel-space position.
type Position struct {
	X, Y float64
}

// Velocity holds the movement speed factor.
type Velocity struct {
	Speed float64
}

// Path tracks progress along the enemy route. CurrentIndex is the segment
// origin cell; Progress is the 0-1 fraction toward the next cell.
type Path struct {
	Cells        []grid.Cell
	CurrentIndex int
	Progress     float64
}
