// internal/system/movement.go
package system

import (
	"math"

	"github.com/yannage/Sudoku-Defense-beta/internal/config"
	"github.com/yannage/Sudoku-Defense-beta/internal/entity"
	"github.com/yannage/Sudoku-Defense-beta/internal/types"
	"github.com/yannage/Sudoku-Defense-beta/pkg/grid"
)

// MovementSystem advances enemies along the path cell chain. Position is a
// linear interpolation between the centers of the current segment's cells.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// MoveEnemy advances one enemy by deltaTime. Returns true exactly when the
// enemy has passed the final segment. Segment advances are discrete: leftover
// progress is not carried over.
func (s *MovementSystem) MoveEnemy(id types.EntityID, deltaTime float64) bool {
	pos, hasPos := s.ecs.Positions[id]
	vel, hasVel := s.ecs.Velocities[id]
	path, hasPath := s.ecs.Paths[id]
	if !hasPos || !hasVel || !hasPath {
		return false
	}
	if path.CurrentIndex >= len(path.Cells)-1 {
		return true
	}

	fromX, fromY := path.Cells[path.CurrentIndex].Center(config.CellSize)
	toX, toY := path.Cells[path.CurrentIndex+1].Center(config.CellSize)
	segLen := math.Hypot(toX-fromX, toY-fromY)

	path.Progress += vel.Speed * config.EnemyPixelsPerSecond * deltaTime / segLen
	if path.Progress >= 1 {
		path.CurrentIndex++
		path.Progress = 0
		if path.CurrentIndex >= len(path.Cells)-1 {
			pos.X, pos.Y = path.Cells[len(path.Cells)-1].Center(config.CellSize)
			return true
		}
		fromX, fromY = path.Cells[path.CurrentIndex].Center(config.CellSize)
		toX, toY = path.Cells[path.CurrentIndex+1].Center(config.CellSize)
	}

	pos.X = fromX + (toX-fromX)*path.Progress
	pos.Y = fromY + (toY-fromY)*path.Progress
	return false
}

// StartingPosition returns the center of the path's first cell.
func StartingPosition(path []grid.Cell) (float64, float64) {
	if len(path) == 0 {
		return 0, 0
	}
	return path[0].Center(config.CellSize)
}
