// internal/entity/ecs.go
package entity

import (
	"github.com/yannage/Sudoku-Defense-beta/internal/component"
	"github.com/yannage/Sudoku-Defense-beta/internal/types"
)

// ECS is the arena of live entities: component maps keyed by entity id.
// Bonuses are keyed by their sudoku unit instead, since they bind to the
// board rather than to an entity.
type ECS struct {
	GameTime   float64
	NextID     types.EntityID
	Positions  map[types.EntityID]*component.Position
	Velocities map[types.EntityID]*component.Velocity
	Paths      map[types.EntityID]*component.Path
	Healths    map[types.EntityID]*component.Health
	Towers     map[types.EntityID]*component.Tower
	Enemies    map[types.EntityID]*component.Enemy
	Bonuses    map[string]*component.Bonus
	Wave       *component.Wave
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Positions:  make(map[types.EntityID]*component.Position),
		Velocities: make(map[types.EntityID]*component.Velocity),
		Paths:      make(map[types.EntityID]*component.Path),
		Healths:    make(map[types.EntityID]*component.Health),
		Towers:     make(map[types.EntityID]*component.Tower),
		Enemies:    make(map[types.EntityID]*component.Enemy),
		Bonuses:    make(map[string]*component.Bonus),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEnemy deletes an enemy entity and all of its components.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
}

// RemoveTower deletes a tower entity.
func (ecs *ECS) RemoveTower(id types.EntityID) {
	delete(ecs.Towers, id)
}
