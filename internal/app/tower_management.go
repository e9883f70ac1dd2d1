// internal/app/tower_management.go
package app

import (
	"fmt"
	"math"

	"github.com/yannage/Sudoku-Defense-beta/internal/component"
	"github.com/yannage/Sudoku-Defense-beta/internal/config"
	"github.com/yannage/Sudoku-Defense-beta/internal/defs"
	"github.com/yannage/Sudoku-Defense-beta/internal/event"
	"github.com/yannage/Sudoku-Defense-beta/internal/types"
	"github.com/yannage/Sudoku-Defense-beta/pkg/grid"
)

// PlaceTower attempts to place a tower of the given kind at (row, col).
// Every rejection announces a distinct status message and mutates nothing.
// A numeric tower also writes its number into the sudoku board; a mismatch
// with the hidden solution still places the tower but flags it incorrect,
// queueing it for the refunded sweep at wave end.
func (g *Game) PlaceTower(defID string, row, col int) bool {
	def, ok := defs.TowerLibrary[defID]
	if !ok {
		g.status(fmt.Sprintf("Unknown tower kind: %s", defID))
		return false
	}
	cell := grid.Cell{Row: row, Col: col}
	if !cell.InBounds() {
		g.status("That cell is outside the board")
		return false
	}
	if g.Economy.Currency() < def.Cost {
		g.status("Not enough currency")
		return false
	}
	if g.Board.IsFixed(row, col) {
		g.status("Cannot build on a puzzle given")
		return false
	}
	if g.Board.IsPathCell(cell) {
		g.status("Cannot build on the enemy path")
		return false
	}
	if id, _ := g.TowerAt(cell); id != 0 {
		g.status("A tower already occupies that cell")
		return false
	}

	g.Economy.SpendCurrency(def.Cost)

	correct := true
	if def.Number > 0 {
		correct = g.Board.SolutionValue(row, col) == def.Number
		// The write can also fail the live row/col/box check; the tower is
		// created either way.
		g.Board.SetCellValue(row, col, def.Number)
	}

	id := g.ECS.NewEntity()
	x, y := cell.Center(config.CellSize)
	g.ECS.Towers[id] = &component.Tower{
		DefID:       def.ID,
		Number:      def.Number,
		Cell:        cell,
		X:           x,
		Y:           y,
		Damage:      def.Damage,
		Range:       def.Range,
		AttackSpeed: def.AttackSpeed,
		Level:       1,
		Correct:     correct,
	}

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerPayload{
		ID:    id,
		DefID: def.ID,
		Cell:  cell,
	}})
	return true
}

// RemoveTower deletes a tower and clears its sudoku cell.
func (g *Game) RemoveTower(id types.EntityID) bool {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return false
	}
	g.ECS.RemoveTower(id)
	if tower.Number > 0 {
		g.Board.SetCellValue(tower.Cell.Row, tower.Cell.Col, 0)
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: event.TowerPayload{
		ID:    id,
		DefID: tower.DefID,
		Cell:  tower.Cell,
	}})
	return true
}

// UpgradeTower raises a tower one level through the registry curves.
func (g *Game) UpgradeTower(id types.EntityID) bool {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return false
	}
	def, ok := defs.TowerLibrary[tower.DefID]
	if !ok {
		g.status(fmt.Sprintf("Unknown tower kind: %s", tower.DefID))
		return false
	}
	cost := defs.UpgradeCost(def, tower.Level)
	if !g.Economy.SpendCurrency(cost) {
		g.status("Not enough currency to upgrade")
		return false
	}

	defs.ApplyUpgrade(tower)
	tower.Level++
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerPayload{
		ID:    id,
		DefID: tower.DefID,
		Cell:  tower.Cell,
	}})
	return true
}

// RemoveIncorrectTowers sweeps every tower flagged incorrect, refunding half
// the base cost plus a scaled share of the upgrade investment. Invoked at
// wave completion.
func (g *Game) RemoveIncorrectTowers() int {
	refund := 0
	removed := 0
	for id, tower := range g.ECS.Towers {
		if tower.Correct {
			continue
		}
		def, ok := defs.TowerLibrary[tower.DefID]
		if !ok {
			continue
		}
		base := int(math.Floor(float64(def.Cost) * config.IncorrectRefundFactor))
		upgrade := int(math.Floor(float64(base) * float64(tower.Level-1) * config.IncorrectUpgradeRefundFactor))
		refund += base + upgrade
		g.RemoveTower(id)
		removed++
	}
	if removed > 0 {
		g.Economy.AddCurrency(refund)
		g.status(fmt.Sprintf("Removed %d incorrect tower(s), refunded %d currency", removed, refund))
	}
	return refund
}

// TowerAt returns the tower occupying a cell, if any.
func (g *Game) TowerAt(cell grid.Cell) (types.EntityID, *component.Tower) {
	for id, tower := range g.ECS.Towers {
		if tower.Cell == cell {
			return id, tower
		}
	}
	return 0, nil
}
