package app

import (
	"math"
	"testing"

	"github.com/yannage/Sudoku-Defense-beta/internal/defs"
	"github.com/yannage/Sudoku-Defense-beta/internal/sudoku"
	"github.com/yannage/Sudoku-Defense-beta/pkg/grid"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(sudoku.Medium, 1, nil)
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	return g
}

// buildableCells lists every empty cell that is neither a given nor on the
// path, in row-major order.
func buildableCells(g *Game) []grid.Cell {
	var out []grid.Cell
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			cell := grid.Cell{Row: r, Col: c}
			if !g.Board.IsFixed(r, c) && !g.Board.IsPathCell(cell) && g.Board.Value(r, c) == 0 {
				out = append(out, cell)
			}
		}
	}
	return out
}

func TestPlaceTowerCorrect(t *testing.T) {
	g := newTestGame(t)
	cell := buildableCells(g)[0]
	number := g.Board.SolutionValue(cell.Row, cell.Col)
	def := defs.TowerLibrary[defs.NumericTowerID(number)]
	before := g.Economy.Currency()

	if !g.PlaceTower(def.ID, cell.Row, cell.Col) {
		t.Fatal("placement rejected")
	}

	id, tower := g.TowerAt(cell)
	if id == 0 {
		t.Fatal("no tower at the placed cell")
	}
	if !tower.Correct {
		t.Error("solution-matching tower flagged incorrect")
	}
	if tower.Level != 1 {
		t.Errorf("Level = %d, want 1", tower.Level)
	}
	if g.Economy.Currency() != before-def.Cost {
		t.Errorf("Currency = %d, want %d", g.Economy.Currency(), before-def.Cost)
	}
	if g.Board.Value(cell.Row, cell.Col) != number {
		t.Errorf("board cell = %d, want %d", g.Board.Value(cell.Row, cell.Col), number)
	}
}

func TestPlaceTowerIncorrectIsFlagged(t *testing.T) {
	g := newTestGame(t)
	cell := buildableCells(g)[0]
	wrong := g.Board.SolutionValue(cell.Row, cell.Col)%9 + 1

	if !g.PlaceTower(defs.NumericTowerID(wrong), cell.Row, cell.Col) {
		t.Fatal("placement rejected")
	}
	_, tower := g.TowerAt(cell)
	if tower.Correct {
		t.Error("solution-mismatching tower flagged correct")
	}
}

func TestPlaceTowerRejections(t *testing.T) {
	g := newTestGame(t)
	cells := buildableCells(g)
	free := cells[0]

	if g.PlaceTower("TOWER_BOGUS", free.Row, free.Col) {
		t.Error("unknown kind accepted")
	}
	if g.PlaceTower(defs.NumericTowerID(1), -1, 0) {
		t.Error("out-of-bounds placement accepted")
	}

	pathCell := g.Board.Path()[0]
	if g.PlaceTower(defs.NumericTowerID(1), pathCell.Row, pathCell.Col) {
		t.Error("placement on the path accepted")
	}

	var fixed grid.Cell
	found := false
	for r := 0; r < grid.Size && !found; r++ {
		for c := 0; c < grid.Size && !found; c++ {
			if g.Board.IsFixed(r, c) {
				fixed = grid.Cell{Row: r, Col: c}
				found = true
			}
		}
	}
	if found && g.PlaceTower(defs.NumericTowerID(1), fixed.Row, fixed.Col) {
		t.Error("placement on a given accepted")
	}

	if !g.PlaceTower(defs.SpecialTowerID, free.Row, free.Col) {
		t.Fatal("first placement rejected")
	}
	if g.PlaceTower(defs.NumericTowerID(1), free.Row, free.Col) {
		t.Error("placement on an occupied cell accepted")
	}
}

func TestPlaceTowerRequiresFunds(t *testing.T) {
	g := newTestGame(t)
	cell := buildableCells(g)[0]
	g.Economy.SpendCurrency(g.Economy.Currency())

	if g.PlaceTower(defs.NumericTowerID(1), cell.Row, cell.Col) {
		t.Error("placement accepted with an empty wallet")
	}
	if g.Economy.Currency() != 0 {
		t.Errorf("Currency = %d after rejected placement, want 0", g.Economy.Currency())
	}
	if id, _ := g.TowerAt(cell); id != 0 {
		t.Error("tower created despite the rejection")
	}
}

func TestUpgradeTower(t *testing.T) {
	g := newTestGame(t)
	cell := buildableCells(g)[0]
	number := g.Board.SolutionValue(cell.Row, cell.Col)
	def := defs.TowerLibrary[defs.NumericTowerID(number)]

	if !g.PlaceTower(def.ID, cell.Row, cell.Col) {
		t.Fatal("placement rejected")
	}
	id, tower := g.TowerAt(cell)
	baseDamage, baseRange, basePeriod := tower.Damage, tower.Range, tower.AttackSpeed
	before := g.Economy.Currency()
	cost := defs.UpgradeCost(def, 1)

	if !g.UpgradeTower(id) {
		t.Fatal("upgrade rejected")
	}
	if tower.Level != 2 {
		t.Errorf("Level = %d, want 2", tower.Level)
	}
	if tower.Damage != int(float64(baseDamage)*1.8) {
		t.Errorf("Damage = %d, want %d", tower.Damage, int(float64(baseDamage)*1.8))
	}
	if math.Abs(tower.Range-baseRange*1.3) > 1e-9 {
		t.Errorf("Range = %v, want %v", tower.Range, baseRange*1.3)
	}
	if math.Abs(tower.AttackSpeed-basePeriod*0.7) > 1e-9 {
		t.Errorf("AttackSpeed = %v, want %v", tower.AttackSpeed, basePeriod*0.7)
	}
	if g.Economy.Currency() != before-cost {
		t.Errorf("Currency = %d, want %d", g.Economy.Currency(), before-cost)
	}
}

func TestRemoveTowerClearsCell(t *testing.T) {
	g := newTestGame(t)
	cell := buildableCells(g)[0]
	number := g.Board.SolutionValue(cell.Row, cell.Col)

	g.PlaceTower(defs.NumericTowerID(number), cell.Row, cell.Col)
	id, _ := g.TowerAt(cell)
	if !g.RemoveTower(id) {
		t.Fatal("removal rejected")
	}
	if g.Board.Value(cell.Row, cell.Col) != 0 {
		t.Error("board cell not cleared after removal")
	}
	if id, _ := g.TowerAt(cell); id != 0 {
		t.Error("tower still present after removal")
	}
}

func TestRemoveIncorrectTowersRefundsHalf(t *testing.T) {
	g := newTestGame(t)
	cells := buildableCells(g)
	cell := cells[0]
	wrong := g.Board.SolutionValue(cell.Row, cell.Col)%9 + 1
	def := defs.TowerLibrary[defs.NumericTowerID(wrong)]

	if !g.PlaceTower(def.ID, cell.Row, cell.Col) {
		t.Fatal("placement rejected")
	}
	before := g.Economy.Currency()

	refund := g.RemoveIncorrectTowers()
	want := int(math.Floor(float64(def.Cost) * 0.5))
	if refund != want {
		t.Errorf("refund = %d, want %d", refund, want)
	}
	if g.Economy.Currency() != before+want {
		t.Errorf("Currency = %d, want %d", g.Economy.Currency(), before+want)
	}
	if id, _ := g.TowerAt(cell); id != 0 {
		t.Error("incorrect tower survived the sweep")
	}
}

func TestRemoveIncorrectTowersKeepsCorrectOnes(t *testing.T) {
	g := newTestGame(t)
	cells := buildableCells(g)

	correct := cells[0]
	g.PlaceTower(defs.NumericTowerID(g.Board.SolutionValue(correct.Row, correct.Col)), correct.Row, correct.Col)

	wrongCell := cells[len(cells)-1]
	wrong := g.Board.SolutionValue(wrongCell.Row, wrongCell.Col)%9 + 1
	g.PlaceTower(defs.NumericTowerID(wrong), wrongCell.Row, wrongCell.Col)

	g.RemoveIncorrectTowers()

	if id, _ := g.TowerAt(correct); id == 0 {
		t.Error("correct tower swept")
	}
	if id, _ := g.TowerAt(wrongCell); id != 0 {
		t.Error("incorrect tower survived")
	}
}

func TestResetRebuildsTheGame(t *testing.T) {
	g := newTestGame(t)
	cell := buildableCells(g)[0]
	g.PlaceTower(defs.NumericTowerID(g.Board.SolutionValue(cell.Row, cell.Col)), cell.Row, cell.Col)

	if err := g.Reset(); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	if len(g.ECS.Towers) != 0 {
		t.Errorf("%d towers survived the reset", len(g.ECS.Towers))
	}
	if g.Economy.Currency() != 150 {
		t.Errorf("Currency = %d after reset, want 150", g.Economy.Currency())
	}
	if g.IsOver() || g.IsPaused() {
		t.Error("reset game not in a fresh running state")
	}
}
