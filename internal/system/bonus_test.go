package system

import (
	"math/rand"
	"testing"

	"github.com/yannage/Sudoku-Defense-beta/internal/component"
	"github.com/yannage/Sudoku-Defense-beta/internal/entity"
	"github.com/yannage/Sudoku-Defense-beta/internal/event"
	"github.com/yannage/Sudoku-Defense-beta/internal/sudoku"
	"github.com/yannage/Sudoku-Defense-beta/pkg/grid"
)

type bonusFixture struct {
	ecs     *entity.ECS
	board   *sudoku.Board
	tracker *sudoku.CompletionTracker
	bonus   *BonusSystem
	rec     *recorder
}

func newBonusFixture() *bonusFixture {
	dispatcher := event.NewDispatcher()
	board := sudoku.NewBoard(dispatcher, rand.New(rand.NewSource(1)))
	tracker := sudoku.NewCompletionTracker(board, dispatcher)
	ecs := entity.NewECS()
	bonus := NewBonusSystem(ecs, tracker, dispatcher)
	rec := &recorder{}
	dispatcher.Subscribe(event.BonusOffered, rec)
	dispatcher.Subscribe(event.BonusActivated, rec)
	dispatcher.Subscribe(event.BonusRevoked, rec)
	dispatcher.Subscribe(event.PauseRequested, rec)
	return &bonusFixture{ecs: ecs, board: board, tracker: tracker, bonus: bonus, rec: rec}
}

func (f *bonusFixture) completeRowZero(t *testing.T) {
	t.Helper()
	for c := 0; c < grid.Size; c++ {
		if !f.board.SetCellValue(0, c, c+1) {
			t.Fatalf("setup write %d at (0,%d) rejected", c+1, c)
		}
	}
	f.tracker.CheckCompletions()
}

func TestUnitCompletionOffersBonusAndPauses(t *testing.T) {
	f := newBonusFixture()
	f.completeRowZero(t)

	if got := f.bonus.PendingKey(); got != "row-0" {
		t.Fatalf("PendingKey = %q, want row-0", got)
	}
	if f.rec.count(event.BonusOffered) != 1 {
		t.Errorf("BonusOffered dispatched %d times, want 1", f.rec.count(event.BonusOffered))
	}
	if f.rec.count(event.PauseRequested) != 1 {
		t.Errorf("PauseRequested dispatched %d times, want 1", f.rec.count(event.PauseRequested))
	}
}

func TestChooseActivatesBonus(t *testing.T) {
	f := newBonusFixture()
	f.completeRowZero(t)

	if !f.bonus.Choose("row-0", component.BonusDamage) {
		t.Fatal("Choose rejected a pending key")
	}
	if got := f.bonus.PendingKey(); got != "" {
		t.Errorf("PendingKey = %q after choice, want empty", got)
	}
	active, ok := f.ecs.Bonuses["row-0"]
	if !ok {
		t.Fatal("no active bonus for row-0")
	}
	if active.Kind != component.BonusDamage || active.Multiplier != 1.35 {
		t.Errorf("active bonus = %+v, want DAMAGE x1.35", active)
	}
	if f.rec.count(event.BonusActivated) != 1 {
		t.Errorf("BonusActivated dispatched %d times, want 1", f.rec.count(event.BonusActivated))
	}
}

func TestChooseRejectsUnknownKeyAndKind(t *testing.T) {
	f := newBonusFixture()
	f.completeRowZero(t)

	if f.bonus.Choose("row-7", component.BonusDamage) {
		t.Error("Choose accepted a key that was never offered")
	}
	if f.bonus.Choose("row-0", component.BonusKind("SPEED")) {
		t.Error("Choose accepted an unknown kind")
	}
	if got := f.bonus.PendingKey(); got != "row-0" {
		t.Errorf("PendingKey = %q after rejected choices, want row-0", got)
	}
}

func TestDuplicateOffersAreDeduplicated(t *testing.T) {
	f := newBonusFixture()

	f.bonus.OnEvent(event.Event{Type: event.UnitCompleted, Data: event.UnitPayload{Key: "col-2"}})
	f.bonus.OnEvent(event.Event{Type: event.UnitCompleted, Data: event.UnitPayload{Key: "col-2"}})

	if f.rec.count(event.BonusOffered) != 1 {
		t.Errorf("BonusOffered dispatched %d times, want 1", f.rec.count(event.BonusOffered))
	}

	f.bonus.Choose("col-2", component.BonusPoints)
	f.bonus.OnEvent(event.Event{Type: event.UnitCompleted, Data: event.UnitPayload{Key: "col-2"}})
	if got := f.bonus.PendingKey(); got != "" {
		t.Errorf("active unit re-offered as %q", got)
	}
}

func TestBonusRevokedWhenUnitBreaks(t *testing.T) {
	f := newBonusFixture()
	f.completeRowZero(t)
	f.bonus.Choose("row-0", component.BonusCurrency)

	f.board.SetCellValue(0, 4, 0)
	f.bonus.CheckBoardCompletions()

	if _, ok := f.ecs.Bonuses["row-0"]; ok {
		t.Error("bonus survived its unit breaking")
	}
	if f.rec.count(event.BonusRevoked) != 1 {
		t.Errorf("BonusRevoked dispatched %d times, want 1", f.rec.count(event.BonusRevoked))
	}

	// Still complete units are left alone.
	f.bonus.CheckBoardCompletions()
	if f.rec.count(event.BonusRevoked) != 1 {
		t.Error("revocation repeated for an already-removed bonus")
	}
}

func TestApplyEffectsStacksMultiplicatively(t *testing.T) {
	f := newBonusFixture()
	f.ecs.Bonuses["row-4"] = &component.Bonus{Key: "row-4", Kind: component.BonusDamage, Multiplier: 1.35}
	f.ecs.Bonuses["box-1-1"] = &component.Bonus{Key: "box-1-1", Kind: component.BonusDamage, Multiplier: 1.35}
	f.ecs.Bonuses["col-4"] = &component.Bonus{Key: "col-4", Kind: component.BonusPoints, Multiplier: 2.0}

	tower := &component.Tower{Cell: grid.Cell{Row: 4, Col: 4}}
	damage, points, currency := f.bonus.ApplyEffects(tower, 100, 10, 30)

	if damage != 182 { // floor(100 * 1.35 * 1.35)
		t.Errorf("damage = %d, want 182", damage)
	}
	if points != 20 {
		t.Errorf("points = %d, want 20", points)
	}
	if currency != 30 {
		t.Errorf("currency = %d, want 30", currency)
	}
}

func TestApplyEffectsWithoutBonusesIsIdentity(t *testing.T) {
	f := newBonusFixture()
	tower := &component.Tower{Cell: grid.Cell{Row: 2, Col: 7}}
	damage, points, currency := f.bonus.ApplyEffects(tower, 60, 5, 15)
	if damage != 60 || points != 5 || currency != 15 {
		t.Errorf("ApplyEffects = %d/%d/%d, want 60/5/15", damage, points, currency)
	}
}
