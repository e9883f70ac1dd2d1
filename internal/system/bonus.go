// internal/system/bonus.go
package system

import (
	"math"

	"github.com/yannage/Sudoku-Defense-beta/internal/component"
	"github.com/yannage/Sudoku-Defense-beta/internal/config"
	"github.com/yannage/Sudoku-Defense-beta/internal/entity"
	"github.com/yannage/Sudoku-Defense-beta/internal/event"
	"github.com/yannage/Sudoku-Defense-beta/internal/sudoku"
)

// BonusSystem is the reactive economy layer on top of unit completions.
// Each unit moves through no-bonus -> pending -> active(kind); the active
// binding is revoked the moment the unit stops being complete.
type BonusSystem struct {
	ecs        *entity.ECS
	tracker    *sudoku.CompletionTracker
	dispatcher *event.Dispatcher
	pending    []string
}

func NewBonusSystem(ecs *entity.ECS, tracker *sudoku.CompletionTracker, dispatcher *event.Dispatcher) *BonusSystem {
	bs := &BonusSystem{
		ecs:        ecs,
		tracker:    tracker,
		dispatcher: dispatcher,
	}
	dispatcher.Subscribe(event.UnitCompleted, bs)
	return bs
}

// OnEvent reacts to a unit's first completion: the bonus choice is offered
// and the simulation is asked to pause until the player picks.
func (s *BonusSystem) OnEvent(e event.Event) {
	if e.Type != event.UnitCompleted {
		return
	}
	payload, ok := e.Data.(event.UnitPayload)
	if !ok {
		return
	}
	if _, active := s.ecs.Bonuses[payload.Key]; active {
		return
	}
	for _, key := range s.pending {
		if key == payload.Key {
			return
		}
	}

	s.pending = append(s.pending, payload.Key)
	s.dispatcher.Dispatch(event.Event{Type: event.BonusOffered, Data: event.BonusPayload{Key: payload.Key}})
	s.dispatcher.Dispatch(event.Event{Type: event.PauseRequested})
}

// PendingKey returns the unit awaiting a bonus choice, or "".
func (s *BonusSystem) PendingKey() string {
	if len(s.pending) == 0 {
		return ""
	}
	return s.pending[0]
}

// Choose resolves a pending offer into an active binding.
func (s *BonusSystem) Choose(key string, kind component.BonusKind) bool {
	idx := -1
	for i, k := range s.pending {
		if k == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	multiplier := 0.0
	switch kind {
	case component.BonusDamage:
		multiplier = config.BonusDamageMultiplier
	case component.BonusPoints:
		multiplier = config.BonusPointsMultiplier
	case component.BonusCurrency:
		multiplier = config.BonusCurrencyMultiplier
	default:
		return false
	}

	s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
	s.ecs.Bonuses[key] = &component.Bonus{Key: key, Kind: kind, Multiplier: multiplier}
	s.dispatcher.Dispatch(event.Event{Type: event.BonusActivated, Data: event.BonusPayload{Key: key, Kind: string(kind)}})
	return true
}

// CheckBoardCompletions walks every active binding and revokes the ones
// whose unit is no longer complete. Runs every tick.
func (s *BonusSystem) CheckBoardCompletions() {
	for key, bonus := range s.ecs.Bonuses {
		if s.tracker.IsUnitComplete(key) {
			continue
		}
		delete(s.ecs.Bonuses, key)
		s.dispatcher.Dispatch(event.Event{Type: event.BonusRevoked, Data: event.BonusPayload{Key: key, Kind: string(bonus.Kind)}})
	}
}

// ApplyEffects adjusts an attack's damage, points, and currency by every
// active bonus covering the tower's row, column, and box. Simultaneous
// bonuses stack multiplicatively per metric; results are floored.
func (s *BonusSystem) ApplyEffects(tower *component.Tower, baseDamage, basePoints, baseCurrency int) (int, int, int) {
	damageMult, pointsMult, currencyMult := 1.0, 1.0, 1.0

	br, bc := tower.Cell.Box()
	for _, key := range []string{sudoku.RowKey(tower.Cell.Row), sudoku.ColKey(tower.Cell.Col), sudoku.BoxKey(br, bc)} {
		bonus, ok := s.ecs.Bonuses[key]
		if !ok {
			continue
		}
		switch bonus.Kind {
		case component.BonusDamage:
			damageMult *= bonus.Multiplier
		case component.BonusPoints:
			pointsMult *= bonus.Multiplier
		case component.BonusCurrency:
			currencyMult *= bonus.Multiplier
		}
	}

	return int(math.Floor(float64(baseDamage) * damageMult)),
		int(math.Floor(float64(basePoints) * pointsMult)),
		int(math.Floor(float64(baseCurrency) * currencyMult))
}
