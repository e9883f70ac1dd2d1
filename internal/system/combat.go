// internal/system/combat.go
package system

import (
	"math"

	"github.com/yannage/Sudoku-Defense-beta/internal/component"
	"github.com/yannage/Sudoku-Defense-beta/internal/config"
	"github.com/yannage/Sudoku-Defense-beta/internal/entity"
	"github.com/yannage/Sudoku-Defense-beta/internal/event"
	"github.com/yannage/Sudoku-Defense-beta/internal/types"
)

// RewardSink receives the currency and score earned by kills. Implemented
// by the economy; kept as an interface to avoid a cycle with the app layer.
type RewardSink interface {
	AddCurrency(amount int)
	AddScore(amount int)
}

// CombatSystem resolves tower attacks each tick: cooldowns, target
// selection, bonus-adjusted damage, and kill rewards.
type CombatSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	wave       *WaveSystem
	bonus      *BonusSystem
	rewards    RewardSink
}

func NewCombatSystem(ecs *entity.ECS, wave *WaveSystem, bonus *BonusSystem, rewards RewardSink, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		wave:       wave,
		bonus:      bonus,
		rewards:    rewards,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for id, tower := range s.ecs.Towers {
		tower.Cooldown -= deltaTime
		if tower.Cooldown > 0 {
			continue
		}

		targetID := s.findTarget(tower)
		if targetID == 0 {
			// No eligible enemy in range: no attack, cooldown stays spent.
			continue
		}

		enemy := s.ecs.Enemies[targetID]
		damage, points, currency := s.bonus.ApplyEffects(tower, tower.Damage, enemy.Points, enemy.Reward)
		killed := s.wave.DamageEnemy(targetID, damage)
		tower.Cooldown = tower.AttackSpeed

		if killed {
			if s.rewards != nil {
				s.rewards.AddCurrency(currency)
				s.rewards.AddScore(points)
			}
		} else {
			// Rewards are granted on kill only.
			points, currency = 0, 0
		}

		s.dispatcher.Dispatch(event.Event{Type: event.TowerAttacked, Data: event.AttackPayload{
			TowerID:  id,
			EnemyID:  targetID,
			Damage:   damage,
			Killed:   killed,
			Points:   points,
			Currency: currency,
		}})
	}
}

// findTarget picks the nearest eligible enemy within range. The special
// tower targets anything; a numeric tower of kind N targets enemy kinds
// [N, N+2], and any boss regardless of kind.
func (s *CombatSystem) findTarget(tower *component.Tower) types.EntityID {
	rangePixels := tower.Range * config.CellSize
	var nearest types.EntityID
	minDist := math.MaxFloat64

	for id, enemy := range s.ecs.Enemies {
		if !s.eligible(tower, enemy) {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		dist := math.Hypot(pos.X-tower.X, pos.Y-tower.Y)
		if dist <= rangePixels && dist < minDist {
			minDist = dist
			nearest = id
		}
	}
	return nearest
}

func (s *CombatSystem) eligible(tower *component.Tower, enemy *component.Enemy) bool {
	if tower.Number == 0 {
		return true
	}
	if enemy.IsBoss {
		return true
	}
	return enemy.Number >= tower.Number && enemy.Number <= tower.Number+2
}
