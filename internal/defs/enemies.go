// internal/defs/enemies.go
package defs

import (
	"fmt"

	"github.com/yannage/Sudoku-Defense-beta/internal/config"
)

// BossEnemyID is the boss kind, unlocked on every third wave.
const BossEnemyID = "ENEMY_BOSS"

// EnemyDefinition holds the static data for one enemy kind.
type EnemyDefinition struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Number int     `json:"number"` // 1-9, or 0 for the boss
	Health int     `json:"health"`
	Speed  float64 `json:"speed"`
	Reward int     `json:"reward"`
	Points int     `json:"points"`
	IsBoss bool    `json:"is_boss"`
}

// EnemyLibrary maps enemy def IDs to their definitions.
var EnemyLibrary map[string]EnemyDefinition

func init() {
	EnemyLibrary = defaultEnemyDefs()
}

// NumericEnemyID returns the def ID for a numeric enemy kind.
func NumericEnemyID(number int) string {
	return fmt.Sprintf("ENEMY_%d", number)
}

func defaultEnemyDefs() map[string]EnemyDefinition {
	defs := make(map[string]EnemyDefinition, 10)
	for n := 1; n <= 9; n++ {
		id := NumericEnemyID(n)
		defs[id] = EnemyDefinition{
			ID:     id,
			Name:   fmt.Sprintf("Enemy %d", n),
			Number: n,
			Health: 60 + 15*(n-1),
			Speed:  0.9 + 0.1*float64(n-1),
			Reward: 15 + 3*(n-1),
			Points: 5 + 2*(n-1),
		}
	}
	defs[BossEnemyID] = EnemyDefinition{
		ID:     BossEnemyID,
		Name:   "Boss",
		Number: 0,
		Health: 300,
		Speed:  0.7,
		Reward: 75,
		Points: 50,
		IsBoss: true,
	}
	return defs
}

// ApplyWaveScaling returns a copy of the definition with health, reward, and
// points scaled up for the given wave number, each floored.
func ApplyWaveScaling(def EnemyDefinition, waveNumber int) EnemyDefinition {
	w := float64(waveNumber - 1)
	def.Health = int(float64(def.Health) * (1 + config.EnemyHealthScaleStep*w))
	def.Reward = int(float64(def.Reward) * (1 + config.EnemyRewardScaleStep*w))
	def.Points = int(float64(def.Points) * (1 + config.EnemyPointsScaleStep*w))
	return def
}

// AvailableForWave lists the numeric enemy kinds unlocked for a wave: kind N
// becomes available once wave >= 2N-1.
func AvailableForWave(waveNumber int) []string {
	count := (waveNumber + 1) / 2
	if count > 9 {
		count = 9
	}
	ids := make([]string, 0, count)
	for n := 1; n <= count; n++ {
		ids = append(ids, NumericEnemyID(n))
	}
	return ids
}

// BossUnlocked reports whether the boss joins the given wave.
func BossUnlocked(waveNumber int) bool {
	return waveNumber > 0 && waveNumber%3 == 0
}
