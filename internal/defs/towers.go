// internal/defs/towers.go
package defs

import (
	"fmt"

	"github.com/yannage/Sudoku-Defense-beta/internal/component"
	"github.com/yannage/Sudoku-Defense-beta/internal/config"
)

// SpecialTowerID is the non-numeric tower that targets any enemy.
const SpecialTowerID = "TOWER_SPECIAL"

// TowerDefinition holds the static data for one tower kind.
type TowerDefinition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Number      int     `json:"number"` // 1-9, or 0 for the special tower
	Damage      int     `json:"damage"`
	Range       float64 `json:"range"`        // in cells
	AttackSpeed float64 `json:"attack_speed"` // seconds per attack
	Cost        int     `json:"cost"`
}

// TowerLibrary maps tower def IDs to their definitions.
var TowerLibrary map[string]TowerDefinition

func init() {
	TowerLibrary = defaultTowerDefs()
}

// NumericTowerID returns the def ID for a numeric tower kind.
func NumericTowerID(number int) string {
	return fmt.Sprintf("TOWER_%d", number)
}

func defaultTowerDefs() map[string]TowerDefinition {
	defs := make(map[string]TowerDefinition, 10)
	costs := [...]int{30, 31, 32, 34, 35, 36, 38, 39, 40}
	for n := 1; n <= 9; n++ {
		rng := 2.5
		if n == 9 {
			rng = 3.0
		}
		id := NumericTowerID(n)
		defs[id] = TowerDefinition{
			ID:          id,
			Name:        fmt.Sprintf("Tower %d", n),
			Number:      n,
			Damage:      60 + 10*(n-1),
			Range:       rng,
			AttackSpeed: 0.7,
			Cost:        costs[n-1],
		}
	}
	defs[SpecialTowerID] = TowerDefinition{
		ID:          SpecialTowerID,
		Name:        "Special Tower",
		Number:      0,
		Damage:      80,
		Range:       4.0,
		AttackSpeed: 1.0 / 0.3, // 0.3 attacks per second
		Cost:        100,
	}
	return defs
}

// UpgradeCost is the price of raising a tower from currentLevel to the next.
func UpgradeCost(def TowerDefinition, currentLevel int) int {
	return int(float64(def.Cost) * config.UpgradeCostFactor * float64(currentLevel))
}

// ApplyUpgrade grows a tower's stats in place: more damage, longer range,
// shorter attack period.
func ApplyUpgrade(t *component.Tower) {
	t.Damage = int(float64(t.Damage) * config.UpgradeDamageFactor)
	t.Range *= config.UpgradeRangeFactor
	t.AttackSpeed *= config.UpgradeCooldownFactor
}
