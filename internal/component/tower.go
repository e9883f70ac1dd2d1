// component/tower.go
package component

import "github.com/yannage/Sudoku-Defense-beta/pkg/grid"

// Tower is a placed tower. Stats start from the definition and grow in place
// on upgrades; Cooldown counts down toward the next attack.
type Tower struct {
	DefID       string
	Number      int // 1-9 for numeric kinds, 0 for the special tower
	Cell        grid.Cell
	X, Y        float64 // pixel center, derived from Cell
	Damage      int
	Range       float64 // in cells
	AttackSpeed float64 // seconds per attack
	Cooldown    float64
	Level       int
	Correct     bool // false when Number mismatches the hidden solution
}
