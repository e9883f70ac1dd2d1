// component/bonus.go
package component

// BonusKind selects which metric a completion bonus multiplies.
type BonusKind string

const (
	BonusDamage   BonusKind = "DAMAGE"
	BonusPoints   BonusKind = "POINTS"
	BonusCurrency BonusKind = "CURRENCY"
)

// Bonus is an active completion bonus bound to one sudoku unit. It persists
// until the unit stops being complete.
type Bonus struct {
	Key        string // unit key: "row-3", "col-5", "box-1-2"
	Kind       BonusKind
	Multiplier float64
}
