// component/combat.go
package component

// Health is the remaining hit points of an entity.
type Health struct {
	Value int
}
