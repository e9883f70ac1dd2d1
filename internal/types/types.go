// internal/types/types.go
package types

// EntityID identifies a live entity (tower or enemy). 0 is "no entity".
type EntityID uint64
