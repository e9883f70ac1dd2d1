// component/wave.go
package component

import "github.com/yannage/Sudoku-Defense-beta/pkg/grid"

// Wave holds the state of the wave currently being spawned.
type Wave struct {
	Number        int
	TotalCount    int
	BossCount     int // trailing spawns forced to the boss kind
	Spawned       int
	Remaining     int // enemies still queued to spawn
	SpawnTimer    float64
	SpawnInterval float64
	Path          []grid.Cell
}
