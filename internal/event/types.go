// internal/event/types.go
package event

import (
	"github.com/yannage/Sudoku-Defense-beta/internal/types"
	"github.com/yannage/Sudoku-Defense-beta/pkg/grid"
)

const (
	PuzzleGenerated EventType = "PuzzleGenerated" // Data: PuzzlePayload
	CellValid       EventType = "CellValid"       // Data: CellPayload
	CellInvalid     EventType = "CellInvalid"     // Data: CellPayload
	CellCleared     EventType = "CellCleared"     // Data: CellPayload
	SudokuComplete  EventType = "SudokuComplete"
	UnitCompleted   EventType = "UnitCompleted" // Data: UnitPayload

	TowerPlaced   EventType = "TowerPlaced"   // Data: TowerPayload
	TowerRemoved  EventType = "TowerRemoved"  // Data: TowerPayload
	TowerUpgraded EventType = "TowerUpgraded" // Data: TowerPayload
	TowerAttacked EventType = "TowerAttacked" // Data: AttackPayload

	EnemySpawned    EventType = "EnemySpawned"    // Data: EnemyPayload
	EnemyDamaged    EventType = "EnemyDamaged"    // Data: EnemyPayload
	EnemyDefeated   EventType = "EnemyDefeated"   // Data: EnemyPayload
	EnemyReachedEnd EventType = "EnemyReachedEnd" // Data: EnemyPayload

	WaveStarted   EventType = "WaveStarted"   // Data: WavePayload
	WaveCompleted EventType = "WaveCompleted" // Data: WavePayload
	PathChanged   EventType = "PathChanged"   // Data: []grid.Cell

	BonusOffered   EventType = "BonusOffered"   // Data: BonusPayload
	BonusActivated EventType = "BonusActivated" // Data: BonusPayload
	BonusRevoked   EventType = "BonusRevoked"   // Data: BonusPayload
	PauseRequested EventType = "PauseRequested"

	PlayerUpdated EventType = "PlayerUpdated" // Data: PlayerPayload
	StatusMessage EventType = "StatusMessage" // Data: string
	GameOver      EventType = "GameOver"      // Data: PlayerPayload
)

// PuzzlePayload carries a freshly generated puzzle as plain data copies.
type PuzzlePayload struct {
	Board    [grid.Size][grid.Size]int
	Solution [grid.Size][grid.Size]int
	Fixed    [grid.Size][grid.Size]bool
	Path     []grid.Cell
}

// CellPayload describes a single-cell change or rejection. Possible lists
// the legal alternatives on a CellInvalid event.
type CellPayload struct {
	Row      int
	Col      int
	Value    int
	Possible []int
}

// UnitPayload names a completed unit by its key ("row-3", "col-5", "box-1-2").
type UnitPayload struct {
	Key string
}

type TowerPayload struct {
	ID    types.EntityID
	DefID string
	Cell  grid.Cell
}

type AttackPayload struct {
	TowerID  types.EntityID
	EnemyID  types.EntityID
	Damage   int
	Killed   bool
	Points   int
	Currency int
}

type EnemyPayload struct {
	ID     types.EntityID
	DefID  string
	Reward int
	Points int
}

type WavePayload struct {
	Number int
	Count  int
}

// BonusPayload carries a unit key and the chosen effect kind.
type BonusPayload struct {
	Key  string
	Kind string
}

type PlayerPayload struct {
	Score    int
	Lives    int
	Currency int
}
