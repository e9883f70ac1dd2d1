// internal/system/wave.go
package system

import (
	"log"
	"math"

	"github.com/yannage/Sudoku-Defense-beta/internal/component"
	"github.com/yannage/Sudoku-Defense-beta/internal/config"
	"github.com/yannage/Sudoku-Defense-beta/internal/defs"
	"github.com/yannage/Sudoku-Defense-beta/internal/entity"
	"github.com/yannage/Sudoku-Defense-beta/internal/event"
	"github.com/yannage/Sudoku-Defense-beta/internal/sudoku"
	"github.com/yannage/Sudoku-Defense-beta/internal/types"
	"github.com/yannage/Sudoku-Defense-beta/internal/utils"
	"github.com/yannage/Sudoku-Defense-beta/pkg/grid"
)

// WaveSystem spawns and retires enemies, detects wave completion, and
// regenerates the path between waves.
type WaveSystem struct {
	ecs        *entity.ECS
	board      *sudoku.Board
	movement   *MovementSystem
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService

	waveNumber    int
	active        bool
	activeEnemies int

	pathRegenPending bool
	pathRegenTimer   float64
}

func NewWaveSystem(ecs *entity.ECS, board *sudoku.Board, movement *MovementSystem, dispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{
		ecs:        ecs,
		board:      board,
		movement:   movement,
		dispatcher: dispatcher,
		rng:        rng,
		waveNumber: 1,
	}
}

// WaveNumber is the next wave to start (or the one in progress).
func (s *WaveSystem) WaveNumber() int { return s.waveNumber }

// IsActive reports whether a wave is in progress.
func (s *WaveSystem) IsActive() bool { return s.active }

// ActiveEnemies is the number of live enemies.
func (s *WaveSystem) ActiveEnemies() int { return s.activeEnemies }

// StartWave begins the next wave. A wave already in progress or an empty
// path makes this a no-op.
func (s *WaveSystem) StartWave() {
	if s.active {
		s.dispatcher.Dispatch(event.Event{Type: event.StatusMessage, Data: "A wave is already in progress"})
		return
	}
	path := s.board.Path()
	if len(path) == 0 {
		return
	}

	n := s.waveNumber
	count := config.WaveBaseEnemies + config.EnemiesIncrementPerWave*(n-1)
	bossCount := 0
	if defs.BossUnlocked(n) {
		bossCount = int(float64(count) * config.BossSpawnFraction)
		if bossCount < 1 {
			bossCount = 1
		}
	}

	s.ecs.Wave = &component.Wave{
		Number:        n,
		TotalCount:    count,
		BossCount:     bossCount,
		Remaining:     count,
		SpawnInterval: 1 / math.Sqrt(float64(n)),
		Path:          path,
	}
	s.active = true
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WavePayload{Number: n, Count: count}})
}

// Update spawns queued enemies, advances every live enemy, retires breaches,
// and handles the wave-complete transition and the delayed path regeneration.
func (s *WaveSystem) Update(deltaTime float64) {
	if s.pathRegenPending {
		s.pathRegenTimer -= deltaTime
		if s.pathRegenTimer <= 0 {
			s.pathRegenPending = false
			s.regeneratePath()
		}
	}

	wave := s.ecs.Wave
	if !s.active || wave == nil {
		return
	}

	if wave.Remaining > 0 {
		wave.SpawnTimer += deltaTime
		for wave.SpawnTimer >= wave.SpawnInterval && wave.Remaining > 0 {
			wave.SpawnTimer -= wave.SpawnInterval
			s.spawnEnemy(wave)
		}
	}

	for id := range s.ecs.Enemies {
		if s.movement.MoveEnemy(id, deltaTime) {
			enemy := s.ecs.Enemies[id]
			s.ecs.RemoveEnemy(id)
			s.activeEnemies--
			s.dispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: event.EnemyPayload{
				ID:    id,
				DefID: enemy.DefID,
			}})
		}
	}

	if wave.Remaining == 0 && s.activeEnemies == 0 {
		s.active = false
		s.ecs.Wave = nil
		s.dispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: event.WavePayload{Number: wave.Number, Count: wave.TotalCount}})
		s.waveNumber++
		s.pathRegenPending = true
		s.pathRegenTimer = config.PathRegenDelay
	}
}

// DamageEnemy subtracts health and resolves a kill. Returns true when the
// enemy died.
func (s *WaveSystem) DamageEnemy(id types.EntityID, amount int) bool {
	health, hasHealth := s.ecs.Healths[id]
	enemy, isEnemy := s.ecs.Enemies[id]
	if !hasHealth || !isEnemy {
		return false
	}

	health.Value -= amount
	if health.Value > 0 {
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyDamaged, Data: event.EnemyPayload{ID: id, DefID: enemy.DefID}})
		return false
	}

	s.ecs.RemoveEnemy(id)
	s.activeEnemies--
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyDefeated, Data: event.EnemyPayload{
		ID:     id,
		DefID:  enemy.DefID,
		Reward: enemy.Reward,
		Points: enemy.Points,
	}})
	return true
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	defID := s.pickEnemyID(wave)
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		log.Printf("WaveSystem: enemy definition not found for ID %s", defID)
		wave.Remaining--
		return
	}
	def = defs.ApplyWaveScaling(def, wave.Number)

	id := s.ecs.NewEntity()
	x, y := StartingPosition(wave.Path)
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Paths[id] = &component.Path{Cells: wave.Path}
	s.ecs.Healths[id] = &component.Health{Value: def.Health}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:     def.ID,
		Number:    def.Number,
		IsBoss:    def.IsBoss,
		MaxHealth: def.Health,
		Reward:    def.Reward,
		Points:    def.Points,
	}

	wave.Spawned++
	wave.Remaining--
	s.activeEnemies++
	s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyPayload{
		ID:     id,
		DefID:  def.ID,
		Reward: def.Reward,
		Points: def.Points,
	}})
}

// pickEnemyID draws uniformly from the wave's unlocked kinds, except that
// the trailing BossCount spawns are forced to the boss.
func (s *WaveSystem) pickEnemyID(wave *component.Wave) string {
	if wave.BossCount > 0 && wave.Spawned >= wave.TotalCount-wave.BossCount {
		return defs.BossEnemyID
	}
	available := defs.AvailableForWave(wave.Number)
	return available[s.rng.Intn(len(available))]
}

// regeneratePath builds the next wave's route and swaps it into the board.
// Puzzle values and givens under the new path stay as they are.
func (s *WaveSystem) regeneratePath() {
	path := grid.GeneratePath(s.rng.Rand())
	s.board.SetPath(path)
	s.dispatcher.Dispatch(event.Event{Type: event.PathChanged, Data: path})
}
