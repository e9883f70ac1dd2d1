// internal/app/game.go
package app

import (
	"log"

	"github.com/yannage/Sudoku-Defense-beta/internal/component"
	"github.com/yannage/Sudoku-Defense-beta/internal/config"
	"github.com/yannage/Sudoku-Defense-beta/internal/entity"
	"github.com/yannage/Sudoku-Defense-beta/internal/event"
	"github.com/yannage/Sudoku-Defense-beta/internal/save"
	"github.com/yannage/Sudoku-Defense-beta/internal/sudoku"
	"github.com/yannage/Sudoku-Defense-beta/internal/system"
	"github.com/yannage/Sudoku-Defense-beta/internal/utils"
)

// Game owns the simulation: the board, the entity arena, the systems, and
// the wallet. Everything mutates synchronously inside Update and the command
// methods; there is no concurrency to guard against.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Board           *sudoku.Board
	Tracker         *sudoku.CompletionTracker
	Economy         *Economy
	MovementSystem  *system.MovementSystem
	WaveSystem      *system.WaveSystem
	CombatSystem    *system.CombatSystem
	BonusSystem     *system.BonusSystem
	Rng             *utils.PRNGService
	Scores          *save.ScoreManager

	difficulty sudoku.Difficulty
	seed       int64
	gameTime   float64
	paused     bool
	over       bool
}

// NewGame wires a fresh game at the given difficulty. Scores may be nil
// (no persistence). A zero seed means a random run.
func NewGame(difficulty sudoku.Difficulty, seed int64, scores *save.ScoreManager) (*Game, error) {
	g := &Game{
		EventDispatcher: event.NewDispatcher(),
		Scores:          scores,
		difficulty:      difficulty,
		seed:            seed,
	}
	g.EventDispatcher.Subscribe(event.PauseRequested, gameListener{g})
	g.EventDispatcher.Subscribe(event.BonusActivated, gameListener{g})
	g.EventDispatcher.Subscribe(event.WaveCompleted, gameListener{g})
	g.EventDispatcher.Subscribe(event.GameOver, gameListener{g})
	g.EventDispatcher.Subscribe(event.CellValid, gameListener{g})
	g.EventDispatcher.Subscribe(event.CellCleared, gameListener{g})

	if err := g.build(); err != nil {
		return nil, err
	}
	return g, nil
}

// build constructs every owned structure. Also the back half of Reset.
func (g *Game) build() error {
	g.Rng = utils.NewPRNGService(g.seed)
	g.ECS = entity.NewECS()
	g.Board = sudoku.NewBoard(g.EventDispatcher, g.Rng.Rand())
	if err := g.Board.Init(g.difficulty); err != nil {
		return err
	}
	g.Tracker = sudoku.NewCompletionTracker(g.Board, g.EventDispatcher)
	g.Economy = NewEconomy(g.EventDispatcher)
	g.MovementSystem = system.NewMovementSystem(g.ECS)
	g.WaveSystem = system.NewWaveSystem(g.ECS, g.Board, g.MovementSystem, g.EventDispatcher, g.Rng)
	g.BonusSystem = system.NewBonusSystem(g.ECS, g.Tracker, g.EventDispatcher)
	g.CombatSystem = system.NewCombatSystem(g.ECS, g.WaveSystem, g.BonusSystem, g.Economy, g.EventDispatcher)
	g.gameTime = 0
	g.paused = false
	g.over = false
	return nil
}

// Update advances one simulation tick. The order is fixed: wave movement and
// spawning, combat, completion diffing, bonus revocation.
func (g *Game) Update(deltaTime float64) {
	if g.paused || g.over {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.WaveSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.Tracker.CheckCompletions()
	g.BonusSystem.CheckBoardCompletions()
}

// StartWave forwards the player intent to the wave system.
func (g *Game) StartWave() {
	if g.over {
		return
	}
	g.WaveSystem.StartWave()
}

// ChooseBonus resolves a pending completion bonus. The simulation resumes
// once no offer is left pending.
func (g *Game) ChooseBonus(key string, kind component.BonusKind) bool {
	return g.BonusSystem.Choose(key, kind)
}

// SetCellValue forwards a bare number placement (no tower) to the board.
func (g *Game) SetCellValue(row, col, value int) bool {
	return g.Board.SetCellValue(row, col, value)
}

func (g *Game) Pause()  { g.paused = true }
func (g *Game) Resume() { g.paused = false }

func (g *Game) TogglePause() {
	g.paused = !g.paused
}

func (g *Game) IsPaused() bool { return g.paused }
func (g *Game) IsOver() bool   { return g.over }

func (g *Game) GameTime() float64            { return g.gameTime }
func (g *Game) Difficulty() sudoku.Difficulty { return g.difficulty }

// Reset is a hard synchronous teardown and re-init: new board, new arena,
// new systems, fresh wallet. Old entities are unreachable afterwards.
func (g *Game) Reset() error {
	g.Economy.detach()
	g.EventDispatcher.Unsubscribe(event.UnitCompleted, g.BonusSystem)
	return g.build()
}

func (g *Game) status(text string) {
	g.EventDispatcher.Dispatch(event.Event{Type: event.StatusMessage, Data: text})
}

// gameListener routes bus events back into the orchestrator.
type gameListener struct {
	g *Game
}

func (l gameListener) OnEvent(e event.Event) {
	g := l.g
	switch e.Type {
	case event.PauseRequested:
		g.paused = true
	case event.BonusActivated:
		if g.BonusSystem.PendingKey() == "" {
			g.paused = false
		}
	case event.WaveCompleted:
		g.RemoveIncorrectTowers()
		if payload, ok := e.Data.(event.WavePayload); ok && g.Scores != nil {
			g.Scores.SetProgress(payload.Number, string(g.difficulty))
			if err := g.Scores.Save(); err != nil {
				log.Printf("Game: failed to persist progress: %v", err)
			}
		}
	case event.GameOver:
		g.over = true
		if payload, ok := e.Data.(event.PlayerPayload); ok && g.Scores != nil {
			g.Scores.SubmitScore(payload.Score)
			if err := g.Scores.Save(); err != nil {
				log.Printf("Game: failed to persist score: %v", err)
			}
		}
	case event.CellValid, event.CellCleared:
		// A board edit outside the tick (player command) re-derives
		// completion state immediately.
		g.Tracker.CheckCompletions()
		g.BonusSystem.CheckBoardCompletions()
	}
}
