// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/yannage/Sudoku-Defense-beta/internal/app"
	"github.com/yannage/Sudoku-Defense-beta/internal/component"
	"github.com/yannage/Sudoku-Defense-beta/internal/config"
	"github.com/yannage/Sudoku-Defense-beta/internal/defs"
	"github.com/yannage/Sudoku-Defense-beta/internal/event"
	"github.com/yannage/Sudoku-Defense-beta/internal/save"
	"github.com/yannage/Sudoku-Defense-beta/internal/sudoku"
	"github.com/yannage/Sudoku-Defense-beta/internal/system"
	"github.com/yannage/Sudoku-Defense-beta/pkg/grid"
)

// App is the ebiten shell around the simulation: input in, pixels out.
type App struct {
	game      *app.Game
	render    *system.RenderSystem
	selected  string
	status    string
	statusTTL float64
}

func NewApp(game *app.Game) *App {
	a := &App{
		game:     game,
		selected: defs.NumericTowerID(1),
	}
	a.render = system.NewRenderSystem(game.ECS, game.Board, game.WaveSystem, game.Economy)
	game.EventDispatcher.Subscribe(event.StatusMessage, event.ListenerFunc(func(e event.Event) {
		if msg, ok := e.Data.(string); ok {
			a.status = msg
			a.statusTTL = 3.0
		}
	}))
	return a
}

func (a *App) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if a.statusTTL > 0 {
		a.statusTTL -= dt
		if a.statusTTL <= 0 {
			a.status = ""
		}
	}

	if pending := a.game.BonusSystem.PendingKey(); pending != "" {
		a.handleBonusChoice(pending)
		a.game.Update(dt)
		return nil
	}

	a.handleInput()
	a.game.Update(dt)
	return nil
}

func (a *App) handleBonusChoice(key string) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		a.game.ChooseBonus(key, component.BonusDamage)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		a.game.ChooseBonus(key, component.BonusPoints)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		a.game.ChooseBonus(key, component.BonusCurrency)
	}
}

func (a *App) handleInput() {
	for i, key := range []ebiten.Key{
		ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
		ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
	} {
		if inpututil.IsKeyJustPressed(key) {
			a.selected = defs.NumericTowerID(i + 1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		a.selected = defs.SpecialTowerID
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.game.StartWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.game.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := a.game.Reset(); err != nil {
			log.Printf("reset failed: %v", err)
		}
		a.render.Rebind(a.game.ECS, a.game.Board, a.game.WaveSystem, a.game.Economy)
	}

	cell, onBoard := a.cellUnderCursor()
	if !onBoard {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.game.PlaceTower(a.selected, cell.Row, cell.Col)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if id, _ := a.game.TowerAt(cell); id != 0 {
			a.game.RemoveTower(id)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		if id, _ := a.game.TowerAt(cell); id != 0 {
			a.game.UpgradeTower(id)
		}
	}
}

func (a *App) cellUnderCursor() (grid.Cell, bool) {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= int(config.BoardPixels) || y >= int(config.BoardPixels) {
		return grid.Cell{}, false
	}
	return grid.Cell{Row: y / int(config.CellSize), Col: x / int(config.CellSize)}, true
}

func (a *App) Draw(screen *ebiten.Image) {
	statusLine := a.status
	if pending := a.game.BonusSystem.PendingKey(); pending != "" {
		statusLine = fmt.Sprintf("%s complete! Choose bonus: [1] damage  [2] points  [3] currency", pending)
	} else if a.game.IsOver() {
		statusLine = fmt.Sprintf("Game over. Final score %d. Press R to restart.", a.game.Economy.Score())
	} else if a.game.IsPaused() {
		statusLine = "Paused"
	}
	a.render.Draw(screen, statusLine)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 = random run)")
	difficulty := flag.String("difficulty", "medium", "puzzle difficulty: easy, medium, hard")
	towersPath := flag.String("towers", "", "optional JSON file overriding tower definitions")
	enemiesPath := flag.String("enemies", "", "optional JSON file overriding enemy definitions")
	flag.Parse()

	if *towersPath != "" {
		if err := defs.LoadTowerDefinitions(*towersPath); err != nil {
			log.Fatal(err)
		}
	}
	if *enemiesPath != "" {
		if err := defs.LoadEnemyDefinitions(*enemiesPath); err != nil {
			log.Fatal(err)
		}
	}

	manager, err := gdata.Open(gdata.Config{AppName: "sudoku-defense"})
	if err != nil {
		log.Printf("score storage unavailable, continuing without persistence: %v", err)
		manager = nil
	}
	scores, err := save.NewScoreManager(manager)
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.NewGame(sudoku.Difficulty(*difficulty), *seed, scores)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Sudoku Defense")
	if err := ebiten.RunGame(NewApp(game)); err != nil {
		log.Fatal(err)
	}
}
