// internal/system/render.go
package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/yannage/Sudoku-Defense-beta/internal/config"
	"github.com/yannage/Sudoku-Defense-beta/internal/entity"
	"github.com/yannage/Sudoku-Defense-beta/internal/sudoku"
	"github.com/yannage/Sudoku-Defense-beta/pkg/grid"
)

// PlayerInfo is the slice of the economy the HUD displays.
type PlayerInfo interface {
	Score() int
	Lives() int
	Currency() int
}

// RenderSystem is the thin presentation shell: it reads board, entity, and
// wallet state and draws it. No game rule lives here.
type RenderSystem struct {
	ecs    *entity.ECS
	board  *sudoku.Board
	wave   *WaveSystem
	player PlayerInfo
	face   font.Face
}

func NewRenderSystem(ecs *entity.ECS, board *sudoku.Board, wave *WaveSystem, player PlayerInfo) *RenderSystem {
	return &RenderSystem{
		ecs:    ecs,
		board:  board,
		wave:   wave,
		player: player,
		face:   basicfont.Face7x13,
	}
}

// Rebind points the renderer at a rebuilt simulation after a reset.
func (s *RenderSystem) Rebind(ecs *entity.ECS, board *sudoku.Board, wave *WaveSystem, player PlayerInfo) {
	s.ecs = ecs
	s.board = board
	s.wave = wave
	s.player = player
}

func (s *RenderSystem) Draw(screen *ebiten.Image, statusLine string) {
	screen.Fill(config.BackgroundColor)
	s.drawBoard(screen)
	s.drawTowers(screen)
	s.drawEnemies(screen)
	s.drawHud(screen, statusLine)
}

func (s *RenderSystem) drawBoard(screen *ebiten.Image) {
	cs := float32(config.CellSize)

	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			cell := grid.Cell{Row: r, Col: c}
			switch {
			case s.board.IsPathCell(cell):
				vector.DrawFilledRect(screen, float32(c)*cs, float32(r)*cs, cs, cs, config.PathCellColor, false)
			case s.board.IsFixed(r, c):
				vector.DrawFilledRect(screen, float32(c)*cs, float32(r)*cs, cs, cs, config.FixedCellColor, false)
			}
			if bonusCovers(s.ecs, cell) {
				vector.DrawFilledRect(screen, float32(c)*cs, float32(r)*cs, cs, cs, config.BonusCellColor, false)
			}
		}
	}

	for i := 0; i <= grid.Size; i++ {
		lineColor := config.GridLineColor
		width := float32(1)
		if i%grid.BoxSize == 0 {
			lineColor = config.BoxLineColor
			width = 2
		}
		p := float32(i) * cs
		vector.StrokeLine(screen, p, 0, p, float32(config.BoardPixels), width, lineColor, false)
		vector.StrokeLine(screen, 0, p, float32(config.BoardPixels), p, width, lineColor, false)
	}

	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			v := s.board.Value(r, c)
			if v == 0 || s.board.IsPathCell(grid.Cell{Row: r, Col: c}) {
				continue
			}
			clr := config.ValueTextColor
			if s.board.IsFixed(r, c) {
				clr = config.FixedTextColor
			}
			x := int(float64(c)*config.CellSize + config.CellSize/2 - 3)
			y := int(float64(r)*config.CellSize + config.CellSize/2 + 4)
			text.Draw(screen, fmt.Sprintf("%d", v), s.face, x, y, clr)
		}
	}
}

func (s *RenderSystem) drawTowers(screen *ebiten.Image) {
	for _, tower := range s.ecs.Towers {
		clr := config.TowerColor
		if tower.Number == 0 {
			clr = config.SpecialTowerColor
		}
		if !tower.Correct {
			clr = config.IncorrectTowerColor
		}
		vector.DrawFilledCircle(screen, float32(tower.X), float32(tower.Y), float32(config.CellSize)*0.35, clr, true)
		label := "S"
		if tower.Number > 0 {
			label = fmt.Sprintf("%d", tower.Number)
		}
		text.Draw(screen, label, s.face, int(tower.X)-3, int(tower.Y)+4, config.HudTextColor)
	}
}

func (s *RenderSystem) drawEnemies(screen *ebiten.Image) {
	for id, enemy := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		clr := config.EnemyColor
		radius := float32(config.CellSize) * 0.2
		if enemy.IsBoss {
			clr = config.BossColor
			radius = float32(config.CellSize) * 0.3
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, clr, true)

		if health, ok := s.ecs.Healths[id]; ok && enemy.MaxHealth > 0 {
			barW := float32(config.CellSize) * 0.5
			x := float32(pos.X) - barW/2
			y := float32(pos.Y) - radius - 6
			vector.DrawFilledRect(screen, x, y, barW, 3, config.HealthBackColor, false)
			fill := barW * float32(health.Value) / float32(enemy.MaxHealth)
			vector.DrawFilledRect(screen, x, y, fill, 3, config.HealthBarColor, false)
		}
	}
}

func (s *RenderSystem) drawHud(screen *ebiten.Image, statusLine string) {
	y := int(config.BoardPixels) + 20
	hud := fmt.Sprintf("Score %d   Lives %d   Currency %d   Wave %d",
		s.player.Score(), s.player.Lives(), s.player.Currency(), s.wave.WaveNumber())
	text.Draw(screen, hud, s.face, 8, y, config.HudTextColor)
	if statusLine != "" {
		text.Draw(screen, statusLine, s.face, 8, y+24, config.HudTextColor)
	}
}

func bonusCovers(ecs *entity.ECS, cell grid.Cell) bool {
	br, bc := cell.Box()
	for _, key := range []string{sudoku.RowKey(cell.Row), sudoku.ColKey(cell.Col), sudoku.BoxKey(br, bc)} {
		if _, ok := ecs.Bonuses[key]; ok {
			return true
		}
	}
	return false
}
