// internal/config/config.go
package config

import "image/color"

const (
	CellSize     = 64.0 // pixel size of one sudoku cell
	BoardPixels  = CellSize * 9
	HudHeight    = 64
	ScreenWidth  = int(BoardPixels)
	ScreenHeight = int(BoardPixels) + HudHeight

	MaxDeltaTime = 0.06

	StartingLives    = 10
	StartingCurrency = 150
	StartingScore    = 0

	// Enemy movement: a definition's speed is a unitless factor, converted
	// to pixels per second here.
	EnemyPixelsPerSecond = 40.0

	// Wave pacing.
	WaveBaseEnemies         = 6
	EnemiesIncrementPerWave = 3
	BossSpawnFraction       = 0.1
	PathRegenDelay          = 1.5 // seconds between wave end and the new path

	// Wave completion bonus: floor(20*w*scale) currency, floor(40*w*scale)
	// score, scale = 1 + 0.1*(w-1).
	WaveBonusCurrencyBase = 20
	WaveBonusScoreBase    = 40
	WaveBonusScaleStep    = 0.1

	// Per-wave enemy scaling steps.
	EnemyHealthScaleStep = 0.2
	EnemyRewardScaleStep = 0.1
	EnemyPointsScaleStep = 0.05

	// Completion bonus multipliers.
	BonusDamageMultiplier   = 1.35
	BonusPointsMultiplier   = 2.0
	BonusCurrencyMultiplier = 1.75

	// Upgrade curves.
	UpgradeCostFactor     = 0.75
	UpgradeDamageFactor   = 1.8
	UpgradeRangeFactor    = 1.3
	UpgradeCooldownFactor = 0.7

	// Incorrect-tower sweep refunds.
	IncorrectRefundFactor        = 0.5
	IncorrectUpgradeRefundFactor = 0.75

	// Puzzle difficulty: number of revealed givens.
	RevealEasy   = 40
	RevealMedium = 30
	RevealHard   = 25
)

var (
	BackgroundColor     = color.RGBA{20, 20, 30, 255}
	GridLineColor       = color.RGBA{70, 70, 90, 255}
	BoxLineColor        = color.RGBA{150, 150, 170, 255}
	PathCellColor       = color.RGBA{90, 70, 50, 255}
	FixedCellColor      = color.RGBA{45, 45, 60, 255}
	FixedTextColor      = color.RGBA{200, 200, 210, 255}
	ValueTextColor      = color.RGBA{120, 190, 255, 255}
	HudTextColor        = color.RGBA{240, 240, 240, 255}
	EnemyColor          = color.RGBA{200, 60, 60, 255}
	BossColor           = color.RGBA{240, 160, 30, 255}
	HealthBarColor      = color.RGBA{60, 220, 60, 255}
	HealthBackColor     = color.RGBA{40, 40, 40, 255}
	TowerColor          = color.RGBA{80, 160, 240, 255}
	SpecialTowerColor   = color.RGBA{190, 90, 230, 255}
	IncorrectTowerColor = color.RGBA{230, 80, 80, 255}
	BonusCellColor      = color.RGBA{220, 190, 60, 90}
)
