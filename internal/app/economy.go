// internal/app/economy.go
package app

import (
	"fmt"
	"math"

	"github.com/yannage/Sudoku-Defense-beta/internal/config"
	"github.com/yannage/Sudoku-Defense-beta/internal/event"
)

// Economy is the player wallet: score, lives, and currency. It reacts to
// enemy breaches and wave completions on the bus and is credited directly by
// the combat system on kills.
type Economy struct {
	dispatcher *event.Dispatcher
	score      int
	lives      int
	currency   int
	over       bool
}

func NewEconomy(dispatcher *event.Dispatcher) *Economy {
	e := &Economy{
		dispatcher: dispatcher,
		score:      config.StartingScore,
		lives:      config.StartingLives,
		currency:   config.StartingCurrency,
	}
	dispatcher.Subscribe(event.EnemyReachedEnd, e)
	dispatcher.Subscribe(event.WaveCompleted, e)
	return e
}

func (e *Economy) Score() int    { return e.score }
func (e *Economy) Lives() int    { return e.lives }
func (e *Economy) Currency() int { return e.currency }
func (e *Economy) IsGameOver() bool { return e.over }

func (e *Economy) AddCurrency(amount int) {
	e.currency += amount
	e.notify()
}

func (e *Economy) AddScore(amount int) {
	e.score += amount
	e.notify()
}

// SpendCurrency debits the wallet, rejecting the whole amount when funds are
// insufficient. Currency never goes negative.
func (e *Economy) SpendCurrency(amount int) bool {
	if amount > e.currency {
		return false
	}
	e.currency -= amount
	e.notify()
	return true
}

// LoseLife decrements lives. Returns false, and announces game over with the
// final score, once no lives are left.
func (e *Economy) LoseLife() bool {
	e.lives--
	e.notify()
	if e.lives <= 0 {
		if !e.over {
			e.over = true
			e.dispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.PlayerPayload{
				Score:    e.score,
				Lives:    e.lives,
				Currency: e.currency,
			}})
		}
		return false
	}
	return true
}

func (e *Economy) AddLife(amount int) {
	e.lives += amount
	e.notify()
}

// OnEvent credits the wave bonus and charges breaches.
func (e *Economy) OnEvent(ev event.Event) {
	switch ev.Type {
	case event.EnemyReachedEnd:
		e.LoseLife()
	case event.WaveCompleted:
		payload, ok := ev.Data.(event.WavePayload)
		if !ok {
			return
		}
		e.grantWaveBonus(payload.Number)
	}
}

func (e *Economy) grantWaveBonus(waveNumber int) {
	scale := 1 + config.WaveBonusScaleStep*float64(waveNumber-1)
	currencyBonus := int(math.Floor(float64(config.WaveBonusCurrencyBase*waveNumber) * scale))
	scoreBonus := int(math.Floor(float64(config.WaveBonusScoreBase*waveNumber) * scale))
	e.currency += currencyBonus
	e.score += scoreBonus
	e.notify()
	e.dispatcher.Dispatch(event.Event{
		Type: event.StatusMessage,
		Data: fmt.Sprintf("Wave %d cleared: +%d currency, +%d score", waveNumber, currencyBonus, scoreBonus),
	})
}

// detach removes the economy from the bus; used on game reset.
func (e *Economy) detach() {
	e.dispatcher.Unsubscribe(event.EnemyReachedEnd, e)
	e.dispatcher.Unsubscribe(event.WaveCompleted, e)
}

func (e *Economy) notify() {
	e.dispatcher.Dispatch(event.Event{Type: event.PlayerUpdated, Data: event.PlayerPayload{
		Score:    e.score,
		Lives:    e.lives,
		Currency: e.currency,
	}})
}
