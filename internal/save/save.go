// internal/save/save.go
package save

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Record is the persisted slice of player progress: four scalars, nothing
// else survives a restart.
type Record struct {
	HighScore  int    `yaml:"highScore"`
	LastScore  int    `yaml:"lastScore"`
	LastWave   int    `yaml:"lastWave"`
	Difficulty string `yaml:"difficulty"`
}

// Storage keys within the gdata store.
const (
	scoreObject   = "scores"
	scoreProperty = "current"
)

// ScoreManager loads and saves the score record through gdata. A nil
// manager is the degraded mode: everything works in memory only.
type ScoreManager struct {
	gdataManager *gdata.Manager
	record       Record
}

func NewScoreManager(gdataManager *gdata.Manager) (*ScoreManager, error) {
	sm := &ScoreManager{gdataManager: gdataManager}
	if err := sm.Load(); err != nil {
		// Not fatal; the zero record stands in.
		log.Printf("[ScoreManager] Warning: failed to load scores: %v", err)
	}
	return sm, nil
}

// Load reads the record from storage. Missing data leaves the zero record.
func (sm *ScoreManager) Load() error {
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(scoreObject, scoreProperty) {
		return nil
	}
	data, err := sm.gdataManager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}
	var loaded Record
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal scores: %w", err)
	}
	sm.record = loaded
	return nil
}

// Save writes the record to storage. Degraded mode is a silent no-op.
func (sm *ScoreManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.record)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(scoreObject, scoreProperty, data); err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}
	return nil
}

// Record returns a copy of the current record.
func (sm *ScoreManager) Record() Record {
	return sm.record
}

// SubmitScore stores a finished run's score and reports whether it set a
// new high score.
func (sm *ScoreManager) SubmitScore(score int) bool {
	sm.record.LastScore = score
	if score > sm.record.HighScore {
		sm.record.HighScore = score
		return true
	}
	return false
}

// SetProgress records the furthest cleared wave and the difficulty played.
func (sm *ScoreManager) SetProgress(wave int, difficulty string) {
	if wave > sm.record.LastWave {
		sm.record.LastWave = wave
	}
	sm.record.Difficulty = difficulty
}
