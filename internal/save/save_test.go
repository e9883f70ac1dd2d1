package save

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// testManager opens a throwaway gdata store and removes it afterwards. A nil
// result means the environment cannot host one; callers should skip.
func testManager(t *testing.T, name string) *gdata.Manager {
	t.Helper()
	appName := fmt.Sprintf("sudoku_defense_test_%s_%d", name, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil
	}
	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			os.RemoveAll(filepath.Join(homeDir, ".local", "share", appName))
		}
	})
	return manager
}

func TestScoreManagerNilStorage(t *testing.T) {
	sm, err := NewScoreManager(nil)
	if err != nil {
		t.Fatalf("NewScoreManager(nil) error: %v", err)
	}

	if !sm.SubmitScore(500) {
		t.Error("first score not recorded as a high score")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() with nil storage error: %v", err)
	}
	if got := sm.Record().HighScore; got != 500 {
		t.Errorf("HighScore = %d, want 500", got)
	}
}

func TestSubmitScore(t *testing.T) {
	sm, _ := NewScoreManager(nil)

	if !sm.SubmitScore(100) {
		t.Error("100 over an empty record not a high score")
	}
	if sm.SubmitScore(50) {
		t.Error("50 reported as a new high score over 100")
	}
	rec := sm.Record()
	if rec.HighScore != 100 || rec.LastScore != 50 {
		t.Errorf("record = %+v, want high 100 last 50", rec)
	}
}

func TestSetProgressKeepsFurthestWave(t *testing.T) {
	sm, _ := NewScoreManager(nil)

	sm.SetProgress(4, "medium")
	sm.SetProgress(2, "easy")

	rec := sm.Record()
	if rec.LastWave != 4 {
		t.Errorf("LastWave = %d, want 4", rec.LastWave)
	}
	if rec.Difficulty != "easy" {
		t.Errorf("Difficulty = %q, want easy", rec.Difficulty)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	manager := testManager(t, "roundtrip")
	if manager == nil {
		t.Skip("cannot open a gdata store in this environment")
	}

	sm, err := NewScoreManager(manager)
	if err != nil {
		t.Fatalf("NewScoreManager() error: %v", err)
	}
	sm.SubmitScore(321)
	sm.SetProgress(7, "hard")
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded, err := NewScoreManager(manager)
	if err != nil {
		t.Fatalf("NewScoreManager() reload error: %v", err)
	}
	rec := reloaded.Record()
	if rec.HighScore != 321 || rec.LastWave != 7 || rec.Difficulty != "hard" {
		t.Errorf("reloaded record = %+v, want high 321 wave 7 hard", rec)
	}
}

func TestLoadWithoutSavedData(t *testing.T) {
	manager := testManager(t, "empty")
	if manager == nil {
		t.Skip("cannot open a gdata store in this environment")
	}

	sm, err := NewScoreManager(manager)
	if err != nil {
		t.Fatalf("NewScoreManager() error: %v", err)
	}
	if rec := sm.Record(); rec != (Record{}) {
		t.Errorf("fresh store yielded %+v, want zero record", rec)
	}
}
