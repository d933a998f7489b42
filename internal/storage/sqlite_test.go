package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveRun(RunRecord{Player: "alice", Score: 840, Hits: 5, Duration: 3*time.Second + 250*time.Millisecond})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.ID == 0 {
		t.Error("SaveRun should return the inserted ID")
	}
	if saved.RunID == "" {
		t.Fatal("SaveRun should generate a run ID")
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Player != "alice" || got.Score != 840 || got.Hits != 5 {
		t.Errorf("RunByID() = %+v, expected alice/840/5", got)
	}
	if got.Duration != 3250*time.Millisecond {
		t.Errorf("Duration = %v, expected 3.25s", got.Duration)
	}

	missing, err := store.RunByID("no-such-run")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{RunID: "fixed", Score: 1}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(RunRecord{RunID: "fixed", Score: 2}); err == nil {
		t.Error("saving the same run ID twice should fail")
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 500, 300, 200, 400} {
		if _, err := store.SaveRun(RunRecord{Player: "p", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Player: "alice", Score: 10})
	store.SaveRun(RunRecord{Player: "bob", Score: 20})
	store.SaveRun(RunRecord{Player: "alice", Score: 30})

	runs, err := store.PlayerRuns("alice", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for alice, got %d", len(runs))
	}
	// Most recent first
	if runs[0].Score != 30 || runs[1].Score != 10 {
		t.Errorf("PlayerRuns() order = %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 without runs, got %d", high)
	}

	store.SaveRun(RunRecord{Score: 100})
	store.SaveRun(RunRecord{Score: 300})
	store.SaveRun(RunRecord{Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty store = %+v", empty)
	}

	store.SaveRun(RunRecord{Score: 100, Duration: time.Second})
	store.SaveRun(RunRecord{Score: 300, Duration: 2 * time.Second})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("Stats() = %+v, expected 2 runs, high 300, avg 200", stats)
	}
	if stats.TotalTime != 3*time.Second {
		t.Errorf("TotalTime = %v, expected 3s", stats.TotalTime)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Score: 100})
	store.SaveRun(RunRecord{Score: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
