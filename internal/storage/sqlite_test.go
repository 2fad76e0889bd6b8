package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("4096", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// A different game ID must not mix in
	if _, err := store.SaveScore("4096_test_variant", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("4096", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("4096", (i+1)*100)
	}

	scores, err := store.TopScores("4096", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// A missing best score reads as zero, never as an error
	high, err := store.HighScore("4096")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no records, got %d", high)
	}

	store.SaveScore("4096", 100)
	store.SaveScore("4096", 300)
	store.SaveScore("4096", 200)

	high, err = store.HighScore("4096")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("4096", 100)
	store.SaveScore("4096", 200)
	store.SaveScore("other", 300)

	if err := store.ClearScores("4096"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("4096", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	// Other games are untouched
	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Error("Clearing one game must not affect another")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	// Empty stats are all zero
	stats, err := store.GetGameStats("4096")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}

	store.SaveScore("4096", 100)
	store.SaveScore("4096", 300)

	stats, err = store.GetGameStats("4096")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, want 400", stats.TotalScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
