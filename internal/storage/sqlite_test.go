package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("tetris", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("tetris", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("tetris", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("tetris_marathon", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for the classic game
	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for marathon
	marathonScores, err := store.TopScores("tetris_marathon", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(marathonScores) != 1 {
		t.Errorf("Expected 1 marathon score, got %d", len(marathonScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("tetris", 100)
	store.SaveScore("tetris", 300)
	store.SaveScore("tetris", 200)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("tetris", 100)
	store.SaveScore("tetris", 200)
	store.SaveScore("tetris_marathon", 300)

	// Clear only classic scores
	err = store.ClearScores("tetris")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Classic should be empty
	classicScores, _ := store.TopScores("tetris", 10)
	if len(classicScores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classicScores))
	}

	// Marathon should still have scores
	marathonScores, _ := store.TopScores("tetris_marathon", 10)
	if len(marathonScores) != 1 {
		t.Errorf("Marathon scores should not be affected by clearing classic")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{GameID: "tetris", Player: "alice", Score: 1200, Lines: 9}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(Result{GameID: "tetris", Score: 300, Lines: 2}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}
	if scores[0].Player != "alice" || scores[0].Lines != 9 {
		t.Errorf("Unexpected first entry: %+v", scores[0])
	}
	if scores[1].Player != LocalPlayer {
		t.Errorf("Expected empty player to be stored as %q, got %q", LocalPlayer, scores[1].Player)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be parsed")
	}
}

func TestStoreTopScoresTieOrder(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{GameID: "tetris", Player: "first", Score: 500})
	store.SaveResult(Result{GameID: "tetris", Player: "second", Score: 500})

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Player != "first" {
		t.Errorf("Expected earlier score first on ties, got %q", scores[0].Player)
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{GameID: "tetris", Player: "bob", Score: 100})
	store.SaveResult(Result{GameID: "tetris", Player: "bob", Score: 800})
	store.SaveResult(Result{GameID: "tetris", Player: "carol", Score: 900})
	store.SaveResult(Result{GameID: "tetris_marathon", Player: "bob", Score: 5000})

	scores, err := store.PlayerScores("tetris", "bob", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores for bob, got %d", len(scores))
	}
	if scores[0].Score != 800 || scores[1].Score != 100 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveResult(Result{GameID: "tetris", Score: 100, Lines: 1})
	store.SaveResult(Result{GameID: "tetris", Score: 300, Lines: 3})
	store.SaveResult(Result{GameID: "tetris_marathon", Score: 800, Lines: 4})

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.TotalLines != 4 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["tetris_marathon"].HighScore != 800 {
		t.Errorf("Unexpected marathon stats: %+v", all["tetris_marathon"])
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
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

func TestOpenUpgradesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	// Table layout written by releases without players or line counts.
	old, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = old.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('tetris', 700);
	`)
	if err != nil {
		t.Fatalf("creating old schema failed: %v", err)
	}
	old.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected the old row to survive, got %d rows", len(scores))
	}
	if scores[0].Player != LocalPlayer || scores[0].Lines != 0 || scores[0].Score != 700 {
		t.Errorf("old row read back as %+v", scores[0])
	}

	if _, err := store.SaveResult(Result{GameID: "tetris", Player: "bob", Score: 900, Lines: 6}); err != nil {
		t.Fatalf("SaveResult() after upgrade failed: %v", err)
	}
	mine, err := store.PlayerScores("tetris", "bob", 10)
	if err != nil || len(mine) != 1 || mine[0].Lines != 6 {
		t.Errorf("PlayerScores() = %+v, %v", mine, err)
	}

	// A second open finds nothing to add.
	store.Close()
	again, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopening upgraded database failed: %v", err)
	}
	again.Close()
}
