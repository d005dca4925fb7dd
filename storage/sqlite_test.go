package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	store, err := Open("~/.platformer/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".platformer", "scores.db")); err != nil {
		t.Fatalf("expected database under home: %v", err)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTemp(t)

	for _, s := range []struct {
		level string
		score int
	}{
		{"1", 3}, {"1", 7}, {"1", 5}, {"2", 9},
	} {
		if _, err := store.SaveScore(s.level, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("1", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	want := []int{7, 5, 3}
	for i, s := range scores {
		if s.Score != want[i] || s.Level != "1" {
			t.Errorf("entry %d: got %+v, want score %d", i, s, want[i])
		}
	}

	limited, err := store.TopScores("1", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected limit 2, got %d", len(limited))
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTemp(t)

	if _, ok, err := store.BestScore("1"); err != nil || ok {
		t.Fatalf("expected no best score yet, got ok=%v err=%v", ok, err)
	}
	store.SaveScore("1", 4)
	store.SaveScore("1", 11)
	best, ok, err := store.BestScore("1")
	if err != nil || !ok || best != 11 {
		t.Fatalf("expected best 11, got %d ok=%v err=%v", best, ok, err)
	}
}

func TestStoreLevels(t *testing.T) {
	store := openTemp(t)
	store.SaveScore("2", 1)
	store.SaveScore("1", 1)
	store.SaveScore("2", 3)

	levels, err := store.Levels()
	if err != nil {
		t.Fatalf("Levels() failed: %v", err)
	}
	if len(levels) != 2 || levels[0] != "1" || levels[1] != "2" {
		t.Fatalf("unexpected levels %v", levels)
	}
}
