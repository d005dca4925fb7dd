package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		path string
		want ChangeKind
	}{
		{"prefabs/player.yaml", SpecChange},
		{"prefabs/TILES.YML", SpecChange},
		{"levels/1.txt", MapChange},
		{"levels/notes.md", NoChange},
		{"levels/1.txt.swp", NoChange},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := KindOf(tt.path); got != tt.want {
				t.Fatalf("KindOf(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWatcherPendingCoalesces(t *testing.T) {
	tests := []struct {
		name  string
		edits []string
		want  []Change
	}{
		{"nothing", nil, nil},
		{"ignored file", []string{"notes.md"}, nil},
		{
			"repeated save",
			[]string{"1.txt", "1.txt", "1.txt"},
			[]Change{{"1.txt", MapChange}},
		},
		{
			"first edit keeps its place",
			[]string{"1.txt", "player.yaml", "1.txt", "2.txt"},
			[]Change{{"1.txt", MapChange}, {"player.yaml", SpecChange}, {"2.txt", MapChange}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w Watcher
			for _, path := range tt.edits {
				w.note(path)
			}
			got, err := w.Pending()
			if err != nil {
				t.Fatalf("Pending() error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Pending() = %v, want %v", got, tt.want)
			}
			if again, _ := w.Pending(); len(again) != 0 {
				t.Fatalf("Pending() should clear, still has %v", again)
			}
		})
	}
}

func TestWatcherKeepsFirstError(t *testing.T) {
	var w Watcher
	first := errors.New("first")
	w.fail(first)
	w.fail(errors.New("second"))
	if _, err := w.Pending(); err != first {
		t.Fatalf("expected first error, got %v", err)
	}
	if _, err := w.Pending(); err != nil {
		t.Fatalf("error should clear, got %v", err)
	}
}

func TestWatcherReportsLevelEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "1.txt")
	if err := os.WriteFile(target, []byte("width: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		changes, err := w.Pending()
		if err != nil {
			t.Fatalf("watch error: %v", err)
		}
		if len(changes) > 0 {
			want := []Change{{target, MapChange}}
			if !slices.Equal(changes, want) {
				t.Fatalf("Pending() = %v, want %v", changes, want)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("no change reported for %s", target)
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close() failed: %v", err)
	}
}
