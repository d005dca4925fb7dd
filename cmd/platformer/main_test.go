package main

import (
	"testing"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

func TestPlan(t *testing.T) {
	spec := prefabs.Change{Path: "prefabs/player.yaml", Kind: prefabs.SpecChange}
	tests := []struct {
		name    string
		changes []prefabs.Change
		current string
		want    reload
	}{
		{"nothing", nil, "1", reloadNone},
		{"spec", []prefabs.Change{spec}, "1", reloadPrefabs},
		{"current map", []prefabs.Change{{Path: "levels/1.txt", Kind: prefabs.MapChange}}, "1", reloadMap},
		{"absolute path", []prefabs.Change{{Path: "/abs/levels/2.txt", Kind: prefabs.MapChange}}, "2", reloadMap},
		{"other map", []prefabs.Change{{Path: "levels/2.txt", Kind: prefabs.MapChange}}, "1", reloadNone},
		{
			"spec outranks map",
			[]prefabs.Change{{Path: "levels/1.txt", Kind: prefabs.MapChange}, spec, {Path: "levels/1.txt", Kind: prefabs.MapChange}},
			"1", reloadPrefabs,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plan(tt.changes, tt.current); got != tt.want {
				t.Fatalf("plan(%v, %q) = %v, want %v", tt.changes, tt.current, got, tt.want)
			}
		})
	}
}

func TestEmbeddedLevelsAreValid(t *testing.T) {
	reg, err := prefabs.LoadRegistryFrom(t.TempDir())
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	reports, err := checkLevels(levels.NewLibrary(t.TempDir()), reg, 1)
	if err != nil {
		t.Fatalf("check levels: %v", err)
	}
	if len(reports) < 3 {
		t.Fatalf("expected at least 3 levels, got %d", len(reports))
	}
	for _, r := range reports {
		if r.Err != nil {
			t.Fatalf("level %s: %v", r.Name, r.Err)
		}
	}
}
