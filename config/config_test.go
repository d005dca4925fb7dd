package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse embedded defaults: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("embedded defaults drifted from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Combat.ContactDamage != 20 || cfg.World.PlayerFloor != -300 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".platformer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("seed: 42\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("expected user seed 42, got %d", cfg.Seed)
	}
}

func TestLoadCustomPathMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("combat:\n  contact_damage: 35\nlevels:\n  sequence: [a, b]\n  start: b\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Combat.ContactDamage != 35 {
		t.Errorf("expected contact damage 35, got %v", cfg.Combat.ContactDamage)
	}
	if cfg.Combat.KnockbackDistance != 2700 {
		t.Errorf("expected untouched knockback 2700, got %v", cfg.Combat.KnockbackDistance)
	}
	if !reflect.DeepEqual(cfg.Levels.Sequence, []string{"a", "b"}) || cfg.Levels.Start != "b" {
		t.Errorf("unexpected levels %+v", cfg.Levels)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("screen:\n  tick_rate: 0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"no screen", func(c *Config) { c.Screen.Width = 0 }, false},
		{"no tick rate", func(c *Config) { c.Screen.TickRate = -1 }, false},
		{"empty sequence", func(c *Config) { c.Levels.Sequence = nil }, false},
		{"start outside sequence", func(c *Config) { c.Levels.Start = "9" }, false},
		{"empty start", func(c *Config) { c.Levels.Start = "" }, true},
		{"zero zoom", func(c *Config) { c.Camera.Zoom = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestNextLevelWraps(t *testing.T) {
	cfg := Default()
	tests := []struct{ from, want string }{
		{"1", "2"},
		{"2", "3"},
		{"3", "1"},
		{"bonus", "1"},
	}
	for _, tt := range tests {
		if got := cfg.NextLevel(tt.from); got != tt.want {
			t.Errorf("NextLevel(%q) = %q, want %q", tt.from, got, tt.want)
		}
	}
}

func TestTickSeconds(t *testing.T) {
	cfg := Default()
	cfg.Screen.TickRate = 50
	if got := cfg.TickSeconds(); got != 0.02 {
		t.Fatalf("expected 0.02, got %v", got)
	}
}
