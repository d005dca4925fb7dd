package config

import (
	_ "embed"

	"github.com/milk9111/platformer/common"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, used when the embedded YAML
// cannot be read.
func Default() Config {
	return Config{
		Screen: Screen{Width: common.BaseWidth, Height: common.BaseHeight, TickRate: 60},
		Physics: Physics{
			Gravity:   1,
			MoveSpeed: 10,
			JumpSpeed: 20,
		},
		Combat: Combat{
			ContactDamage:     20,
			KnockbackDistance: 2700,
			InvincibleSeconds: 0.3,
			DebugDamage:       10,
			DebugHeal:         10,
		},
		World: World{PlayerFloor: -300, ArrowFloor: -100},
		Levels: Levels{
			Sequence:  []string{"1", "2", "3"},
			Start:     "1",
			Dir:       "levels",
			PrefabDir: "prefabs",
		},
		Camera:  Camera{Zoom: 1},
		Storage: Storage{DBPath: "~/.platformer/scores.db"},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
