// Package config provides the YAML configuration of the platformer: screen,
// physics, combat tuning, level order and storage.
package config

// Config is the full game configuration.
type Config struct {
	Screen  Screen  `yaml:"screen"`
	Physics Physics `yaml:"physics"`
	Combat  Combat  `yaml:"combat"`
	World   World   `yaml:"world"`
	Levels  Levels  `yaml:"levels"`
	Camera  Camera  `yaml:"camera"`
	Storage Storage `yaml:"storage"`
	// Seed drives flyer wandering. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`
}

type Screen struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// Physics values are per tick.
type Physics struct {
	Gravity   float64 `yaml:"gravity"`
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

type Combat struct {
	ContactDamage     float64 `yaml:"contact_damage"`
	KnockbackDistance float64 `yaml:"knockback_distance"`
	InvincibleSeconds float64 `yaml:"invincible_seconds"`
	DebugDamage       float64 `yaml:"debug_damage"`
	DebugHeal         float64 `yaml:"debug_heal"`
}

// World floors are world y coordinates; anything below is lost.
type World struct {
	PlayerFloor float64 `yaml:"player_floor"`
	ArrowFloor  float64 `yaml:"arrow_floor"`
}

type Levels struct {
	Sequence  []string `yaml:"sequence"`
	Start     string   `yaml:"start"`
	Dir       string   `yaml:"dir"`
	PrefabDir string   `yaml:"prefab_dir"`
	Watch     bool     `yaml:"watch"`
}

type Camera struct {
	Zoom   float64 `yaml:"zoom"`
	Smooth float64 `yaml:"smooth"`
	Clamp  bool    `yaml:"clamp"`
}

type Storage struct {
	DBPath string `yaml:"db_path"`
}
