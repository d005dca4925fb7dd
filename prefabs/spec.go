package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSpec decodes the prefab file called filename, read as Read does.
func LoadSpec[T any](dir, filename string) (T, error) {
	var zero T
	data, err := Read(dir, filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SpriteSpec describes the art behind an object. Width and Height are the
// source texture size in pixels; Scale maps them to world pixels.
type SpriteSpec struct {
	Image  string     `yaml:"image"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Scale  float64    `yaml:"scale"`
	Color  *YAMLColor `yaml:"color"`
}

// Footprint returns the scaled sprite size, the box the object collides with.
func (s SpriteSpec) Footprint() (w, h float64) {
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	return s.Width * scale, s.Height * scale
}

type PlayerSpec struct {
	Name      string     `yaml:"name"`
	Sprite    SpriteSpec `yaml:"sprite"`
	Health    float64    `yaml:"health"`
	MoveSpeed float64    `yaml:"move_speed"`
	JumpSpeed float64    `yaml:"jump_speed"`
}

type PatrollerSpec struct {
	Name   string     `yaml:"name"`
	Sprite SpriteSpec `yaml:"sprite"`
	Health float64    `yaml:"health"`
	Speed  float64    `yaml:"speed"`
}

type FlyerSpec struct {
	Name         string     `yaml:"name"`
	Sprite       SpriteSpec `yaml:"sprite"`
	Health       float64    `yaml:"health"`
	Speed        float64    `yaml:"speed"`
	Radius       float64    `yaml:"radius"`
	SpawnOffsetY float64    `yaml:"spawn_offset_y"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type WeaponSpec struct {
	Name   string     `yaml:"name"`
	Sprite SpriteSpec `yaml:"sprite"`
	// Pivot is the grip point in texture pixels, measured from the top left.
	Pivot       PointSpec `yaml:"pivot"`
	Hand        PointSpec `yaml:"hand"`
	AngleOffset float64   `yaml:"angle_offset"`
	Damage      float64   `yaml:"damage"`
	Cooldown    float64   `yaml:"cooldown"`
}

type ArrowSpec struct {
	Sprite      SpriteSpec `yaml:"sprite"`
	Speed       float64    `yaml:"speed"`
	Gravity     float64    `yaml:"gravity"`
	Lifetime    float64    `yaml:"lifetime"`
	Damage      float64    `yaml:"damage"`
	AngleOffset float64    `yaml:"angle_offset"`
}

type BowSpec struct {
	WeaponSpec `yaml:",inline"`
	Arrow      ArrowSpec `yaml:"arrow"`
}

// TileSpec is the look of one grid glyph.
type TileSpec struct {
	Name   string     `yaml:"name"`
	Sprite SpriteSpec `yaml:"sprite"`
}

type TilesSpec struct {
	Tiles map[string]TileSpec `yaml:"tiles"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
