package prefabs

import "fmt"

// Registry is every prefab the level builder needs, resolved once at load
// time and passed by value into the builder.
type Registry struct {
	Player    PlayerSpec
	Patroller PatrollerSpec
	Flyer     FlyerSpec
	Sword     WeaponSpec
	Bow       BowSpec
	Tiles     map[rune]TileSpec
}

// GateGlyph and SwitchGlyph key the gate and switch looks in tiles.yaml.
// They never appear in level grids; gates and switches come from the header.
const (
	GateGlyph   = 'G'
	SwitchGlyph = 'L'
)

// LoadRegistry loads every spec from DefaultDir or the embedded copies.
func LoadRegistry() (*Registry, error) { return LoadRegistryFrom(DefaultDir) }

// LoadRegistryFrom loads every spec, preferring the copies in dir.
func LoadRegistryFrom(dir string) (*Registry, error) {
	var (
		r   Registry
		err error
	)
	if r.Player, err = LoadSpec[PlayerSpec](dir, "player.yaml"); err != nil {
		return nil, err
	}
	if r.Patroller, err = LoadSpec[PatrollerSpec](dir, "patroller.yaml"); err != nil {
		return nil, err
	}
	if r.Flyer, err = LoadSpec[FlyerSpec](dir, "flyer.yaml"); err != nil {
		return nil, err
	}
	if r.Sword, err = LoadSpec[WeaponSpec](dir, "sword.yaml"); err != nil {
		return nil, err
	}
	if r.Bow, err = LoadSpec[BowSpec](dir, "bow.yaml"); err != nil {
		return nil, err
	}
	tiles, err := LoadSpec[TilesSpec](dir, "tiles.yaml")
	if err != nil {
		return nil, err
	}
	r.Tiles = make(map[rune]TileSpec, len(tiles.Tiles))
	for key, spec := range tiles.Tiles {
		runes := []rune(key)
		if len(runes) != 1 {
			return nil, fmt.Errorf("prefabs: tiles.yaml: key %q must be a single glyph", key)
		}
		r.Tiles[runes[0]] = spec
	}
	return &r, nil
}

// Tile returns the look for glyph, falling back to a unit tile when the
// glyph has no entry.
func (r *Registry) Tile(glyph rune) TileSpec {
	if r != nil {
		if spec, ok := r.Tiles[glyph]; ok {
			return spec
		}
	}
	return TileSpec{Name: string(glyph), Sprite: SpriteSpec{Width: 64, Height: 64, Scale: 1}}
}
