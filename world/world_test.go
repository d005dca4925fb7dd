package world

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

func registry(t *testing.T) *prefabs.Registry {
	t.Helper()
	reg, err := prefabs.LoadRegistry()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	return reg
}

// parseMap builds a map from rows listed top first, sized to fit them.
func parseMap(t *testing.T, header string, rows ...string) *levels.Map {
	t.Helper()
	width := 0
	for _, r := range rows {
		width = max(width, len([]rune(r)))
	}
	src := fmt.Sprintf("width: %d\nheight: %d\n%s\n---\n%s\n", width, len(rows), header, strings.Join(rows, "\n"))
	m, err := levels.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m.Name = "test"
	return m
}

func build(t *testing.T, m *levels.Map) *Level {
	t.Helper()
	l, err := Build(m, registry(t), rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return l
}

func TestPlatformStaysWithinBounds(t *testing.T) {
	tests := []struct {
		name  string
		axis  Axis
		dir   float64
		speed float64
		lo    float64
		hi    float64
	}{
		{"x unit speed", AxisX, 1, 1, 96, 288},
		{"x uneven speed", AxisX, -1, 7, 96, 288},
		{"y unit speed", AxisY, 1, 1, 160, 288},
		{"y large speed", AxisY, -1, 50, 160, 288},
		{"zero travel", AxisX, 1, 1, 96, 96},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := collision.BoxAt(cp.Vector{X: tt.lo, Y: tt.lo}, 32, 32)
			p := NewPlatform(collision.NewBody(box), '=', tt.axis, tt.dir, tt.lo, tt.hi, tt.speed)
			for i := 0; i < 2000; i++ {
				before := p.Dir
				p.Step()
				pos := p.Position()
				if pos < p.Min || pos > p.Max {
					t.Fatalf("step %d: position %v outside [%v,%v]", i, pos, p.Min, p.Max)
				}
				switch {
				case pos == p.Max && tt.lo != tt.hi:
					if p.Dir != -1 {
						t.Fatalf("step %d: at max but dir %v", i, p.Dir)
					}
				case pos == p.Min && tt.lo != tt.hi:
					if p.Dir != 1 {
						t.Fatalf("step %d: at min but dir %v", i, p.Dir)
					}
				case pos != p.Min && pos != p.Max:
					if p.Dir != before {
						t.Fatalf("step %d: direction flipped away from a boundary", i)
					}
				}
			}
		})
	}
}

func TestPlatformStepReportsDelta(t *testing.T) {
	box := collision.BoxAt(cp.Vector{X: 100, Y: 50}, 32, 32)
	p := NewPlatform(collision.NewBody(box), '=', AxisX, 1, 100, 102, 1.5)
	if d := p.Step(); d != (cp.Vector{X: 1.5}) {
		t.Fatalf("expected delta 1.5, got %+v", d)
	}
	if d := p.Step(); d != (cp.Vector{X: 0.5}) {
		t.Fatalf("expected clamped delta 0.5, got %+v", d)
	}
	if p.Dir != -1 {
		t.Fatalf("expected reversal at max")
	}
}

func TestFusePlatforms(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		axis Axis
		// want maps a tile (col,row) to its travel range in tiles.
		want map[cell][2]int
	}{
		{
			name: "right",
			rows: []string{" ==→→→", "S     ", "======"},
			axis: AxisX,
			want: map[cell][2]int{{1, 2}: {1, 4}, {2, 2}: {2, 5}},
		},
		{
			name: "left",
			rows: []string{" ←←==", "S    ", "====="},
			axis: AxisX,
			want: map[cell][2]int{{3, 2}: {1, 3}, {4, 2}: {2, 4}},
		},
		{
			name: "up",
			rows: []string{" ↑  ", " ↑  ", " =  ", "S   ", "===="},
			axis: AxisY,
			want: map[cell][2]int{{1, 2}: {2, 4}},
		},
		{
			name: "down",
			rows: []string{" =  ", " ↓  ", " ↓  ", "S   ", "===="},
			axis: AxisY,
			want: map[cell][2]int{{1, 4}: {2, 4}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := parseMap(t, "", tt.rows...)
			got := fusePlatforms(m.Grid())
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d platform tiles, got %d: %+v", len(tt.want), len(got), got)
			}
			for _, pt := range got {
				rng, ok := tt.want[pt.cell]
				if !ok {
					t.Fatalf("unexpected platform tile %+v", pt.cell)
				}
				if pt.axis != tt.axis || pt.lo != rng[0] || pt.hi != rng[1] {
					t.Fatalf("tile %+v: got axis %v range [%d,%d], want %v [%d,%d]",
						pt.cell, pt.axis, pt.lo, pt.hi, tt.axis, rng[0], rng[1])
				}
			}
		})
	}
}

func TestFuseMergesRunsOnBothSides(t *testing.T) {
	m := parseMap(t, "", "←←==→→", "S     ", "======")
	got := fusePlatforms(m.Grid())
	if len(got) != 2 {
		t.Fatalf("expected 2 platform tiles, got %+v", got)
	}
	want := map[int][2]int{2: {0, 4}, 3: {1, 5}}
	for _, pt := range got {
		if r := want[pt.col]; pt.lo != r[0] || pt.hi != r[1] {
			t.Fatalf("tile %d: got [%d,%d], want %v", pt.col, pt.lo, pt.hi, r)
		}
		if pt.dir != -1 {
			t.Fatalf("expected the first run's direction, got %d", pt.dir)
		}
	}
}

func TestFuseIgnoresRunsPointingAway(t *testing.T) {
	m := parseMap(t, "", " ==←←", "S    ", "=====")
	if got := fusePlatforms(m.Grid()); len(got) != 0 {
		t.Fatalf("a backward run after the block must not drive it, got %+v", got)
	}
}

func TestBuildClaimsPlatformTiles(t *testing.T) {
	m := parseMap(t, "", " ==→→→", "      ", " £→→  ", "S     ", "======")
	l := build(t, m)

	if len(l.Platforms) != 3 {
		t.Fatalf("expected 3 platform tiles, got %d", len(l.Platforms))
	}
	if len(l.Tiles) != 6 {
		t.Fatalf("expected only the 6 ground tiles to stay static, got %d", len(l.Tiles))
	}
	if len(l.Hazards) != 0 {
		t.Fatalf("the lava tile moves, so it must not be a static hazard")
	}

	solid, deadly := 0, 0
	for _, p := range l.Platforms {
		if p.Solid() {
			solid++
			if !l.Terrain.Contains(p.Body) {
				t.Fatalf("solid platform missing from terrain")
			}
		}
		if p.Deadly() {
			deadly++
			if l.Terrain.Contains(p.Body) {
				t.Fatalf("deadly platform must not be terrain")
			}
		}
	}
	if solid != 2 || deadly != 1 {
		t.Fatalf("expected 2 solid and 1 deadly platform, got %d and %d", solid, deadly)
	}
	if got := l.Terrain.Len(); got != 8 {
		t.Fatalf("expected 8 terrain bodies, got %d", got)
	}
}

func TestBuildCategories(t *testing.T) {
	m := parseMap(t, "", " b     ", "S*o £ E", "=======")
	l := build(t, m)

	if want := TileCenter(0, 1); l.Start != want {
		t.Fatalf("expected start %+v, got %+v", want, l.Start)
	}
	if len(l.Coins) != 1 || len(l.Hazards) != 1 || len(l.Exits) != 1 || len(l.Tiles) != 7 {
		t.Fatalf("unexpected categories: coins %d hazards %d exits %d tiles %d",
			len(l.Coins), len(l.Hazards), len(l.Exits), len(l.Tiles))
	}
	if len(l.Enemies) != 2 {
		t.Fatalf("expected 2 enemies, got %d", len(l.Enemies))
	}

	var flyer *obj.Flyer
	for _, e := range l.Enemies {
		if f, ok := e.(*obj.Flyer); ok {
			flyer = f
		}
	}
	if flyer == nil {
		t.Fatalf("expected a flyer")
	}
	if want := TileCenter(1, 2).Add(cp.Vector{Y: 200}); flyer.Origin != want {
		t.Fatalf("expected flyer spawned at %+v, got %+v", want, flyer.Origin)
	}

	for _, e := range l.Enemies {
		e.Step(1.0 / 60)
	}
	if cols, rows := l.Size(); cols != 7*64 || rows != 3*64 {
		t.Fatalf("unexpected size %vx%v", cols, rows)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		header string
		rows   []string
		want   error
	}{
		{"no start", "", []string{"  ", "=="}, ErrNoPlayerStart},
		{"two starts", "", []string{"SS", "=="}, ErrMultiplePlayerStarts},
		{
			"unknown gate",
			"switches:\n  - {id: s, x: 1, y: 1, targets: [{gate: nope}]}",
			[]string{"S ", "=="},
			ErrUnknownGate,
		},
		{
			"duplicate gate",
			"gates:\n  - {id: g, x: 1, y: 1}\n  - {id: g, x: 1, y: 1}",
			[]string{"S ", "=="},
			ErrDuplicateID,
		},
		{
			"gate outside grid",
			"gates:\n  - {id: g, x: 5, y: 1}",
			[]string{"S ", "=="},
			ErrOutsideGrid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := parseMap(t, tt.header, tt.rows...)
			l, err := Build(m, registry(t), nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if l != nil {
				t.Fatalf("no level may be returned on error")
			}
		})
	}
}

const gateHeader = `gates:
  - {id: g, x: 3, y: 1}
switches:
  - id: s
    x: 1
    y: 1
    targets:
      - {gate: g}`

func TestSwitchTogglesGate(t *testing.T) {
	l := build(t, parseMap(t, gateHeader, "S   ", "===="))
	g, s := l.Gates[0], l.Switches[0]

	if !g.Closed() || !l.Terrain.Contains(g.Body) || !g.Sprite().Visible {
		t.Fatalf("gate should start closed, solid and visible")
	}
	if len(g.Switches()) != 1 || g.Switches()[0] != s {
		t.Fatalf("gate should know its switch")
	}

	s.Trigger()
	l.SyncGates()
	if !g.Open() || l.Terrain.Contains(g.Body) || g.Sprite().Visible {
		t.Fatalf("gate should be open, out of terrain and hidden after one trigger")
	}

	s.Trigger()
	l.SyncGates()
	if !g.Closed() || !l.Terrain.Contains(g.Body) || !g.Sprite().Visible {
		t.Fatalf("gate should be closed again after a second trigger")
	}
}

func TestSwitchCloseWhenOn(t *testing.T) {
	header := `gates:
  - {id: g, x: 3, y: 1, closed: false}
switches:
  - id: s
    x: 1
    y: 1
    targets:
      - {gate: g, open_when_on: false}`
	l := build(t, parseMap(t, header, "S   ", "===="))
	g, s := l.Gates[0], l.Switches[0]
	if l.Terrain.Contains(g.Body) {
		t.Fatalf("open gate must start out of the terrain set")
	}
	s.Trigger()
	if !s.On() || !g.Closed() {
		t.Fatalf("switching on should close the gate")
	}
	s.Trigger()
	if s.On() || !g.Open() {
		t.Fatalf("switching off should open the gate")
	}
}

func TestSyncGatesIdempotent(t *testing.T) {
	header := `gates:
  - {id: a, x: 1, y: 1}
  - {id: b, x: 2, y: 1, closed: false}
  - {id: c, x: 3, y: 1}`
	l := build(t, parseMap(t, header, "S   ", "===="))
	if !l.GatesInSync() {
		t.Fatalf("build must leave gates in sync")
	}

	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 50; i++ {
		for _, g := range l.Gates {
			if rng.IntN(2) == 0 {
				g.SetClosed(!g.Closed())
			}
		}
		l.SyncGates()
		if !l.GatesInSync() {
			t.Fatalf("round %d: gates out of sync after SyncGates", i)
		}
		if n := l.SyncGates(); n != 0 {
			t.Fatalf("round %d: second sync changed %d gates", i, n)
		}
	}
}

func TestRemoveEnemyAndCoin(t *testing.T) {
	l := build(t, parseMap(t, "", "S*o", "==="))
	e := l.Enemies[0]
	if !l.RemoveEnemy(e) || l.RemoveEnemy(e) {
		t.Fatalf("expected enemy removed exactly once")
	}
	c := l.Coins[0]
	if !l.RemoveCoin(c) || l.RemoveCoin(c) {
		t.Fatalf("expected coin removed exactly once")
	}
}

func TestEmbeddedMapsBuild(t *testing.T) {
	names, err := levels.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	reg := registry(t)
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			m, err := levels.Load(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			l, err := Build(m, reg, nil)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if len(l.Exits) == 0 {
				t.Fatalf("map %s has no exit", name)
			}
		})
	}
}
