package collision

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func tile(col, row float64) *Body {
	return NewBody(cp.BB{L: col * 64, B: row * 64, R: col*64 + 64, T: row*64 + 64})
}

func TestIntersectsExcludesTouchingEdges(t *testing.T) {
	cases := []struct {
		name string
		a, b cp.BB
		want bool
	}{
		{"overlap", cp.BB{L: 0, B: 0, R: 10, T: 10}, cp.BB{L: 5, B: 5, R: 15, T: 15}, true},
		{"touching_top", cp.BB{L: 0, B: 10, R: 10, T: 20}, cp.BB{L: 0, B: 0, R: 10, T: 10}, false},
		{"touching_side", cp.BB{L: 10, B: 0, R: 20, T: 10}, cp.BB{L: 0, B: 0, R: 10, T: 10}, false},
		{"apart", cp.BB{L: 0, B: 0, R: 1, T: 1}, cp.BB{L: 5, B: 5, R: 6, T: 6}, false},
		{"contained", cp.BB{L: 0, B: 0, R: 10, T: 10}, cp.BB{L: 2, B: 2, R: 3, T: 3}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Intersects(c.a, c.b); got != c.want {
				t.Fatalf("Intersects = %v, want %v", got, c.want)
			}
			if got := Intersects(c.b, c.a); got != c.want {
				t.Fatalf("Intersects is not symmetric")
			}
		})
	}
}

func TestSetMembership(t *testing.T) {
	a, b, c := tile(0, 0), tile(1, 0), tile(2, 0)
	s := NewSet(a, b)

	if s.Len() != 2 {
		t.Fatalf("expected 2 bodies, got %d", s.Len())
	}
	s.Add(a)
	if s.Len() != 2 {
		t.Fatalf("adding a member twice should not grow the set")
	}
	if s.Contains(c) {
		t.Fatalf("set should not contain c")
	}
	s.Add(c)
	if !s.Remove(a) {
		t.Fatalf("Remove should report a present body")
	}
	if s.Remove(a) {
		t.Fatalf("Remove should report false for an absent body")
	}
	if s.Contains(a) || !s.Contains(b) || !s.Contains(c) {
		t.Fatalf("unexpected membership after remove")
	}
	if len(s.Bodies()) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(s.Bodies()))
	}
}

func TestSetQueries(t *testing.T) {
	a, b := tile(0, 0), tile(1, 0)
	s := NewSet(a, b)

	hits := s.OverlapsAny(cp.BB{L: 60, B: 10, R: 70, T: 20})
	if len(hits) != 2 {
		t.Fatalf("expected box straddling both tiles to hit 2, got %d", len(hits))
	}
	if s.Collides(cp.BB{L: 0, B: 64, R: 64, T: 128}) {
		t.Fatalf("box resting on the tiles should not collide")
	}
	if got := s.PointQuery(cp.Vector{X: 32, Y: 63}); len(got) != 1 || got[0] != a {
		t.Fatalf("point query should return tile a, got %v", got)
	}
	if s.Solid(cp.Vector{X: 200, Y: 32}) {
		t.Fatalf("empty space reported solid")
	}
}

func TestBodyMoveKeepsMembership(t *testing.T) {
	a := tile(0, 0)
	s := NewSet(a)
	a.Move(cp.Vector{X: 64})
	if !s.Solid(cp.Vector{X: 100, Y: 32}) {
		t.Fatalf("moved body should be found at its new position")
	}
	if s.Solid(cp.Vector{X: 10, Y: 32}) {
		t.Fatalf("moved body should not be found at its old position")
	}
}

func TestOverlapsAnyPreservesOrder(t *testing.T) {
	boxes := []Box{
		Box(cp.BB{L: 0, B: 0, R: 10, T: 10}),
		Box(cp.BB{L: 100, B: 0, R: 110, T: 10}),
		Box(cp.BB{L: 5, B: 0, R: 15, T: 10}),
	}
	hits := OverlapsAny(Box(cp.BB{L: 4, B: 1, R: 6, T: 2}), boxes)
	if len(hits) != 2 || hits[0] != boxes[0] || hits[1] != boxes[2] {
		t.Fatalf("unexpected hits %v", hits)
	}
}

func TestSetIndexBoundedByMembers(t *testing.T) {
	for i := 0; i < 10000; i++ {
		tile(float64(i), 0)
	}

	// every level build makes fresh bodies and a fresh set
	for round := 0; round < 100; round++ {
		bodies := make([]*Body, 20)
		for i := range bodies {
			bodies[i] = tile(float64(i), float64(round))
		}
		s := NewSet(bodies...)
		if got := len(s.bodies.sparse); got != len(bodies) {
			t.Fatalf("round %d: sparse index has %d slots for %d bodies", round, got, len(bodies))
		}
	}
}

func TestSetReusesIDsAfterRemove(t *testing.T) {
	ground, gate := tile(0, 0), tile(1, 0)
	s := NewSet(ground)
	for i := 0; i < 1000; i++ {
		s.Add(gate)
		if !s.Remove(gate) {
			t.Fatalf("toggle %d: gate not removed", i)
		}
	}
	if got := len(s.bodies.sparse); got > 2 {
		t.Fatalf("sparse index grew to %d slots with at most 2 members", got)
	}
	if !s.Contains(ground) || s.Contains(gate) || s.Len() != 1 {
		t.Fatalf("unexpected membership after toggling")
	}
}
