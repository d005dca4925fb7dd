package collision

import "github.com/jakecoffman/cp"

// Set is the terrain collision set: the solid bodies that player physics,
// enemy look-ahead and projectiles test against. Membership is the single
// source of truth for solidity.
type Set struct {
	bodies sparseSet[*Body]
	// ids are local to the set and reused after removal, so the sparse
	// index never outgrows the most members the set has held at once.
	ids  map[*Body]int
	free []int
	next int
}

func NewSet(bodies ...*Body) *Set {
	s := &Set{ids: make(map[*Body]int, len(bodies))}
	for _, b := range bodies {
		s.Add(b)
	}
	return s
}

// Add inserts b. Adding a body twice is a no-op.
func (s *Set) Add(b *Body) {
	if s == nil || b == nil {
		return
	}
	if _, ok := s.ids[b]; ok {
		return
	}
	if s.ids == nil {
		s.ids = make(map[*Body]int)
	}
	var id int
	if n := len(s.free); n > 0 {
		id, s.free = s.free[n-1], s.free[:n-1]
	} else {
		s.next++
		id = s.next
	}
	s.ids[b] = id
	s.bodies.set(id, b)
}

// Remove drops b and reports whether it was present.
func (s *Set) Remove(b *Body) bool {
	if s == nil || b == nil {
		return false
	}
	id, ok := s.ids[b]
	if !ok {
		return false
	}
	delete(s.ids, b)
	s.free = append(s.free, id)
	return s.bodies.remove(id)
}

func (s *Set) Contains(b *Body) bool {
	if s == nil || b == nil {
		return false
	}
	_, ok := s.ids[b]
	return ok
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.bodies.len()
}

// Bodies returns a copy of the members.
func (s *Set) Bodies() []*Body {
	if s == nil {
		return nil
	}
	out := make([]*Body, s.bodies.len())
	copy(out, s.bodies.values())
	return out
}

// OverlapsAny returns the bodies whose boxes intersect box.
func (s *Set) OverlapsAny(box cp.BB) []*Body {
	if s == nil {
		return nil
	}
	return OverlapsAny(Box(box), s.bodies.values())
}

// Collides is OverlapsAny without the allocation.
func (s *Set) Collides(box cp.BB) bool {
	if s == nil {
		return false
	}
	for _, b := range s.bodies.values() {
		if Intersects(box, b.Box) {
			return true
		}
	}
	return false
}

// PointQuery returns the bodies containing p.
func (s *Set) PointQuery(p cp.Vector) []*Body {
	if s == nil {
		return nil
	}
	return PointQuery(p, s.bodies.values())
}

// Solid reports whether any body contains p.
func (s *Set) Solid(p cp.Vector) bool {
	if s == nil {
		return false
	}
	for _, b := range s.bodies.values() {
		if Contains(b.Box, p) {
			return true
		}
	}
	return false
}
