// Package collision is the spatial query surface of the game: axis aligned
// boxes, overlap and point queries, and the terrain collision set.
package collision

import "github.com/jakecoffman/cp"

// Shape is anything with an axis-aligned footprint in world space.
type Shape interface {
	Bounds() cp.BB
}

// Box adapts a bare bounding box to Shape.
type Box cp.BB

func (b Box) Bounds() cp.BB { return cp.BB(b) }

// BoxAt returns the box of the given half extents centered on c.
func BoxAt(c cp.Vector, halfW, halfH float64) cp.BB {
	return cp.BB{L: c.X - halfW, B: c.Y - halfH, R: c.X + halfW, T: c.Y + halfH}
}

// Intersects reports whether a and b share interior area. Boxes that only
// touch along an edge do not intersect, so an actor resting on a tile is not
// colliding with it.
func Intersects(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}

// Contains reports whether p lies inside bb or on its boundary.
func Contains(bb cp.BB, p cp.Vector) bool {
	return bb.ContainsVect(p)
}

// Overlaps tests two shapes against each other.
func Overlaps(a, b Shape) bool {
	if a == nil || b == nil {
		return false
	}
	return Intersects(a.Bounds(), b.Bounds())
}

// OverlapsAny returns every member of set whose box intersects s, in set order.
func OverlapsAny[S Shape](s Shape, set []S) []S {
	if s == nil || len(set) == 0 {
		return nil
	}
	box := s.Bounds()
	var hits []S
	for _, other := range set {
		if Intersects(box, other.Bounds()) {
			hits = append(hits, other)
		}
	}
	return hits
}

// PointQuery returns every member of set containing p, in set order.
func PointQuery[S Shape](p cp.Vector, set []S) []S {
	var hits []S
	for _, other := range set {
		if Contains(other.Bounds(), p) {
			hits = append(hits, other)
		}
	}
	return hits
}
