package collision

import (
	"github.com/jakecoffman/cp"
)

// Body is a solid box that can be placed in a Set. Moving platforms and
// gates mutate Box in place; the Set holds the pointer.
type Body struct {
	Box cp.BB
}

func NewBody(box cp.BB) *Body {
	return &Body{Box: box}
}

func (b *Body) Bounds() cp.BB { return b.Box }

func (b *Body) Center() cp.Vector { return b.Box.Center() }

// Move translates the body by delta.
func (b *Body) Move(delta cp.Vector) {
	b.Box = b.Box.Offset(delta)
}
