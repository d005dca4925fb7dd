package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
)

// Camera maps between world space (y up) and screen space (y down) and
// follows a target point.
type Camera struct {
	Pos cp.Vector

	screenW float64
	screenH float64
	zoom    float64

	// smoothing factor (0..1). 0 snaps to the target every update.
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera with the given logical screen size and initial zoom.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{
		screenW: float64(screenW),
		screenH: float64(screenH),
		zoom:    zoom,
		Pos:     cp.Vector{X: float64(screenW) / 2, Y: float64(screenH) / 2},
	}
}

// SetZoom updates the camera zoom.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

func (c *Camera) Zoom() float64 { return c.zoom }

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = float64(w)
	c.screenH = float64(h)
}

func (c *Camera) ScreenSize() (float64, float64) { return c.screenW, c.screenH }

// SetWorldBounds sets the world pixel dimensions for clamping camera position.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

// View returns the world-space rectangle currently on screen.
func (c *Camera) View() cp.BB {
	halfW := c.screenW / c.zoom / 2
	halfH := c.screenH / c.zoom / 2
	return cp.BB{L: c.Pos.X - halfW, B: c.Pos.Y - halfH, R: c.Pos.X + halfW, T: c.Pos.Y + halfH}
}

// ScreenToWorld converts a pointer position to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) cp.Vector {
	v := c.View()
	return cp.Vector{X: v.L + sx/c.zoom, Y: v.T - sy/c.zoom}
}

// WorldToScreen converts a world point to screen pixels.
func (c *Camera) WorldToScreen(p cp.Vector) (float64, float64) {
	v := c.View()
	return (p.X - v.L) * c.zoom, (v.T - p.Y) * c.zoom
}

// Update moves the camera toward the target world coordinate.
func (c *Camera) Update(target cp.Vector) {
	if c.smooth <= 0 {
		c.Pos = target
	} else {
		c.Pos.X = common.Lerp(c.Pos.X, target.X, c.smooth)
		c.Pos.Y = common.Lerp(c.Pos.Y, target.Y, c.smooth)
	}
	c.settle()
}

// SnapTo immediately centers the camera on target, e.g. after a level load.
func (c *Camera) SnapTo(target cp.Vector) {
	c.Pos = target
	c.settle()
}

// settle snaps to the 1/zoom pixel grid and clamps to world bounds.
func (c *Camera) settle() {
	c.Pos.X = math.Round(c.Pos.X*c.zoom) / c.zoom
	c.Pos.Y = math.Round(c.Pos.Y*c.zoom) / c.zoom

	halfW := c.screenW / c.zoom / 2
	halfH := c.screenH / c.zoom / 2
	if c.worldW > 0 {
		if c.worldW < 2*halfW {
			// world smaller than view: center on world
			c.Pos.X = c.worldW / 2
		} else {
			c.Pos.X = common.Clamp(c.Pos.X, halfW, c.worldW-halfW)
		}
	}
	if c.worldH > 0 {
		if c.worldH < 2*halfH {
			c.Pos.Y = c.worldH / 2
		} else {
			c.Pos.Y = common.Clamp(c.Pos.Y, halfH, c.worldH-halfH)
		}
	}
}
