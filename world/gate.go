package world

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/component"
)

// Gate is a one tile door. Closed gates are solid and drawn; open gates are
// neither. Membership in the terrain set follows Closed through
// Level.SyncGates.
type Gate struct {
	ID   string
	Body *collision.Body

	closed   bool
	switches []*Switch
}

func NewGate(id string, box cp.BB, closed bool) *Gate {
	return &Gate{ID: id, Body: collision.NewBody(box), closed: closed}
}

func (g *Gate) Closed() bool { return g.closed }

func (g *Gate) Open() bool { return !g.closed }

// SetClosed reports whether the state changed.
func (g *Gate) SetClosed(closed bool) bool {
	if g.closed == closed {
		return false
	}
	g.closed = closed
	return true
}

// Switches lists the switches that drive this gate.
func (g *Gate) Switches() []*Switch { return g.switches }

func (g *Gate) Bounds() cp.BB { return g.Body.Box }

func (g *Gate) Sprite() component.Sprite {
	return component.Sprite{
		Kind:    component.SpriteGate,
		Variant: g.ID,
		Bounds:  g.Body.Box,
		Visible: g.closed,
	}
}

// Target is a gate driven by a switch. OpenWhenOn opens the gate while the
// switch is on; otherwise the switch closes it.
type Target struct {
	Gate       *Gate
	OpenWhenOn bool
}

// Switch flips its targets each time it is struck.
type Switch struct {
	ID  string
	Box cp.BB

	on      bool
	targets []Target
}

func NewSwitch(id string, box cp.BB, on bool) *Switch {
	return &Switch{ID: id, Box: box, on: on}
}

func (s *Switch) On() bool { return s.on }

func (s *Switch) Targets() []Target { return s.targets }

// AddTarget links g to s and registers s on the gate.
func (s *Switch) AddTarget(g *Gate, openWhenOn bool) {
	s.targets = append(s.targets, Target{Gate: g, OpenWhenOn: openWhenOn})
	g.switches = append(g.switches, s)
}

// Trigger flips the switch and drives every target to match.
func (s *Switch) Trigger() {
	s.on = !s.on
	for _, t := range s.targets {
		t.Gate.SetClosed(s.on != t.OpenWhenOn)
	}
}

func (s *Switch) Bounds() cp.BB { return s.Box }

func (s *Switch) Sprite() component.Sprite {
	variant := "off"
	if s.on {
		variant = "on"
	}
	return component.Sprite{
		Kind:    component.SpriteSwitch,
		Variant: variant,
		Bounds:  s.Box,
		Visible: true,
	}
}
