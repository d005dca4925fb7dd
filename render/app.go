// Package render runs a game.Game under ebiten: it polls input, ticks the
// simulation at a fixed step and draws its drawables as flat rectangles.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

const (
	healthBarWidth  = 50
	healthBarHeight = 6
)

// App implements ebiten.Game around a game.Game.
type App struct {
	// BeforeTick runs on the game loop before input is read, e.g. to apply
	// hot reloads. An error stops the loop.
	BeforeTick func() error
	// OnOutcome receives every tick's outcome.
	OnOutcome func(game.Outcome)
	// Debug adds tick and camera details to the HUD.
	Debug bool

	game    *game.Game
	input   *Input
	palette *Palette
	ui      *ebitenui.UI
	dt      float64
	frames  int

	paused bool
	quit   bool
	err    error
	pixel  *ebiten.Image
}

func NewApp(g *game.Game, reg *prefabs.Registry) *App {
	a := &App{
		game:    g,
		input:   NewInput(),
		palette: NewPalette(reg),
		dt:      g.Config().TickSeconds(),
	}
	a.ui = newPauseUI(a)
	return a
}

// SetRegistry refreshes colors after prefabs change on disk.
func (a *App) SetRegistry(reg *prefabs.Registry) {
	a.palette = NewPalette(reg)
}

func (a *App) Paused() bool { return a.paused }

func (a *App) Update() error {
	if a.quit {
		return ebiten.Termination
	}
	if a.err != nil {
		return a.err
	}
	a.frames++

	if a.BeforeTick != nil {
		if err := a.BeforeTick(); err != nil {
			return err
		}
	}

	if a.input.PausePressed() {
		a.paused = !a.paused
	}
	if a.paused {
		a.ui.Update()
		return nil
	}

	a.input.Update(a.game)
	out := a.game.Tick(a.dt)
	if a.OnOutcome != nil {
		a.OnOutcome(out)
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Lightskyblue)

	cam := a.game.Camera()
	for _, d := range a.game.Drawables() {
		if !d.Visible || !a.game.Visible(d.Bounds) {
			continue
		}
		a.drawSprite(screen, d)
	}
	for _, bar := range a.game.HealthBars() {
		x, y := cam.WorldToScreen(bar.Center)
		w, h := healthBarWidth*cam.Zoom(), healthBarHeight*cam.Zoom()
		x -= w / 2
		y -= h
		fill := colornames.Limegreen
		if bar.Player {
			fill = colornames.Dodgerblue
		}
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), colornames.Darkred, false)
		vector.FillRect(screen, float32(x), float32(y), float32(w*bar.Fraction), float32(h), fill, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, color.Black, false)
	}

	ebitenutil.DebugPrint(screen, a.hud())

	if a.paused {
		a.ui.Draw(screen)
	}
}

func (a *App) hud() string {
	g := a.game
	p := g.Player()
	if p == nil {
		return fmt.Sprintf("loading...  FPS: %.2f", ebiten.ActualFPS())
	}
	s := fmt.Sprintf("Level: %s  Score: %d  Health: %.0f/%.0f  Weapon: %s  FPS: %.2f",
		g.MapName(), g.Score(), p.Health().Current, p.Health().Max, g.Equipped(), ebiten.ActualFPS())
	if a.Debug {
		s += fmt.Sprintf("\nTick: %d  State: %s  Player: (%.1f, %.1f) %s  Enemies: %d  Arrows: %d",
			g.Ticks(), g.State(), p.Pos.X, p.Pos.Y, p.State(), len(g.Level().Enemies), len(g.Bow().Arrows()))
	}
	return s
}

// drawSprite fills the sprite's box, or for rotated weapons and arrows its
// unrotated footprint turned about the box center.
func (a *App) drawSprite(screen *ebiten.Image, d game.Drawable) {
	cam := a.game.Camera()
	clr := a.palette.Color(d)

	if w, h, ok := a.palette.Size(d.Kind); ok && d.Angle != 0 && rotates(d.Kind) {
		if a.pixel == nil {
			a.pixel = ebiten.NewImage(1, 1)
			a.pixel.Fill(color.White)
		}
		zoom := cam.Zoom()
		cx, cy := cam.WorldToScreen(d.Bounds.Center())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-0.5, -0.5)
		op.GeoM.Scale(w*zoom, h*zoom)
		// clockwise in the world stays clockwise on a y-down screen
		op.GeoM.Rotate(d.Angle * math.Pi / 180)
		op.GeoM.Translate(math.Round(cx), math.Round(cy))
		op.ColorScale.ScaleWithColor(clr)
		screen.DrawImage(a.pixel, op)
		return
	}

	x, y := cam.WorldToScreen(cp.Vector{X: d.Bounds.L, Y: d.Bounds.T})
	zoom := cam.Zoom()
	w := (d.Bounds.R - d.Bounds.L) * zoom
	h := (d.Bounds.T - d.Bounds.B) * zoom
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func rotates(k component.SpriteKind) bool {
	return k == component.SpriteSword || k == component.SpriteBow || k == component.SpriteArrow
}

func (a *App) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return a.game.Camera().ScreenSize()
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
