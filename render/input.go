package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/game"
)

// Bindings maps each action to the keys that trigger it.
type Bindings map[game.Action][]ebiten.Key

func DefaultBindings() Bindings {
	return Bindings{
		game.ActionMoveLeft:    {ebiten.KeyA, ebiten.KeyLeft},
		game.ActionMoveRight:   {ebiten.KeyD, ebiten.KeyRight},
		game.ActionJump:        {ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp},
		game.ActionReset:       {ebiten.KeyR},
		game.ActionSwapWeapon:  {ebiten.KeyQ},
		game.ActionDebugDamage: {ebiten.KeyF1},
		game.ActionDebugHeal:   {ebiten.KeyF2},
	}
}

// Action returns the action bound to key.
func (b Bindings) Action(key ebiten.Key) (game.Action, bool) {
	for a, keys := range b {
		for _, k := range keys {
			if k == key {
				return a, true
			}
		}
	}
	return game.ActionNone, false
}

// Input polls ebiten once per frame and forwards edges to the game as
// key and pointer events.
type Input struct {
	Bindings Bindings
	// PauseKey toggles the pause menu.
	PauseKey ebiten.Key

	// stickX is the last direction read from the gamepad stick.
	stickX int
}

func NewInput() *Input {
	return &Input{Bindings: DefaultBindings(), PauseKey: ebiten.KeyEscape}
}

// PausePressed reports the frame the pause key or gamepad start goes down.
func (i *Input) PausePressed() bool {
	if inpututil.IsKeyJustPressed(i.PauseKey) {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

// Update forwards this frame's input to g.
func (i *Input) Update(g *game.Game) {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if a, ok := i.Bindings.Action(k); ok {
			g.KeyDown(a)
		}
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		if a, ok := i.Bindings.Action(k); ok {
			g.KeyUp(a)
		}
	}

	mx, my := ebiten.CursorPosition()
	g.PointerMove(float64(mx), float64(my))
	for _, b := range []struct {
		mouse  ebiten.MouseButton
		button game.Button
	}{
		{ebiten.MouseButtonLeft, game.ButtonLeft},
		{ebiten.MouseButtonRight, game.ButtonRight},
	} {
		if inpututil.IsMouseButtonJustPressed(b.mouse) {
			g.PointerDown(b.button)
		}
		if inpututil.IsMouseButtonJustReleased(b.mouse) {
			g.PointerUp(b.button)
		}
	}

	i.updateGamepad(g)
}

// updateGamepad maps the first gamepad's left stick and face buttons onto
// the same actions as the keyboard.
func (i *Input) updateGamepad(g *game.Game) {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		i.setStick(g, 0)
		return
	}
	id := ids[0]

	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	dir := 0
	if x < -0.3 {
		dir = -1
	} else if x > 0.3 {
		dir = 1
	}
	i.setStick(g, dir)

	if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
		g.KeyDown(game.ActionJump)
	}
	if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop) {
		g.KeyDown(game.ActionSwapWeapon)
	}
	if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight) {
		g.PointerDown(game.ButtonLeft)
	}
	if inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonFrontBottomRight) {
		g.PointerUp(game.ButtonLeft)
	}
}

func (i *Input) setStick(g *game.Game, dir int) {
	if dir == i.stickX {
		return
	}
	switch i.stickX {
	case -1:
		g.KeyUp(game.ActionMoveLeft)
	case 1:
		g.KeyUp(game.ActionMoveRight)
	}
	switch dir {
	case -1:
		g.KeyDown(game.ActionMoveLeft)
	case 1:
		g.KeyDown(game.ActionMoveRight)
	}
	i.stickX = dir
}
