package game

// Outcome is what a tick ended with.
type Outcome int

const (
	// Continue means the tick ran every step.
	Continue Outcome = iota
	// PlayerHit means an enemy touched the player and the rest of the tick
	// was skipped.
	PlayerHit
	// LevelReload means the player died or fell and the level was rebuilt.
	LevelReload
	// LevelAdvance means the player reached an exit and the next level was
	// loaded.
	LevelAdvance
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "Continue"
	case PlayerHit:
		return "PlayerHit"
	case LevelReload:
		return "LevelReload"
	case LevelAdvance:
		return "LevelAdvance"
	default:
		return "Unknown"
	}
}

// State is the level lifecycle: Loading -> Playing -> (Reloading | Advancing)
// -> Loading.
type State int

const (
	StateLoading State = iota
	StatePlaying
	StateReloading
	StateAdvancing
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StateReloading:
		return "Reloading"
	case StateAdvancing:
		return "Advancing"
	default:
		return "Unknown"
	}
}

// Action is a key driven intent, abstracted from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionReset
	ActionSwapWeapon
	ActionDebugDamage
	ActionDebugHeal
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionReset:
		return "Reset"
	case ActionSwapWeapon:
		return "SwapWeapon"
	case ActionDebugDamage:
		return "DebugDamage"
	case ActionDebugHeal:
		return "DebugHeal"
	default:
		return "Unknown"
	}
}

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

// Slot is the equipped weapon.
type Slot int

const (
	SlotSword Slot = iota
	SlotBow
)

func (s Slot) String() string {
	if s == SlotBow {
		return "bow"
	}
	return "sword"
}
