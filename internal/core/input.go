package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionFire           // Space, left click - fire a projectile
	ActionLeft           // A, Left arrow - nudge the sight left
	ActionRight          // D, Right arrow - nudge the sight right
	ActionUp             // W, Up arrow - nudge the sight up
	ActionDown           // S, Down arrow - nudge the sight down
	ActionStart          // Enter, R - start or restart a session
	ActionPause          // P, Escape - pause/unpause game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFire:
		return "Fire"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Shots holds fire commands in the order they arrived.
	Shots []Shot

	// Aim is the latest pointer position in field units, valid when AimSet.
	Aim    Vec
	AimSet bool
}

// Shot is one fire command. A shot taken after a pointer event carries the
// aim at that moment; otherwise it fires from the game's current sight.
type Shot struct {
	Aim    Vec
	AimSet bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
// ActionFire also queues a shot at the aim recorded so far.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if a == ActionFire {
		f.Shots = append(f.Shots, Shot{Aim: f.Aim, AimSet: f.AimSet})
	}
}

// SetAim records the pointer position. Shots already queued keep their own
// aim; the last call sets where the sight rests after the frame.
func (f *InputFrame) SetAim(p Vec) {
	f.Aim = p
	f.AimSet = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Shots = f.Shots[:0]
	f.Aim = Vec{}
	f.AimSet = false
}
