package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump, or double-jump while airborne
	ActionLeft           // A, Left - steer left
	ActionRight          // D, Right - steer right
	ActionUp             // menu navigation
	ActionDown           // menu navigation
	ActionConfirm        // Enter
	ActionBack           // B, Escape
	ActionRestart        // R - new run after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P, Escape

	// Debug actions, only honored when the runtime is started with Debug.
	ActionDebugStorm
	ActionDebugLightning
	ActionDebugShark
	ActionDebugMoney
)

var actionNames = map[Action]string{
	ActionNone:           "None",
	ActionJump:           "Jump",
	ActionLeft:           "Left",
	ActionRight:          "Right",
	ActionUp:             "Up",
	ActionDown:           "Down",
	ActionConfirm:        "Confirm",
	ActionBack:           "Back",
	ActionRestart:        "Restart",
	ActionQuit:           "Quit",
	ActionPause:          "Pause",
	ActionDebugStorm:     "DebugStorm",
	ActionDebugLightning: "DebugLightning",
	ActionDebugShark:     "DebugShark",
	ActionDebugMoney:     "DebugMoney",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
