// Package input samples the level state of the viewer's logical keys.
//
// A Snapshot is taken once per frame and carries no memory of earlier
// frames: holding a key keeps its action active for every frame it is held.
package input

// Action is a logical viewer action bound to a physical key.
type Action int

const (
	MoveForward Action = iota
	MoveBack
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	RotateLeft
	RotateRight
	Quit

	// NumActions is the number of logical actions.
	NumActions
)

var actionNames = [NumActions]string{
	MoveForward: "move-forward",
	MoveBack:    "move-back",
	MoveLeft:    "move-left",
	MoveRight:   "move-right",
	MoveUp:      "move-up",
	MoveDown:    "move-down",
	RotateLeft:  "rotate-left",
	RotateRight: "rotate-right",
	Quit:        "quit",
}

// Actions lists every logical action in sampling order.
func Actions() []Action {
	actions := make([]Action, NumActions)
	for i := range actions {
		actions[i] = Action(i)
	}
	return actions
}

func (a Action) String() string {
	if a < 0 || a >= NumActions {
		return "unknown"
	}
	return actionNames[a]
}

// Source reports whether the key bound to an action is currently held down.
type Source interface {
	Pressed(action Action) bool
}

// Snapshot is the set of actions held during a single frame.
type Snapshot [NumActions]bool

// Sample queries src once per action and returns the resulting snapshot.
func Sample(src Source) Snapshot {
	var s Snapshot
	for _, a := range Actions() {
		s[a] = src.Pressed(a)
	}
	return s
}

// Active reports whether action a is held in the snapshot.
func (s Snapshot) Active(a Action) bool {
	if a < 0 || a >= NumActions {
		return false
	}
	return s[a]
}

// Empty reports whether no action is held.
func (s Snapshot) Empty() bool {
	for _, held := range s {
		if held {
			return false
		}
	}
	return true
}

// With returns a copy of the snapshot with the given actions held.
func (s Snapshot) With(actions ...Action) Snapshot {
	for _, a := range actions {
		if a >= 0 && a < NumActions {
			s[a] = true
		}
	}
	return s
}
