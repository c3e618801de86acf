package core

import "strings"

// Action is a semantic game action, abstracted from physical keys and swipes.
// Actions are bit flags so a frame's input fits in a single ActionSet.
type Action uint8

const (
	ActionUp    Action = 1 << iota // ArrowUp or SwipeUp - jump
	ActionDown                     // ArrowDown or SwipeDown
	ActionLeft                     // ArrowLeft - run back
	ActionRight                    // ArrowRight - run forward
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ActionSet is the set of actions active during one frame.
type ActionSet uint8

// With returns a copy of the set with a added.
func (s ActionSet) With(a Action) ActionSet {
	return s | ActionSet(a)
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return s&ActionSet(a) != 0
}

// Empty reports whether no action is active.
func (s ActionSet) Empty() bool {
	return s == 0
}

// String lists the active actions, e.g. "Up|Right".
func (s ActionSet) String() string {
	if s.Empty() {
		return "None"
	}
	var names []string
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if s.Has(a) {
			names = append(names, a.String())
		}
	}
	return strings.Join(names, "|")
}
