package core

import "strings"

// Action is a frontend-neutral game command. Paddle movement arrives as
// separate on and off edges; games track what is currently held.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeftOn
	ActionMoveLeftOff
	ActionMoveRightOn
	ActionMoveRightOff
	ActionLaunch
	ActionPause
	ActionRestart

	actionCount
)

var actionNames = [actionCount]string{
	"None", "MoveLeftOn", "MoveLeftOff", "MoveRightOn", "MoveRightOff",
	"Launch", "Pause", "Restart",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions gathered between two frames. The zero
// value is empty and ready to use; copies are independent.
type InputFrame struct {
	bits uint16
}

func NewInputFrame() InputFrame { return InputFrame{} }

// Set adds a to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a != ActionNone && a < actionCount {
		f.bits |= 1 << a
	}
}

func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && a < actionCount && f.bits&(1<<a) != 0
}

func (f InputFrame) Empty() bool { return f.bits == 0 }

func (f *InputFrame) Clear() { f.bits = 0 }

// Clone returns a copy of f.
func (f InputFrame) Clone() InputFrame { return f }

func (f InputFrame) String() string {
	var names []string
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	return "{" + strings.Join(names, " ") + "}"
}
