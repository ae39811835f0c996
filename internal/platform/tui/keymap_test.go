package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestHoldFirstPress(t *testing.T) {
	h := NewHoldTracker(DefaultFirstHold, DefaultRepeatHold)
	frame := core.NewInputFrame()

	h.Press(DirLeft, t0, &frame)
	if !frame.Has(core.ActionMoveLeftOn) {
		t.Fatal("first press should emit MoveLeftOn")
	}

	frame.Clear()
	h.Expire(t0.Add(299*time.Millisecond), &frame)
	if frame.Has(core.ActionMoveLeftOff) || !h.Held(DirLeft) {
		t.Error("released before the first hold window ended")
	}
	h.Expire(t0.Add(300*time.Millisecond), &frame)
	if !frame.Has(core.ActionMoveLeftOff) || h.Held(DirLeft) {
		t.Error("hold should lapse after 300ms")
	}
}

func TestHoldRepeatsExtend(t *testing.T) {
	h := NewHoldTracker(DefaultFirstHold, DefaultRepeatHold)
	frame := core.NewInputFrame()

	h.Press(DirRight, t0, &frame)
	// Auto-repeat every 50ms keeps the key held well past the first window.
	for i := 1; i <= 10; i++ {
		frame.Clear()
		now := t0.Add(time.Duration(i) * 50 * time.Millisecond)
		h.Press(DirRight, now, &frame)
		if frame.Has(core.ActionMoveRightOn) {
			t.Fatalf("repeat %d emitted a second On", i)
		}
		h.Expire(now, &frame)
		if frame.Has(core.ActionMoveRightOff) {
			t.Fatalf("released during repeats at %d", i)
		}
	}

	frame.Clear()
	h.Expire(t0.Add(500*time.Millisecond+119*time.Millisecond), &frame)
	if frame.Has(core.ActionMoveRightOff) {
		t.Error("released before the repeat window ended")
	}
	h.Expire(t0.Add(500*time.Millisecond+120*time.Millisecond), &frame)
	if !frame.Has(core.ActionMoveRightOff) {
		t.Error("should release 120ms after the last repeat")
	}
}

func TestHoldRepeatDoesNotShorten(t *testing.T) {
	h := NewHoldTracker(DefaultFirstHold, DefaultRepeatHold)
	frame := core.NewInputFrame()
	h.Press(DirLeft, t0, &frame)
	h.Press(DirLeft, t0.Add(10*time.Millisecond), &frame)

	frame.Clear()
	h.Expire(t0.Add(200*time.Millisecond), &frame)
	if frame.Has(core.ActionMoveLeftOff) {
		t.Error("an early repeat must not cut the first hold short")
	}
}

func TestOppositeReleasesImmediately(t *testing.T) {
	h := NewHoldTracker(DefaultFirstHold, DefaultRepeatHold)
	frame := core.NewInputFrame()
	h.Press(DirLeft, t0, &frame)

	frame.Clear()
	h.Press(DirRight, t0.Add(20*time.Millisecond), &frame)
	if !frame.Has(core.ActionMoveLeftOff) || !frame.Has(core.ActionMoveRightOn) {
		t.Errorf("frame = %v, want left off and right on", frame)
	}
	if h.Held(DirLeft) || !h.Held(DirRight) {
		t.Error("only right should be held")
	}
}

func TestMapGameKey(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
		back   bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeftOn, false, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, core.ActionMoveRightOn, false, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionLaunch, false, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause, false, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart, false, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionNone, true, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone, false, true},
	}
	for _, tt := range tests {
		h := NewHoldTracker(DefaultFirstHold, DefaultRepeatHold)
		frame := core.NewInputFrame()
		quit, back := mapGameKey(keys, tt.msg, h, t0, &frame)
		if quit != tt.quit || back != tt.back {
			t.Errorf("%q: quit=%v back=%v", tt.msg.String(), quit, back)
		}
		if tt.action != core.ActionNone && !frame.Has(tt.action) {
			t.Errorf("%q: frame missing %v", tt.msg.String(), tt.action)
		}
	}
}
