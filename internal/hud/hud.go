// Package hud holds the text shown in the strip above the playfield and a
// cache that rebuilds drawables only when that text changes.
package hud

import "fmt"

// Field identifies one HUD entry.
type Field int

const (
	Lives Field = iota
	Score
	Time
	HighScore
	numFields
)

// Fields lists every HUD entry in drawing order.
var Fields = []Field{Lives, Score, Time, HighScore}

func (f Field) String() string {
	switch f {
	case Lives:
		return "lives"
	case Score:
		return "score"
	case Time:
		return "time"
	case HighScore:
		return "high_score"
	default:
		return "unknown"
	}
}

// Anchor returns the left edge of the field as a fraction of the playfield width.
func (f Field) Anchor() float64 {
	switch f {
	case Score:
		return 0.2
	case Time:
		return 0.5
	case HighScore:
		return 0.75
	default:
		return 0
	}
}

// MaxMinutes is the largest minute count the timer text can show.
const MaxMinutes = 99

// Values is the set of numbers the HUD displays.
type Values struct {
	Lives     int
	Score     int
	Minutes   int
	Seconds   int
	HighScore int
}

// Format returns the display text of a single field.
func Format(f Field, v Values) string {
	switch f {
	case Lives:
		return fmt.Sprintf("Lives: %d", v.Lives)
	case Score:
		return fmt.Sprintf("Points: %d", v.Score)
	case Time:
		if v.Minutes > MaxMinutes {
			return "just stop"
		}
		return fmt.Sprintf("%02d:%02d", v.Minutes, v.Seconds)
	case HighScore:
		return fmt.Sprintf("High Score: %03d", v.HighScore)
	default:
		return ""
	}
}

// Sink receives text for a field whenever it changes.
type Sink interface {
	Refresh(f Field, text string)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(f Field, text string)

// Refresh calls fn(f, text).
func (fn SinkFunc) Refresh(f Field, text string) {
	fn(f, text)
}
