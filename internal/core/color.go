package core

import "strings"

// Color is the foreground of a screen cell. Frontends map each value to
// their own palette; ColorDefault leaves the terminal colour untouched.
type Color uint8

// Block rows use the first five colours in the classic red, pink, green,
// yellow, grey cycle.
const (
	ColorDefault Color = iota
	ColorRed
	ColorPink
	ColorGreen
	ColorYellow
	ColorGray
	ColorWhite
	ColorBlue
	ColorCyan
	ColorOrange

	colorCount
)

var colorNames = [colorCount]string{
	ColorDefault: "default",
	ColorRed:     "red",
	ColorPink:    "pink",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorGray:    "gray",
	ColorWhite:   "white",
	ColorBlue:    "blue",
	ColorCyan:    "cyan",
	ColorOrange:  "orange",
}

// Colors lists every colour except ColorDefault.
func Colors() []Color {
	out := make([]Color, 0, colorCount-1)
	for c := ColorRed; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}

func (c Color) String() string {
	if c < colorCount {
		return colorNames[c]
	}
	return "default"
}

// ParseColor resolves a colour name from a config file. Matching ignores
// case and accepts "grey" for ColorGray.
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "grey" {
		return ColorGray, true
	}
	for c, n := range colorNames {
		if n == name {
			return Color(c), true
		}
	}
	return ColorDefault, false
}
