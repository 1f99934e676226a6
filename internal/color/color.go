// Package color provides basic color definitions for a chess game
package color

import "fmt"

// Color represent a chess color
type Color string

// Possible color variations in a chess game
const (
	White Color = "w"
	Black Color = "b"
)

// Opp returns the opposite color for the given color.
func (c Color) Opp() Color {
	if c == White {
		return Black
	}

	return White
}

// Parse maps the feed's color names onto a Color. The feed uses the
// long form ("white"/"black"); the short form is accepted as well.
func Parse(s string) (Color, error) {
	switch s {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}

	return "", fmt.Errorf("unknown color %q", s)
}
