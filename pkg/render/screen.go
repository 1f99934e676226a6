package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vcostin/chesstv/pkg/board"
)

// ScreenSurface adapts a tcell.Screen to the Surface interface.
type ScreenSurface struct {
	screen tcell.Screen
}

// NewScreenSurface wraps an initialized tcell screen.
func NewScreenSurface(screen tcell.Screen) *ScreenSurface {
	return &ScreenSurface{screen: screen}
}

// Clear erases the whole screen.
func (s *ScreenSurface) Clear() { s.screen.Clear() }

// Write draws text rune by rune starting at (col, row). tcell silently
// discards out-of-bounds cells, so bounds are checked here to surface
// a too-small terminal as an error instead of a half-drawn board.
func (s *ScreenSurface) Write(col, row int, text string, bg board.RGB) error {
	width, height := s.screen.Size()
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(bg.R, bg.G, bg.B))

	x := col
	for _, r := range text {
		if x < 0 || x >= width || row < 0 || row >= height {
			return fmt.Errorf("render: write at (%d,%d) outside %dx%d region", x, row, width, height)
		}
		s.screen.SetContent(x, row, r, nil, style)
		x++
	}

	return nil
}

// Flush presents the frame.
func (s *ScreenSurface) Flush() error {
	s.screen.Show()
	return nil
}

// Size returns the terminal size in columns and rows.
func (s *ScreenSurface) Size() (int, int) { return s.screen.Size() }
