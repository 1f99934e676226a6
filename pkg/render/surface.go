// Package render paints board frames onto a drawing surface.
package render

import "github.com/vcostin/chesstv/pkg/board"

// Surface is the drawing target for board frames. Implementations draw
// styled text at absolute coordinates and present everything drawn
// since the last flush when Flush is called.
type Surface interface {
	// Clear erases the whole region.
	Clear()
	// Write draws text at the given coordinate over the background
	// color. Writing outside the current region bounds is an error.
	Write(col, row int, text string, bg board.RGB) error
	// Flush presents the frame.
	Flush() error
	// Size returns the current region size in columns and rows.
	Size() (width, height int)
}
