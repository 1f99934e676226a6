package render

import (
	"fmt"

	"github.com/vcostin/chesstv/pkg/board"
)

// Render paints one frame. The region is cleared first so a previous,
// differently shaped frame cannot bleed through, then every cell is
// drawn and the frame is presented. A failed draw call aborts the
// frame; the caller decides whether that is fatal (the pipeline drops
// the frame and waits for the next event).
func Render(grid board.Grid, surface Surface) error {
	surface.Clear()

	for _, cell := range grid.Cells {
		if err := surface.Write(cell.Col, cell.Row, cell.Text, cell.Bg); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}
	}

	return surface.Flush()
}
