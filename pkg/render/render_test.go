package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcostin/chesstv/pkg/board"
	"github.com/vcostin/chesstv/pkg/game"
)

// fakeSurface records every call so tests can assert ordering and
// error propagation without a real terminal.
type fakeSurface struct {
	width, height int
	ops           []string
	failWrites    bool
}

func (f *fakeSurface) Clear() { f.ops = append(f.ops, "clear") }

func (f *fakeSurface) Write(col, row int, text string, _ board.RGB) error {
	if f.failWrites {
		return fmt.Errorf("write at (%d,%d) rejected", col, row)
	}
	f.ops = append(f.ops, fmt.Sprintf("write %d,%d %q", col, row, text))
	return nil
}

func (f *fakeSurface) Flush() error {
	f.ops = append(f.ops, "flush")
	return nil
}

func (f *fakeSurface) Size() (int, int) { return f.width, f.height }

func TestRender_ClearsThenWritesThenFlushes(t *testing.T) {
	surface := &fakeSurface{width: 80, height: 24}
	grid := board.Layout(game.NewGameState(), 80, 24)

	err := Render(grid, surface)
	require.NoError(t, err)

	// One clear, 64 writes, one flush, in that order.
	require.Len(t, surface.ops, 66)
	assert.Equal(t, "clear", surface.ops[0])
	assert.Equal(t, "flush", surface.ops[65])
	assert.Equal(t, `write 28,8 "♜  "`, surface.ops[1])
}

func TestRender_WriteFailureAbortsFrame(t *testing.T) {
	surface := &fakeSurface{width: 80, height: 24, failWrites: true}
	grid := board.Layout(game.NewGameState(), 80, 24)

	err := Render(grid, surface)
	require.Error(t, err)

	// Cleared but never flushed: the frame was dropped whole.
	assert.Equal(t, []string{"clear"}, surface.ops)
}
