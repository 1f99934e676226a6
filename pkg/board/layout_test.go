package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcostin/chesstv/internal/color"
	"github.com/vcostin/chesstv/pkg/feed"
	"github.com/vcostin/chesstv/pkg/game"
)

func TestLayout_Deterministic(t *testing.T) {
	s := game.NewGameState()

	first := Layout(s, 80, 24)
	second := Layout(s, 80, 24)

	require.Equal(t, first, second)
}

func TestLayout_Geometry(t *testing.T) {
	s := game.NewGameState()

	g := Layout(s, 80, 24)

	// Anchor is the region center minus half the board extent.
	a8 := g.Cells[0]
	assert.Equal(t, 28, a8.Col)
	assert.Equal(t, 8, a8.Row)

	h8 := g.Cells[7]
	assert.Equal(t, 28+7*3, h8.Col)
	assert.Equal(t, 8, h8.Row)

	h1 := g.Cells[63]
	assert.Equal(t, 28+7*3, h1.Col)
	assert.Equal(t, 8+7, h1.Row)
}

func TestLayout_Checkerboard(t *testing.T) {
	s := game.NewGameState()

	g := Layout(s, 80, 24)

	// (file + rank) even is the dark tan, odd the light one.
	assert.Equal(t, darkSquare, g.Cells[0].Bg)  // a8
	assert.Equal(t, lightSquare, g.Cells[1].Bg) // b8
	assert.Equal(t, lightSquare, g.Cells[8].Bg) // a7
	assert.Equal(t, darkSquare, g.Cells[9].Bg)  // b7
}

func TestLayout_Glyphs(t *testing.T) {
	s := game.NewGameState()

	g := Layout(s, 80, 24)

	assert.Equal(t, "♜  ", g.Cells[0].Text)  // black rook a8
	assert.Equal(t, "♞  ", g.Cells[1].Text)  // black knight b8
	assert.Equal(t, " ♙ ", g.Cells[52].Text) // white pawn e2
	assert.Equal(t, " ♔ ", g.Cells[60].Text) // white king e1
	assert.Equal(t, "   ", g.Cells[36].Text) // empty e4
}

func TestLayout_ReflectsAppliedUpdate(t *testing.T) {
	s := game.NewGameState()
	require.NoError(t, s.Apply(feed.PositionUpdate{
		PositionText: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b",
		LastMoveText: "e2e4",
		WhiteClock:   600,
		BlackClock:   600,
	}))

	g := Layout(s, 80, 24)

	assert.Equal(t, "   ", g.Cells[52].Text) // e2 vacated
	assert.Equal(t, " ♙ ", g.Cells[36].Text) // pawn on e4
}

func TestGlyph_UnknownKindIsBlank(t *testing.T) {
	assert.Equal(t, "   ", glyph(game.Piece{Kind: game.PieceKind(99), Color: color.White}))
	assert.Equal(t, "   ", glyph(game.Piece{}))
}
