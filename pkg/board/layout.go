// Package board maps a game position onto a grid of drawable cells.
package board

import (
	"github.com/vcostin/chesstv/internal/color"
	"github.com/vcostin/chesstv/pkg/game"
)

// RGB is a 24-bit background color for one cell.
type RGB struct {
	R, G, B int32
}

// The two square colors of the upstream palette.
var (
	darkSquare  = RGB{R: 195, G: 160, B: 130}
	lightSquare = RGB{R: 242, G: 225, B: 195}
)

// Cell places one three-column square at an absolute screen coordinate.
type Cell struct {
	Col, Row int
	Text     string
	Bg       RGB
}

// Grid is one full board frame. It is recomputed from scratch on every
// pass and never mutated in place, so no stale cells survive between
// frames.
type Grid struct {
	Cells [64]Cell
}

const (
	cellWidth  = 3
	halfWidth  = 12 // 8 files * 3 columns / 2
	halfHeight = 4
)

// Layout maps the 64-square position onto screen cells, centered in a
// width x height region. The board is always drawn from White's side;
// orientation is tracked on the state but not used to flip the ranks
// yet.
func Layout(state *game.GameState, width, height int) Grid {
	position := state.Position()

	originCol := width/2 - halfWidth
	originRow := height/2 - halfHeight

	var g Grid
	for i, piece := range position {
		file := i % 8
		rank := i / 8 // 0 is the top row, Black's back rank

		bg := lightSquare
		if (file+rank)%2 == 0 {
			bg = darkSquare
		}

		g.Cells[i] = Cell{
			Col:  originCol + file*cellWidth,
			Row:  originRow + rank,
			Text: glyph(piece),
			Bg:   bg,
		}
	}

	return g
}

// glyph renders one square as exactly three columns. White pieces get
// a leading blank so they sit centered; the black glyphs render wider
// in most terminal fonts and get two trailing blanks instead. Kinds
// the layout does not know draw as an empty square.
func glyph(p game.Piece) string {
	white := p.Color == color.White

	switch p.Kind {
	case game.Pawn:
		if white {
			return " ♙ "
		}
		return "♟  "
	case game.Knight:
		if white {
			return " ♘ "
		}
		return "♞  "
	case game.Bishop:
		if white {
			return " ♗ "
		}
		return "♝  "
	case game.Rook:
		if white {
			return " ♖ "
		}
		return "♜  "
	case game.Queen:
		if white {
			return " ♕ "
		}
		return "♛  "
	case game.King:
		if white {
			return " ♔ "
		}
		return "♚  "
	default:
		return "   "
	}
}
