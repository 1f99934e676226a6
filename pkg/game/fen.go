package game

import (
	"errors"
	"strings"

	"github.com/corentings/chess/v2"

	"github.com/vcostin/chesstv/internal/color"
)

// completeFEN pads feed position text out to a full six-field FEN
// record. Summaries carry piece placement only and updates carry
// placement plus the side to move; the castling, en passant and move
// counter fields are never sent, so synthetic ones are appended before
// the text is handed to the notation parser. When the side to move is
// missing too, White is assumed.
func completeFEN(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}

	turn := "w"
	if len(fields) > 1 && (fields[1] == "w" || fields[1] == "b") {
		turn = fields[1]
	}

	return fields[0] + " " + turn + " - - 1 1"
}

// parsePosition delegates the padded position text to the notation
// parser and folds the result into FEN-ordered squares.
func parsePosition(text string) ([64]Piece, error) {
	var out [64]Piece

	fen := completeFEN(text)
	if fen == "" {
		return out, errors.New("empty position text")
	}

	opt, err := chess.FEN(fen)
	if err != nil {
		return out, err
	}

	board := chess.NewGame(opt).Position().Board()
	for i := range out {
		file := i % 8
		rank := 7 - i/8 // index 0 is a8
		piece := board.Piece(chess.Square(rank*8 + file))
		if piece == chess.NoPiece {
			continue
		}

		out[i] = Piece{Kind: kindOf(piece.Type()), Color: colorOf(piece.Color())}
	}

	return out, nil
}

func kindOf(t chess.PieceType) PieceKind {
	switch t {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	default:
		return NoKind
	}
}

func colorOf(c chess.Color) color.Color {
	if c == chess.White {
		return color.White
	}

	return color.Black
}
