// Package game holds the reconciled state of the featured game.
package game

import (
	"errors"
	"fmt"

	"github.com/vcostin/chesstv/internal/color"
	"github.com/vcostin/chesstv/pkg/feed"
)

// ErrBadPosition reports position text the notation parser rejected.
// It should be rare and points at an upstream contract violation.
var ErrBadPosition = errors.New("game: bad position text")

// startingFEN is the standard initial position, used before any stream
// event has arrived so the first frame is well-formed.
const startingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// PieceKind enumerates the chess piece kinds.
type PieceKind int

// All piece kinds. NoKind is the zero value and marks an empty square.
const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is one occupant of a board square. The zero value means the
// square is empty.
type Piece struct {
	Kind  PieceKind
	Color color.Color
}

// Empty reports whether the square holds no piece.
func (p Piece) Empty() bool { return p.Kind == NoKind }

// GameState is the reconciled view of the featured game. Squares are
// indexed in FEN order: 0 is a8, 7 is h8, 56 is a1, 63 is h1.
//
// A single instance is owned by the render pipeline and mutated only
// through Apply, strictly in stream arrival order, so no locking is
// needed. Orientation is tracked but the board is currently always
// drawn from White's side; see board.Layout.
type GameState struct {
	position    [64]Piece
	orientation color.Color
	roster      []feed.PlayerInfo
	lastMove    string
	whiteClock  int
	blackClock  int
}

// NewGameState returns a state holding the standard starting position
// with White orientation, an empty roster and zeroed clocks.
func NewGameState() *GameState {
	pos, err := parsePosition(startingFEN)
	if err != nil {
		panic("game: starting position failed to parse: " + err.Error())
	}

	return &GameState{
		position:    pos,
		orientation: color.White,
	}
}

// Apply reconciles one decoded event into the state. On any error the
// state is left exactly as it was; a summary replaces position,
// orientation and roster together or not at all.
func (s *GameState) Apply(ev feed.Event) error {
	switch e := ev.(type) {
	case feed.GameSummary:
		pos, err := parsePosition(e.PositionText)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadPosition, err)
		}

		s.position = pos
		s.orientation = e.Orientation
		s.roster = append([]feed.PlayerInfo(nil), e.Roster...)
		return nil

	case feed.PositionUpdate:
		pos, err := parsePosition(e.PositionText)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadPosition, err)
		}

		s.position = pos
		s.lastMove = e.LastMoveText
		s.whiteClock = e.WhiteClock
		s.blackClock = e.BlackClock
		return nil

	default:
		return fmt.Errorf("game: unsupported event %T", ev)
	}
}

// Position returns the 64 squares in FEN order.
func (s *GameState) Position() [64]Piece { return s.position }

// Orientation returns which color's back rank belongs at the bottom.
func (s *GameState) Orientation() color.Color { return s.orientation }

// Roster returns the current players, empty until a summary arrives.
func (s *GameState) Roster() []feed.PlayerInfo {
	return append([]feed.PlayerInfo(nil), s.roster...)
}

// LastMove returns the last move notation, empty until an update arrives.
func (s *GameState) LastMove() string { return s.lastMove }

// WhiteClock returns White's remaining seconds.
func (s *GameState) WhiteClock() int { return s.whiteClock }

// BlackClock returns Black's remaining seconds.
func (s *GameState) BlackClock() int { return s.blackClock }
