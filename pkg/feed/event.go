package feed

import "github.com/vcostin/chesstv/internal/color"

// Event is one decoded stream record. Exactly two kinds exist on the
// feed: a summary announcing the featured game and a position update
// for the game in progress.
type Event interface {
	isEvent()
}

// PlayerInfo describes one side of the featured game. Values are
// immutable once decoded; a new summary replaces the roster wholesale.
type PlayerInfo struct {
	Color   color.Color
	Name    string
	Title   string
	UserID  string
	Rating  int
	Seconds int
}

// GameSummary carries the full context of a newly featured game.
type GameSummary struct {
	ID           string
	Orientation  color.Color
	Roster       []PlayerInfo
	PositionText string
}

// PositionUpdate carries a fresh position along with the last move
// played and both remaining clocks in seconds.
type PositionUpdate struct {
	PositionText string
	LastMoveText string
	WhiteClock   int
	BlackClock   int
}

func (GameSummary) isEvent()    {}
func (PositionUpdate) isEvent() {}
