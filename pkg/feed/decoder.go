package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vcostin/chesstv/internal/color"
)

// Decode failure classes. Every one of them means "skip this line";
// none of them may take down the pipeline.
var (
	ErrBadEncoding      = errors.New("feed: line is not valid UTF-8")
	ErrUnknownEventKind = errors.New("feed: unknown event kind")
	ErrMalformedPayload = errors.New("feed: malformed payload")
)

// Discriminator values the feed currently sends.
const (
	kindSummary = "featured"
	kindUpdate  = "fen"
)

// Decode parses a single stream line into an Event. It is a pure
// transform with no side effects. An unrecognized discriminator is an
// ErrUnknownEventKind so that future record kinds degrade to a skipped
// line instead of an outage.
func Decode(line []byte) (Event, error) {
	if !utf8.Valid(line) {
		return nil, ErrBadEncoding
	}

	var msg InboundMessage
	if err := json.Unmarshal(line, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	switch msg.T {
	case kindSummary:
		return decodeSummary(msg.D)
	case kindUpdate:
		return decodeUpdate(msg.D)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventKind, msg.T)
	}
}

func decodeSummary(raw json.RawMessage) (Event, error) {
	var p summaryPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	if p.ID == "" {
		return nil, fmt.Errorf("%w: summary without game id", ErrMalformedPayload)
	}
	if p.FEN == "" {
		return nil, fmt.Errorf("%w: summary without position text", ErrMalformedPayload)
	}

	orientation, err := color.Parse(p.Orientation)
	if err != nil {
		return nil, fmt.Errorf("%w: orientation: %v", ErrMalformedPayload, err)
	}

	roster := make([]PlayerInfo, 0, len(p.Players))
	for _, entry := range p.Players {
		c, err := color.Parse(entry.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: player color: %v", ErrMalformedPayload, err)
		}
		if entry.User.Name == "" {
			return nil, fmt.Errorf("%w: player without a name", ErrMalformedPayload)
		}
		if entry.Seconds < 0 {
			return nil, fmt.Errorf("%w: negative player clock", ErrMalformedPayload)
		}

		roster = append(roster, PlayerInfo{
			Color:   c,
			Name:    entry.User.Name,
			Title:   entry.User.Title,
			UserID:  entry.User.ID,
			Rating:  entry.Rating,
			Seconds: entry.Seconds,
		})
	}

	return GameSummary{
		ID:           p.ID,
		Orientation:  orientation,
		Roster:       roster,
		PositionText: p.FEN,
	}, nil
}

func decodeUpdate(raw json.RawMessage) (Event, error) {
	var p updatePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	if p.FEN == "" {
		return nil, fmt.Errorf("%w: update without position text", ErrMalformedPayload)
	}
	if p.WC == nil || p.BC == nil {
		return nil, fmt.Errorf("%w: update without clocks", ErrMalformedPayload)
	}
	if *p.WC < 0 || *p.BC < 0 {
		return nil, fmt.Errorf("%w: negative clock", ErrMalformedPayload)
	}

	return PositionUpdate{
		PositionText: p.FEN,
		LastMoveText: p.LM,
		WhiteClock:   *p.WC,
		BlackClock:   *p.BC,
	}, nil
}
