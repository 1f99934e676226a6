// Package pipeline runs the per-chunk reducer: assemble lines, decode
// events, apply them to the game state and repaint the board.
package pipeline

import (
	"github.com/vcostin/chesstv/pkg/board"
	"github.com/vcostin/chesstv/pkg/events"
	"github.com/vcostin/chesstv/pkg/feed"
	"github.com/vcostin/chesstv/pkg/game"
	"github.com/vcostin/chesstv/pkg/render"
)

// Pipeline owns the line assembler and the single GameState instance.
// The transport read loop calls HandleChunk strictly sequentially, so
// nothing here needs locking.
type Pipeline struct {
	assembler *feed.LineAssembler
	state     *game.GameState
	surface   render.Surface
	publisher *events.Publisher
}

// New wires a pipeline around state, surface and publisher.
func New(state *game.GameState, surface render.Surface, publisher *events.Publisher) *Pipeline {
	return &Pipeline{
		assembler: &feed.LineAssembler{},
		state:     state,
		surface:   surface,
		publisher: publisher,
	}
}

// HandleChunk runs decode→apply→layout→render for every complete line
// in the chunk. Decode and apply failures skip that one record; a
// render failure drops the frame. None of them escape this call.
func (p *Pipeline) HandleChunk(chunk []byte) {
	for _, line := range p.assembler.Push(chunk) {
		ev, err := feed.Decode(line)
		if err != nil {
			p.publisher.Publish(events.Event{
				Type:    events.EventRecordSkipped,
				Payload: err.Error(),
			})
			continue
		}

		if err := p.state.Apply(ev); err != nil {
			p.publisher.Publish(events.Event{
				Type:    events.EventRecordSkipped,
				Payload: err.Error(),
			})
			continue
		}

		switch e := ev.(type) {
		case feed.GameSummary:
			p.publisher.Publish(events.Event{
				Type:   events.EventGameFeatured,
				GameID: e.ID,
			})
		case feed.PositionUpdate:
			p.publisher.Publish(events.Event{
				Type:    events.EventPositionApplied,
				Payload: e.LastMoveText,
			})
		}

		p.Refresh()
	}
}

// Refresh repaints the board from the current state at the current
// surface size. Called once at startup for the initial frame and after
// every applied event.
func (p *Pipeline) Refresh() {
	width, height := p.surface.Size()
	grid := board.Layout(p.state, width, height)

	if err := render.Render(grid, p.surface); err != nil {
		p.publisher.Publish(events.Event{
			Type:    events.EventFrameDropped,
			Payload: err.Error(),
		})
	}
}
