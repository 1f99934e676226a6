// Package stream delivers raw feed chunks to the pipeline over a
// long-lived connection.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ChunkHandler receives one raw stream chunk. Calls are strictly
// sequential; the next chunk is not read until the handler returns.
type ChunkHandler func(chunk []byte)

// Feed consumes the live TV stream. It is single-shot: when the stream
// drops, Run returns and reconnecting is the caller's concern.
type Feed struct {
	ID      uuid.UUID
	url     string
	handler ChunkHandler
	logger  *zap.Logger
}

// NewFeed creates a feed for the given URL. The stream id is only used
// to correlate log lines.
func NewFeed(rawURL string, handler ChunkHandler, logger *zap.Logger) *Feed {
	return &Feed{
		ID:      uuid.New(),
		url:     rawURL,
		handler: handler,
		logger:  logger,
	}
}

// Run connects and pumps chunks until the stream ends or ctx is
// canceled. The URL scheme selects the transport: ws/wss dial a
// websocket, anything else issues a streaming GET.
func (f *Feed) Run(ctx context.Context) error {
	u, err := url.Parse(f.url)
	if err != nil {
		return fmt.Errorf("stream: parse url: %w", err)
	}

	f.logger.Info("connecting to feed",
		zap.String("stream_id", f.ID.String()),
		zap.String("url", f.url),
	)

	switch u.Scheme {
	case "ws", "wss":
		return f.runWebsocket(ctx)
	default:
		return f.runHTTP(ctx)
	}
}

func (f *Feed) runHTTP(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return fmt.Errorf("stream: build request: %w", err)
	}

	// The default client carries no timeout, which is what a
	// long-lived streaming GET needs.
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("stream: connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stream: unexpected status %s", resp.Status)
	}

	buf := make([]byte, 4096)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			f.handler(buf[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				f.logger.Info("feed closed by server", zap.String("stream_id", f.ID.String()))
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("stream: read: %w", err)
		}
	}
}

func (f *Feed) runWebsocket(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, f.url, nil)
	if err != nil {
		return fmt.Errorf("stream: dial: %w", err)
	}
	defer conn.Close()

	// Unblock ReadMessage when the context is canceled.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				f.logger.Info("feed closed by server", zap.String("stream_id", f.ID.String()))
				return nil
			}
			return fmt.Errorf("stream: read: %w", err)
		}

		// We only handle text
		if msgType != websocket.TextMessage {
			continue
		}

		// One message is one record; the line assembler still wants
		// the newline terminator.
		if len(msg) == 0 || msg[len(msg)-1] != '\n' {
			msg = append(msg, '\n')
		}
		f.handler(msg)
	}
}
