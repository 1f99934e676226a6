// Package main is the entry point of the application
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vcostin/chesstv/pkg/config"
	"github.com/vcostin/chesstv/pkg/events"
	"github.com/vcostin/chesstv/pkg/game"
	"github.com/vcostin/chesstv/pkg/pipeline"
	"github.com/vcostin/chesstv/pkg/render"
	"github.com/vcostin/chesstv/pkg/stream"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	feedURL := flag.String("url", config.DefaultFeedURL, "feed url (http(s) or ws(s))")
	flag.Parse()

	// Initialize logger
	logger := initLogger(*debug)
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	cfg := &config.Config{
		Debug:   *debug,
		FeedURL: *feedURL,
	}
	if envURL := os.Getenv("FEED_URL"); envURL != "" {
		cfg.FeedURL = envURL
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("create screen error", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("init screen error", zap.Error(err))
	}

	// Initialize event publisher and the logging subscriber
	publisher := events.NewPublisher()
	subscribeLogging(publisher, logger)

	state := game.NewGameState()
	surface := render.NewScreenSurface(screen)
	pipe := pipeline.New(state, surface, publisher)

	// First frame from the default state, before the stream connects.
	pipe.Refresh()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go pollInput(screen, cancel)

	feed := stream.NewFeed(cfg.FeedURL, pipe.HandleChunk, logger)
	err = feed.Run(ctx)

	publisher.Publish(events.Event{Type: events.EventStreamClosed})
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("feed error", zap.Error(err))
	}
	logger.Info("feed finished")
}

func initLogger(debug bool) *zap.Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	return logger
}

// subscribeLogging reports pipeline events through the logger so the
// pipeline itself stays free of logging concerns.
func subscribeLogging(publisher *events.Publisher, logger *zap.Logger) {
	publisher.Subscribe(events.EventGameFeatured, func(ev events.Event) {
		logger.Info("game featured", zap.String("game_id", ev.GameID))
	})
	publisher.Subscribe(events.EventPositionApplied, func(ev events.Event) {
		logger.Debug("position applied", zap.Any("last_move", ev.Payload))
	})
	publisher.Subscribe(events.EventRecordSkipped, func(ev events.Event) {
		logger.Warn("record skipped", zap.Any("reason", ev.Payload))
	})
	publisher.Subscribe(events.EventFrameDropped, func(ev events.Event) {
		logger.Error("frame dropped", zap.Any("reason", ev.Payload))
	})
	publisher.Subscribe(events.EventStreamClosed, func(events.Event) {
		logger.Info("stream closed")
	})
}

// pollInput watches terminal events. Quit keys cancel the stream
// context; a resize just resyncs the screen, the next feed event
// redraws at the new size.
func pollInput(screen tcell.Screen, cancel context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			// Screen finalized.
			return
		}
	}
}
