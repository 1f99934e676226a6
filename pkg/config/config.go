// Package config holds the runtime configuration for the viewer.
package config

// DefaultFeedURL is the public lichess TV endpoint.
const DefaultFeedURL = "https://lichess.org/api/tv/feed"

// Config encapsulates the programwide settings.
type Config struct {
	Debug   bool
	FeedURL string
}
