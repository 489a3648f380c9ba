package mapper

import (
	"go.uber.org/zap"

	"schema-mapper/internal/match"
)

// Option configures a Schema at compile time.
type Option func(*config)

type config struct {
	logger    *zap.Logger
	suggest   bool
	threshold float64
}

func newConfig(opts []Option) config {
	cfg := config{
		logger:    zap.NewNop(),
		threshold: match.DefaultThreshold,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger sets the logger used for debug output. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}

		c.logger = l
	}
}

// WithSuggestions makes missing-property diagnostics carry the source keys
// that look like the missing field name.
func WithSuggestions(enabled bool) Option {
	return func(c *config) {
		c.suggest = enabled
	}
}

// WithSuggestionThreshold sets the minimum similarity, between 0 and 1, for
// a key to be suggested.
func WithSuggestionThreshold(threshold float64) Option {
	return func(c *config) {
		c.threshold = threshold
	}
}
