package game

import (
	"log/slog"

	"github.com/luca-patrignani/card-ecs/rng"
)

type option func(Session) Session

// WithLogger sets the logger every session action is reported to.
func WithLogger(logger *slog.Logger) option {
	return func(s Session) Session {
		s.logger = logger
		return s
	}
}

// WithSource overrides the random source chosen from the config seed.
func WithSource(src rng.Source) option {
	return func(s Session) Session {
		s.src = src
		return s
	}
}

// WithRoundIDs replaces the uuid generator used to name rounds.
func WithRoundIDs(next func() string) option {
	return func(s Session) Session {
		s.nextRoundID = next
		return s
	}
}
