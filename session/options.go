package session

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/maze"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger routes lifecycle logs to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxWeight bounds the random edge weights used when building mazes.
func WithMaxWeight(w int) Option {
	return func(s *Session) {
		s.maxWeight = w
	}
}

// WithTraceSteps logs every expansion and discovery at Trace level.
func WithTraceSteps() Option {
	return func(s *Session) {
		s.trace = true
	}
}

func defaults() *Session {
	return &Session{
		log:       logrus.StandardLogger(),
		maxWeight: maze.DefaultMaxWeight,
	}
}
