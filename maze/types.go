package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Sentinel errors for maze construction and validation.
var (
	// ErrOptionViolation indicates an invalid builder Option.
	ErrOptionViolation = errors.New("maze: invalid option supplied")

	// ErrNotAdjacent indicates an edge whose endpoints are not grid neighbors.
	ErrNotAdjacent = errors.New("maze: edge endpoints are not adjacent")

	// ErrEdgeCount indicates a maze whose edge count is not W·H−1.
	ErrEdgeCount = errors.New("maze: spanning tree must have W*H-1 edges")

	// ErrDisconnected indicates a vertex unreachable from the start.
	ErrDisconnected = errors.New("maze: graph is disconnected")

	// ErrCycle indicates a maze containing a cycle.
	ErrCycle = errors.New("maze: graph contains a cycle")
)

// DefaultMaxWeight bounds candidate edge weights to [0, DefaultMaxWeight).
const DefaultMaxWeight = 1000

// Options configures Build.
type Options struct {
	// Rand supplies candidate weights. Nil means a time-seeded source.
	Rand *rand.Rand

	// MaxWeight is the exclusive upper bound of candidate weights.
	MaxWeight int

	// internal error recorded during option parsing
	err error
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a nil Rand (seeded lazily from the
// clock) and MaxWeight = DefaultMaxWeight.
func DefaultOptions() Options {
	return Options{MaxWeight: DefaultMaxWeight}
}

// WithRand uses r for candidate weights. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed uses a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithMaxWeight sets the exclusive weight bound; w must be positive.
func WithMaxWeight(w int) Option {
	return func(o *Options) {
		if w <= 0 {
			o.err = fmt.Errorf("%w: MaxWeight must be positive (%d)", ErrOptionViolation, w)
			return
		}
		o.MaxWeight = w
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o, nil
}
