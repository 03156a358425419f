// Package search: options, defaults, and sentinel errors.
package search

import (
	"context"
	"errors"
	"math/rand"

	"github.com/powergraph/powergraph/typeset"
)

var (
	// ErrNilRegistry is returned when a nil *library.Registry is passed
	// to Search.
	ErrNilRegistry = errors.New("search: registry is nil")

	// ErrNoGoals is returned when the goal set is empty; an empty goal
	// set can never be satisfied and is always a caller mistake.
	ErrNoGoals = errors.New("search: no goal multisets given")

	// ErrUnreachableGoal indicates the search exhausted every state the
	// budget admits without reaching a goal. Recoverable: callers retry
	// with fresh randomization (see the generate package).
	ErrUnreachableGoal = errors.New("search: no goal state reachable under budget")
)

const (
	// DefaultMaxLive caps the total number of live (unconsumed) values a
	// state may hold; the default budget predicate prunes states at or
	// above it, which bounds branching and keeps graphs small.
	DefaultMaxLive = 4

	// DefaultMaxDepth bounds the length of the descriptor sequence. It
	// exists to terminate chains through self-feeding node types (an
	// output type that can reach its own input type), which the budget
	// alone does not cut off.
	DefaultMaxDepth = 16

	// DefaultMemoCapacity bounds the per-invocation memo table. Eviction
	// only costs re-exploration, never correctness.
	DefaultMemoCapacity = 4096

	// defaultSeed is the fixed seed used when callers pass seed==0,
	// keeping default runs reproducible.
	defaultSeed int64 = 1
)

// Predicate is the pluggable acceptance policy over candidate states: a
// successor state failing the predicate is pruned without expansion.
type Predicate func(typeset.Multiset) bool

// Option configures a Search invocation.
type Option func(*Options)

// Options holds configurable parameters for one Search call.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Rand drives candidate-order shuffling. Injectable for
	// reproducibility; nil means a deterministic default stream.
	Rand *rand.Rand

	// Budget prunes candidate states. Defaults to "fewer than
	// DefaultMaxLive live values".
	Budget Predicate

	// MaxDepth bounds the descriptor-sequence length (recursion depth).
	MaxDepth int

	// MemoCapacity bounds the exhausted-state memo table.
	MemoCapacity int
}

// DefaultOptions returns the Options used when no Option overrides them:
// background context, deterministic default RNG, live-value budget of
// DefaultMaxLive, depth DefaultMaxDepth, memo capacity DefaultMemoCapacity.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Rand:         rand.New(rand.NewSource(defaultSeed)),
		Budget:       func(m typeset.Multiset) bool { return m.Len() < DefaultMaxLive },
		MaxDepth:     DefaultMaxDepth,
		MemoCapacity: DefaultMemoCapacity,
	}
}

// WithContext sets the context used for cancellation checks. A nil ctx is
// ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed seeds the candidate-shuffling RNG. Seed 0 selects the fixed
// default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed == 0 {
			seed = defaultSeed
		}
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs an explicit RNG; it takes precedence over WithSeed.
// A nil r is ignored. The RNG must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithBudget installs the acceptance predicate over candidate states.
// A nil fn is ignored.
func WithBudget(fn Predicate) Option {
	return func(o *Options) {
		if fn != nil {
			o.Budget = fn
		}
	}
}

// WithMaxLive is shorthand for a budget capping total live values at n.
func WithMaxLive(n int) Option {
	return WithBudget(func(m typeset.Multiset) bool { return m.Len() < n })
}

// WithMaxDepth bounds the descriptor-sequence length. Non-positive limits
// are ignored.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit > 0 {
			o.MaxDepth = limit
		}
	}
}

// WithMemoCapacity bounds the memo table. Non-positive capacities are
// ignored.
func WithMemoCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MemoCapacity = n
		}
	}
}
