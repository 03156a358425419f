// Package generate: options, defaults, and the exhaustion error.
package generate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/powergraph/powergraph/assemble"
	"github.com/powergraph/powergraph/library"
	"github.com/powergraph/powergraph/search"
	"github.com/powergraph/powergraph/typeset"
)

// ErrExhausted classifies generation failure: the attempt ceiling was
// reached before n unique graphs were produced. Branch with
// errors.Is(err, ErrExhausted); the concrete *ExhaustedError carries the
// counts.
var ErrExhausted = errors.New("generate: attempt ceiling exhausted")

// ErrInvalidCount is returned when the requested unique-graph count is not
// positive.
var ErrInvalidCount = errors.New("generate: requested count must be positive")

// DefaultAttemptsPerGraph sets the attempt ceiling to 100·n when the caller
// does not override it; duplicates are common once most of the reachable
// structure space has been emitted, so the allowance is generous.
const DefaultAttemptsPerGraph = 100

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// ExhaustedError reports how far generation got before the ceiling.
type ExhaustedError struct {
	// Requested is the number of unique graphs asked for.
	Requested int

	// Produced is the number of unique graphs actually emitted.
	Produced int

	// Attempts is the ceiling that was exhausted.
	Attempts int
}

// Error implements error.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("generate: produced %d of %d unique graphs in %d attempts",
		e.Produced, e.Requested, e.Attempts)
}

// Unwrap lets errors.Is(err, ErrExhausted) match.
func (e *ExhaustedError) Unwrap() error {
	return ErrExhausted
}

// Acceptor is an optional post-assembly filter; graphs it rejects are
// discarded and retried without counting as duplicates.
type Acceptor func(*assemble.Graph) bool

// Option configures a Unique invocation.
type Option func(*Options)

// Options holds configurable parameters for one generation session.
type Options struct {
	// Ctx allows cancellation between attempts.
	Ctx context.Context

	// Rand seeds the per-attempt derived streams.
	Rand *rand.Rand

	// Start is the initial available-type multiset (defaults to empty:
	// universal zero-input nodes bootstrap the pipeline).
	Start typeset.Multiset

	// Goals are the acceptable end-type multisets. Defaults to exactly
	// one GameEffect, the standard library's sink.
	Goals []typeset.Multiset

	// Budget is forwarded to the search; nil keeps the search default.
	Budget search.Predicate

	// MaxDepth is forwarded to the search; zero keeps the search default.
	MaxDepth int

	// MaxAttempts caps the retry loop; zero means
	// DefaultAttemptsPerGraph · n.
	MaxAttempts int

	// Accept, if non-nil, filters assembled graphs before deduplication.
	Accept Acceptor
}

// DefaultOptions returns the Options used when no Option overrides them.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Rand:  rand.New(rand.NewSource(defaultSeed)),
		Start: typeset.New(),
		Goals: []typeset.Multiset{typeset.Of(library.TypeGameEffect)},
	}
}

// WithContext sets the context checked between attempts. A nil ctx is
// ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed seeds the session RNG. Seed 0 selects the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed == 0 {
			seed = defaultSeed
		}
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs an explicit session RNG; a nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithStart sets the initial available-type multiset.
func WithStart(m typeset.Multiset) Option {
	return func(o *Options) { o.Start = m }
}

// WithGoals sets the acceptable end-type multisets. An empty list is
// ignored.
func WithGoals(goals ...typeset.Multiset) Option {
	return func(o *Options) {
		if len(goals) > 0 {
			o.Goals = goals
		}
	}
}

// WithBudget forwards a budget predicate to the search.
func WithBudget(fn search.Predicate) Option {
	return func(o *Options) { o.Budget = fn }
}

// WithMaxLive is shorthand for a budget capping total live values at n.
func WithMaxLive(n int) Option {
	return WithBudget(func(m typeset.Multiset) bool { return m.Len() < n })
}

// WithMaxDepth forwards a sequence-length bound to the search.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithMaxAttempts caps the retry loop. Non-positive values are ignored.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxAttempts = n
		}
	}
}

// WithAccept installs a post-assembly acceptance predicate.
func WithAccept(fn Acceptor) Option {
	return func(o *Options) { o.Accept = fn }
}
