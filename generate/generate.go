// Package generate: the unique-graph generation loop.
package generate

import (
	"errors"

	"github.com/google/uuid"

	"github.com/powergraph/powergraph/assemble"
	"github.com/powergraph/powergraph/fingerprint"
	"github.com/powergraph/powergraph/library"
	"github.com/powergraph/powergraph/search"
)

// Unique collects exactly n graphs with pairwise-distinct fingerprints from
// reg, baked and tagged with fresh IDs. It returns an *ExhaustedError (also
// matching ErrExhausted) together with the graphs produced so far when the
// attempt ceiling is reached first.
//
// Search exhaustion (search.ErrUnreachableGoal) consumes an attempt and is
// retried with a fresh derived RNG stream; any other error aborts
// immediately.
func Unique(reg *library.Registry, n int, opts ...Option) ([]*assemble.Graph, error) {
	if n <= 0 {
		return nil, ErrInvalidCount
	}

	gopts := DefaultOptions()
	for _, fn := range opts {
		fn(&gopts)
	}

	maxAttempts := gopts.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = DefaultAttemptsPerGraph * n
	}

	searchOpts := func(attempt uint64) []search.Option {
		so := []search.Option{search.WithContext(gopts.Ctx), search.WithRand(deriveRNG(gopts.Rand, attempt))}
		if gopts.Budget != nil {
			so = append(so, search.WithBudget(gopts.Budget))
		}
		if gopts.MaxDepth > 0 {
			so = append(so, search.WithMaxDepth(gopts.MaxDepth))
		}

		return so
	}

	var (
		out  []*assemble.Graph
		seen = make(map[fingerprint.Digest]struct{}, n)
	)

	for attempt := 0; attempt < maxAttempts && len(out) < n; attempt++ {
		// Cancellation between attempts.
		select {
		case <-gopts.Ctx.Done():
			return out, gopts.Ctx.Err()
		default:
		}

		seq, err := search.Search(reg, gopts.Start, gopts.Goals, searchOpts(uint64(attempt))...)
		if errors.Is(err, search.ErrUnreachableGoal) {
			continue // routine: retry with fresh randomization
		}
		if err != nil {
			return out, err
		}

		g, err := assemble.Assemble(seq, assemble.WithRand(deriveRNG(gopts.Rand, uint64(attempt))))
		if err != nil {
			// Invariant violation: the search/assembler contract broke.
			// Never retried.
			return out, err
		}
		g.Bake()

		if gopts.Accept != nil && !gopts.Accept(g) {
			continue
		}

		d := fingerprint.Fingerprint(g)
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}

		g.ID = uuid.NewString()
		out = append(out, g)
	}

	if len(out) < n {
		return out, &ExhaustedError{Requested: n, Produced: len(out), Attempts: maxAttempts}
	}

	return out, nil
}
