// Package search: the memoized depth-first reachability search.
package search

import (
	"fmt"
	"math/rand"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/powergraph/powergraph/library"
	"github.com/powergraph/powergraph/typeset"
)

// searcher encapsulates the state of one Search invocation.
type searcher struct {
	descs  []library.Descriptor // candidate node types, registration order
	goals  map[string]struct{}  // canonical keys of goal multisets
	opts   Options
	memo   *lru.Cache[string, struct{}] // states proven unable to reach a goal
	onPath map[string]struct{}          // states on the current DFS path
}

// Search returns one ordered sequence of node-type descriptors whose
// sequential application transforms start into one of the goal multisets,
// or ErrUnreachableGoal if no state within the budget reaches a goal.
//
// The memo table is scoped to this invocation and discarded afterwards;
// repeated calls with different goal sets can never observe stale results.
// Candidate descriptors are tried in an order shuffled by the injected RNG,
// so repeated calls with fresh seeds find diverse sequences.
func Search(reg *library.Registry, start typeset.Multiset, goals []typeset.Multiset, opts ...Option) ([]library.Descriptor, error) {
	// 1. Validate inputs
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}

	// 2. Resolve options
	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}

	// 3. Index goals by canonical key for O(1) matching
	goalKeys := make(map[string]struct{}, len(goals))
	for _, g := range goals {
		goalKeys[g.Key()] = struct{}{}
	}

	memo, err := lru.New[string, struct{}](sopts.MemoCapacity)
	if err != nil {
		return nil, fmt.Errorf("search: memo table: %w", err)
	}

	s := &searcher{
		descs:  reg.Descriptors(),
		goals:  goalKeys,
		opts:   sopts,
		memo:   memo,
		onPath: make(map[string]struct{}),
	}

	// 4. Depth-first search from the start state
	seq, _, err := s.dfs(start, 0)
	if err != nil {
		return nil, err
	}
	if seq == nil {
		return nil, ErrUnreachableGoal
	}

	return seq, nil
}

// dfs explores the state reached after depth descriptor applications.
//
// The returned sequence is non-nil iff a goal was reached (an empty non-nil
// sequence means state already is a goal). The clean flag reports whether
// exhaustion was intrinsic to the state: a subtree cut off by the depth
// limit or by an on-path revisit is not memoized as dead, because a
// different path could still succeed through it.
func (s *searcher) dfs(state typeset.Multiset, depth int) (seq []library.Descriptor, clean bool, err error) {
	// 1. Cancellation check
	select {
	case <-s.opts.Ctx.Done():
		return nil, false, s.opts.Ctx.Err()
	default:
	}

	key := state.Key()

	// 2. Goal reached: succeed immediately
	if _, isGoal := s.goals[key]; isGoal {
		return []library.Descriptor{}, true, nil
	}

	// 3. Known-dead state
	if s.memo.Contains(key) {
		return nil, true, nil
	}

	// 4. Cutoffs that depend on path context (never memoized)
	if depth >= s.opts.MaxDepth {
		return nil, false, nil
	}
	if _, on := s.onPath[key]; on {
		return nil, false, nil
	}
	s.onPath[key] = struct{}{}
	defer delete(s.onPath, key)

	// 5. Expand candidates in randomized order
	clean = true
	for _, idx := range s.perm() {
		d := s.descs[idx]

		inputs := d.InputSet()
		if !state.Contains(inputs) {
			continue
		}

		next, subErr := state.Subtract(inputs)
		if subErr != nil {
			// Unreachable: Contains guarded the subtraction.
			return nil, false, fmt.Errorf("search: apply %q: %w", d.Name, subErr)
		}
		next = next.Union(d.OutputSet())

		// Budget pruning is intrinsic to the candidate state, so it
		// does not taint memoization.
		if !s.opts.Budget(next) {
			continue
		}

		sub, subClean, dfsErr := s.dfs(next, depth+1)
		if dfsErr != nil {
			return nil, false, dfsErr
		}
		if sub != nil {
			return append([]library.Descriptor{d}, sub...), true, nil
		}
		if !subClean {
			clean = false
		}
	}

	// 6. Fully explored without success: memoize only intrinsic failures
	if clean {
		s.memo.Add(key, struct{}{})
	}

	return nil, clean, nil
}

// perm returns a shuffled permutation of candidate indices using the
// invocation RNG (Fisher–Yates).
// Complexity: O(len(descs)).
func (s *searcher) perm() []int {
	p := make([]int, len(s.descs))
	for i := range p {
		p[i] = i
	}
	shuffleInPlace(p, s.opts.Rand)

	return p
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// A nil rng falls back to the deterministic default stream.
func shuffleInPlace(a []int, rng *rand.Rand) {
	if len(a) <= 1 {
		return
	}

	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultSeed))
	}

	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
