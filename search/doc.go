// Package search discovers valid topologically-ordered node-type sequences
// by depth-first search over "available type multiset" states.
//
// From a state, a descriptor is addable iff its required-input multiset is
// contained in the state; applying it transitions to
// (state − inputs) ∪ outputs. The search succeeds the instant a state equals
// one of the goal multisets, prunes branches whose successor state fails the
// budget predicate, and memoizes exhausted states so each is fully explored
// at most once. The memo lives for exactly one Search call — stale entries
// can never leak across differing goal sets — and is capacity-bounded, so
// memory stays fixed even for generous budgets.
//
// Candidate descriptors are tried in an order shuffled by the injected RNG,
// which is what diversifies the sequences found across repeated invocations;
// a fixed seed reproduces the same sequence.
//
// Complexity: bounded by the number of distinct multiset states the budget
// admits; each state expands every registry descriptor once.
package search
