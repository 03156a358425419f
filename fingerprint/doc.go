// Package fingerprint computes canonical structural hashes of assembled
// graphs, so that repeated randomized generation can detect and discard
// structural duplicates.
//
// The digest is invariant under reordering of the graph's instance arena
// and under any relabeling of internal identities, and varies with any
// difference in node-type composition or wiring topology. Each instance
// hashes its node-type name together with an order-sensitive hash of its
// bound arguments; each argument hashes its positional index among its
// source's outputs together with the source instance's own hash. The top
// level sorts the per-instance digests bytewise before combining, which is
// order-independent and resolves ties between same-typed instances through
// their upstream structure.
//
// Per-instance digests are memoized within one computation, keeping cost
// linear in graph size despite shared substructure.
package fingerprint
