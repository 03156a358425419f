// Package powergraph synthesizes directed acyclic "ability graphs" from a
// library of typed transformation nodes. Each node consumes a multiset of
// typed values and produces a multiset of typed values; a complete ability is
// a topologically ordered set of node instantiations that starts from
// designated source types and terminates in a designated sink type.
//
// The library is organized into small, single-concern packages:
//
//	typeset/     — the type-multiset algebra (subtract, union, subset tests)
//	library/     — node-type descriptors, optional-input expansion, registry
//	search/      — memoized reachability search over type-multiset states
//	assemble/    — binds a node-type sequence into a concrete graph
//	fingerprint/ — canonical structural hashing for deduplication
//	generate/    — the retry loop that collects structurally unique graphs
//	dot/         — Graphviz DOT text rendering of assembled graphs
//
// Data flow is unidirectional: search results feed assembly, assembled
// graphs feed hashing, and the generation driver keeps a graph only when its
// fingerprint has not been seen before. All core computation is synchronous,
// in-memory and deterministic for a fixed seed.
//
//	go get github.com/powergraph/powergraph
package powergraph
