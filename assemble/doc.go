// Package assemble turns an ordered node-type sequence into concrete bound
// graphs.
//
// The assembler processes descriptors in sequence order, maintaining a pool
// of unused typed values. For each required input, in declared order, it
// selects and removes one matching unused value — a random single choice in
// Sample mode (Assemble), or a branch over every available choice in
// Exhaustive mode (AssembleAll). Instances live in an append-only arena;
// every value records the index of its producing instance and its position
// among that instance's outputs, so the result is a DAG by construction and
// needs no runtime cycle detection.
//
// A sequence produced by the search package always has at least one unused
// value per required type at every step; ErrArgumentBinding is raised
// defensively if that invariant is ever violated, and signals a programming
// defect in the search/assembler contract rather than a retriable condition.
//
// After assembly, Graph.Bake fills in human-readable descriptions in one
// pass over the arena, substituting each instance's argument descriptions
// into its output templates. Baking is idempotent.
package assemble
