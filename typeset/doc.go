// Package typeset implements the type algebra underlying ability-graph
// synthesis: opaque type tags and multisets (bags) of them.
//
// A Multiset tracks how many values of each type are currently available
// (during search and assembly) or required (by a node descriptor). The
// package offers the small set of operations the rest of the module reasons
// with: subset tests, guarded subtraction, union, and a canonical string key
// used for memoization and goal matching.
//
// Invariants:
//   - Multiplicities are never negative; Subtract fails loudly instead of
//     going below zero.
//   - Key() is deterministic: equal multisets produce identical keys.
//
// Complexity: all operations are linear in the number of distinct types
// involved, except Key, which sorts distinct types (O(d log d)).
package typeset
