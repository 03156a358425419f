// Package typeset: Type and Multiset primitives.
//
// This file declares the Type tag, the Multiset container, and its algebra.
package typeset

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// ErrNegativeMultiplicity is returned by Subtract when the receiver does not
// contain the subtrahend; callers must guard subtraction with Contains.
var ErrNegativeMultiplicity = errors.New("typeset: subtraction would produce a negative multiplicity")

// Type is an opaque, equality-comparable tag denoting a category of value
// flowing between nodes (e.g. "Position", "Damage", "GameEffect"). Types
// carry no internal structure; they are compared only for identity.
type Type string

// Multiset is an unordered collection of Types with multiplicity. The zero
// value is not usable; construct with New, Of or FromSlice. Stored
// multiplicities are always strictly positive: removing the last occurrence
// of a type deletes its entry, so Equal and Key never see zero counts.
type Multiset struct {
	counts map[Type]int
}

// New returns an empty Multiset.
// Complexity: O(1).
func New() Multiset {
	return Multiset{counts: make(map[Type]int)}
}

// Of returns a Multiset containing each given type once per occurrence.
// Complexity: O(len(types)).
func Of(types ...Type) Multiset {
	m := New()
	for _, t := range types {
		m.Add(t)
	}

	return m
}

// FromSlice is an alias of Of for callers holding a slice.
func FromSlice(types []Type) Multiset {
	return Of(types...)
}

// Add inserts one occurrence of t.
func (m Multiset) Add(t Type) {
	m.counts[t]++
}

// Remove deletes one occurrence of t. Removing a type that is not present is
// a no-op; multiplicities never go negative.
func (m Multiset) Remove(t Type) {
	if m.counts[t] <= 1 {
		delete(m.counts, t)
		return
	}
	m.counts[t]--
}

// Count reports the multiplicity of t.
func (m Multiset) Count(t Type) int {
	return m.counts[t]
}

// Len reports the total multiplicity across all types (the number of live
// values a state of this multiset represents).
func (m Multiset) Len() int {
	n := 0
	for _, c := range m.counts {
		n += c
	}

	return n
}

// Distinct reports the number of distinct types present.
func (m Multiset) Distinct() int {
	return len(m.counts)
}

// Empty reports whether the multiset holds no values.
func (m Multiset) Empty() bool {
	return len(m.counts) == 0
}

// Contains reports whether other is a sub-multiset of m (for every type,
// other's multiplicity does not exceed m's). This is the guard required
// before Subtract.
// Complexity: O(distinct types in other).
func (m Multiset) Contains(other Multiset) bool {
	for t, c := range other.counts {
		if m.counts[t] < c {
			return false
		}
	}

	return true
}

// Subtract returns a new Multiset equal to m minus other. It returns
// ErrNegativeMultiplicity if other is not contained in m; m is never
// modified.
// Complexity: O(distinct types in m + other).
func (m Multiset) Subtract(other Multiset) (Multiset, error) {
	if !m.Contains(other) {
		return Multiset{}, ErrNegativeMultiplicity
	}

	out := m.Clone()
	for t, c := range other.counts {
		rem := out.counts[t] - c
		if rem == 0 {
			delete(out.counts, t)
		} else {
			out.counts[t] = rem
		}
	}

	return out, nil
}

// Union returns a new Multiset with the summed multiplicities of m and
// other. Neither operand is modified.
// Complexity: O(distinct types in m + other).
func (m Multiset) Union(other Multiset) Multiset {
	out := m.Clone()
	for t, c := range other.counts {
		out.counts[t] += c
	}

	return out
}

// Clone returns an independent copy of m.
func (m Multiset) Clone() Multiset {
	out := Multiset{counts: make(map[Type]int, len(m.counts))}
	for t, c := range m.counts {
		out.counts[t] = c
	}

	return out
}

// Equal reports whether m and other hold exactly the same types with the
// same multiplicities.
func (m Multiset) Equal(other Multiset) bool {
	if len(m.counts) != len(other.counts) {
		return false
	}
	for t, c := range m.counts {
		if other.counts[t] != c {
			return false
		}
	}

	return true
}

// Key returns a canonical, deterministic string encoding of m: distinct
// types sorted lexicographically, each followed by its multiplicity.
// Equal multisets produce identical keys, so Key is safe as a memoization
// map key and for goal matching.
// Complexity: O(d log d) for d distinct types.
func (m Multiset) Key() string {
	if len(m.counts) == 0 {
		return ""
	}

	types := make([]string, 0, len(m.counts))
	for t := range m.counts {
		types = append(types, string(t))
	}
	sort.Strings(types)

	var b strings.Builder
	for i, t := range types {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(t)
		b.WriteByte('x')
		b.WriteString(strconv.Itoa(m.counts[Type(t)]))
	}

	return b.String()
}

// Types returns the distinct types present, sorted for determinism.
func (m Multiset) Types() []Type {
	out := make([]Type, 0, len(m.counts))
	for t := range m.counts {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// String renders the multiset in a human-readable form, e.g.
// "{Damage, Position, Position}".
func (m Multiset) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for _, t := range m.Types() {
		for i := 0; i < m.counts[t]; i++ {
			if !first {
				b.WriteString(", ")
			}
			b.WriteString(string(t))
			first = false
		}
	}
	b.WriteByte('}')

	return b.String()
}
