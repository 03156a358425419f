// Package library: Declaration, Descriptor, and optional-input expansion.
package library

import (
	"strconv"
	"strings"

	"github.com/powergraph/powergraph/typeset"
)

// Declaration is the authoring form of a node type, before optional-input
// expansion. All slices are ordered; order defines argument position.
type Declaration struct {
	// Name identifies the declaration; expanded descriptor names derive
	// from it and must stay unique registry-wide.
	Name string

	// Inputs are the always-required input types, in argument order.
	Inputs []typeset.Type

	// Optional are input types that each expanded descriptor may or may
	// not require; every subset yields one concrete descriptor.
	Optional []typeset.Type

	// Outputs are the produced types, in output order.
	Outputs []typeset.Type

	// Templates hold one description template per output. Positional
	// slots {0}, {1}, … refer to the bound arguments' descriptions; a
	// slot addressing an optional input that was not chosen bakes to the
	// empty string.
	Templates []string
}

// Descriptor is a concrete, fully-expanded node type: its Inputs list
// already includes any chosen optional inputs. Descriptors are immutable
// after registration; treat all fields as read-only.
type Descriptor struct {
	// Name uniquely identifies the descriptor in its registry. Expanded
	// siblings carry a "+opt…" suffix derived from the chosen subset.
	Name string

	// Inputs is the fixed required-input type list (declared inputs
	// followed by the chosen optional subset, declaration order).
	Inputs []typeset.Type

	// Outputs is the produced type list.
	Outputs []typeset.Type

	// Templates mirrors the declaration's templates (one per output).
	Templates []string

	// Origin is the name of the declaration this descriptor expanded
	// from; the registry self-check keys on it.
	Origin string
}

// InputSet returns the descriptor's required inputs as a multiset.
// Complexity: O(len(Inputs)).
func (d Descriptor) InputSet() typeset.Multiset {
	return typeset.FromSlice(d.Inputs)
}

// OutputSet returns the descriptor's outputs as a multiset.
// Complexity: O(len(Outputs)).
func (d Descriptor) OutputSet() typeset.Multiset {
	return typeset.FromSlice(d.Outputs)
}

// Expand enumerates every subset of decl's optional inputs exactly once, in
// a deterministic order (bitmask order over the optional list), and returns
// one concrete Descriptor per subset. The empty subset keeps the declared
// name; non-empty subsets append "+opt<i>:<type>" per chosen optional
// (1-based position), which keeps siblings distinct even when two optional
// slots share a type.
// Complexity: O(2^len(Optional) · len(Inputs)).
func Expand(decl Declaration) []Descriptor {
	n := len(decl.Optional)
	out := make([]Descriptor, 0, 1<<n)

	for mask := 0; mask < 1<<n; mask++ {
		inputs := make([]typeset.Type, 0, len(decl.Inputs)+n)
		inputs = append(inputs, decl.Inputs...)

		var suffix strings.Builder
		for bit := 0; bit < n; bit++ {
			if mask&(1<<bit) == 0 {
				continue
			}
			inputs = append(inputs, decl.Optional[bit])
			suffix.WriteString("+opt")
			suffix.WriteString(strconv.Itoa(bit + 1))
			suffix.WriteByte(':')
			suffix.WriteString(string(decl.Optional[bit]))
		}

		out = append(out, Descriptor{
			Name:      decl.Name + suffix.String(),
			Inputs:    inputs,
			Outputs:   append([]typeset.Type(nil), decl.Outputs...),
			Templates: append([]string(nil), decl.Templates...),
			Origin:    decl.Name,
		})
	}

	return out
}
