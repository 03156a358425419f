// Package assemble: graph data model, options, and sentinel errors.
package assemble

import (
	"errors"
	"math/rand"

	"github.com/powergraph/powergraph/library"
	"github.com/powergraph/powergraph/typeset"
)

// ErrArgumentBinding indicates the assembler could not find an unused value
// of a required type even though the sequence was supposed to be valid.
// This is a fatal internal-consistency error (the search and assembler have
// diverged on the type algebra); it must never be silently retried.
var ErrArgumentBinding = errors.New("assemble: no unused value of required type")

// uninitialized is the description every value carries until Bake runs.
const uninitialized = "uninitialized"

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// TypedValue is one runtime value flowing between node instances. It is
// produced by exactly one instance and consumed by at most one downstream
// instance. Fields are set at assembly time and read-only afterwards,
// except Description, which the bake pass fills in.
type TypedValue struct {
	// Type tags the value's category.
	Type typeset.Type

	// Description is the human-readable rendering, "uninitialized" until
	// the graph is baked.
	Description string

	// SourceIndex is the arena index of the producing NodeInstance.
	SourceIndex int

	// OutputIndex is this value's position among its source's outputs.
	OutputIndex int
}

// NodeInstance is one concrete, bound application of a node type. Args and
// Outs are fixed at construction; Outs' descriptions change only during the
// bake pass.
type NodeInstance struct {
	// Desc is the node type this instance applies.
	Desc library.Descriptor

	// Args are the bound argument values, ordered per Desc.Inputs.
	Args []*TypedValue

	// Outs are the produced values, ordered per Desc.Outputs.
	Outs []*TypedValue
}

// Wiring is one (destination instance, argument index, source instance)
// triple; external collaborators (rendering, diagnostics) enumerate graphs
// through it.
type Wiring struct {
	// Dst is the arena index of the consuming instance.
	Dst int

	// Arg is the argument position within the consuming instance.
	Arg int

	// Src is the arena index of the producing instance.
	Src int
}

// Graph is a complete assembled ability: an arena of node instances whose
// argument/source references form a DAG. The arena order is the assembly
// (topological) order. The Graph exclusively owns its instances and,
// transitively, all their values.
type Graph struct {
	// ID is an external identity tag; the generation driver stamps one
	// on every emitted graph. Empty for graphs assembled directly.
	ID string

	nodes []*NodeInstance
}

// Nodes returns the instances in arena (topological) order. The slice is a
// copy; the instances are shared.
func (g *Graph) Nodes() []*NodeInstance {
	return append([]*NodeInstance(nil), g.nodes...)
}

// Node returns the instance at arena index i.
func (g *Graph) Node(i int) *NodeInstance {
	return g.nodes[i]
}

// Len reports the number of node instances.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Wirings enumerates every bound argument as a (Dst, Arg, Src) triple, in
// arena order then argument order. The iteration order is stable for a
// given graph.
// Complexity: O(total bound arguments).
func (g *Graph) Wirings() []Wiring {
	var out []Wiring
	for dst, inst := range g.nodes {
		for argIdx, v := range inst.Args {
			out = append(out, Wiring{Dst: dst, Arg: argIdx, Src: v.SourceIndex})
		}
	}

	return out
}

// Option configures an Assemble invocation.
type Option func(*Options)

// Options holds configurable parameters for Sample-mode assembly.
type Options struct {
	// Rand drives argument selection. Injectable for reproducibility;
	// nil means a deterministic default stream.
	Rand *rand.Rand
}

// DefaultOptions returns the Options used when no Option overrides them.
func DefaultOptions() Options {
	return Options{Rand: rand.New(rand.NewSource(defaultSeed))}
}

// WithSeed seeds the argument-selection RNG. Seed 0 selects the fixed
// default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed == 0 {
			seed = defaultSeed
		}
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs an explicit RNG; a nil r is ignored. The RNG must not
// be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
