// Package assemble: Sample-mode and Exhaustive-mode graph construction.
package assemble

import (
	"fmt"

	"github.com/powergraph/powergraph/library"
	"github.com/powergraph/powergraph/typeset"
)

// Assemble binds seq into one concrete graph (Sample mode): each required
// input is bound to one uniformly chosen unused value of its type. The
// sequence must be sequentially applicable (as guaranteed by the search
// package); ErrArgumentBinding is returned if it is not.
// Complexity: O(n·p) for n total inputs and pool size p.
func Assemble(seq []library.Descriptor, opts ...Option) (*Graph, error) {
	aopts := DefaultOptions()
	for _, fn := range opts {
		fn(&aopts)
	}

	g := &Graph{}
	var pool []*TypedValue // unused values, production order

	for _, d := range seq {
		args := make([]*TypedValue, 0, len(d.Inputs))
		for argIdx, want := range d.Inputs {
			// Collect candidate pool positions of the wanted type.
			var cands []int
			for i, v := range pool {
				if v.Type == want {
					cands = append(cands, i)
				}
			}
			if len(cands) == 0 {
				return nil, fmt.Errorf("assemble: %q argument %d (%s): %w",
					d.Name, argIdx, want, ErrArgumentBinding)
			}

			pick := cands[aopts.Rand.Intn(len(cands))]
			args = append(args, pool[pick])
			// Remove the bound value; order-preserving removal keeps
			// selection reproducible for a fixed seed.
			pool = append(pool[:pick], pool[pick+1:]...)
		}

		pool = append(pool, g.appendInstance(d, args)...)
	}

	return g, nil
}

// AssembleAll enumerates every concrete graph seq admits (Exhaustive mode),
// branching over each distinct choice of same-typed unused values. This is
// combinatorially necessary: a state with two interchangeable same-typed
// values underdetermines which one a later node binds to. Structural
// duplicates among the results are resolved by fingerprinting, not here.
// Complexity: exponential in the number of interchangeable choices.
func AssembleAll(seq []library.Descriptor) ([]*Graph, error) {
	// valueRef names a produced value symbolically: instance index in the
	// (future) arena plus output position. Enumeration works on refs and
	// only materializes full graphs at the leaves, so branches can never
	// alias each other's instances.
	type valueRef struct {
		step, out int
		t         typeset.Type
	}

	var (
		out     []*Graph
		choices = make([][]valueRef, len(seq)) // bound refs per step
	)

	// materialize builds one concrete graph from the current choices.
	materialize := func() *Graph {
		g := &Graph{}
		for i, d := range seq {
			args := make([]*TypedValue, 0, len(d.Inputs))
			for _, ref := range choices[i] {
				args = append(args, g.nodes[ref.step].Outs[ref.out])
			}
			g.appendInstance(d, args)
		}

		return g
	}

	// step advances to the next descriptor; bindArg picks pool values for
	// one descriptor's inputs in declared order.
	var step func(i int, pool []valueRef) error
	var bindArg func(i, argIdx int, pool []valueRef, bound []valueRef) error

	bindArg = func(i, argIdx int, pool []valueRef, bound []valueRef) error {
		d := seq[i]
		if argIdx == len(d.Inputs) {
			choices[i] = append([]valueRef(nil), bound...)
			next := pool
			for outIdx, t := range d.Outputs {
				next = append(next, valueRef{step: i, out: outIdx, t: t})
			}

			return step(i+1, next)
		}

		want := d.Inputs[argIdx]
		found := false
		for p, ref := range pool {
			if ref.t != want {
				continue
			}
			found = true
			rest := make([]valueRef, 0, len(pool)-1)
			rest = append(rest, pool[:p]...)
			rest = append(rest, pool[p+1:]...)
			if err := bindArg(i, argIdx+1, rest, append(bound, ref)); err != nil {
				return err
			}
		}
		if !found {
			return fmt.Errorf("assemble: %q argument %d (%s): %w",
				d.Name, argIdx, want, ErrArgumentBinding)
		}

		return nil
	}

	step = func(i int, pool []valueRef) error {
		if i == len(seq) {
			out = append(out, materialize())
			return nil
		}

		return bindArg(i, 0, pool, nil)
	}

	if err := step(0, nil); err != nil {
		return nil, err
	}

	return out, nil
}

// appendInstance adds one instance to the arena and returns its freshly
// allocated outputs.
func (g *Graph) appendInstance(d library.Descriptor, args []*TypedValue) []*TypedValue {
	idx := len(g.nodes)
	inst := &NodeInstance{Desc: d, Args: args}
	inst.Outs = make([]*TypedValue, len(d.Outputs))
	for outIdx, t := range d.Outputs {
		inst.Outs[outIdx] = &TypedValue{
			Type:        t,
			Description: uninitialized,
			SourceIndex: idx,
			OutputIndex: outIdx,
		}
	}
	g.nodes = append(g.nodes, inst)

	return inst.Outs
}
