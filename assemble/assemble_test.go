package assemble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powergraph/powergraph/assemble"
	"github.com/powergraph/powergraph/library"
	"github.com/powergraph/powergraph/search"
	"github.com/powergraph/powergraph/typeset"
)

// pipeline returns the two-descriptor source→sink sequence used across
// these tests: SourceA produces one A, SinkB consumes it into a B.
func pipeline(t *testing.T) []library.Descriptor {
	t.Helper()
	reg, err := library.NewRegistry(
		library.Declaration{
			Name:      "SourceA",
			Outputs:   []typeset.Type{"A"},
			Templates: []string{"source"},
		},
		library.Declaration{
			Name:      "SinkB",
			Inputs:    []typeset.Type{"A"},
			Outputs:   []typeset.Type{"B"},
			Templates: []string{"effect on {0}"},
		},
	)
	require.NoError(t, err)

	src, ok := reg.Get("SourceA")
	require.True(t, ok)
	sink, ok := reg.Get("SinkB")
	require.True(t, ok)

	return []library.Descriptor{src, sink}
}

func TestAssemble_TwoNodePipeline(t *testing.T) {
	g, err := assemble.Assemble(pipeline(t))
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())

	// The sink's argument is the source's output.
	sink := g.Node(1)
	require.Len(t, sink.Args, 1)
	assert.Equal(t, 0, sink.Args[0].SourceIndex)
	assert.Equal(t, 0, sink.Args[0].OutputIndex)
	assert.Equal(t, typeset.Type("A"), sink.Args[0].Type)

	// Unbaked values read "uninitialized".
	assert.Equal(t, "uninitialized", sink.Outs[0].Description)

	g.Bake()
	assert.Equal(t, "source", g.Node(0).Outs[0].Description)
	assert.Equal(t, "effect on source", sink.Outs[0].Description)
	assert.Equal(t, "effect on source", g.Description("B"))
}

func TestBake_Idempotent(t *testing.T) {
	g, err := assemble.Assemble(pipeline(t))
	require.NoError(t, err)

	g.Bake()
	first := g.Description("B")
	g.Bake()
	assert.Equal(t, first, g.Description("B"))
}

func TestAssemble_InvalidSequence(t *testing.T) {
	seq := pipeline(t)
	// Sink first: nothing in the pool produces an A yet.
	_, err := assemble.Assemble([]library.Descriptor{seq[1], seq[0]})
	assert.ErrorIs(t, err, assemble.ErrArgumentBinding)
}

func TestAssemble_EmptySequence(t *testing.T) {
	g, err := assemble.Assemble(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Wirings())
}

func TestAssemble_SeedReproducible(t *testing.T) {
	// Two same-typed sources, two consumers: the binding is a coin flip,
	// so equal seeds must agree.
	reg, err := library.NewRegistry(
		library.Declaration{Name: "Src", Outputs: []typeset.Type{"A"}, Templates: []string{"src"}},
		library.Declaration{Name: "Use", Inputs: []typeset.Type{"A"}, Outputs: []typeset.Type{"B"}, Templates: []string{"use {0}"}},
	)
	require.NoError(t, err)
	src, _ := reg.Get("Src")
	use, _ := reg.Get("Use")
	seq := []library.Descriptor{src, src, use, use}

	a, err := assemble.Assemble(seq, assemble.WithSeed(7))
	require.NoError(t, err)
	b, err := assemble.Assemble(seq, assemble.WithSeed(7))
	require.NoError(t, err)

	for _, w := range a.Wirings() {
		assert.Contains(t, b.Wirings(), w)
	}
}

func TestAssembleAll_EnumeratesBindings(t *testing.T) {
	// Two interchangeable A values feeding two consumers: 2 bindings for
	// the first consumer × 1 remaining = 2 distinct graphs.
	reg, err := library.NewRegistry(
		library.Declaration{Name: "Src", Outputs: []typeset.Type{"A"}, Templates: []string{"src"}},
		library.Declaration{Name: "Use", Inputs: []typeset.Type{"A"}, Outputs: []typeset.Type{"B"}, Templates: []string{"use {0}"}},
	)
	require.NoError(t, err)
	src, _ := reg.Get("Src")
	use, _ := reg.Get("Use")

	graphs, err := assemble.AssembleAll([]library.Descriptor{src, src, use, use})
	require.NoError(t, err)
	assert.Len(t, graphs, 2)

	// Each graph owns its own instances; no aliasing across branches.
	assert.NotSame(t, graphs[0].Node(0), graphs[1].Node(0))
}

func TestAssembleAll_SingleBinding(t *testing.T) {
	graphs, err := assemble.AssembleAll(pipeline(t))
	require.NoError(t, err)
	require.Len(t, graphs, 1)
	assert.Equal(t, 2, graphs[0].Len())
}

func TestAssembleAll_InvalidSequence(t *testing.T) {
	seq := pipeline(t)
	_, err := assemble.AssembleAll([]library.Descriptor{seq[1]})
	assert.ErrorIs(t, err, assemble.ErrArgumentBinding)
}

func TestWirings_StableTriples(t *testing.T) {
	g, err := assemble.Assemble(pipeline(t))
	require.NoError(t, err)

	w := g.Wirings()
	require.Len(t, w, 1)
	assert.Equal(t, assemble.Wiring{Dst: 1, Arg: 0, Src: 0}, w[0])
	assert.Equal(t, w, g.Wirings(), "enumeration must be stable")
}

// TestSearchOutputAlwaysAssembles is the type-soundness property: sequences
// returned by the search never trigger ErrArgumentBinding.
func TestSearchOutputAlwaysAssembles(t *testing.T) {
	reg := library.StandardRegistry()
	goals := []typeset.Multiset{typeset.Of(library.TypeGameEffect)}

	for seed := int64(1); seed <= 50; seed++ {
		seq, err := search.Search(reg, typeset.New(), goals, search.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)

		g, err := assemble.Assemble(seq, assemble.WithSeed(seed))
		require.NoError(t, err, "seed %d: search output must always assemble", seed)
		require.Equal(t, len(seq), g.Len())

		g.Bake()
		desc := g.Description(library.TypeGameEffect)
		assert.NotEmpty(t, desc)
		assert.NotContains(t, desc, "uninitialized", "seed %d: bake must reach every sink", seed)
	}
}
