package fingerprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powergraph/powergraph/assemble"
	"github.com/powergraph/powergraph/fingerprint"
	"github.com/powergraph/powergraph/library"
	"github.com/powergraph/powergraph/search"
	"github.com/powergraph/powergraph/typeset"
)

// chains returns descriptors for two independent typed chains X→FX and
// Y→FY, used to build structurally identical graphs in different arena
// orders.
func chains(t *testing.T) (srcX, srcY, fxX, fxY library.Descriptor) {
	t.Helper()
	reg, err := library.NewRegistry(
		library.Declaration{Name: "SrcX", Outputs: []typeset.Type{"X"}, Templates: []string{"x"}},
		library.Declaration{Name: "SrcY", Outputs: []typeset.Type{"Y"}, Templates: []string{"y"}},
		library.Declaration{Name: "FxX", Inputs: []typeset.Type{"X"}, Outputs: []typeset.Type{"GX"}, Templates: []string{"fx {0}"}},
		library.Declaration{Name: "FxY", Inputs: []typeset.Type{"Y"}, Outputs: []typeset.Type{"GY"}, Templates: []string{"fy {0}"}},
	)
	require.NoError(t, err)

	get := func(n string) library.Descriptor {
		d, ok := reg.Get(n)
		require.True(t, ok)
		return d
	}

	return get("SrcX"), get("SrcY"), get("FxX"), get("FxY")
}

func TestFingerprint_Stable(t *testing.T) {
	srcX, _, fxX, _ := chains(t)
	g, err := assemble.Assemble([]library.Descriptor{srcX, fxX})
	require.NoError(t, err)

	a := fingerprint.Fingerprint(g)
	b := fingerprint.Fingerprint(g)
	assert.Equal(t, a, b, "fingerprint must be stable across repeated computation")
	assert.Len(t, a.Hex(), 64)
}

func TestFingerprint_OrderInvariant(t *testing.T) {
	srcX, srcY, fxX, fxY := chains(t)

	// Same structure, two arena orders.
	g1, err := assemble.Assemble([]library.Descriptor{srcX, fxX, srcY, fxY})
	require.NoError(t, err)
	g2, err := assemble.Assemble([]library.Descriptor{srcY, fxY, srcX, fxX})
	require.NoError(t, err)

	assert.Equal(t, fingerprint.Fingerprint(g1), fingerprint.Fingerprint(g2))
}

func TestFingerprint_DistinguishesComposition(t *testing.T) {
	srcX, srcY, fxX, fxY := chains(t)

	g1, err := assemble.Assemble([]library.Descriptor{srcX, fxX})
	require.NoError(t, err)
	g2, err := assemble.Assemble([]library.Descriptor{srcY, fxY})
	require.NoError(t, err)

	assert.NotEqual(t, fingerprint.Fingerprint(g1), fingerprint.Fingerprint(g2))
}

func TestFingerprint_DistinguishesOutputPosition(t *testing.T) {
	// Pair produces two A values; which positional output feeds Use is a
	// genuine structural difference.
	reg, err := library.NewRegistry(
		library.Declaration{Name: "Pair", Outputs: []typeset.Type{"A", "A"}, Templates: []string{"first", "second"}},
		library.Declaration{Name: "Use", Inputs: []typeset.Type{"A"}, Outputs: []typeset.Type{"B"}, Templates: []string{"use {0}"}},
	)
	require.NoError(t, err)
	pair, _ := reg.Get("Pair")
	use, _ := reg.Get("Use")

	graphs, err := assemble.AssembleAll([]library.Descriptor{pair, use})
	require.NoError(t, err)
	require.Len(t, graphs, 2)

	assert.NotEqual(t,
		fingerprint.Fingerprint(graphs[0]),
		fingerprint.Fingerprint(graphs[1]))
}

func TestFingerprint_MergesInterchangeableBindings(t *testing.T) {
	// Two identical sources feeding two identical consumers: the two
	// exhaustive bindings are isomorphic up to relabeling and must
	// fingerprint identically.
	reg, err := library.NewRegistry(
		library.Declaration{Name: "Src", Outputs: []typeset.Type{"A"}, Templates: []string{"src"}},
		library.Declaration{Name: "Use", Inputs: []typeset.Type{"A"}, Outputs: []typeset.Type{"B"}, Templates: []string{"use {0}"}},
	)
	require.NoError(t, err)
	src, _ := reg.Get("Src")
	use, _ := reg.Get("Use")

	graphs, err := assemble.AssembleAll([]library.Descriptor{src, src, use, use})
	require.NoError(t, err)
	require.Len(t, graphs, 2)

	assert.Equal(t,
		fingerprint.Fingerprint(graphs[0]),
		fingerprint.Fingerprint(graphs[1]))
}

// TestFingerprint_EmpiricalCollisions samples many generated graphs and
// checks that graphs with different baked structure never share a digest.
func TestFingerprint_EmpiricalCollisions(t *testing.T) {
	reg := library.StandardRegistry()
	goals := []typeset.Multiset{typeset.Of(library.TypeGameEffect)}

	byDigest := make(map[fingerprint.Digest]string)
	for seed := int64(1); seed <= 100; seed++ {
		seq, err := search.Search(reg, typeset.New(), goals, search.WithSeed(seed))
		require.NoError(t, err)
		g, err := assemble.Assemble(seq, assemble.WithSeed(seed))
		require.NoError(t, err)
		g.Bake()

		d := fingerprint.Fingerprint(g)
		desc := g.Description(library.TypeGameEffect)
		if prev, seen := byDigest[d]; seen {
			assert.Equal(t, prev, desc,
				"digest collision between structurally different graphs")
		} else {
			byDigest[d] = desc
		}
	}
	assert.Greater(t, len(byDigest), 1)
}
