package library_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powergraph/powergraph/library"
	"github.com/powergraph/powergraph/typeset"
)

func TestExpand_NoOptionals(t *testing.T) {
	decl := library.Declaration{
		Name:      "Wall",
		Inputs:    []typeset.Type{"SimplePath"},
		Outputs:   []typeset.Type{"GameEffect"},
		Templates: []string{"A wall following {0}"},
	}

	ds := library.Expand(decl)
	require.Len(t, ds, 1)
	assert.Equal(t, "Wall", ds[0].Name)
	assert.Equal(t, "Wall", ds[0].Origin)
	assert.Equal(t, []typeset.Type{"SimplePath"}, ds[0].Inputs)
}

func TestExpand_TwoOptionals_PowerSet(t *testing.T) {
	decl := library.Declaration{
		Name:      "Burst",
		Inputs:    []typeset.Type{"Position"},
		Optional:  []typeset.Type{"float", "Direction"},
		Outputs:   []typeset.Type{"Area"},
		Templates: []string{"a burst at {0}"},
	}

	ds := library.Expand(decl)
	require.Len(t, ds, 4, "two optionals must expand into the full power set")

	// Arities: base+0, base+1, base+1, base+2.
	arities := []int{len(ds[0].Inputs), len(ds[1].Inputs), len(ds[2].Inputs), len(ds[3].Inputs)}
	assert.ElementsMatch(t, []int{1, 2, 2, 3}, arities)

	// Names are pairwise distinct and all trace back to the declaration.
	seen := make(map[string]bool)
	for _, d := range ds {
		assert.False(t, seen[d.Name], "duplicate expanded name %q", d.Name)
		seen[d.Name] = true
		assert.Equal(t, "Burst", d.Origin)
	}

	// Chosen optionals are appended after the declared inputs, in
	// declaration order.
	full := ds[3]
	assert.Equal(t, []typeset.Type{"Position", "float", "Direction"}, full.Inputs)
}

func TestExpand_DuplicateOptionalTypesStayDistinct(t *testing.T) {
	decl := library.Declaration{
		Name:      "Scale",
		Optional:  []typeset.Type{"float", "float"},
		Outputs:   []typeset.Type{"float"},
		Templates: []string{"scaled"},
	}

	ds := library.Expand(decl)
	require.Len(t, ds, 4)
	names := make(map[string]bool)
	for _, d := range ds {
		names[d.Name] = true
	}
	assert.Len(t, names, 4, "same-typed optional subsets must still get distinct names")
}

func TestNewRegistry_Valid(t *testing.T) {
	reg, err := library.NewRegistry(library.Standard()...)
	require.NoError(t, err)
	require.NoError(t, reg.Validate())

	// Standard has no optional inputs, so descriptors == declarations.
	assert.Equal(t, len(library.Standard()), reg.Len())

	d, ok := reg.Get("PositionToArea")
	require.True(t, ok)
	assert.Equal(t, []typeset.Type{"Position", "float"}, d.Inputs)
}

func TestNewRegistry_TemplateArityMismatch(t *testing.T) {
	_, err := library.NewRegistry(library.Declaration{
		Name:      "Broken",
		Outputs:   []typeset.Type{"A", "B"},
		Templates: []string{"only one"},
	})
	assert.ErrorIs(t, err, library.ErrValidation)
}

func TestNewRegistry_DuplicateDeclaration(t *testing.T) {
	decl := library.Declaration{
		Name:      "Dup",
		Outputs:   []typeset.Type{"A"},
		Templates: []string{"a"},
	}
	_, err := library.NewRegistry(decl, decl)
	assert.ErrorIs(t, err, library.ErrValidation)
}

func TestNewRegistry_EmptyName(t *testing.T) {
	_, err := library.NewRegistry(library.Declaration{
		Outputs:   []typeset.Type{"A"},
		Templates: []string{"a"},
	})
	assert.ErrorIs(t, err, library.ErrValidation)
}

func TestNewRegistry_EmptyType(t *testing.T) {
	_, err := library.NewRegistry(library.Declaration{
		Name:      "BadInput",
		Inputs:    []typeset.Type{""},
		Outputs:   []typeset.Type{"A"},
		Templates: []string{"a"},
	})
	assert.ErrorIs(t, err, library.ErrValidation)
}

func TestDescriptor_InputOutputSets(t *testing.T) {
	d := library.Descriptor{
		Name:    "N",
		Inputs:  []typeset.Type{"A", "A", "B"},
		Outputs: []typeset.Type{"C"},
	}
	assert.True(t, d.InputSet().Equal(typeset.Of("A", "A", "B")))
	assert.True(t, d.OutputSet().Equal(typeset.Of("C")))
}

const sampleYAML = `
nodes:
  - name: Source
    outputs: [A]
    templates: ["source"]
  - name: Sink
    inputs: [A]
    optional: [float]
    outputs: [GameEffect]
    templates: ["effect on {0}"]
`

func TestLoadYAML(t *testing.T) {
	reg, err := library.LoadYAML(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	// Source expands to 1 descriptor, Sink (one optional) to 2.
	assert.Equal(t, 3, reg.Len())

	d, ok := reg.Get("Source")
	require.True(t, ok)
	assert.Empty(t, d.Inputs)
	assert.Equal(t, []typeset.Type{"A"}, d.Outputs)
}

func TestLoadYAML_Malformed(t *testing.T) {
	_, err := library.LoadYAML(strings.NewReader("nodes: [not a map"))
	assert.Error(t, err)
}

func TestStandardRegistry(t *testing.T) {
	assert.NotPanics(t, func() {
		reg := library.StandardRegistry()
		assert.Greater(t, reg.Len(), 20)
	})
}
