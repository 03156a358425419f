// Package library: the YAML node-type schema.
//
// The schema is the external authoring surface for node libraries:
//
//	nodes:
//	  - name: PositionToArea
//	    inputs: [Position, float]
//	    optional: []
//	    outputs: [Area]
//	    templates: ["a circle centered on {0} with radius {1}"]
//
// Parsing only shapes the data; all semantic checks run in NewRegistry.
package library

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/powergraph/powergraph/typeset"
)

// schemaFile mirrors the YAML document root.
type schemaFile struct {
	Nodes []schemaNode `yaml:"nodes"`
}

// schemaNode mirrors one node-type entry.
type schemaNode struct {
	Name      string   `yaml:"name"`
	Inputs    []string `yaml:"inputs"`
	Optional  []string `yaml:"optional"`
	Outputs   []string `yaml:"outputs"`
	Templates []string `yaml:"templates"`
}

// ParseYAML decodes a node-library document into declarations. It reports
// decoding problems only; semantic validation happens at registry
// construction.
func ParseYAML(data []byte) ([]Declaration, error) {
	var f schemaFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("library: decode schema: %w", err)
	}

	decls := make([]Declaration, 0, len(f.Nodes))
	for _, n := range f.Nodes {
		decls = append(decls, Declaration{
			Name:      n.Name,
			Inputs:    toTypes(n.Inputs),
			Optional:  toTypes(n.Optional),
			Outputs:   toTypes(n.Outputs),
			Templates: append([]string(nil), n.Templates...),
		})
	}

	return decls, nil
}

// LoadYAML reads a node-library document from r and builds a validated
// registry from it.
func LoadYAML(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("library: read schema: %w", err)
	}

	decls, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}

	return NewRegistry(decls...)
}

func toTypes(names []string) []typeset.Type {
	if len(names) == 0 {
		return nil
	}
	out := make([]typeset.Type, len(names))
	for i, n := range names {
		out[i] = typeset.Type(n)
	}

	return out
}
