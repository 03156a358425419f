// Package assemble: the description bake pass.
package assemble

import (
	"strconv"
	"strings"

	"github.com/powergraph/powergraph/typeset"
)

// Bake fills in every output value's description by substituting its
// instance's argument descriptions into the matching template, walking the
// arena in creation order. Creation order is topological, so every upstream
// value is baked before it is referenced; the pass is idempotent because a
// baked description is a pure function of the (already final) argument
// descriptions.
// Complexity: O(total template length).
func (g *Graph) Bake() {
	for _, inst := range g.nodes {
		argDescs := make([]string, len(inst.Args))
		for i, v := range inst.Args {
			argDescs[i] = v.Description
		}
		for i, out := range inst.Outs {
			out.Description = expandTemplate(inst.Desc.Templates[i], argDescs)
		}
	}
}

// Description joins the descriptions of every sink-typed output in arena
// order, the graph's human-readable summary. Call Bake first; unbaked
// graphs summarize as "uninitialized".
func (g *Graph) Description(sink typeset.Type) string {
	var parts []string
	for _, inst := range g.nodes {
		for _, out := range inst.Outs {
			if out.Type == sink {
				parts = append(parts, out.Description)
			}
		}
	}

	return strings.Join(parts, ". ")
}

// expandTemplate substitutes positional slots {0}, {1}, … with the matching
// argument description. A slot addressing a position beyond the bound
// arguments (an optional input that was not chosen) expands to the empty
// string. Malformed braces are passed through verbatim.
func expandTemplate(tmpl string, args []string) string {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}

		end := strings.IndexByte(tmpl[i:], '}')
		if end < 0 {
			b.WriteString(tmpl[i:])
			break
		}

		idx, err := strconv.Atoi(tmpl[i+1 : i+end])
		if err != nil || idx < 0 {
			// Not a positional slot; emit verbatim.
			b.WriteString(tmpl[i : i+end+1])
		} else if idx < len(args) {
			b.WriteString(args[idx])
		}
		i += end + 1
	}

	return b.String()
}
