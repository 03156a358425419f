// Package dot renders assembled graphs as Graphviz DOT text.
//
// The renderer is a pure formatting pass over Graph.Wirings(): one DOT node
// per instance (named "<descriptor>#<arena index>", so same-typed instances
// stay distinct), one labelled edge per bound argument, carrying the moved
// value's type. Output is deterministic for a given graph; nothing is
// executed or written to disk here — callers decide what to do with the
// text.
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/powergraph/powergraph/assemble"
)

// Render returns the DOT document for g.
// Complexity: O(instances + bound arguments).
func Render(g *assemble.Graph) string {
	var b strings.Builder
	_ = Write(&b, g)

	return b.String()
}

// Write streams the DOT document for g to w.
func Write(w io.Writer, g *assemble.Graph) error {
	if _, err := io.WriteString(w, "digraph ability {\n\tnode [shape=box];\n"); err != nil {
		return err
	}

	nodes := g.Nodes()
	for i, inst := range nodes {
		if _, err := fmt.Fprintf(w, "\t%q;\n", nodeName(inst, i)); err != nil {
			return err
		}
	}

	for _, wiring := range g.Wirings() {
		src := nodes[wiring.Src]
		dst := nodes[wiring.Dst]
		label := dst.Args[wiring.Arg].Type
		if _, err := fmt.Fprintf(w, "\t%q -> %q [label=%q];\n",
			nodeName(src, wiring.Src), nodeName(dst, wiring.Dst), string(label)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "}\n")

	return err
}

func nodeName(inst *assemble.NodeInstance, idx int) string {
	return fmt.Sprintf("%s#%d", inst.Desc.Name, idx)
}
