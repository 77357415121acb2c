// Package dotrender renders a solved CFG as a Graphviz DOT digraph, for
// the "-c"/"-a" output mode of spec.md §6. No DOT/graphviz library turns
// up anywhere in the retrieved corpus, so this is hand-written string
// formatting rather than an adapted dependency; see DESIGN.md.
package dotrender

import (
	"fmt"
	"strings"

	"github.com/whileflow/whileflow/cfg"
	"github.com/whileflow/whileflow/lattice"
)

// Render emits a "digraph { ... }" block: one line per node (its kind
// plus pre/post annotation text, per L's Stringer) and one line per edge
// (True and False edges labeled "tt" and "ff", Plain edges unlabeled),
// matching the node/edge text
// original_source/src/cfg.rs's Display impls produce and the rendering
// contract spec.md §6 describes.
func Render[L fmt.Stringer](g *cfg.Graph[lattice.Annot[L]]) string {
	var b strings.Builder
	b.WriteString("digraph {\n")

	for i := 0; i < g.NodeCount(); i++ {
		id := cfg.NodeID(i)
		n := g.Nodes[i]
		a := g.Annot[i]
		label := fmt.Sprintf("%s\\npre: %s\\npost: %s", n.String(), a.Pre.String(), a.Post.String())
		fmt.Fprintf(&b, "  %d [label=%q];\n", id, label)
	}

	for i := 0; i < g.NodeCount(); i++ {
		id := cfg.NodeID(i)
		for _, e := range g.Successors(id) {
			if e.Label == cfg.Plain {
				fmt.Fprintf(&b, "  %d -> %d;\n", id, e.To)
			} else {
				fmt.Fprintf(&b, "  %d -> %d [label=%q];\n", id, e.To, e.Label.String())
			}
		}
	}

	b.WriteString("}\n")
	return b.String()
}
