// Package lower translates a WHILE-language AST into a control-flow graph,
// implementing the loose-end continuation algorithm of spec.md §4.1.
//
// This generalizes the teacher's extras/cfg.go "builder" (whose edges
// field tracks the current block's dangling out-edges while traversing
// go/ast statements) to WHILE's Skip/Assign/Cond/While atoms, and mirrors
// original_source/src/cfg.rs's UntargEdge/ast_to_cfg_extend one-for-one.
package lower

import (
	"fmt"

	"github.com/whileflow/whileflow/ast"
	"github.com/whileflow/whileflow/cfg"
)

// looseEnd is a not-yet-targeted outgoing edge: (source node, edge label).
type looseEnd struct {
	node  cfg.NodeID
	label cfg.EdgeLabel
}

type builder struct {
	g *cfg.Graph[struct{}]
}

// Lower translates p into a Graph with unit (struct{}) annotations. A
// Terminal node is synthesized iff at least one True/False loose end
// remains dangling after lowering the outermost program; Plain loose
// ends are simply discarded, per spec.md §4.1.
func Lower(p ast.Prog) *cfg.Graph[struct{}] {
	g := cfg.NewGraph[struct{}]()
	g.Init = g.AddNode(cfg.Node{Kind: cfg.KindInit}, struct{}{})

	b := &builder{g: g}
	remaining := b.lowerProg(p, []looseEnd{{g.Init, cfg.Plain}})

	var danglers []looseEnd
	for _, e := range remaining {
		if e.label != cfg.Plain {
			danglers = append(danglers, e)
		}
	}
	if len(danglers) > 0 {
		terminal := g.AddNode(cfg.Node{Kind: cfg.KindTerminal}, struct{}{})
		for _, e := range danglers {
			g.AddEdge(e.node, terminal, e.label)
		}
	}
	return g
}

// lowerProg threads loose ends left to right through a sequence of atoms.
func (b *builder) lowerProg(p ast.Prog, ends []looseEnd) []looseEnd {
	cur := ends
	for _, atom := range p {
		cur = b.lowerAtom(atom, cur)
	}
	return cur
}

func (b *builder) lowerAtom(a ast.Atom, ends []looseEnd) []looseEnd {
	switch s := a.(type) {
	case ast.Skip:
		n := b.g.AddNode(cfg.Node{Kind: cfg.KindSkip}, struct{}{})
		b.wire(ends, n)
		return []looseEnd{{n, cfg.Plain}}

	case ast.Assign:
		n := b.g.AddNode(cfg.Node{Kind: cfg.KindAssign, Var: s.Var, AExp: s.Expr}, struct{}{})
		b.wire(ends, n)
		return []looseEnd{{n, cfg.Plain}}

	case ast.Cond:
		n := b.g.AddNode(cfg.Node{Kind: cfg.KindBranch, BExp: s.Test}, struct{}{})
		b.wire(ends, n)
		trueEnds := b.lowerProg(s.Then, []looseEnd{{n, cfg.True}})
		falseEnds := b.lowerProg(s.Else, []looseEnd{{n, cfg.False}})
		return append(trueEnds, falseEnds...)

	case ast.While:
		n := b.g.AddNode(cfg.Node{Kind: cfg.KindBranch, BExp: s.Test}, struct{}{})
		b.wire(ends, n)
		bodyEnds := b.lowerProg(s.Body, []looseEnd{{n, cfg.True}})
		// Close the cycle: wire the body's loose ends back to the branch.
		b.wire(bodyEnds, n)
		return []looseEnd{{n, cfg.False}}

	default:
		panic(fmt.Sprintf("lower: unrecognized atom type %T", a))
	}
}

// wire connects every loose end to node `to`, using the end's own label.
func (b *builder) wire(ends []looseEnd, to cfg.NodeID) {
	for _, e := range ends {
		b.g.AddEdge(e.node, to, e.label)
	}
}
