// Package cfg implements the control-flow graph model of spec.md §3: a
// directed graph of annotated nodes and labeled edges, stored as an
// adjacency list keyed by stable integer node indices (NodeID), following
// the "stable integer node indices (preferred; indices survive mutation,
// avoid aliasing pitfalls during solving)" design note of spec.md §9.
//
// This generalizes the teacher's extras/cfg.go vertex/vMap design (which
// keys vertices by ast.Stmt, since it builds CFGs for Go source) to a
// slice-indexed graph generic over the node annotation type, matching
// original_source/src/cfg.rs's petgraph-backed Cfg<A>.
package cfg

import (
	"fmt"

	"github.com/whileflow/whileflow/ast"
)

// NodeID identifies a node by its position in a Graph's Nodes/Annot slices.
type NodeID int

// NodeKind distinguishes the five CFG node payload variants of spec.md §3.
type NodeKind int

const (
	KindInit NodeKind = iota
	KindTerminal
	KindSkip
	KindAssign
	KindBranch
)

func (k NodeKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindTerminal:
		return "terminal"
	case KindSkip:
		return "skip"
	case KindAssign:
		return "assign"
	case KindBranch:
		return "branch"
	default:
		return "unknown"
	}
}

// Node is a CFG node payload. Var/AExp are populated only for KindAssign;
// BExp only for KindBranch; all other fields are the zero value otherwise.
type Node struct {
	Kind NodeKind
	Var  ast.VarName
	AExp ast.AExp
	BExp ast.BExp
}

// String renders a node the way original_source/src/cfg.rs's "impl Display
// for Node" does: "init"/"terminal"/"skip" literally, "x := a" for
// assignments, and the guard expression alone for branches.
func (n Node) String() string {
	switch n.Kind {
	case KindInit:
		return "init"
	case KindTerminal:
		return "terminal"
	case KindSkip:
		return "skip"
	case KindAssign:
		return fmt.Sprintf("%s := %s", n.Var, n.AExp)
	case KindBranch:
		return n.BExp.String()
	default:
		return "?"
	}
}

// EdgeLabel distinguishes the three edge kinds of spec.md §3.
type EdgeLabel int

const (
	Plain EdgeLabel = iota
	True
	False
)

func (l EdgeLabel) String() string {
	switch l {
	case True:
		return "tt"
	case False:
		return "ff"
	default:
		return ""
	}
}

// Edge is a directed, labeled edge to node To.
type Edge struct {
	To    NodeID
	Label EdgeLabel
}

// Graph is a CFG: a set of annotated nodes plus labeled directed edges and
// a designated entry (Init). It is generic over the annotation type A, so
// the same graph shape serves both the unit-annotated graph lowering
// produces and the pre/post-annotated graph the solver produces.
type Graph[A any] struct {
	Nodes []Node
	Annot []A
	Init  NodeID

	succs [][]Edge
	preds [][]Edge
}

// NewGraph creates an empty graph. AddNode must be called at least once
// (for the Init node) before the graph is usable.
func NewGraph[A any]() *Graph[A] {
	return &Graph[A]{}
}

// AddNode appends a new node with the given payload and annotation,
// returning its stable NodeID.
func (g *Graph[A]) AddNode(n Node, annot A) NodeID {
	id := NodeID(len(g.Nodes))
	g.Nodes = append(g.Nodes, n)
	g.Annot = append(g.Annot, annot)
	g.succs = append(g.succs, nil)
	g.preds = append(g.preds, nil)
	return id
}

// AddEdge adds a directed edge from -> to, labeled label, recording it in
// both endpoints' adjacency so Predecessors/Successors are O(degree).
func (g *Graph[A]) AddEdge(from, to NodeID, label EdgeLabel) {
	g.succs[from] = append(g.succs[from], Edge{To: to, Label: label})
	g.preds[to] = append(g.preds[to], Edge{To: from, Label: label})
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph[A]) NodeCount() int { return len(g.Nodes) }

// Successors returns n's outgoing edges.
func (g *Graph[A]) Successors(n NodeID) []Edge { return g.succs[n] }

// Predecessors returns n's incoming edges.
func (g *Graph[A]) Predecessors(n NodeID) []Edge { return g.preds[n] }

// Map transforms a Graph[A] into a Graph[B] by applying f to every node's
// annotation, preserving node identity, payloads, and edges exactly.
// Mirrors original_source/src/cfg.rs's Cfg::map.
func Map[A, B any](g *Graph[A], f func(Node, A) B) *Graph[B] {
	out := &Graph[B]{
		Nodes: append([]Node(nil), g.Nodes...),
		Annot: make([]B, len(g.Annot)),
		Init:  g.Init,
		succs: make([][]Edge, len(g.succs)),
		preds: make([][]Edge, len(g.preds)),
	}
	for i := range g.Annot {
		out.Annot[i] = f(g.Nodes[i], g.Annot[i])
	}
	for i, es := range g.succs {
		out.succs[i] = append([]Edge(nil), es...)
	}
	for i, es := range g.preds {
		out.preds[i] = append([]Edge(nil), es...)
	}
	return out
}

// Validate checks the structural invariants of spec.md §3. It is used by
// tests to assert lowering's output directly, matching the explicit
// invariant-checking style of the teacher's extras/cfg/cfg_test.go.
func Validate[A any](g *Graph[A]) error {
	if g.NodeCount() == 0 {
		return fmt.Errorf("cfg: empty graph has no Init node")
	}
	if g.Nodes[g.Init].Kind != KindInit {
		return fmt.Errorf("cfg: node %d designated as Init has kind %v", g.Init, g.Nodes[g.Init].Kind)
	}
	if len(g.Predecessors(g.Init)) != 0 {
		return fmt.Errorf("cfg: Init node has %d incoming edges, want 0", len(g.Predecessors(g.Init)))
	}

	initCount := 0
	for i, n := range g.Nodes {
		id := NodeID(i)
		if n.Kind == KindInit {
			initCount++
		}
		if id != g.Init && n.Kind != KindInit {
			// Reachability from Init is not checked here (lowering
			// never produces unreachable nodes); every non-Init node
			// must simply have at least one predecessor recorded.
			if len(g.Predecessors(id)) == 0 {
				return fmt.Errorf("cfg: node %d (%v) has no predecessors", id, n.Kind)
			}
		}
		switch n.Kind {
		case KindBranch:
			var trues, falses, others int
			for _, e := range g.Successors(id) {
				switch e.Label {
				case True:
					trues++
				case False:
					falses++
				default:
					others++
				}
			}
			if trues != 1 || falses != 1 || others != 0 {
				return fmt.Errorf("cfg: branch node %d has %d true, %d false, %d plain out-edges, want 1/1/0", id, trues, falses, others)
			}
		case KindTerminal:
			if len(g.Successors(id)) != 0 {
				return fmt.Errorf("cfg: terminal node %d has outgoing edges", id)
			}
			fallthrough
		default:
			for _, e := range g.Successors(id) {
				if e.Label != Plain {
					return fmt.Errorf("cfg: non-branch node %d has a %v-labeled out-edge", id, e.Label)
				}
			}
		}
	}
	if initCount != 1 {
		return fmt.Errorf("cfg: graph has %d Init nodes, want exactly 1", initCount)
	}
	return nil
}
