package cfg

import "testing"

func straightLineGraph() *Graph[struct{}] {
	g := NewGraph[struct{}]()
	init := g.AddNode(Node{Kind: KindInit}, struct{}{})
	skip := g.AddNode(Node{Kind: KindSkip}, struct{}{})
	term := g.AddNode(Node{Kind: KindTerminal}, struct{}{})
	g.Init = init
	g.AddEdge(init, skip, Plain)
	g.AddEdge(skip, term, Plain)
	return g
}

func TestValidateAcceptsStraightLine(t *testing.T) {
	g := straightLineGraph()
	if err := Validate(g); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsMissingInit(t *testing.T) {
	g := NewGraph[struct{}]()
	g.AddNode(Node{Kind: KindSkip}, struct{}{})
	if err := Validate(g); err == nil {
		t.Fatal("expected Validate to reject a graph whose Init node is not KindInit")
	}
}

func TestValidateRejectsIncomingEdgeToInit(t *testing.T) {
	g := straightLineGraph()
	g.AddEdge(1, g.Init, Plain)
	if err := Validate(g); err == nil {
		t.Fatal("expected Validate to reject an edge into Init")
	}
}

func TestValidateChecksBranchOutDegree(t *testing.T) {
	g := NewGraph[struct{}]()
	init := g.AddNode(Node{Kind: KindInit}, struct{}{})
	branch := g.AddNode(Node{Kind: KindBranch}, struct{}{})
	term := g.AddNode(Node{Kind: KindTerminal}, struct{}{})
	g.Init = init
	g.AddEdge(init, branch, Plain)
	g.AddEdge(branch, term, True) // missing the False edge
	if err := Validate(g); err == nil {
		t.Fatal("expected Validate to reject a branch node missing its False edge")
	}
}

func TestValidateRejectsUnreachableNode(t *testing.T) {
	g := NewGraph[struct{}]()
	init := g.AddNode(Node{Kind: KindInit}, struct{}{})
	g.AddNode(Node{Kind: KindSkip}, struct{}{}) // no predecessors
	g.Init = init
	if err := Validate(g); err == nil {
		t.Fatal("expected Validate to reject a node with no predecessors")
	}
}

func TestMapPreservesShape(t *testing.T) {
	g := straightLineGraph()
	out := Map(g, func(n Node, _ struct{}) string { return n.Kind.String() })

	if out.NodeCount() != g.NodeCount() {
		t.Fatalf("NodeCount() = %d, want %d", out.NodeCount(), g.NodeCount())
	}
	if out.Init != g.Init {
		t.Fatalf("Init = %d, want %d", out.Init, g.Init)
	}
	for i := 0; i < g.NodeCount(); i++ {
		id := NodeID(i)
		if out.Annot[id] != g.Nodes[id].Kind.String() {
			t.Errorf("node %d annotation = %q, want %q", id, out.Annot[id], g.Nodes[id].Kind.String())
		}
		if len(out.Successors(id)) != len(g.Successors(id)) {
			t.Errorf("node %d successor count = %d, want %d", id, len(out.Successors(id)), len(g.Successors(id)))
		}
	}
}
