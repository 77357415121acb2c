package availexp

import (
	"testing"

	"github.com/whileflow/whileflow/ast"
	"github.com/whileflow/whileflow/lower"
)

func TestBuildUniverseCollectsBranchAndAssignSubexprs(t *testing.T) {
	p := ast.Prog{
		ast.Assign{Var: "y", Expr: ast.Mul{Left: ast.Var{Name: "x"}, Right: ast.Var{Name: "x"}}},
		ast.While{
			Test: ast.LessEq{Left: ast.Var{Name: "y"}, Right: ast.Num{N: 10}},
			Body: ast.Prog{ast.Assign{Var: "y", Expr: ast.Add{Left: ast.Var{Name: "y"}, Right: ast.Num{N: 1}}}},
		},
	}
	g := lower.Lower(p)
	u := BuildUniverse(g)

	want := []string{"x*x", "x", "y", "10", "y + 1", "1"}
	for _, w := range want {
		found := false
		for i := 0; i < u.Len(); i++ {
			if u.At(uint(i)).String() == w {
				found = true
			}
		}
		if !found {
			t.Errorf("universe missing expression %q", w)
		}
	}
}

func TestSetJoinIsIntersection(t *testing.T) {
	u := &Universe{index: map[string]uint{}}
	a := ast.Num{N: 1}
	b := ast.Num{N: 2}
	u.exprs = []ast.AExp{a, b}
	u.index[a.String()] = 0
	u.index[b.String()] = 1

	s1 := u.Full()                      // {a, b}
	s2 := u.Empty().gen([]ast.AExp{a})  // {a}

	joined := s1.JoinBin(s2)
	if !joined.Contains(a) {
		t.Error("expected a to survive intersection")
	}
	if joined.Contains(b) {
		t.Error("did not expect b to survive intersection, since it's absent from s2")
	}
}
