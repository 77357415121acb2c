package dotrender

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/whileflow/whileflow/ast"
	"github.com/whileflow/whileflow/constprop"
	"github.com/whileflow/whileflow/lower"
	"github.com/whileflow/whileflow/solver"
)

func TestRenderProducesValidDigraphShape(t *testing.T) {
	p := ast.Prog{ast.Cond{
		Test: ast.LessEq{Left: ast.Var{Name: "x"}, Right: ast.Num{N: 0}},
		Then: ast.Prog{ast.Assign{Var: "z", Expr: ast.Num{N: 1}}},
		Else: ast.Prog{ast.Assign{Var: "z", Expr: ast.Num{N: 2}}},
	}}
	g := lower.Lower(p)
	solved := solver.Solve(g, constprop.Analysis{})

	out := Render(solved)
	assert.True(t, strings.HasPrefix(out, "digraph {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `label=`)
	assert.Contains(t, out, `label="tt"`, "expected the True branch edge to be labeled tt")
	assert.Contains(t, out, `label="ff"`, "expected the False branch edge to be labeled ff")

	// One "N [label=..." line per node.
	nodeLines := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "[label=") && !strings.Contains(line, "->") {
			nodeLines++
		}
	}
	assert.Equal(t, solved.NodeCount(), nodeLines)
}
