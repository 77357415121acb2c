package ast

import "testing"

func TestAExpString(t *testing.T) {
	cases := []struct {
		name string
		e    AExp
		want string
	}{
		{"num", Num{N: 3}, "3"},
		{"var", Var{Name: "x"}, "x"},
		{"add", Add{Left: Var{Name: "x"}, Right: Num{N: 1}}, "x + 1"},
		{"mul", Mul{Left: Var{Name: "x"}, Right: Num{N: 2}}, "x*2"},
		{
			"mul of add needs parens",
			Mul{Left: Add{Left: Var{Name: "x"}, Right: Num{N: 1}}, Right: Num{N: 2}},
			"(x + 1)*2",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.e.String(); got != c.want {
				t.Errorf("String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestAExpEqual(t *testing.T) {
	a := Add{Left: Var{Name: "x"}, Right: Num{N: 1}}
	b := Add{Left: Var{Name: "x"}, Right: Num{N: 1}}
	c := Add{Left: Num{N: 1}, Right: Var{Name: "x"}}

	if !a.Equal(b) {
		t.Error("expected structurally-equal Adds to compare equal")
	}
	if a.Equal(c) {
		t.Error("Equal should not be commutative: x+1 != 1+x")
	}
}

func TestAExpContainsVar(t *testing.T) {
	e := Add{Left: Mul{Left: Var{Name: "y"}, Right: Num{N: 2}}, Right: Var{Name: "x"}}
	if !e.ContainsVar("x") || !e.ContainsVar("y") {
		t.Fatal("expected both x and y to be found")
	}
	if e.ContainsVar("z") {
		t.Fatal("did not expect z to be found")
	}
}

func TestAExpSubExprsDedup(t *testing.T) {
	x := Var{Name: "x"}
	e := Add{Left: Mul{Left: x, Right: Num{N: 2}}, Right: Mul{Left: x, Right: Num{N: 2}}}
	subs := e.SubExprs()

	seen := make(map[string]int)
	for _, s := range subs {
		seen[s.String()]++
	}
	for k, n := range seen {
		if n != 1 {
			t.Errorf("subexpression %q appears %d times, want exactly 1", k, n)
		}
	}
	if seen["x*2"] == 0 {
		t.Error("expected x*2 to be a collected subexpression")
	}
	if seen[e.String()] == 0 {
		t.Error("expected the expression itself to be a member of its own SubExprs")
	}
}
