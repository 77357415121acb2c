package ast

import "fmt"

// AExp is an arithmetic expression: a finite tree with leaves Num/Var and
// interior nodes Add/Mul. Value equality is structural, via Equal.
type AExp interface {
	fmt.Stringer
	isAExp()

	// Equal reports structural equality: same shape, same leaf values.
	// Commutativity is not exploited (a+b and b+a are distinct), matching
	// the expression-hashing note in spec.md §9.
	Equal(other AExp) bool

	// ContainsVar reports whether x occurs anywhere in the expression.
	ContainsVar(x VarName) bool

	// SubExprs returns the subexpression set of this expression: itself
	// plus, recursively, the subexpression sets of its children. The
	// result contains no two structurally-equal expressions.
	SubExprs() []AExp
}

// Num is an integer literal leaf.
type Num struct{ N int32 }

// Var is a variable reference leaf.
type Var struct{ Name VarName }

// Add is an addition of two arithmetic expressions.
type Add struct{ Left, Right AExp }

// Mul is a multiplication of two arithmetic expressions.
type Mul struct{ Left, Right AExp }

func (Num) isAExp() {}
func (Var) isAExp() {}
func (Add) isAExp() {}
func (Mul) isAExp() {}

func (n Num) String() string { return fmt.Sprintf("%d", n.N) }
func (v Var) String() string { return string(v.Name) }
func (a Add) String() string { return fmt.Sprintf("%s + %s", a.Left, a.Right) }

// String parenthesizes Add operands of a Mul, matching the canonical
// printer convention in original_source/src/aexp.rs (fmt_with_parens):
// addition binds looser than multiplication, so it needs parens when
// nested under a Mul.
func (m Mul) String() string {
	return fmt.Sprintf("%s*%s", parenIfAdd(m.Left), parenIfAdd(m.Right))
}

func parenIfAdd(a AExp) string {
	if _, ok := a.(Add); ok {
		return "(" + a.String() + ")"
	}
	return a.String()
}

func (n Num) Equal(other AExp) bool {
	o, ok := other.(Num)
	return ok && o.N == n.N
}

func (v Var) Equal(other AExp) bool {
	o, ok := other.(Var)
	return ok && o.Name == v.Name
}

func (a Add) Equal(other AExp) bool {
	o, ok := other.(Add)
	return ok && a.Left.Equal(o.Left) && a.Right.Equal(o.Right)
}

func (m Mul) Equal(other AExp) bool {
	o, ok := other.(Mul)
	return ok && m.Left.Equal(o.Left) && m.Right.Equal(o.Right)
}

func (Num) ContainsVar(VarName) bool { return false }
func (v Var) ContainsVar(x VarName) bool {
	return v.Name == x
}
func (a Add) ContainsVar(x VarName) bool {
	return a.Left.ContainsVar(x) || a.Right.ContainsVar(x)
}
func (m Mul) ContainsVar(x VarName) bool {
	return m.Left.ContainsVar(x) || m.Right.ContainsVar(x)
}

func (n Num) SubExprs() []AExp { return []AExp{n} }
func (v Var) SubExprs() []AExp { return []AExp{v} }

func (a Add) SubExprs() []AExp {
	return unionExprs(a, a.Left.SubExprs(), a.Right.SubExprs())
}

func (m Mul) SubExprs() []AExp {
	return unionExprs(m, m.Left.SubExprs(), m.Right.SubExprs())
}

// unionExprs builds self's subexpression set from its children's sets,
// deduplicating by string form. String keeps operand order, so "x + 1"
// and "1 + x" stay distinct; it does not parenthesize nested Add or Mul
// chains, so expressions differing only in associativity (x + (y + z)
// and (x + y) + z) share a key and are kept once.
func unionExprs(self AExp, sets ...[]AExp) []AExp {
	seen := make(map[string]bool, 1)
	result := []AExp{self}
	seen[self.String()] = true
	for _, set := range sets {
		for _, e := range set {
			key := e.String()
			if !seen[key] {
				seen[key] = true
				result = append(result, e)
			}
		}
	}
	return result
}
