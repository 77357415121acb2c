package ast

import "fmt"

// BExp is a boolean expression: LessEq, Neg, And, Or over AExp/BExp trees.
type BExp interface {
	fmt.Stringer
	isBExp()

	// SubExprs returns the arithmetic subexpressions occurring anywhere
	// in this boolean expression (the union of both operands' sets for
	// LessEq, and the recursive union for Neg/And/Or). And/Or collect
	// both sides regardless of short-circuiting, matching spec.md §4.6's
	// "And/Or are NOT short-circuit in the analyses" rule.
	SubExprs() []AExp
}

// LessEq is an arithmetic comparison: left <= right.
type LessEq struct{ Left, Right AExp }

// Neg is boolean negation: !b.
type Neg struct{ Operand BExp }

// And is boolean conjunction: left && right.
type And struct{ Left, Right BExp }

// Or is boolean disjunction: left || right.
type Or struct{ Left, Right BExp }

func (LessEq) isBExp() {}
func (Neg) isBExp()    {}
func (And) isBExp()    {}
func (Or) isBExp()     {}

func (b LessEq) String() string { return fmt.Sprintf("%s <= %s", b.Left, b.Right) }
func (b Neg) String() string    { return fmt.Sprintf("!%s", b.Operand) }
func (b And) String() string    { return fmt.Sprintf("%s && %s", b.Left, b.Right) }
func (b Or) String() string     { return fmt.Sprintf("%s || %s", b.Left, b.Right) }

func (b LessEq) SubExprs() []AExp {
	return unionExprsNoSelf(b.Left.SubExprs(), b.Right.SubExprs())
}

func (b Neg) SubExprs() []AExp { return b.Operand.SubExprs() }

func (b And) SubExprs() []AExp {
	return unionExprsNoSelf(b.Left.SubExprs(), b.Right.SubExprs())
}

func (b Or) SubExprs() []AExp {
	return unionExprsNoSelf(b.Left.SubExprs(), b.Right.SubExprs())
}

// unionExprsNoSelf merges AExp sets with no extra "self" element, since a
// BExp is not itself an AExp (unlike unionExprs, used by AExp.SubExprs).
func unionExprsNoSelf(sets ...[]AExp) []AExp {
	seen := make(map[string]bool)
	var result []AExp
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
