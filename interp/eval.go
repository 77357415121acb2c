package interp

import "github.com/whileflow/whileflow/ast"

// Eval runs p to completion starting from the reserved input variable x
// bound to input, and returns the reserved output variable z (0 if p
// never assigns it), matching original_source/src/interpreter.rs's
// run_program convention.
func Eval(p ast.Prog, input int32) int32 {
	mem := Mem{}
	mem.Set("x", input)
	EvalProg(mem, p)
	return mem.Lookup("z")
}

// EvalProg runs every atom of p in order against mem.
func EvalProg(mem Mem, p ast.Prog) {
	for _, a := range p {
		EvalAtom(mem, a)
	}
}

// EvalAtom runs a single atom against mem. While loops re-evaluate their
// test after every iteration of Body, matching spec.md §2's "repeatedly
// runs Body while Test holds".
func EvalAtom(mem Mem, a ast.Atom) {
	switch v := a.(type) {
	case ast.Skip:
		return
	case ast.Assign:
		mem.Set(v.Var, EvalAExp(mem, v.Expr))
	case ast.Cond:
		if EvalBExp(mem, v.Test) {
			EvalProg(mem, v.Then)
		} else {
			EvalProg(mem, v.Else)
		}
	case ast.While:
		for EvalBExp(mem, v.Test) {
			EvalProg(mem, v.Body)
		}
	default:
		panic("interp: unrecognized Atom type")
	}
}

// EvalAExp evaluates an arithmetic expression against mem.
func EvalAExp(mem Mem, a ast.AExp) int32 {
	switch v := a.(type) {
	case ast.Num:
		return v.N
	case ast.Var:
		return mem.Lookup(v.Name)
	case ast.Add:
		return EvalAExp(mem, v.Left) + EvalAExp(mem, v.Right)
	case ast.Mul:
		return EvalAExp(mem, v.Left) * EvalAExp(mem, v.Right)
	default:
		panic("interp: unrecognized AExp type")
	}
}

// EvalBExp evaluates a boolean expression against mem. And/Or always
// evaluate both operands (no short-circuiting), matching
// original_source/src/interpreter.rs's total evaluation and spec.md
// §4.6's note that the analyses already treat And/Or as non-short-circuit,
// so the interpreter that checks them must agree.
func EvalBExp(mem Mem, b ast.BExp) bool {
	switch v := b.(type) {
	case ast.LessEq:
		return EvalAExp(mem, v.Left) <= EvalAExp(mem, v.Right)
	case ast.Neg:
		return !EvalBExp(mem, v.Operand)
	case ast.And:
		left := EvalBExp(mem, v.Left)
		right := EvalBExp(mem, v.Right)
		return left && right
	case ast.Or:
		left := EvalBExp(mem, v.Left)
		right := EvalBExp(mem, v.Right)
		return left || right
	default:
		panic("interp: unrecognized BExp type")
	}
}
