package langparser

import "github.com/whileflow/whileflow/ast"

// ToAST converts a parsed Program into ast.Prog.
func (p *Program) ToAST() ast.Prog {
	out := make(ast.Prog, len(p.Atoms))
	for i, a := range p.Atoms {
		out[i] = a.ToAST()
	}
	return out
}

func (a *ProgAtom) ToAST() ast.Atom {
	switch {
	case a.Skip != nil:
		return ast.Skip{}
	case a.While != nil:
		return ast.While{Test: a.While.Test.ToAST(), Body: a.While.Body.ToAST()}
	case a.Cond != nil:
		return ast.Cond{
			Test: a.Cond.Test.ToAST(),
			Then: a.Cond.Then.ToAST(),
			Else: a.Cond.Else.ToAST(),
		}
	case a.Assign != nil:
		return ast.Assign{Var: ast.VarName(a.Assign.Var), Expr: a.Assign.Expr.ToAST()}
	default:
		panic("langparser: empty ProgAtom")
	}
}

// ToAST left-folds the Add chain: (((left + op1) + op2) + ...), matching
// original_source/src/parser.rs's add()'s iter.fold.
func (e *AExpr) ToAST() ast.AExp {
	acc := e.Left.ToAST()
	for _, op := range e.Ops {
		acc = ast.Add{Left: acc, Right: op.Right.ToAST()}
	}
	return acc
}

// ToAST left-folds the Mul chain, matching original_source/src/parser.rs's
// mul().
func (e *MExpr) ToAST() ast.AExp {
	acc := e.Left.ToAST()
	for _, op := range e.Ops {
		acc = ast.Mul{Left: acc, Right: op.Right.ToAST()}
	}
	return acc
}

func (a *AAtom) ToAST() ast.AExp {
	switch {
	case a.NegNumber != nil:
		return ast.Num{N: int32(-a.NegNumber.N)}
	case a.Number != nil:
		return ast.Num{N: int32(*a.Number)}
	case a.Ident != nil:
		return ast.Var{Name: ast.VarName(*a.Ident)}
	case a.Paren != nil:
		return a.Paren.ToAST()
	default:
		panic("langparser: empty AAtom")
	}
}

// ToAST left-folds the Or chain.
func (e *BExpr) ToAST() ast.BExp {
	acc := e.Left.ToAST()
	for _, op := range e.Ops {
		acc = ast.Or{Left: acc, Right: op.Right.ToAST()}
	}
	return acc
}

// ToAST left-folds the And chain.
func (e *BAnd) ToAST() ast.BExp {
	acc := e.Left.ToAST()
	for _, op := range e.Ops {
		acc = ast.And{Left: acc, Right: op.Right.ToAST()}
	}
	return acc
}

func (n *BNot) ToAST() ast.BExp {
	if n.Bang != nil {
		return ast.Neg{Operand: n.Bang.ToAST()}
	}
	return n.Atom.ToAST()
}

func (a *BAtom) ToAST() ast.BExp {
	switch {
	case a.LessEq != nil:
		return ast.LessEq{Left: a.LessEq.Left.ToAST(), Right: a.LessEq.Right.ToAST()}
	case a.Paren != nil:
		return a.Paren.ToAST()
	default:
		panic("langparser: empty BAtom")
	}
}
