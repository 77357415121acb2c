package constprop

import (
	"github.com/whileflow/whileflow/ast"
	"github.com/whileflow/whileflow/cfg"
)

// Analysis implements lattice.Lattice[Env] for constant propagation. It
// carries no state of its own; join/transfer are pure functions of their
// arguments, unlike availexp.Analysis which must additionally carry the
// program's subexpression universe.
type Analysis struct{}

// JoinBin joins two environments pointwise over the union of their keys,
// joining the defaults too, matching spec.md §4.4's Env join.
func (Analysis) JoinBin(a, b Env) Env {
	out := NewEnv(JoinConst(a.Default, b.Default))
	for k, v := range a.vals {
		out.vals[k] = JoinConst(v, b.Lookup(k))
	}
	for k, v := range b.vals {
		if _, ok := a.vals[k]; ok {
			continue
		}
		out.vals[k] = JoinConst(a.Lookup(k), v)
	}
	return out
}

// Init is the bottom environment: empty map, default Bot.
func (Analysis) Init() Env { return NewEnv(Bot) }

// InitStart is the entry assumption: every variable starts at 0 except
// the reserved input variable x, which is unknown (Top), matching
// spec.md §4.4's "unreferenced variables start at zero; x is unknown".
func (Analysis) InitStart() Env {
	e := NewEnv(ConstVal(0))
	e.vals[ast.VarName("x")] = Top
	return e
}

// Transfer is the identity on every node kind except Assign, which
// updates the assigned variable to the evaluated expression's abstract
// value, matching spec.md §4.4.
func (Analysis) Transfer(n cfg.Node, x Env) Env {
	if n.Kind != cfg.KindAssign {
		return x
	}
	return x.With(n.Var, Eval(n.AExp, x))
}

// Equal delegates to Env.Equal (structural, not map-representation,
// equality).
func (Analysis) Equal(a, b Env) bool { return a.Equal(b) }
