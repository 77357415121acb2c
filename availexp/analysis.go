package availexp

import (
	"github.com/whileflow/whileflow/cfg"
)

// Analysis implements lattice.Lattice[Set] for available expressions. It
// carries the program's Universe, unlike constprop.Analysis which needs no
// per-program state; NewAnalysis must therefore be called once per CFG,
// after lowering, before Solve.
type Analysis struct {
	Universe *Universe
}

// NewAnalysis builds the subexpression universe for g and returns an
// Analysis over it.
func NewAnalysis(g *cfg.Graph[struct{}]) Analysis {
	return Analysis{Universe: BuildUniverse(g)}
}

func (a Analysis) JoinBin(x, y Set) Set { return x.JoinBin(y) }

// Init is the bottom of the available-expressions order: the empty set.
func (a Analysis) Init() Set { return a.Universe.Empty() }

// InitStart is the entry value: no expression has been computed yet.
func (a Analysis) InitStart() Set { return a.Universe.Empty() }

// SeedPost seeds every non-entry node's initial post-annotation at the
// universal set rather than at Init's empty set, which the solver package
// requires to reach the greatest (not least) fixed point for an
// intersection-joined lattice: seeding at bottom would make a loop head's
// first pre-join with its not-yet-visited back edge collapse to empty, and
// expressions computed before the loop could then never become available
// at or inside it.
func (a Analysis) SeedPost() Set { return a.Universe.Full() }

func (a Analysis) Equal(x, y Set) bool { return x.Equal(y) }

// Transfer implements spec.md §4.5's gen/kill: a Branch node generates its
// test's arithmetic subexpressions; an Assign node generates its
// right-hand side's subexpressions and then kills every universe
// expression mentioning the assigned variable. Gen must run before kill,
// since x := x + 1 both generates and immediately kills "x + 1" (it reads
// the old x, but the new x invalidates it).
func (a Analysis) Transfer(n cfg.Node, x Set) Set {
	switch n.Kind {
	case cfg.KindBranch:
		return x.gen(n.BExp.SubExprs())
	case cfg.KindAssign:
		return x.gen(n.AExp.SubExprs()).kill(n.Var)
	default:
		return x
	}
}
