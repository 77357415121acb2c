// Package availexp implements the available-expressions lattice and
// transfer function of spec.md §4.5. This is the one analysis the Rust
// original never finished (original_source/src/flow_analysis/avail_exp.rs's
// transfer function is a stubbed "//TODO() set.clone()"); this repo
// supplements that dropped feature with the full gen/kill semantics spec.md
// §4.5 describes, generalizing the teacher's per-statement bitset idiom in
// extras/cfg/df.go (GEN/KILL over *bitset.BitSet, one bit per definition)
// to one bit per arithmetic subexpression.
package availexp

import (
	"github.com/whileflow/whileflow/ast"
	"github.com/whileflow/whileflow/cfg"
)

// Universe is the fixed, indexed set of arithmetic subexpressions a given
// CFG's Branch and Assign nodes can generate. Sets over this universe are
// bitsets indexed by the positions assigned here.
type Universe struct {
	exprs []ast.AExp
	index map[string]uint
}

// BuildUniverse walks every node of g once, collecting the subexpression
// set (ast.AExp.SubExprs) of each Branch's test and each Assign's
// right-hand side, deduplicating by their canonical String form (matching
// the dedup key ast.AExp.SubExprs already uses internally).
func BuildUniverse(g *cfg.Graph[struct{}]) *Universe {
	u := &Universe{index: make(map[string]uint)}
	add := func(exprs []ast.AExp) {
		for _, e := range exprs {
			key := e.String()
			if _, ok := u.index[key]; ok {
				continue
			}
			u.index[key] = uint(len(u.exprs))
			u.exprs = append(u.exprs, e)
		}
	}
	for _, n := range g.Nodes {
		switch n.Kind {
		case cfg.KindBranch:
			add(n.BExp.SubExprs())
		case cfg.KindAssign:
			add(n.AExp.SubExprs())
		}
	}
	return u
}

// Len is the number of distinct subexpressions in the universe.
func (u *Universe) Len() int { return len(u.exprs) }

// At returns the subexpression assigned to bit i.
func (u *Universe) At(i uint) ast.AExp { return u.exprs[i] }

// IndexOf returns the bit assigned to e, if e occurs in the universe.
func (u *Universe) IndexOf(e ast.AExp) (uint, bool) {
	i, ok := u.index[e.String()]
	return i, ok
}

// Empty returns the bottom element over u: the empty set.
func (u *Universe) Empty() Set {
	return Set{bits: newBitSet(uint(len(u.exprs))), universe: u}
}

// Full returns the universal set over u: every bit set.
func (u *Universe) Full() Set {
	bs := newBitSet(uint(len(u.exprs)))
	for i := uint(0); i < uint(len(u.exprs)); i++ {
		bs.Set(i)
	}
	return Set{bits: bs, universe: u}
}
