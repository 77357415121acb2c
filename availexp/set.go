package availexp

import (
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/whileflow/whileflow/ast"
)

// Set is an available-expressions lattice value: a bitset over some
// Universe, one bit per distinct subexpression. Two Sets are only
// meaningfully compared/joined if they share a Universe; this repo's
// Analysis always builds exactly one Universe per Solve call, so that
// invariant holds by construction.
type Set struct {
	bits     *bitset.BitSet
	universe *Universe
}

func newBitSet(n uint) *bitset.BitSet { return bitset.New(n) }

// JoinBin is set intersection, matching spec.md §4.5's "an expression is
// available only if every path reaching this point computes it".
func (s Set) JoinBin(other Set) Set {
	return Set{bits: s.bits.Intersection(other.bits), universe: s.universe}
}

// Equal is bitset equality.
func (s Set) Equal(other Set) bool { return s.bits.Equal(other.bits) }

// Contains reports whether e is a member of s, false if e is not even in
// the universe (e.g. it never occurs in the program).
func (s Set) Contains(e ast.AExp) bool {
	i, ok := s.universe.IndexOf(e)
	if !ok {
		return false
	}
	return s.bits.Test(i)
}

// Exprs returns s's members in universe order.
func (s Set) Exprs() []ast.AExp {
	out := make([]ast.AExp, 0, s.bits.Count())
	for i := uint(0); i < uint(s.universe.Len()); i++ {
		if s.bits.Test(i) {
			out = append(out, s.universe.At(i))
		}
	}
	return out
}

// gen returns a copy of s with every subexpression in exprs added.
func (s Set) gen(exprs []ast.AExp) Set {
	nb := s.bits.Clone()
	for _, e := range exprs {
		if i, ok := s.universe.IndexOf(e); ok {
			nb.Set(i)
		}
	}
	return Set{bits: nb, universe: s.universe}
}

// kill returns a copy of s with every subexpression mentioning x removed,
// matching spec.md §4.5's "assigning x invalidates every available
// expression that reads x".
func (s Set) kill(x ast.VarName) Set {
	nb := s.bits.Clone()
	for i := uint(0); i < uint(s.universe.Len()); i++ {
		if s.universe.At(i).ContainsVar(x) {
			nb.Clear(i)
		}
	}
	return Set{bits: nb, universe: s.universe}
}

func (s Set) String() string {
	parts := make([]string, 0, s.bits.Count())
	for _, e := range s.Exprs() {
		parts = append(parts, e.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
