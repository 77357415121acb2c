// Package lattice defines the semi-lattice + transfer-function contract
// (spec.md §4.2) that the solver is generic over. Concrete analyses
// (constprop, availexp) each provide one value type L and one Lattice[L]
// implementation; the compiler monomorphizes solver.Solve per analysis
// instead of boxing L behind an interface on the hot path, matching the
// "avoid virtual dispatch... monomorphize per lattice" design note of
// spec.md §9. This mirrors original_source/src/flow_analysis/common.rs's
// SemiLat + FlowSemantics traits, merged into a single contract since Go
// has no trait-per-type dispatch the way Rust does.
package lattice

import "github.com/whileflow/whileflow/cfg"

// Lattice is a semi-lattice L paired with a transfer-function family over
// CFG nodes. An implementation is instantiated once per analysis (it
// carries no per-node state of its own beyond what Transfer needs, e.g.
// availexp's Analysis additionally carries the program's subexpression
// universe).
type Lattice[L any] interface {
	// JoinBin is associative, commutative, and idempotent.
	JoinBin(a, b L) L

	// Init is the bottom of the information-flow order: "no information
	// yet". Used to initialize every non-entry node's pre, and its post
	// too unless the analysis also provides a SeedPost method (see
	// solver.Solve).
	Init() L

	// InitStart is the entry annotation attached to the Init node; it
	// encodes the analysis's assumption about program input and may
	// differ from Init.
	InitStart() L

	// Transfer computes the abstract effect of node n on incoming value
	// x. It must be monotone in x.
	Transfer(n cfg.Node, x L) L

	// Equal reports structural value equality (not reference identity).
	Equal(a, b L) bool
}

// Join folds JoinBin over a non-empty slice. The result does not depend on
// element order, since JoinBin is associative and commutative.
func Join[L any](lat Lattice[L], vs []L) L {
	if len(vs) == 0 {
		panic("lattice: Join called with no elements")
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = lat.JoinBin(acc, v)
	}
	return acc
}

// Annot is a node's pre/post annotation after the solver runs: the
// abstract state at entry to (Pre) and exit from (Post) the node.
type Annot[L any] struct {
	Pre  L
	Post L
}
