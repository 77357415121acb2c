// Package solver implements the generic Maximal Fixed Point (MFP) worklist
// algorithm of spec.md §4.3, generalizing the teacher's round-based
// iterative dataflow loops (analysis/dataflow/{reaching,live}.go's
// "for(changes to any OUT occur)" loops, themselves modeled on the
// Dragon Book's reaching-definitions/live-variables algorithms) into an
// explicit successor-driven worklist, matching
// original_source/src/flow_analysis/mfp.rs's mfp function.
package solver

import (
	"github.com/whileflow/whileflow/cfg"
	"github.com/whileflow/whileflow/lattice"
)

// postSeeder is implemented by analyses that need a seed for non-Init
// nodes' initial post-annotation other than the lattice bottom (Init()).
// Available expressions is the only such analysis in this repo: per
// spec.md §4.5, its join is intersection and its bottom is the empty set,
// so reaching the greatest fixed point requires seeding non-entry posts at
// the universal set of candidate expressions, not at bottom. See the Open
// Questions entry in DESIGN.md for why this is a separate, optional
// interface rather than a change to Lattice[L]'s bottom/top meaning.
type postSeeder[L any] interface {
	SeedPost() L
}

// Solve computes the MFP fixed point over g for the given lattice/transfer
// instance, returning a new graph carrying a lattice.Annot[L] (pre/post
// pair) at every node. g itself is left untouched; the returned graph's
// annotation slice is what the worklist loop mutates in place, per
// spec.md §3's lifecycle note.
func Solve[L any](g *cfg.Graph[struct{}], lat lattice.Lattice[L]) *cfg.Graph[lattice.Annot[L]] {
	bottomSeed := lat.Init()
	postSeed := bottomSeed
	if s, ok := lat.(postSeeder[L]); ok {
		postSeed = s.SeedPost()
	}

	out := cfg.Map(g, func(cfg.Node, struct{}) lattice.Annot[L] {
		return lattice.Annot[L]{Pre: bottomSeed, Post: postSeed}
	})
	out.Annot[out.Init] = lattice.Annot[L]{Pre: lat.InitStart(), Post: lat.InitStart()}

	n := out.NodeCount()
	inQueue := make([]bool, n)
	queue := make([]cfg.NodeID, 0, n)
	for i := 0; i < n; i++ {
		id := cfg.NodeID(i)
		if id == out.Init {
			continue
		}
		queue = append(queue, id)
		inQueue[id] = true
	}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		inQueue[node] = false

		preds := out.Predecessors(node)
		vals := make([]L, len(preds))
		for i, e := range preds {
			vals[i] = out.Annot[e.To].Post
		}
		newPre := lattice.Join(lat, vals)

		newPost := lat.Transfer(out.Nodes[node], newPre)
		changed := !lat.Equal(newPost, out.Annot[node].Post)
		if changed {
			out.Annot[node] = lattice.Annot[L]{Pre: newPre, Post: newPost}
		} else {
			out.Annot[node] = lattice.Annot[L]{Pre: newPre, Post: out.Annot[node].Post}
		}

		if changed {
			for _, e := range out.Successors(node) {
				if !inQueue[e.To] {
					queue = append(queue, e.To)
					inQueue[e.To] = true
				}
			}
		}
	}

	return out
}
