// Package constprop implements the constant-propagation lattice and
// transfer function of spec.md §4.4, grounded on
// original_source/src/flow_analysis/const_prop.rs's ConstLat/MultiConstLat.
package constprop

import "fmt"

type constKind int

const (
	kindBot constKind = iota
	kindConst
	kindTop
)

// Const is the per-variable lattice: Bot <= Const(k) <= Top for every k,
// with distinct constants mutually incomparable. The zero value is Bot.
type Const struct {
	kind constKind
	val  int32
}

// Bot is the bottom element: no information yet.
var Bot = Const{kind: kindBot}

// Top is the top element: conflicting/unknown information.
var Top = Const{kind: kindTop}

// ConstVal builds the lattice element for the known integer n.
func ConstVal(n int32) Const { return Const{kind: kindConst, val: n} }

// Value returns (n, true) if c is a known constant, else (0, false).
func (c Const) Value() (int32, bool) { return c.val, c.kind == kindConst }

// IsTop reports whether c is the top element.
func (c Const) IsTop() bool { return c.kind == kindTop }

// IsBot reports whether c is the bottom element.
func (c Const) IsBot() bool { return c.kind == kindBot }

func (c Const) String() string {
	switch c.kind {
	case kindTop:
		return "tt"
	case kindBot:
		return "bb"
	default:
		return fmt.Sprintf("%d", c.val)
	}
}

// JoinConst implements spec.md §4.4's join_bin: top absorbs everything,
// bottom is the identity, and two distinct constants join to top.
func JoinConst(a, b Const) Const {
	if a.kind == kindTop || b.kind == kindTop {
		return Top
	}
	if a.kind == kindBot {
		return b
	}
	if b.kind == kindBot {
		return a
	}
	if a.val == b.val {
		return a
	}
	return Top
}

// evalBinOp implements spec.md §4.4's Add/Mul abstraction: concrete if
// both operands are concrete, top if either is top, bottom otherwise
// (e.g. one operand unreached/bottom and the other a known constant).
func evalBinOp(a, b Const, f func(x, y int32) int32) Const {
	if av, ok := a.Value(); ok {
		if bv, ok := b.Value(); ok {
			return ConstVal(f(av, bv))
		}
	}
	if a.kind == kindTop || b.kind == kindTop {
		return Top
	}
	return Bot
}
