package constprop

import (
	"sort"
	"strings"

	"github.com/whileflow/whileflow/ast"
)

// Env is the property space for constant propagation: a partial mapping
// VarName -> Const with an explicit default for unmapped names, matching
// original_source/src/flow_analysis/const_prop.rs's MultiConstLat.
type Env struct {
	vals    map[ast.VarName]Const
	Default Const
}

// NewEnv builds an Env with an empty map and the given default.
func NewEnv(def Const) Env {
	return Env{vals: make(map[ast.VarName]Const), Default: def}
}

// Lookup returns vals[x] if present, else Default.
func (e Env) Lookup(x ast.VarName) Const {
	if v, ok := e.vals[x]; ok {
		return v
	}
	return e.Default
}

// With returns a copy of e with x bound to v, leaving e untouched (Env
// values are otherwise read-only once constructed, per spec.md §3's
// lifecycle note).
func (e Env) With(x ast.VarName, v Const) Env {
	out := make(map[ast.VarName]Const, len(e.vals)+1)
	for k, val := range e.vals {
		out[k] = val
	}
	out[x] = v
	return Env{vals: out, Default: e.Default}
}

// Equal is structural equality by value, not by map representation: two
// Envs are equal iff they agree on every variable's Lookup result and
// share the same Default, matching spec.md §4.3's "equality on L must be
// structural value equality" requirement.
func (e Env) Equal(other Env) bool {
	if e.Default != other.Default {
		return false
	}
	for k := range e.vals {
		if e.Lookup(k) != other.Lookup(k) {
			return false
		}
	}
	for k := range other.vals {
		if _, ok := e.vals[k]; ok {
			continue
		}
		if e.Lookup(k) != other.Lookup(k) {
			return false
		}
	}
	return true
}

// String pretty-prints an Env's explicit bindings followed by its
// default, matching original_source/src/flow_analysis/const_prop.rs's
// "impl Display for MultiConstLat". Keys are sorted for deterministic
// output (the Rust original iterates a HashMap in arbitrary order; this
// repo's rendering is used for diffable golden tests, so determinism
// matters here in a way it didn't there).
func (e Env) String() string {
	keys := make([]string, 0, len(e.vals))
	for k := range e.vals {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("<")
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(" = ")
		b.WriteString(e.vals[ast.VarName(k)].String())
		b.WriteString(", ")
	}
	b.WriteString("_ = ")
	b.WriteString(e.Default.String())
	b.WriteString(">")
	return b.String()
}

// Eval implements spec.md §4.4's arithmetic-expression abstraction.
func Eval(a ast.AExp, e Env) Const {
	switch v := a.(type) {
	case ast.Num:
		return ConstVal(v.N)
	case ast.Var:
		return e.Lookup(v.Name)
	case ast.Add:
		return evalBinOp(Eval(v.Left, e), Eval(v.Right, e), func(x, y int32) int32 { return x + y })
	case ast.Mul:
		return evalBinOp(Eval(v.Left, e), Eval(v.Right, e), func(x, y int32) int32 { return x * y })
	default:
		panic("constprop: unrecognized AExp type")
	}
}
