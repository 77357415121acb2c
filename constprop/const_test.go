package constprop

import "testing"

func TestJoinConst(t *testing.T) {
	cases := []struct {
		name string
		a, b Const
		want Const
	}{
		{"bot identity left", Bot, ConstVal(3), ConstVal(3)},
		{"bot identity right", ConstVal(3), Bot, ConstVal(3)},
		{"top absorbs", Top, ConstVal(3), Top},
		{"equal constants", ConstVal(5), ConstVal(5), ConstVal(5)},
		{"distinct constants go top", ConstVal(5), ConstVal(6), Top},
		{"bot join bot is bot", Bot, Bot, Bot},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := JoinConst(c.a, c.b); got != c.want {
				t.Errorf("JoinConst(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestJoinConstIdempotentAndCommutative(t *testing.T) {
	vs := []Const{Bot, Top, ConstVal(0), ConstVal(7)}
	for _, v := range vs {
		if got := JoinConst(v, v); got != v {
			t.Errorf("JoinConst(%v, %v) = %v, not idempotent", v, v, got)
		}
	}
	for _, a := range vs {
		for _, b := range vs {
			if JoinConst(a, b) != JoinConst(b, a) {
				t.Errorf("JoinConst(%v, %v) != JoinConst(%v, %v), not commutative", a, b, b, a)
			}
		}
	}
}

func TestConstString(t *testing.T) {
	if Bot.String() != "bb" {
		t.Errorf("Bot.String() = %q, want \"bb\"", Bot.String())
	}
	if Top.String() != "tt" {
		t.Errorf("Top.String() = %q, want \"tt\"", Top.String())
	}
	if ConstVal(42).String() != "42" {
		t.Errorf("ConstVal(42).String() = %q, want \"42\"", ConstVal(42).String())
	}
}
