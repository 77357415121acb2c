package langparser

// Program is the top-level grammar rule: one or more atoms separated by
// ";", matching original_source/src/parser.rs's prog/prog_atom rules.
type Program struct {
	Atoms []*ProgAtom `@@ { ";" @@ }`
}

// ProgAtom is a single statement.
type ProgAtom struct {
	Skip   *SkipStmt   `  @@`
	While  *WhileStmt  `| @@`
	Cond   *CondStmt   `| @@`
	Assign *AssignStmt `| @@`
}

// SkipStmt is the "skip" no-op.
type SkipStmt struct {
	Kw string `@"skip"`
}

// AssignStmt is "x := aexp".
type AssignStmt struct {
	Var  string `@Ident ":="`
	Expr *AExpr `@@`
}

// CondStmt is "if bexp then prog else prog end".
type CondStmt struct {
	Test *BExpr   `"if" @@ "then"`
	Then *Program `@@ "else"`
	Else *Program `@@ "end"`
}

// WhileStmt is "while bexp do prog end".
type WhileStmt struct {
	Test *BExpr   `"while" @@ "do"`
	Body *Program `@@ "end"`
}

// AExpr is an addition of one or more MExpr terms, left-associative.
// participle cannot left-recurse, so the fold into ast.Add happens in
// ToAST, matching original_source/src/parser.rs's add() function's
// explicit left fold over separated_nonempty_list.
type AExpr struct {
	Left *MExpr   `@@`
	Ops  []*AddOp `{ @@ }`
}

// AddOp is one "+ mexp" suffix of an AExpr.
type AddOp struct {
	Right *MExpr `"+" @@`
}

// MExpr is a multiplication of one or more atomic terms, left-associative,
// matching original_source/src/parser.rs's mul().
type MExpr struct {
	Left *AAtom   `@@`
	Ops  []*MulOp `{ @@ }`
}

// MulOp is one "* atom" suffix of an MExpr.
type MulOp struct {
	Right *AAtom `"*" @@`
}

// AAtom is an arithmetic atom: a (possibly negative) integer literal, a
// variable, or a parenthesized expression. NegNumber is its own
// alternative (not a general unary minus) matching
// original_source/src/parser.rs's num_neg, which only recognizes a literal
// "-" followed by digits. Whitespace is elided by the lexer, so "- 5" is
// accepted as well as "-5".
type AAtom struct {
	NegNumber *NegNumber `  @@`
	Number    *int64     `| @Integer`
	Ident     *string    `| @Ident`
	Paren     *AExpr     `| "(" @@ ")"`
}

// NegNumber is a literal negative integer: "-" digit+.
type NegNumber struct {
	N int64 `"-" @Integer`
}

// BExpr is the lowest-precedence boolean rule: a disjunction of one or
// more BAnd terms. Boolean operator precedence (|| binds loosest, then
// &&, then !, then <=/parens) is this repo's resolution of the Open
// Question spec.md §6 leaves unspecified; original_source/src/parser.rs's
// bexp() has no precedence at all (it is a flat, buggy alt over
// lesseq/neg/and/or - see DESIGN.md), so this grammar is new, not ported.
type BExpr struct {
	Left *BAnd   `@@`
	Ops  []*OrOp `{ @@ }`
}

// OrOp is one "|| band" suffix of a BExpr.
type OrOp struct {
	Right *BAnd `"||" @@`
}

// BAnd is a conjunction of one or more BNot terms.
type BAnd struct {
	Left *BNot    `@@`
	Ops  []*AndOp `{ @@ }`
}

// AndOp is one "&& bnot" suffix of a BAnd.
type AndOp struct {
	Right *BNot `"&&" @@`
}

// BNot is zero or more prefix "!" applied to a BAtom; right-recursive
// since participle cannot left-recurse, allowing "!!b" to parse as
// Neg(Neg(b)).
type BNot struct {
	Bang *BNot  `  "!" @@`
	Atom *BAtom `| @@`
}

// BAtom is a comparison or a parenthesized boolean expression.
type BAtom struct {
	LessEq *LessEqExpr `  @@`
	Paren  *BExpr      `| "(" @@ ")"`
}

// LessEqExpr is "aexp <= aexp".
type LessEqExpr struct {
	Left  *AExpr `@@`
	Right *AExpr `"<=" @@`
}
