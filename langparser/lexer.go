// Package langparser is the concrete-syntax front end: lexer, grammar,
// and AST-builder for the textual WHILE language of spec.md §6, grounded
// on kanso-lang-kanso/grammar's participle/v2 stateful lexer and
// struct-tag grammar style, with the grammar itself (precedence, keyword
// set) ported from original_source/src/parser.rs's hand-written
// recursive-descent parser.
package langparser

import "github.com/alecthomas/participle/v2/lexer"

// Lexer tokenizes the WHILE surface syntax. "#" begins a line comment,
// matching original_source/src/parser.rs's parse() preprocessing step
// (which strips everything from "#" to end of line before parsing); here
// it is instead elided like Whitespace, so comments may appear anywhere
// tokens are allowed, not just at line granularity.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `#[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Integer", `[0-9]+`, nil},
		{"Operator", `(:=|<=|&&|\|\||[-+*();!])`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
