package langparser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"github.com/whileflow/whileflow/ast"
)

var parser = participle.MustBuild[Program](
	participle.Lexer(Lexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Parse parses src as a WHILE program, matching
// original_source/src/parser.rs's parse() entry point. Unlike the Rust
// original, trailing unconsumed input is reported by participle itself
// (as a syntax error at the first unparsed token) rather than by a
// separate "rest.is_empty()" check.
func Parse(src string) (ast.Prog, error) {
	prog, err := parser.ParseString("", src)
	if err != nil {
		return nil, err
	}
	return prog.ToAST(), nil
}

// ReportError prints a caret-style diagnostic for an error returned by
// Parse, matching kanso-lang-kanso/grammar/parser.go's reportParseError.
func ReportError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("unexpected error: %s", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(pos.Column-1, 0)) + "^"

	color.Red("syntax error at line %d, column %d:", pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed("%s", caret)
	fmt.Printf("-> %s\n", pe.Message())
}
