// Package interp is a reference interpreter for ast.Prog, grounded on
// original_source/src/interpreter.rs. It exists outside the analyses
// proper (spec.md's core) as a ground truth the analyses can be checked
// against: run a program concretely on some input and compare its result
// to what an analysis predicts.
package interp

import "github.com/whileflow/whileflow/ast"

// Mem is concrete program memory: every variable defaults to 0 until
// assigned, matching original_source/src/interpreter.rs's Memory type.
type Mem map[ast.VarName]int32

// Lookup returns m[x], or 0 if x has never been assigned.
func (m Mem) Lookup(x ast.VarName) int32 { return m[x] }

// Set assigns x := v in place.
func (m Mem) Set(x ast.VarName, v int32) { m[x] = v }
