// Command whileflow performs MFP dataflow analysis on WHILE programs:
// constant propagation, available expressions, or direct interpretation.
// Flags and stdin-driven input are grounded on
// original_source/src/main.rs's clap-based CLI; flag parsing and
// diagnostics follow cmd/godoctor/main.go's stdlib-flag style.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/fatih/color"

	"github.com/whileflow/whileflow/availexp"
	"github.com/whileflow/whileflow/constprop"
	"github.com/whileflow/whileflow/dotrender"
	"github.com/whileflow/whileflow/interp"
	"github.com/whileflow/whileflow/langparser"
	"github.com/whileflow/whileflow/lower"
	"github.com/whileflow/whileflow/solver"
)

var (
	constPropFlag = flag.Bool("c", false, "constant propagation")
	availExpFlag  = flag.Bool("a", false, "available expressions")
	interpFlag    = flag.String("i", "", "interpret, with this value bound to the reserved input variable x")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("whileflow: failed to read stdin: %v", err)
	}

	_, err = run(string(src), mode{
		constProp:    *constPropFlag,
		availExp:     *availExpFlag,
		interpret:    isFlagSet("i"),
		interpretVal: *interpFlag,
	}, os.Stdout)
	if err != nil {
		langparser.ReportError(string(src), err)
		os.Exit(1)
	}

	color.New(color.FgGreen).Fprintln(os.Stderr, "whileflow: analysis complete")
}

// mode captures the CLI flag state run needs, decoupled from package
// main's global flag.Bool/flag.String variables so run is directly
// testable.
type mode struct {
	constProp    bool
	availExp     bool
	interpret    bool
	interpretVal string
}

// run parses src and performs the requested analysis or interpretation,
// writing human-readable output to w. A non-nil error is always a parse
// error from langparser.Parse.
func run(src string, m mode, w io.Writer) (string, error) {
	prog, err := langparser.Parse(src)
	if err != nil {
		return "", err
	}

	if m.interpret {
		x, err := strconv.ParseInt(m.interpretVal, 10, 32)
		if err != nil {
			x = 0
		}
		z := interp.Eval(prog, int32(x))
		out := fmt.Sprintln(z)
		fmt.Fprint(w, out)
		return out, nil
	}

	doConstProp := m.constProp || !m.availExp

	g := lower.Lower(prog)
	var rendered string
	if doConstProp {
		rendered = dotrender.Render(solver.Solve(g, constprop.Analysis{}))
	} else {
		rendered = dotrender.Render(solver.Solve(g, availexp.NewAnalysis(g)))
	}
	out := rendered + "\n"
	fmt.Fprint(w, out)
	return out, nil
}

func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
