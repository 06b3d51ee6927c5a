// cmd/quadform/main.go — solve one quadratic from the command line
//
// Usage:
//
//	quadform -a 1 -b 0 -c -2
//	quadform -latex 2 -5 3
//	quadform -json -a -1 -b 2 -c 1
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/njchilds90/goquad"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	fs := flag.NewFlagSet("quadform", flag.ContinueOnError)
	fs.SetOutput(stderr)
	aFlag := fs.String("a", "", "quadratic coefficient (non-zero integer)")
	bFlag := fs.String("b", "", "linear coefficient")
	cFlag := fs.String("c", "", "constant term")
	asJSON := fs.Bool("json", false, "print the solution as JSON")
	asLaTeX := fs.Bool("latex", false, "print the solution as LaTeX")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	raw := []string{*aFlag, *bFlag, *cFlag}
	if rest := fs.Args(); len(rest) > 0 {
		if len(rest) != 3 {
			logger.Error("expected three positional coefficients", "got", len(rest))
			return 2
		}
		raw = rest
	}
	for i, name := range []string{"a", "b", "c"} {
		if raw[i] == "" && name != "a" {
			raw[i] = "0"
		}
	}

	var co [3]int64
	for i, s := range raw {
		n, err := goquad.ParseCoefficient(s)
		if err != nil {
			logger.Error("bad coefficient", "name", string(rune('a'+i)), "value", s, "error", err)
			return 1
		}
		co[i] = n
	}

	sol, err := goquad.Solve(co[0], co[1], co[2])
	if err != nil {
		logger.Error("cannot solve", "error", err)
		return 1
	}

	switch {
	case *asJSON:
		s, err := goquad.ToJSON(sol)
		if err != nil {
			logger.Error("encode", "error", err)
			return 1
		}
		fmt.Fprintln(stdout, s)
	case *asLaTeX:
		fmt.Fprintln(stdout, sol.FormulaLaTeX())
		fmt.Fprintln(stdout, strings.Join(sol.RootsLaTeX(), "\n"))
		fmt.Fprintln(stdout, sol.VertexLaTeX())
	default:
		fmt.Fprintln(stdout, sol.String())
	}
	return 0
}
