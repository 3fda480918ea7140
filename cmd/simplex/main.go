// simplex is a small CLI around the tableau simplex engine. It reads a
// linear program from a text file (or stdin), solves it, and prints the
// solution steps with every value rendered as an exact fraction.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	flag "github.com/spf13/pflag"
	"gonum.org/v1/gonum/mat"

	simplex "github.com/joemanlove/SimplexCalculator"
)

var (
	inputSource = flag.StringP("input", "i", "-", "Input source; '-' means stdin")
	showAll     = flag.BoolP("all", "a", false, "Print every solution step, not just the final tableau")
	asFloats    = flag.Bool("floats", false, "Print tableaux as float matrices instead of fractions")
	maxPivots   = flag.Int("max-pivots", 1000, "Abort after this many pivots; 0 means no limit")
)

func main() {
	flag.Parse()

	var in io.Reader
	if *inputSource == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(*inputSource)
		if err != nil {
			log.Fatalf("Couldn't open %q: %v", *inputSource, err)
		}
		defer f.Close()
		in = f
	}

	problem, err := simplex.ParseProblem(in)
	if err != nil {
		log.Fatalf("Couldn't read problem: %v", err)
	}

	sol, err := problem.SolveWithOptions(simplex.SolveOptions{MaxPivots: *maxPivots})
	if err != nil {
		if sol == nil || !errors.Is(err, simplex.ErrUnbounded) {
			log.Fatalf("Solve failed: %v", err)
		}
		// an unbounded problem still has a step history worth showing
		fmt.Printf("problem is unbounded; steps completed before detection:\n\n")
	}

	nav := sol.Navigator()
	if !*showAll {
		nav.Last()
	}
	for {
		step, total := nav.Position()
		fmt.Printf("step %d/%d\n", step, total)
		printTableau(nav.Current())
		fmt.Println()

		if step == total {
			break
		}
		nav.Next()
	}

	if sol.Optimal() {
		fmt.Printf("%s = %s\n", objectiveName(problem), simplex.FormatRat(sol.ObjectiveValue()))
		for i, v := range sol.VariableValues() {
			fmt.Printf("X%d = %s\n", i+1, simplex.FormatRat(v))
		}
	}
}

func objectiveName(p *simplex.Problem) string {
	if p.ObjectiveName != "" {
		return p.ObjectiveName
	}
	return "Z"
}

func printTableau(t *simplex.Tableau) {
	if *asFloats {
		fmt.Printf("%v\n", mat.Formatted(t.Dense(), mat.Prefix("    "), mat.Squeeze()))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 4, 0, 2, ' ', tabwriter.AlignRight)
	for _, label := range t.Labels() {
		fmt.Fprintf(w, "%s\t", label)
	}
	fmt.Fprintln(w)
	for i := 0; i < t.Rows(); i++ {
		for j := 0; j < t.Cols(); j++ {
			fmt.Fprintf(w, "%s\t", t.FormatAt(i, j))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
