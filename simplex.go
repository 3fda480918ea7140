// Package simplex solves linear programs with the tableau form of the
// simplex method and exposes the full sequence of intermediate tableaux, so
// a caller can step through the solution one pivot at a time and render
// every value as an exact fraction.
//
// The engine assumes every constraint converts to "≤ with non-negative
// RHS", giving a feasible all-slack starting basis; minimization problems
// are reduced to an equivalent maximization by transposing the coefficient
// table. There is no two-phase or Big-M handling and no equality
// constraints.
package simplex

import (
	"fmt"
	"log"
)

// ExampleSolve smoke tests the engine end to end and serves as an example.
func ExampleSolve() {

	// this example solves the following problem:
	// Maximize Z = 12x1 + 16x2
	// Subject to:
	//		1x1 + 2x2 <= 40
	//		1x1 + 1x2 <= 30

	p := NewMaximize()
	x1 := p.AddVariable("X1", 12)
	x2 := p.AddVariable("X2", 16)
	p.AddConstraint(40, Expr(1, x1), Expr(2, x2))
	p.AddConstraint(30, Expr(1, x1), Expr(1, x2))

	sol, err := p.Solve()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("steps: %v\n", sol.Steps())
	fmt.Printf("z: %v\n", FormatRat(sol.ObjectiveValue()))
	// Output:
	// steps: 3
	// z: 400
}
