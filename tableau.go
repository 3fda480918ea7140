package simplex

import (
	"math/big"

	"gonum.org/v1/gonum/mat"
)

// Tableau is one snapshot of the augmented simplex matrix at a given pivot
// iteration. Columns are laid out as
//
//	[decision variables | slack variables | Z | RHS]
//
// with one slack column per constraint and the objective row last. The Z
// column carries a single 1 in the objective row and tracks the running
// objective value through pivots.
//
// Tableaux stored in a solution history are immutable: row reduction always
// produces a new Tableau and accessors hand out copies of the stored
// rationals.
type Tableau struct {
	rows [][]*big.Rat

	// number of decision variable columns (the slack block starts here)
	vars int

	// column labels, e.g. X1, X2, S1, S2, Z, with a blank slot for the RHS.
	// Shared across all tableaux of one solve; never mutated after build.
	labels []string
}

// Rows returns the number of rows, constraint rows plus the objective row.
func (t *Tableau) Rows() int {
	return len(t.rows)
}

// Cols returns the number of columns, including the Z and RHS columns.
func (t *Tableau) Cols() int {
	return len(t.rows[0])
}

// Vars returns the number of decision variable columns.
func (t *Tableau) Vars() int {
	return t.vars
}

// Constraints returns the number of constraint rows.
func (t *Tableau) Constraints() int {
	return len(t.rows) - 1
}

// At returns a copy of the entry at (row, col). Mutating the returned value
// does not affect the tableau.
func (t *Tableau) At(row, col int) *big.Rat {
	return new(big.Rat).Set(t.rows[row][col])
}

// FormatAt renders the entry at (row, col) for display: integers bare,
// non-integers as reduced fractions.
func (t *Tableau) FormatAt(row, col int) string {
	return FormatRat(t.rows[row][col])
}

// Labels returns the column labels, one per column with a trailing blank
// for the RHS column.
func (t *Tableau) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// ObjectiveValue returns the running objective value, i.e. the RHS entry of
// the objective row.
func (t *Tableau) ObjectiveValue() *big.Rat {
	last := t.rows[len(t.rows)-1]
	return new(big.Rat).Set(last[len(last)-1])
}

// Dense exports the tableau as a float64 gonum matrix, for consumers that
// want to feed a step into linear-algebra routines or pretty-print it with
// mat.Formatted. Exact rationals that are not representable in float64 are
// rounded.
func (t *Tableau) Dense() *mat.Dense {
	r, c := t.Rows(), t.Cols()
	data := make([]float64, 0, r*c)
	for _, row := range t.rows {
		for _, v := range row {
			f, _ := v.Float64()
			data = append(data, f)
		}
	}
	return mat.NewDense(r, c, data)
}

// hasNegativeObjective reports whether any variable or slack column of the
// objective row is still negative. The Z and RHS columns are excluded from
// the test. This is the solver's termination condition.
func (t *Tableau) hasNegativeObjective() bool {
	obj := t.rows[len(t.rows)-1]
	for j := 0; j < t.pivotCols(); j++ {
		if obj[j].Sign() < 0 {
			return true
		}
	}
	return false
}

// pivotCols returns the number of columns eligible for pivot selection:
// the variable and slack blocks, without the trailing Z and RHS columns.
func (t *Tableau) pivotCols() int {
	return len(t.rows[0]) - 2
}

// clone deep-copies the tableau rows. Labels are shared: they are immutable
// metadata common to every step of a solve.
func (t *Tableau) clone() *Tableau {
	rows := make([][]*big.Rat, len(t.rows))
	for i, row := range t.rows {
		rows[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			rows[i][j] = new(big.Rat).Set(v)
		}
	}
	return &Tableau{rows: rows, vars: t.vars, labels: t.labels}
}
