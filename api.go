package simplex

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrMalformedInput is returned when the supplied coefficient table is
// structurally unusable: ragged rows, fewer than one variable or one
// constraint, or non-finite values.
var ErrMalformedInput = errors.New("simplex: malformed coefficient table")

// Problem is a linear program under construction. Declare variables first,
// then add constraints over them, then call Solve.
//
// For a maximization, constraints are read as "expression ≤ rhs". For a
// minimization they are read as "expression ≥ rhs" and the coefficient
// table is transposed before building the tableau (the classical dual
// construction), so a feasible all-slack starting basis always exists. The
// tableau builder itself never sees the orientation: it always negates the
// row flagged as objective, whatever the setup produced.
type Problem struct {
	// ObjectiveName labels the objective column in the solution table.
	// Defaults to "Z" when left empty.
	ObjectiveName string

	maximize    bool
	variables   []*Variable
	constraints []constraint
}

// Variable is one decision variable of a Problem.
type Variable struct {
	// display name used for column labels, e.g. "X1"
	Name string

	// coefficient of the variable in the objective function
	Coefficient float64
}

// an expression of a variable and a coefficient for use in defining
// constraints, e.g. "2 * x1"
type expression struct {
	coef     float64
	variable *Variable
}

type constraint struct {
	expressions []expression
	rhs         float64
}

// NewMaximize returns a Problem that maximizes its objective, with
// constraints read as "≤ rhs".
func NewMaximize() *Problem {
	return &Problem{maximize: true}
}

// NewMinimize returns a Problem that minimizes its objective, with
// constraints read as "≥ rhs".
func NewMinimize() *Problem {
	return &Problem{}
}

// Maximize reports whether the problem maximizes its objective.
func (p *Problem) Maximize() bool {
	return p.maximize
}

// AddVariable declares a decision variable with its objective coefficient
// and returns a reference for use in constraint expressions. An empty name
// gets a default of X1, X2, ... by declaration order.
func (p *Problem) AddVariable(name string, coef float64) *Variable {
	if name == "" {
		name = fmt.Sprintf("X%d", len(p.variables)+1)
	}
	v := &Variable{
		Name:        name,
		Coefficient: coef,
	}
	p.variables = append(p.variables, v)

	return v
}

// Expr pairs a coefficient with a declared variable for use in
// AddConstraint.
func Expr(coef float64, v *Variable) expression {
	return expression{coef: coef, variable: v}
}

// AddConstraint adds one inequality over previously declared variables.
// Variables not mentioned get a zero coefficient. Panics if an expression
// references a variable that was not declared on this problem; that is a
// programmer error, not an input error.
func (p *Problem) AddConstraint(rhs float64, exprs ...expression) {
	if len(exprs) == 0 {
		panic("must add expressions")
	}

	for _, e := range exprs {
		if !p.hasVariable(e.variable) {
			panic("provided expression contains a variable that has not been declared to this problem yet")
		}
	}

	p.constraints = append(p.constraints, constraint{
		expressions: exprs,
		rhs:         rhs,
	})
}

// Check whether the variable pointer is currently declared on the problem.
func (p *Problem) hasVariable(v *Variable) bool {
	for _, declared := range p.variables {
		if declared == v {
			return true
		}
	}

	return false
}

// table assembles the coefficient table the tableau builder consumes: one
// row per constraint followed by the objective row, each row holding the
// variable coefficients with the RHS last. The objective row's RHS slot is
// always zero. For a minimization the table is transposed.
func (p *Problem) table() [][]float64 {
	n := len(p.variables)
	m := len(p.constraints)

	rows := make([][]float64, 0, m+1)
	for _, c := range p.constraints {
		row := make([]float64, n+1)
		for _, e := range c.expressions {
			row[p.indexOf(e.variable)] += e.coef
		}
		row[n] = c.rhs
		rows = append(rows, row)
	}
	obj := make([]float64, n+1)
	for i, v := range p.variables {
		obj[i] = v.Coefficient
	}
	rows = append(rows, obj)

	if p.maximize {
		return rows
	}
	return transpose(rows)
}

func (p *Problem) indexOf(v *Variable) int {
	for i, declared := range p.variables {
		if declared == v {
			return i
		}
	}
	panic("variable not declared on this problem")
}

// transpose flips a rectangular table so a minimization's dual can be
// solved with the same all-slack starting basis. The original objective row
// becomes the last column and the original RHS column becomes the last row;
// the objective RHS slot stays zero by construction.
func transpose(table [][]float64) [][]float64 {
	rows := len(table)
	cols := len(table[0])
	out := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = table[i][j]
		}
	}
	return out
}

// Solve builds the initial tableau and runs the simplex method to
// completion with default options. See SolveTableau for the failure modes.
func (p *Problem) Solve() (*Solution, error) {
	return p.SolveWithOptions(SolveOptions{})
}

// SolveWithOptions is Solve with an explicit pivot cap and middleware.
func (p *Problem) SolveWithOptions(opts SolveOptions) (*Solution, error) {
	t, err := p.InitialTableau()
	if err != nil {
		return nil, err
	}

	sol, err := SolveTableau(t, opts)
	if sol != nil {
		sol.transposed = !p.maximize
	}
	return sol, err
}

// InitialTableau builds the standard-form starting tableau for the problem
// without solving it.
func (p *Problem) InitialTableau() (*Tableau, error) {
	if len(p.variables) == 0 || len(p.constraints) == 0 {
		return nil, fmt.Errorf("%w: need at least one variable and one constraint", ErrMalformedInput)
	}

	objName := p.ObjectiveName
	if objName == "" {
		objName = "Z"
	}

	if p.maximize {
		names := make([]string, len(p.variables))
		for i, v := range p.variables {
			names[i] = v.Name
		}
		return newTableau(p.table(), names, objName)
	}

	// Transposed table: its tableau columns no longer correspond to the
	// problem's own variables, so labels fall back to positional names.
	return newTableau(p.table(), nil, objName)
}

// NewTableau converts a raw coefficient table into the initial
// standard-form tableau. The last row must be the objective, the last
// column the RHS; the objective row's RHS slot is a naming slot and is
// forced to zero. Variable coefficients of the objective row are negated so
// the termination test "no negative entries remain" is uniform, and one
// slack column per constraint is inserted before the RHS, followed by the
// unit Z column.
//
// Returns ErrMalformedInput for ragged rows, fewer than one variable or
// constraint, or non-finite values. All constraint RHS values being
// non-negative is a documented caller precondition, not validated here:
// violating it makes the ratio test degenerate rather than erroring.
func NewTableau(table [][]float64) (*Tableau, error) {
	return newTableau(table, nil, "Z")
}

func newTableau(table [][]float64, varNames []string, objName string) (*Tableau, error) {
	if err := validateTable(table); err != nil {
		return nil, err
	}

	m := len(table) - 1    // constraints
	n := len(table[0]) - 1 // decision variables
	cols := n + m + 2      // vars, slacks, Z, RHS

	rows := make([][]*big.Rat, m+1)
	for i, src := range table {
		row := make([]*big.Rat, cols)

		// decision variable block; the objective row is stored negated
		for j := 0; j < n; j++ {
			v := ratFromFloat(src[j])
			if i == m {
				v.Neg(v)
			}
			row[j] = v
		}

		// slack block plus the Z column: row i owns slot i, so constraint
		// row i gets its slack unit and the objective row gets the Z unit
		for j := 0; j <= m; j++ {
			if j == i {
				row[n+j] = big.NewRat(1, 1)
			} else {
				row[n+j] = new(big.Rat)
			}
		}

		// RHS; the objective row's RHS starts at zero regardless of input
		if i == m {
			row[cols-1] = new(big.Rat)
		} else {
			row[cols-1] = ratFromFloat(src[n])
		}

		rows[i] = row
	}

	return &Tableau{
		rows:   rows,
		vars:   n,
		labels: columnLabels(n, m, varNames, objName),
	}, nil
}

// columnLabels produces one label per column: variable names (X1..Xn when
// not supplied), slack names S1..Sm, the objective name, and a blank slot
// for the RHS column.
func columnLabels(n, m int, varNames []string, objName string) []string {
	labels := make([]string, 0, n+m+2)
	for j := 0; j < n; j++ {
		if varNames != nil && varNames[j] != "" {
			labels = append(labels, varNames[j])
		} else {
			labels = append(labels, fmt.Sprintf("X%d", j+1))
		}
	}
	for i := 0; i < m; i++ {
		labels = append(labels, fmt.Sprintf("S%d", i+1))
	}
	labels = append(labels, objName, "")

	return labels
}

func validateTable(table [][]float64) error {
	if len(table) < 2 {
		return fmt.Errorf("%w: need at least one constraint row and the objective row, got %d rows", ErrMalformedInput, len(table))
	}
	width := len(table[0])
	if width < 2 {
		return fmt.Errorf("%w: need at least one variable column and the RHS column, got %d columns", ErrMalformedInput, width)
	}
	for i, row := range table {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d columns, expected %d", ErrMalformedInput, i, len(row), width)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: entry (%d,%d) is not finite", ErrMalformedInput, i, j)
			}
		}
	}

	return nil
}
