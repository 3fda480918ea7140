package simplex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// floatGrid flattens a tableau to float64 values for easy comparison.
func floatGrid(t *Tableau) [][]float64 {
	out := make([][]float64, t.Rows())
	for i := range out {
		out[i] = make([]float64, t.Cols())
		for j := range out[i] {
			f, _ := t.At(i, j).Float64()
			out[i][j] = f
		}
	}
	return out
}

func TestNewTableau(t *testing.T) {
	// Maximize Z = 12x1 + 16x2
	// Subject to x1 + 2x2 <= 40 and x1 + x2 <= 30.
	tab, err := NewTableau([][]float64{
		{1, 2, 40},
		{1, 1, 30},
		{12, 16, 0},
	})
	assert.NoError(t, err)

	assert.Equal(t, [][]float64{
		{1, 2, 1, 0, 0, 40},
		{1, 1, 0, 1, 0, 30},
		{-12, -16, 0, 0, 1, 0},
	}, floatGrid(tab))

	assert.Equal(t, 2, tab.Vars())
	assert.Equal(t, 2, tab.Constraints())
	assert.Equal(t, []string{"X1", "X2", "S1", "S2", "Z", ""}, tab.Labels())
}

func TestNewTableau_Idempotent(t *testing.T) {
	table := [][]float64{
		{1, 2, 40},
		{1, 1, 30},
		{12, 16, 0},
	}

	first, err := NewTableau(table)
	assert.NoError(t, err)
	second, err := NewTableau(table)
	assert.NoError(t, err)

	assert.Equal(t, floatGrid(first), floatGrid(second))
	assert.Equal(t, first.Labels(), second.Labels())
}

func TestNewTableau_ObjectiveRHSIsNamingSlot(t *testing.T) {
	// A junk value in the objective row's RHS slot must not leak into the
	// tableau: the running objective value always starts at zero.
	tab, err := NewTableau([][]float64{
		{1, 5},
		{2, 99},
	})
	assert.NoError(t, err)
	assert.Equal(t, "0", tab.FormatAt(1, tab.Cols()-1))
}

func TestNewTableau_Malformed(t *testing.T) {
	testdata := []struct {
		name  string
		table [][]float64
	}{
		{
			name:  "nil table",
			table: nil,
		},
		{
			name:  "objective row only",
			table: [][]float64{{1, 2, 0}},
		},
		{
			name: "ragged rows",
			table: [][]float64{
				{1, 2, 40},
				{1, 30},
				{12, 16, 0},
			},
		},
		{
			name: "no variable columns",
			table: [][]float64{
				{40},
				{0},
			},
		},
		{
			name: "non-finite value",
			table: [][]float64{
				{1, math.NaN(), 40},
				{1, 1, 30},
				{12, 16, 0},
			},
		},
	}

	for _, testd := range testdata {
		t.Run(testd.name, func(t *testing.T) {
			_, err := NewTableau(testd.table)
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestProblem_Table_Maximize(t *testing.T) {
	p := NewMaximize()
	x1 := p.AddVariable("X1", 12)
	x2 := p.AddVariable("X2", 16)
	p.AddConstraint(40, Expr(1, x1), Expr(2, x2))
	p.AddConstraint(30, Expr(1, x1), Expr(1, x2))

	assert.Equal(t, [][]float64{
		{1, 2, 40},
		{1, 1, 30},
		{12, 16, 0},
	}, p.table())
}

func TestProblem_Table_MinimizeTransposes(t *testing.T) {
	// Minimize W = 40y1 + 30y2 subject to y1 + y2 >= 12 and 2y1 + y2 >= 16.
	// The assembled table is the transpose: the dual maximization.
	p := NewMinimize()
	y1 := p.AddVariable("Y1", 40)
	y2 := p.AddVariable("Y2", 30)
	p.AddConstraint(12, Expr(1, y1), Expr(1, y2))
	p.AddConstraint(16, Expr(2, y1), Expr(1, y2))

	assert.Equal(t, [][]float64{
		{1, 2, 40},
		{1, 1, 30},
		{12, 16, 0},
	}, p.table())
}

func TestProblem_UnmentionedVariablesGetZeroCoefficient(t *testing.T) {
	p := NewMaximize()
	x1 := p.AddVariable("", 1)
	p.AddVariable("", 1)
	p.AddConstraint(5, Expr(2, x1))

	assert.Equal(t, [][]float64{
		{2, 0, 5},
		{1, 1, 0},
	}, p.table())
}

func TestProblem_DefaultVariableNames(t *testing.T) {
	p := NewMaximize()
	p.AddVariable("", 1)
	p.AddVariable("width", 2)
	v := p.AddVariable("", 3)

	assert.Equal(t, "X3", v.Name)

	p.AddConstraint(10, Expr(1, v))
	tab, err := p.InitialTableau()
	assert.NoError(t, err)
	assert.Equal(t, []string{"X1", "width", "X3", "S1", "Z", ""}, tab.Labels())
}

func TestAddConstraint_PanicsOnUndeclaredVariable(t *testing.T) {
	p := NewMaximize()
	p.AddVariable("X1", 1)
	foreign := &Variable{Name: "X9", Coefficient: 1}

	assert.Panics(t, func() {
		p.AddConstraint(1, Expr(1, foreign))
	})
}

func TestAddConstraint_PanicsOnEmptyExpressions(t *testing.T) {
	p := NewMaximize()
	assert.Panics(t, func() {
		p.AddConstraint(1)
	})
}

func TestInitialTableau_RequiresVariablesAndConstraints(t *testing.T) {
	empty := NewMaximize()
	_, err := empty.InitialTableau()
	assert.ErrorIs(t, err, ErrMalformedInput)

	noConstraints := NewMaximize()
	noConstraints.AddVariable("X1", 1)
	_, err = noConstraints.InitialTableau()
	assert.ErrorIs(t, err, ErrMalformedInput)

	_, err = noConstraints.Solve()
	assert.ErrorIs(t, err, ErrMalformedInput)
}
