package simplex

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrUnbounded is returned when no leaving row exists for the selected
// entering column: the objective can grow without limit along that
// direction and the problem has no finite optimum.
var ErrUnbounded = errors.New("simplex: problem is unbounded")

// ErrPivotLimit is returned when the solve exceeds the caller-imposed pivot
// cap. The naive Dantzig rule can cycle forever on pathological degenerate
// inputs, so a cap is the caller's only termination guarantee there.
var ErrPivotLimit = errors.New("simplex: pivot limit exceeded")

// Status describes where a solve ended up.
type Status string

const (
	// StatusOptimal: the objective row holds no negative entries; the last
	// tableau of the history is the final answer.
	StatusOptimal Status = "optimal"

	// StatusUnbounded: an entering column had no strictly positive
	// constraint entry. The history holds every completed step but no
	// final answer.
	StatusUnbounded Status = "unbounded"

	// StatusIterating: the solve stopped at the pivot cap before reaching
	// a terminal state.
	StatusIterating Status = "iterating"
)

// Pivot identifies the tableau entry used to reduce one step into the
// next.
type Pivot struct {
	Row   int
	Col   int
	Value *big.Rat
}

// SolveOptions tunes a solve. The zero value solves with no pivot cap and
// no instrumentation.
type SolveOptions struct {
	// MaxPivots caps the number of pivots performed; 0 means no cap.
	MaxPivots int

	// Middleware receives each pivot as it is selected.
	Middleware PivotMiddleware
}

// Solution is the outcome of one solve: the ordered step history plus the
// terminal status. History index 0 is the initial pre-pivot tableau; when
// Status is StatusOptimal the last entry is the optimal tableau. The
// history is append-only during the solve and read-only afterward, so it is
// safe to share across concurrent readers.
type Solution struct {
	History []*Tableau
	Status  Status

	// set when the problem was a minimization solved through its
	// transposed table; changes how variable values are read off.
	transposed bool
}

// SolveTableau drives the initial tableau to optimality with Dantzig's
// pivoting rule, recording every intermediate tableau.
//
// On ErrUnbounded and ErrPivotLimit the returned Solution still carries the
// accumulated history for diagnostics, with a non-terminal Status so a
// consumer knows not to present its last entry as a final answer.
func SolveTableau(initial *Tableau, opts SolveOptions) (*Solution, error) {
	if initial == nil {
		return nil, fmt.Errorf("%w: nil tableau", ErrMalformedInput)
	}
	mw := opts.Middleware
	if mw == nil {
		mw = dummyMiddleware{}
	}

	sol := &Solution{
		History: []*Tableau{initial},
		Status:  StatusIterating,
	}

	current := initial
	for pivots := 0; ; pivots++ {
		// Stop once the objective row has no negative entry among the
		// variable and slack columns.
		if !current.hasNegativeObjective() {
			sol.Status = StatusOptimal
			return sol, nil
		}

		if opts.MaxPivots > 0 && pivots >= opts.MaxPivots {
			return sol, fmt.Errorf("%w: stopped after %d pivots", ErrPivotLimit, pivots)
		}

		pv, ok := findPivot(current)
		if !ok {
			sol.Status = StatusUnbounded
			return sol, fmt.Errorf("%w: no leaving row for column %d", ErrUnbounded, pv.Col)
		}
		mw.ProcessPivot(pv)

		current = reduce(current, pv)
		sol.History = append(sol.History, current)
	}
}

// findPivot selects the pivot for the current tableau.
//
// Entering column: the most negative objective-row entry among the variable
// and slack columns, leftmost on ties. Leaving row: the constraint row with
// the smallest RHS/entry ratio among rows whose entry in the entering
// column is strictly positive, lowest index on ties. Returns ok=false, with
// only Col populated, when no row qualifies: the problem is unbounded along
// that column.
func findPivot(t *Tableau) (Pivot, bool) {
	obj := t.rows[len(t.rows)-1]
	rhs := len(obj) - 1

	col := 0
	for j := 1; j < t.pivotCols(); j++ {
		if obj[j].Cmp(obj[col]) < 0 {
			col = j
		}
	}

	row := -1
	var best *big.Rat
	for i := 0; i < len(t.rows)-1; i++ {
		entry := t.rows[i][col]
		if entry.Sign() <= 0 {
			// a non-positive entry can never be binding in this
			// direction; excluded from the ratio test
			continue
		}
		ratio := new(big.Rat).Quo(t.rows[i][rhs], entry)
		if row < 0 || ratio.Cmp(best) < 0 {
			row, best = i, ratio
		}
	}
	if row < 0 {
		return Pivot{Row: -1, Col: col}, false
	}

	return Pivot{Row: row, Col: col, Value: t.At(row, col)}, true
}

// reduce performs one pivot, producing a new tableau and leaving t
// untouched. The pivot row is scaled so the pivot entry becomes 1, then
// every other row r gets k times the new pivot row subtracted, where k is
// r's entry in the pivot column. That clears the pivot column everywhere
// but the pivot row.
func reduce(t *Tableau, pv Pivot) *Tableau {
	next := t.clone()
	prow := next.rows[pv.Row]

	inv := new(big.Rat).Inv(pv.Value)
	for _, v := range prow {
		v.Mul(v, inv)
	}

	tmp := new(big.Rat)
	for i, row := range next.rows {
		if i == pv.Row {
			continue
		}
		// capture the multiplier before the column entry is cleared
		k := new(big.Rat).Set(row[pv.Col])
		if k.Sign() == 0 {
			continue
		}
		for j, v := range row {
			v.Sub(v, tmp.Mul(k, prow[j]))
		}
	}

	return next
}

// Optimal reports whether the solve reached a finite optimum.
func (s *Solution) Optimal() bool {
	return s.Status == StatusOptimal
}

// Steps returns the number of tableaux in the history, including the
// initial one.
func (s *Solution) Steps() int {
	return len(s.History)
}

// Final returns the optimal tableau, or nil when the solve did not reach
// StatusOptimal; a non-terminal history has no final step to present.
func (s *Solution) Final() *Tableau {
	if !s.Optimal() {
		return nil
	}
	return s.History[len(s.History)-1]
}

// ObjectiveValue returns the optimal objective value, or nil when the
// solve did not terminate at an optimum.
func (s *Solution) ObjectiveValue() *big.Rat {
	final := s.Final()
	if final == nil {
		return nil
	}
	return final.ObjectiveValue()
}

// VariableValues reads the decision-variable values off the final tableau,
// in declaration order. For a maximization a variable is basic when its
// column is a unit column; its value is that row's RHS, and non-basic
// variables are 0. For a minimization solved through the transposed table
// the values are the dual prices: the objective-row entries of the slack
// columns.
//
// Returns nil when the solve did not reach an optimum.
func (s *Solution) VariableValues() []*big.Rat {
	final := s.Final()
	if final == nil {
		return nil
	}

	if s.transposed {
		obj := final.rows[len(final.rows)-1]
		vals := make([]*big.Rat, final.Constraints())
		for i := range vals {
			vals[i] = new(big.Rat).Set(obj[final.vars+i])
		}
		return vals
	}

	vals := make([]*big.Rat, final.vars)
	for j := range vals {
		vals[j] = new(big.Rat)
		// only a unit entry in a constraint row makes the variable basic
		if r, ok := unitColumnRow(final, j); ok && r < final.Constraints() {
			vals[j].Set(final.rows[r][final.Cols()-1])
		}
	}
	return vals
}

// Navigator returns a fresh step cursor over the history, positioned at
// the initial tableau.
func (s *Solution) Navigator() *Navigator {
	return &Navigator{history: s.History}
}

// unitColumnRow reports whether column j is a unit column, and if so which
// row holds its 1.
func unitColumnRow(t *Tableau, j int) (int, bool) {
	row := -1
	for i := range t.rows {
		if t.rows[i][j].Sign() == 0 {
			continue
		}
		if row >= 0 || t.rows[i][j].Cmp(ratOne) != 0 {
			return -1, false
		}
		row = i
	}
	if row < 0 {
		return -1, false
	}
	return row, true
}

var ratOne = big.NewRat(1, 1)
