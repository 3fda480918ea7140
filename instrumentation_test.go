package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPivotRecorder_RecordsEveryPivot(t *testing.T) {
	recorder := &PivotRecorder{}
	sol, err := maximizeFixture().SolveWithOptions(SolveOptions{Middleware: recorder})
	assert.NoError(t, err)

	assert.Len(t, recorder.Pivots, sol.Steps()-1)
}

func TestPivotRecorder_DegeneratePivots(t *testing.T) {
	// both fixture pivots strictly improve the objective (0 → 320 → 400)
	recorder := &PivotRecorder{}
	sol, err := maximizeFixture().SolveWithOptions(SolveOptions{Middleware: recorder})
	assert.NoError(t, err)

	assert.Equal(t, 0, recorder.DegeneratePivots(sol.History))
}

func TestPivotRecorder_DegeneratePivots_TruncatedHistory(t *testing.T) {
	// a recorder carrying more pivots than the history has steps must not
	// read past the history's end
	recorder := &PivotRecorder{}
	sol, err := maximizeFixture().SolveWithOptions(SolveOptions{Middleware: recorder})
	assert.NoError(t, err)

	assert.Equal(t, 0, recorder.DegeneratePivots(sol.History[:1]))
}
