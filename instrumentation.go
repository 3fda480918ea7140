package simplex

// PivotMiddleware receives each pivot as the solver selects it. The
// descriptor is transient: it is not retained in the step history, so an
// observer is the only way to see which entries drove the reduction.
type PivotMiddleware interface {
	ProcessPivot(Pivot)
}

type dummyMiddleware struct{}

func (d dummyMiddleware) ProcessPivot(p Pivot) {}

// PivotRecorder collects every pivot of a solve, in order. Useful for
// diagnostics and for asserting pivot sequences in tests.
type PivotRecorder struct {
	Pivots []Pivot
}

func (r *PivotRecorder) ProcessPivot(p Pivot) {
	r.Pivots = append(r.Pivots, p)
}

// DegeneratePivots counts pivots whose minimum ratio was zero, i.e. pivots
// that made no progress in the objective value. A long run of these is the
// classic symptom of cycling under the Dantzig rule.
func (r *PivotRecorder) DegeneratePivots(history []*Tableau) int {
	count := 0
	for i := range r.Pivots {
		if i+1 >= len(history) {
			break
		}
		before := history[i].ObjectiveValue()
		after := history[i+1].ObjectiveValue()
		if before.Cmp(after) == 0 {
			count++
		}
	}
	return count
}
