package simplex

// Navigator is a cursor over a solved step history, for walking the
// solution one pivot at a time. All movement operations are no-ops at the
// boundaries: stepping past either end never errors and never moves the
// cursor further.
//
// The history itself is read-only; the cursor is the only mutable state. A
// single owner per Navigator is assumed, share one across goroutines only
// with external synchronization.
type Navigator struct {
	history []*Tableau
	cursor  int
}

// Current returns the tableau under the cursor.
func (n *Navigator) Current() *Tableau {
	return n.history[n.cursor]
}

// Position returns the 1-based step number and the total step count, for a
// "step/total" style indicator.
func (n *Navigator) Position() (step, total int) {
	return n.cursor + 1, len(n.history)
}

// First moves to the initial tableau.
func (n *Navigator) First() {
	n.cursor = 0
}

// Last moves to the last recorded tableau.
func (n *Navigator) Last() {
	n.cursor = len(n.history) - 1
}

// Next advances one step, staying put when already at the last step.
func (n *Navigator) Next() {
	if n.cursor+1 < len(n.history) {
		n.cursor++
	}
}

// Prev steps back once, staying put when already at the first step.
func (n *Navigator) Prev() {
	if n.cursor > 0 {
		n.cursor--
	}
}
