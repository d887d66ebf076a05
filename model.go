package dpll

// Model is a dense boolean assignment indexed by variable index, built once
// from the decision stack at the moment a search terminates Sat. It owns its
// assignments slice independently of the solver that produced it and
// outlives it.
type Model struct {
	assignments []bool
}

// newModel reconstructs a Model from a DPLL search stack: for every step
// with a decision L, assignments[L.Index()] is set to L.IsPositive().
// Variables that never received a decision default to false.
func newModel(n int, stack []*step) Model {
	assignments := make([]bool, n)
	for _, s := range stack {
		if s.hasDecision {
			assignments[s.decision.Index()] = s.decision.IsPositive()
		}
	}
	return Model{assignments: assignments}
}

// GetAssignment returns the Boolean value assigned to v.
func (m Model) GetAssignment(v Variable) bool {
	return m.assignments[v.Index()]
}

// Satisfies reports whether every clause of clauses has at least one true
// literal under m. Used by solver-soundness tests.
func (m Model) Satisfies(clauses []Clause) bool {
	for _, c := range clauses {
		ok := false
		for _, l := range c.Literals() {
			if m.GetAssignment(l.Variable()) == l.IsPositive() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
