package dpll

// satStatus classifies a Step's clause set.
type satStatus int

const (
	satUnknown satStatus = iota
	satSat
	satUnsat
)

// step is one node of the DPLL search tree: a clause set at a point in the
// search, plus the decision metadata needed to reconstruct a Model and to
// backtrack.
type step struct {
	arena   *arena
	clauses []Clause

	decisionLevel int
	decision      Literal
	hasDecision   bool
	freelyChosen  bool
}

// newRootStep adopts constraints' clause list and arena as the root of the
// search tree.
func newRootStep(clauses []Clause, a *arena) *step {
	return &step{arena: a, clauses: clauses}
}

// release drops the step's arena, freeing its clause literal buffers
// independently of every other step on the stack.
func (s *step) release() {
	s.arena.release()
	s.clauses = nil
}

// isSat classifies the step: satSat if no clauses remain, satUnsat if any
// clause is empty, satUnknown otherwise.
func (s *step) isSat() satStatus {
	for _, c := range s.clauses {
		if c.isEmpty() {
			return satUnsat
		}
	}
	if len(s.clauses) == 0 {
		return satSat
	}
	return satUnknown
}

// unitPropagation returns the first literal of the first unit clause found
// in insertion order, and false if there is none.
func (s *step) unitPropagation() (Literal, bool) {
	for _, c := range s.clauses {
		if l, ok := c.Unit(); ok {
			return l, true
		}
	}
	return 0, false
}

// litOccurrence tracks which polarities of a variable have been observed
// across a clause set.
type litOccurrence uint8

const (
	occNone litOccurrence = iota
	occPositive
	occNegative
	occBoth
)

// pureLiteral scans the step's clause set for a variable that occurs with
// only one polarity and returns that polarity as a literal, scanning
// variables in ascending order. scratch is a caller-owned buffer of size n
// (the current variable count) reused across calls to avoid allocation.
func (s *step) pureLiteral(scratch []litOccurrence) (Literal, bool) {
	for i := range scratch {
		scratch[i] = occNone
	}
	for _, c := range s.clauses {
		for _, l := range c.lits {
			idx := l.Index()
			switch scratch[idx] {
			case occNone:
				if l.IsPositive() {
					scratch[idx] = occPositive
				} else {
					scratch[idx] = occNegative
				}
			case occPositive:
				if l.IsNegative() {
					scratch[idx] = occBoth
				}
			case occNegative:
				if l.IsPositive() {
					scratch[idx] = occBoth
				}
			}
		}
	}
	for idx, occ := range scratch {
		switch occ {
		case occPositive:
			return Variable(idx + 1).Pos(), true
		case occNegative:
			return Variable(idx + 1).Neg(), true
		}
	}
	return 0, false
}

// eliminateStepLiteral builds the successor step obtained by eliminating l
// from every clause of s: a fresh arena holds the surviving clauses, and
// satisfied clauses are dropped entirely. decisionLevel is incremented only
// when freelyChosen.
func eliminateStepLiteral(s *step, l Literal, freelyChosen bool) *step {
	next := &step{
		arena:         newArena(),
		decision:      l,
		hasDecision:   true,
		freelyChosen:  freelyChosen,
		decisionLevel: s.decisionLevel,
	}
	if freelyChosen {
		next.decisionLevel++
	}
	next.clauses = make([]Clause, 0, len(s.clauses))
	for _, c := range s.clauses {
		reduced, satisfied := eliminateClauseLiteral(c, l, next.arena)
		if satisfied {
			continue
		}
		next.clauses = append(next.clauses, reduced)
	}
	return next
}
