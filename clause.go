package dpll

// Clause is a mutable ordered sequence of literals, interpreted as their
// disjunction. An empty Clause denotes falsehood. A Clause of length one is a
// unit clause.
type Clause struct {
	lits []Literal
}

// newClauseFromSlice validates lits against an n-variable universe and
// copies them into a, returning the arena-owned Clause.
func newClauseFromSlice(a *arena, n int, lits []Literal) (Clause, error) {
	for _, l := range lits {
		if !validLiteral(l, n) {
			return Clause{}, ErrInvalidLiteral
		}
	}
	return Clause{lits: a.alloc(lits)}, nil
}

// Len reports the number of literals remaining in the clause.
func (c Clause) Len() int { return len(c.lits) }

// Literals returns the clause's literals in insertion order. The returned
// slice aliases the clause's arena-owned buffer and must not be mutated.
func (c Clause) Literals() []Literal { return c.lits }

// Unit returns the clause's single literal and true iff the clause has
// exactly one literal.
func (c Clause) Unit() (Literal, bool) {
	if len(c.lits) == 1 {
		return c.lits[0], true
	}
	return 0, false
}

// isEmpty reports whether the clause has no literals, i.e. is a conflict.
func (c Clause) isEmpty() bool { return len(c.lits) == 0 }

// eliminateClauseLiteral scans clause for l: a literal equal to l satisfies
// the clause (returns satisfied=true); a literal sharing l's variable but the
// opposite sign is dropped (resolves false, removed from the disjunction);
// every other literal is kept. The surviving literals are copied into a new
// buffer owned by a, preserving original order.
func eliminateClauseLiteral(c Clause, l Literal, a *arena) (result Clause, satisfied bool) {
	kept := make([]Literal, 0, len(c.lits))
	for _, k := range c.lits {
		switch {
		case k == l:
			return Clause{}, true
		case isSameVariable(k, l):
			// k == not(l): resolves to false, drop it.
		default:
			kept = append(kept, k)
		}
	}
	return Clause{lits: a.alloc(kept)}, false
}
