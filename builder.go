package dpll

// Constraints accumulates clauses and mints fresh Boolean variables. It owns
// its clause arena and clause list until it is consumed by NewDpllSolver,
// at which point ownership transfers into the root Step.
type Constraints struct {
	arena   *arena
	clauses []Clause
	n       int
}

// NewConstraints returns an empty builder.
func NewConstraints() *Constraints {
	return &Constraints{arena: newArena()}
}

// N reports how many Boolean variables have been minted so far.
func (c *Constraints) N() int { return c.n }

// NewLiteral mints a fresh Boolean variable and returns its positive
// literal. Fails with ErrTooManyVariables if the literal representation
// would overflow.
func (c *Constraints) NewLiteral() (Literal, error) {
	if c.n >= maxVariable {
		return 0, ErrTooManyVariables
	}
	c.n++
	return Variable(c.n).Pos(), nil
}

// Add validates literals against the current variable count, copies them
// into the builder's arena, and appends the resulting clause.
func (c *Constraints) Add(literals []Literal) error {
	cl, err := newClauseFromSlice(c.arena, c.n, literals)
	if err != nil {
		return err
	}
	c.clauses = append(c.clauses, cl)
	return nil
}

// AddClause appends an already arena-owned clause without revalidating its
// literals.
func (c *Constraints) AddClause(cl Clause) {
	c.clauses = append(c.clauses, cl)
}

// take hands the builder's clause list, arena, and variable count to a new
// owner and resets the builder to a fresh empty state: callers that keep
// adding clauses to c after a solve post into the new, empty builder, not
// the one just consumed.
func (c *Constraints) take() (clauses []Clause, a *arena, n int) {
	clauses, a, n = c.clauses, c.arena, c.n
	c.clauses = nil
	c.arena = newArena()
	c.n = 0
	return clauses, a, n
}
