package dpll

// ConstraintSolver compiles finite-domain variables and distinct/
// equal-to-constant constraints into CNF over a Constraints builder,
// invokes the DPLL core, and decodes the result back into an IntModel. It
// is a thin compiler sitting on top of the boolean core, not a solver in
// its own right.
type ConstraintSolver struct {
	builder *Constraints

	// Verbose is forwarded to the DpllSolver created by each Solve call.
	Verbose bool
}

// NewConstraintSolver returns an empty constraint solver.
func NewConstraintSolver() *ConstraintSolver {
	return &ConstraintSolver{builder: NewConstraints()}
}

// NewVariable allocates a finite-domain variable over [from, to].
func (cs *ConstraintSolver) NewVariable(from, to int) (IntVar, error) {
	return newIntVar(cs.builder, from, to)
}

// Distinct requires the given IntVars to take pairwise distinct values.
func (cs *ConstraintSolver) Distinct(vars ...IntVar) error {
	return distinct(cs.builder, vars)
}

// EqualToConstant forces v to the concrete value k.
func (cs *ConstraintSolver) EqualToConstant(v IntVar, k int) error {
	return equalToConstant(cs.builder, v, k)
}

// IntResult is the tagged union {Sat(IntModel) | Unsat} returned by
// ConstraintSolver.Solve.
type IntResult struct {
	model IntModel
	sat   bool
}

// IsSat reports whether the result is satisfiable.
func (r IntResult) IsSat() bool { return r.sat }

// Model returns the decoded integer assignment and true, or the zero
// IntModel and false if the result is Unsat.
func (r IntResult) Model() (IntModel, bool) { return r.model, r.sat }

// Solve hands the accumulated constraints to a fresh DpllSolver and decodes
// the result. NewDpllSolver consumes cs.builder, which leaves a fresh empty
// builder in its place so cs can keep accepting new variables and
// constraints for a subsequent Solve call.
func (cs *ConstraintSolver) Solve() IntResult {
	solver := NewDpllSolver(cs.builder)
	solver.Verbose = cs.Verbose
	result := solver.Solve()
	defer solver.Release()

	m, ok := result.Model()
	if !ok {
		return IntResult{}
	}
	return IntResult{model: IntModel{model: m}, sat: true}
}
