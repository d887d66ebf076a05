package dpll

// Result is the tagged union {Sat(Model) | Unsat} returned by a solve.
type Result struct {
	model Model
	sat   bool
}

func satResult(m Model) Result { return Result{model: m, sat: true} }

func unsatResult() Result { return Result{} }

// IsSat reports whether the result is satisfiable.
func (r Result) IsSat() bool { return r.sat }

// Model returns the satisfying assignment and true, or the zero Model and
// false if the result is Unsat.
func (r Result) Model() (Model, bool) { return r.model, r.sat }

// Release lets a Result participate in a scoped-acquisition discipline; a
// Sat Result owns its Model independently of the solver that produced it,
// so releasing the Result never invalidates a Model the caller is still
// holding a copy of. There is nothing to free in a garbage collected
// runtime: this exists so callers following that ownership discipline have
// a symmetric call to make.
func (r Result) Release() {}
