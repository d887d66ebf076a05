package dpll

// Stats records purely informational counters about a solve, following the
// shape of gophersat's Stats (_examples/DoOR-Team-gophersat/solver/solver.go)
// and saturday's stats map (saturday.go's Solve) — exposed here as a typed
// struct rather than an untyped map, since every counter is known statically.
type Stats struct {
	Decisions               int
	UnitPropagations        int
	PureLiteralEliminations int
	Backtracks              int
}

// DpllSolver drives the DPLL search over a clause set: unit propagation,
// pure-literal elimination, chronological backtracking with polarity flip,
// and branching decision selection, in that order of precedence.
type DpllSolver struct {
	stack []*step
	n     int

	// Scratch buffers, sized n and allocated once at init, reused by every
	// chooseLiteral/pureLiteral call to avoid per-iteration allocation.
	usedVariables    []bool
	pureLiteralState []litOccurrence

	// Verbose enables trace-level logging of the search. It may be set any
	// time before Solve is called.
	Verbose bool

	Stats Stats

	tracer *tracer
}

// NewDpllSolver consumes c (transferring its clause list and arena into the
// root step) and returns a solver ready to search.
func NewDpllSolver(c *Constraints) *DpllSolver {
	clauses, a, n := c.take()
	root := newRootStep(clauses, a)
	return &DpllSolver{
		stack:            []*step{root},
		n:                n,
		usedVariables:    make([]bool, n),
		pureLiteralState: make([]litOccurrence, n),
	}
}

func (d *DpllSolver) top() *step { return d.stack[len(d.stack)-1] }

func (d *DpllSolver) push(s *step) { d.stack = append(d.stack, s) }

func (d *DpllSolver) log() *tracer {
	if d.tracer == nil {
		d.tracer = newTracer(d.Verbose)
	}
	return d.tracer
}

// Solve runs the DPLL search to completion and returns Sat(Model) or Unsat.
// It never blocks on I/O and runs synchronously to a terminal result.
func (d *DpllSolver) Solve() Result {
	for {
		if len(d.stack) == 0 {
			return unsatResult()
		}
		top := d.top()
		switch top.isSat() {
		case satSat:
			return satResult(newModel(d.n, d.stack))
		case satUnsat:
			if top.decisionLevel == 0 {
				return unsatResult()
			}
			d.backtrack()
			continue
		}

		if l, ok := top.unitPropagation(); ok {
			d.Stats.UnitPropagations++
			d.log().decision(l, false)
			d.push(eliminateStepLiteral(top, l, false))
			continue
		}
		if l, ok := top.pureLiteral(d.pureLiteralState); ok {
			d.Stats.PureLiteralEliminations++
			d.log().decision(l, false)
			d.push(eliminateStepLiteral(top, l, false))
			continue
		}

		l := d.chooseLiteral()
		d.Stats.Decisions++
		d.log().decision(l, true)
		next := eliminateStepLiteral(top, l, true)
		d.log().dumpStep(next)
		d.push(next)
	}
}

// chooseLiteral marks every variable that already appears as a decision
// anywhere on the stack and returns the positive literal of the
// lowest-indexed unmarked variable. It is only ever invoked when isSat
// returned satUnknown, which guarantees at least one unmarked variable
// exists; if every variable were marked, the clause set would already be
// satisfied and isSat would have returned satSat.
func (d *DpllSolver) chooseLiteral() Literal {
	for i := range d.usedVariables {
		d.usedVariables[i] = false
	}
	for _, s := range d.stack {
		if s.hasDecision {
			d.usedVariables[s.decision.Index()] = true
		}
	}
	for idx, used := range d.usedVariables {
		if !used {
			return Variable(idx + 1).Pos()
		}
	}
	panic("dpll: chooseLiteral found no unassigned variable; isSat should have reported Sat")
}

// backtrack pops steps until it finds one that was freely chosen with a
// positive decision, then pushes the negated-polarity successor of its
// parent and returns. Forced (unit/pure) steps carry no polarity to flip and
// are simply discarded. If the stack empties without finding such a step,
// the search is exhausted and the next Solve iteration reports Unsat.
func (d *DpllSolver) backtrack() {
	d.Stats.Backtracks++
	for len(d.stack) > 0 {
		popped := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		popped.release()

		if popped.freelyChosen && popped.decision.IsPositive() {
			d.log().backtrack(popped.decisionLevel)
			parent := d.top()
			d.push(eliminateStepLiteral(parent, popped.decision.Not(), true))
			return
		}
	}
}

// Release tears down every step remaining on the solver's stack. It does
// not invalidate any Model already returned by Solve, which owns its
// assignments independently.
func (d *DpllSolver) Release() {
	for _, s := range d.stack {
		s.release()
	}
	d.stack = nil
}
