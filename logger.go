package dpll

import (
	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
)

// tracer is the solver's leveled trace facility. It mirrors gophersat's
// Solver.Verbose bool (_examples/DoOR-Team-gophersat/solver/solver.go) and
// saturday's "const verbose = false" guarded fmt.Println trace style, but
// routes through a structured logger instead of bare stdout writes so a
// caller embedding this solver in a larger program can redirect or filter
// solver trace output like any other log stream.
type tracer struct {
	log *logrus.Logger
}

func newTracer(verbose bool) *tracer {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.TraceLevel)
	} else {
		log.SetLevel(logrus.PanicLevel)
	}
	return &tracer{log: log}
}

func (t *tracer) decision(lit Literal, freelyChosen bool) {
	t.log.WithFields(logrus.Fields{
		"literal":      int(lit),
		"freelyChosen": freelyChosen,
	}).Trace("assigning literal")
}

func (t *tracer) backtrack(decisionLevel int) {
	t.log.WithField("decisionLevel", decisionLevel).Trace("backtracking")
}

// dumpStep writes a one-shot structured dump of a step's remaining clause
// set at trace level, the same debugging job github.com/kr/pretty does in
// saturday.go, gated behind the level check so the pretty-printing cost is
// paid only when tracing is actually enabled.
func (t *tracer) dumpStep(s *step) {
	if !t.log.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	t.log.Tracef("step clauses: %s", pretty.Sprint(s.clauses))
}
