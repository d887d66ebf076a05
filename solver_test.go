package dpll

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFromClauses mints n variables and posts clauses (1-indexed, negative
// = negated).
func buildFromClauses(t *testing.T, n int, clauses [][]int) *Constraints {
	t.Helper()
	cb := NewConstraints()
	for i := 0; i < n; i++ {
		_, err := cb.NewLiteral()
		require.NoError(t, err)
	}
	for _, clause := range clauses {
		lits := make([]Literal, len(clause))
		for i, v := range clause {
			lits[i] = Literal(v)
		}
		require.NoError(t, cb.Add(lits))
	}
	return cb
}

func clausesFromInts(n int, raw [][]int) []Clause {
	a := newArena()
	clauses := make([]Clause, len(raw))
	for i, c := range raw {
		lits := make([]Literal, len(c))
		for j, v := range c {
			lits[j] = Literal(v)
		}
		cl, err := newClauseFromSlice(a, n, lits)
		if err != nil {
			panic(err)
		}
		clauses[i] = cl
	}
	return clauses
}

// S4 — implication chain, satisfiable.
func TestScenarioImplicationChainSat(t *testing.T) {
	raw := [][]int{
		{-1, 2},
		{-2, 3},
		{-3, 4},
		{-4, 5},
		{-5, -1},
	}
	cb := buildFromClauses(t, 5, raw)
	solver := NewDpllSolver(cb)
	result := solver.Solve()
	require.True(t, result.IsSat())
	model, ok := result.Model()
	require.True(t, ok)
	assert.True(t, model.Satisfies(clausesFromInts(5, raw)))
}

// S5 — forced conflict, unsatisfiable.
func TestScenarioForcedConflictUnsat(t *testing.T) {
	raw := [][]int{
		{-1, -2},
		{1, 3},
		{2, -3},
		{-2, 4},
		{-3, -4},
		{3, 5},
		{3, -5},
	}
	cb := buildFromClauses(t, 5, raw)
	solver := NewDpllSolver(cb)
	result := solver.Solve()
	assert.False(t, result.IsSat())
}

func TestSolverSoundnessAndDeterminism(t *testing.T) {
	raw := [][]int{
		{1, 2, 3},
		{-1, 2},
		{-2, 3},
		{1, -3},
	}
	var models []Model
	for i := 0; i < 3; i++ {
		cb := buildFromClauses(t, 3, raw)
		solver := NewDpllSolver(cb)
		result := solver.Solve()
		require.True(t, result.IsSat())
		model, ok := result.Model()
		require.True(t, ok)
		assert.True(t, model.Satisfies(clausesFromInts(3, raw)))
		models = append(models, model)
	}
	for i := 1; i < len(models); i++ {
		assert.Equal(t, models[0], models[i], "solve should be deterministic given identical input")
	}
}

func TestSolverEmptyClauseIsUnsat(t *testing.T) {
	cb := NewConstraints()
	_, err := cb.NewLiteral()
	require.NoError(t, err)
	require.NoError(t, cb.Add([]Literal{1}))
	require.NoError(t, cb.Add([]Literal{-1}))
	solver := NewDpllSolver(cb)
	result := solver.Solve()
	assert.False(t, result.IsSat())
}

func TestSolverNoClausesIsTriviallySat(t *testing.T) {
	cb := NewConstraints()
	solver := NewDpllSolver(cb)
	result := solver.Solve()
	assert.True(t, result.IsSat())
}

func TestSolverStatsTracksDecisions(t *testing.T) {
	raw := [][]int{
		{-1, -2},
		{1, 3},
		{2, -3},
		{-2, 4},
		{-3, -4},
		{3, 5},
		{3, -5},
	}
	cb := buildFromClauses(t, 5, raw)
	solver := NewDpllSolver(cb)
	solver.Solve()
	assert.Greater(t, solver.Stats.Decisions, 0)
}

// TestSolverVerboseEmitsTraceLogs exercises the Verbose tracing path
// (tracer.decision, tracer.backtrack, tracer.dumpStep) end to end: a forced
// conflict drives at least one decision, backtrack, and step dump, and the
// logrus/kr-pretty wiring behind them must not panic.
func TestSolverVerboseEmitsTraceLogs(t *testing.T) {
	raw := [][]int{
		{-1, -2},
		{1, 3},
		{2, -3},
		{-2, 4},
		{-3, -4},
		{3, 5},
		{3, -5},
	}
	cb := buildFromClauses(t, 5, raw)
	solver := NewDpllSolver(cb)
	solver.Verbose = true

	tr := solver.log()
	tr.log.SetOutput(io.Discard)
	hook := logrustest.NewLocal(tr.log)

	result := solver.Solve()
	assert.False(t, result.IsSat())

	require.NotEmpty(t, hook.AllEntries(), "Verbose solve should emit trace-level log entries")
	for _, entry := range hook.AllEntries() {
		assert.Equal(t, logrus.TraceLevel, entry.Level)
	}
}

func TestBuilderResetsAfterSolverConsumesIt(t *testing.T) {
	cb := NewConstraints()
	_, err := cb.NewLiteral()
	require.NoError(t, err)
	require.NoError(t, cb.Add([]Literal{1}))

	NewDpllSolver(cb) // consumes the clauses and arena, resets cb

	assert.Equal(t, 0, cb.N())
	require.NoError(t, cb.Add([]Literal{})) // posts into the fresh, empty builder
}
