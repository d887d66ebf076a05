package dpll

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// constraintsToInts reverses a ParseDIMACS mapping to recover the original
// DIMACS-numbered clauses from the Constraints it built, so tests can
// compare against the source text without caring how magnitudes were
// renumbered internally.
func constraintsToInts(cb *Constraints, mapping map[int]Variable) [][]int {
	reverse := make(map[Variable]int, len(mapping))
	for mag, v := range mapping {
		reverse[v] = mag
	}
	out := make([][]int, len(cb.clauses))
	for i, c := range cb.clauses {
		lits := c.Literals()
		row := make([]int, len(lits))
		for j, l := range lits {
			n := reverse[l.Variable()]
			if l.IsNegative() {
				n = -n
			}
			row[j] = n
		}
		out[i] = row
	}
	return out
}

func TestParseDIMACS(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
		want [][]int
	}{
		{
			name: "no vars or clauses",
			text: "c No vars or clauses\np cnf 0 0\n",
			want: [][]int{},
		},
		{
			name: "one var one clause",
			text: "c 1 var, 1 clause\np cnf 1 1\n1 0\n",
			want: [][]int{{1}},
		},
		{
			name: "multiple clauses across lines, empty clauses",
			text: "c Empty clauses\np cnf 3 5\n1 3 0 0 -3 0\n0 -2 -1\n",
			want: [][]int{{1, 3}, {}, {-3}, {}, {-2, -1}},
		},
		{
			name: "missing problem line",
			text: "1 2 0\n-1 0\n",
			want: [][]int{{1, 2}, {-1}},
		},
		{
			name: "comment lines anywhere",
			text: "p cnf 2 1\nc a mid-formula comment\n1 2 0\n",
			want: [][]int{{1, 2}},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cb, mapping, err := ParseDIMACS(strings.NewReader(tt.text))
			if err != nil {
				t.Fatalf("ParseDIMACS: %v", err)
			}
			got := constraintsToInts(cb, mapping)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ParseDIMACS mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDIMACSRejectsMalformed(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
	}{
		{"bad vars count", "p cnf x 1\n1 0\n"},
		{"problem line after clauses", "1 0\np cnf 1 1\n"},
		{"non-cnf format", "p sat 1 1\n1 0\n"},
		{"var exceeds declared count", "p cnf 1 1\n2 0\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseDIMACS(strings.NewReader(tt.text)); err == nil {
				t.Error("ParseDIMACS: got nil error, want an error")
			}
		})
	}
}

func TestWriteDIMACSRoundTrip(t *testing.T) {
	problem := [][]int{{1, 3}, {-3}, {-2, -1}}
	var b strings.Builder
	if err := WriteDIMACS(&b, problem); err != nil {
		t.Fatalf("WriteDIMACS: %v", err)
	}
	cb, mapping, err := ParseDIMACS(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ParseDIMACS(WriteDIMACS(problem)): %v", err)
	}
	got := constraintsToInts(cb, mapping)
	if diff := cmp.Diff(problem, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestParseDIMACSBuildsSolvableConstraints exercises ParseDIMACS end to end:
// parsed text solves through the same DpllSolver every other constructor
// feeds, and the mapping correctly translates a forced unit clause back to
// its source-numbered variable.
func TestParseDIMACSBuildsSolvableConstraints(t *testing.T) {
	text := "p cnf 3 4\n-1 2 0\n-2 3 0\n1 -3 2 0\n2 0\n"
	cb, mapping, err := ParseDIMACS(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseDIMACS: %v", err)
	}
	solver := NewDpllSolver(cb)
	result := solver.Solve()
	if !result.IsSat() {
		t.Fatal("expected Sat")
	}
	model, _ := result.Model()
	if !model.GetAssignment(mapping[2]) {
		t.Error("variable 2 should be forced true by the unit clause {2}")
	}
}
