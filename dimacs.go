package dpll

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses text in the DIMACS CNF format directly onto a fresh
// Constraints builder. Each declared variable magnitude mints a fresh
// Literal the first time it is referenced — renumbered densely in the order
// each magnitude is first seen, so the source numbering need not be
// contiguous — and each clause is posted to the builder as soon as its
// terminating 0 is read, rather than buffered as an intermediate [][]int.
// The returned map recovers the original DIMACS magnitude for every
// Variable minted, which callers need in order to translate a resulting
// Model back to the source numbering.
//
// For convenience, a few non-standard variations are accepted, as in the
// teacher:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not just in
//     the preamble.
//   - The problem line may be missing.
func ParseDIMACS(r io.Reader) (*Constraints, map[int]Variable, error) {
	cb := NewConstraints()
	mapping := make(map[int]Variable)

	variableFor := func(mag int) (Variable, error) {
		if v, ok := mapping[mag]; ok {
			return v, nil
		}
		lit, err := cb.NewLiteral()
		if err != nil {
			return 0, err
		}
		v := lit.Variable()
		mapping[mag] = v
		return v, nil
	}

	var problem struct {
		vars    int
		clauses int
	}
	var clauseLits []Literal
	clauseCount := 0

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if clauseCount > 0 {
				return nil, nil, errors.New("problem line appears after clauses")
			}
			if problem.vars > 0 {
				return nil, nil, errors.New("multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, nil, fmt.Errorf("malformed problem line %q", line)
			}
			if fields[0] != "p" {
				return nil, nil, fmt.Errorf("problem line starts with unexpected signifier %q", fields[0])
			}
			if fields[1] != "cnf" {
				return nil, nil, fmt.Errorf("only cnf supported; got %q", fields[1])
			}
			var err error
			problem.vars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, nil, fmt.Errorf("malformed #vars in problem line: %s", err)
			}
			problem.clauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, nil, fmt.Errorf("malformed #clauses in problem line: %s", err)
			}
			if problem.vars < 0 {
				return nil, nil, fmt.Errorf("invalid #vars %d", problem.vars)
			}
			if problem.clauses < 0 {
				return nil, nil, fmt.Errorf("invalid #clauses %d", problem.clauses)
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid variable: %s", err)
			}
			if n == 0 {
				if err := cb.Add(clauseLits); err != nil {
					return nil, nil, err
				}
				clauseCount++
				clauseLits = nil
				continue
			}
			mag := n
			if mag < 0 {
				mag = -mag
			}
			if problem.vars > 0 && mag > problem.vars {
				return nil, nil, fmt.Errorf("formula contains var %d, but problem line asserts %d vars (only vars in [1, %d] expected)",
					mag, problem.vars, problem.vars)
			}
			v, err := variableFor(mag)
			if err != nil {
				return nil, nil, err
			}
			if n < 0 {
				clauseLits = append(clauseLits, v.Neg())
			} else {
				clauseLits = append(clauseLits, v.Pos())
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, nil, err
	}
	if len(clauseLits) > 0 {
		if err := cb.Add(clauseLits); err != nil {
			return nil, nil, err
		}
		clauseCount++
	}

	if problem.vars > 0 {
		if len(mapping) > problem.vars {
			return nil, nil, fmt.Errorf("problem line specifies %d vars, but there are %d", problem.vars, len(mapping))
		}
		if clauseCount != problem.clauses {
			return nil, nil, fmt.Errorf("problem line specifies %d clauses, but there are %d", problem.clauses, clauseCount)
		}
	}
	return cb, mapping, nil
}

// WriteDIMACS writes problem (clauses of raw signed-int literals, one slice
// per clause) in DIMACS CNF format: a "p cnf <vars> <clauses>" problem line
// followed by each clause terminated by a literal 0.
func WriteDIMACS(w io.Writer, problem [][]int) error {
	maxVar := 0
	for _, clause := range problem {
		for _, v := range clause {
			if v < 0 {
				v = -v
			}
			if v > maxVar {
				maxVar = v
			}
		}
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", maxVar, len(problem)); err != nil {
		return err
	}
	for _, clause := range problem {
		for _, v := range clause {
			if _, err := fmt.Fprintf(w, "%d ", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "0"); err != nil {
			return err
		}
	}
	return nil
}
