// Command sudoku reads a 9x9 Sudoku grid from standard input, compiles it
// into distinct/equal-to-constant constraints over 81 finite-domain variables,
// solves it with the dpll package's constraint layer, and prints the
// result. Input parsing, stdout/stderr formatting and process exit codes
// are this command's job, not the core solver's — the core never sees
// anything but IntVars and constraints.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/leifhelm/dpll-solver"
)

// An exit code for "memory leak from the allocator's leak check" has no
// equivalent here: there is no manual allocator to leak-check in a garbage
// collected runtime, so it is intentionally not modeled.
const (
	exitOK          = 0
	exitUnsolveable = 1
	exitParseError  = 65
	gridSize        = 9
	boxSize         = 3
)

func main() {
	verbose := flag.BoolP("verbose", "v", false, "enable trace-level solver logging")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `sudoku: solve a Sudoku puzzle with a DPLL-backed constraint solver.

Usage:

  sudoku [-v]

Reads exactly 9 lines of 9 characters from standard input; '1'-'9' are
givens, '.' is a blank cell. Prints the solved grid, or "Unsolveable" if the
puzzle has no solution.
`)
	}
	flag.Parse()

	grid, err := readGrid(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "reading puzzle"))
		os.Exit(exitParseError)
	}

	solved, ok, err := solve(grid, *verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "building constraints"))
		os.Exit(exitParseError)
	}
	if !ok {
		fmt.Println("Unsolveable")
		os.Exit(exitUnsolveable)
	}
	printGrid(os.Stdout, solved)
	os.Exit(exitOK)
}

// readGrid reads exactly gridSize lines of gridSize characters. A 0 in the
// result marks a blank cell; any other value is a given in [1, 9].
func readGrid(r io.Reader) ([gridSize][gridSize]int, error) {
	var grid [gridSize][gridSize]int
	scanner := bufio.NewScanner(r)
	for row := 0; row < gridSize; row++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return grid, err
			}
			return grid, fmt.Errorf("expected %d lines, got %d", gridSize, row)
		}
		line := scanner.Text()
		if len(line) != gridSize {
			return grid, fmt.Errorf("line %d: expected %d characters, got %d", row+1, gridSize, len(line))
		}
		for col, ch := range line {
			switch {
			case ch == '.':
				grid[row][col] = 0
			case ch >= '1' && ch <= '9':
				grid[row][col] = int(ch - '0')
			default:
				return grid, fmt.Errorf("line %d, column %d: invalid character %q", row+1, col+1, ch)
			}
		}
	}
	return grid, nil
}

// solve compiles grid into distinct/equal-to-constant constraints over 81
// IntVars and solves them, posting constraints in the order: row/column/box
// distinctness, then givens.
func solve(grid [gridSize][gridSize]int, verbose bool) ([gridSize][gridSize]int, bool, error) {
	var solved [gridSize][gridSize]int

	cs := dpll.NewConstraintSolver()
	cs.Verbose = verbose

	var cells [gridSize][gridSize]dpll.IntVar
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			v, err := cs.NewVariable(1, gridSize)
			if err != nil {
				return solved, false, err
			}
			cells[row][col] = v
		}
	}

	for row := 0; row < gridSize; row++ {
		rowVars := make([]dpll.IntVar, gridSize)
		copy(rowVars, cells[row][:])
		if err := cs.Distinct(rowVars...); err != nil {
			return solved, false, err
		}
	}
	for col := 0; col < gridSize; col++ {
		colVars := make([]dpll.IntVar, gridSize)
		for row := 0; row < gridSize; row++ {
			colVars[row] = cells[row][col]
		}
		if err := cs.Distinct(colVars...); err != nil {
			return solved, false, err
		}
	}
	for boxRow := 0; boxRow < gridSize; boxRow += boxSize {
		for boxCol := 0; boxCol < gridSize; boxCol += boxSize {
			boxVars := make([]dpll.IntVar, 0, gridSize)
			for r := boxRow; r < boxRow+boxSize; r++ {
				for c := boxCol; c < boxCol+boxSize; c++ {
					boxVars = append(boxVars, cells[r][c])
				}
			}
			if err := cs.Distinct(boxVars...); err != nil {
				return solved, false, err
			}
		}
	}

	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			if given := grid[row][col]; given != 0 {
				if err := cs.EqualToConstant(cells[row][col], given); err != nil {
					return solved, false, err
				}
			}
		}
	}

	result := cs.Solve()
	model, ok := result.Model()
	if !ok {
		return solved, false, nil
	}
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			solved[row][col] = model.GetValue(cells[row][col])
		}
	}
	return solved, true, nil
}

func printGrid(w io.Writer, grid [gridSize][gridSize]int) {
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			fmt.Fprintf(w, "%d", grid[row][col])
		}
		fmt.Fprintln(w)
	}
}
