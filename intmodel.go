package dpll

import "fmt"

// IntModel wraps a Boolean Model so callers can read back concrete integer
// values for the IntVars they built the constraint problem from.
type IntModel struct {
	model Model
}

// GetValue returns v.Offset() + i, where i is the unique index such that
// v's i-th one-hot literal is true in the underlying Boolean model. It
// panics if the one-hot invariant was violated — either no value or more
// than one value assigned true — which would indicate a bug in the CNF
// encoding, not a condition a caller can usefully recover from.
func (m IntModel) GetValue(v IntVar) int {
	idx := -1
	for i, lit := range v.values {
		if m.model.GetAssignment(lit.Variable()) {
			if idx != -1 {
				panic(fmt.Sprintf("dpll: IntVar has more than one true value in model (indices %d and %d)", idx, i))
			}
			idx = i
		}
	}
	if idx == -1 {
		panic("dpll: IntVar has no true value in model")
	}
	return v.offset + idx
}
