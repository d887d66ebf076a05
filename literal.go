package dpll

import "math"

// Variable is a positive dense identity in [1, N], where N is the number of
// Boolean variables minted so far by a Constraints builder. Index(), which is
// v - 1, is used to address parallel arrays sized N.
type Variable int32

// maxVariable bounds how many variables a Literal can address without losing
// its signed-magnitude encoding.
const maxVariable = math.MaxInt32

// Pos returns the positive literal for v (v asserted true).
func (v Variable) Pos() Literal { return Literal(v) }

// Neg returns the negative literal for v (v asserted false).
func (v Variable) Neg() Literal { return Literal(-v) }

// Index returns v - 1, the offset into a dense array sized N.
func (v Variable) Index() int { return int(v) - 1 }

// Literal is a signed non-zero integer: its magnitude names a Variable, its
// sign names the asserted polarity (positive = true, negative = false).
type Literal int32

// Not returns the literal with the opposite polarity of l, same variable.
func (l Literal) Not() Literal { return -l }

// Variable returns the Variable named by l's magnitude.
func (l Literal) Variable() Variable {
	if l < 0 {
		return Variable(-l)
	}
	return Variable(l)
}

// Index returns l.Variable() - 1, the offset into a dense array sized N.
func (l Literal) Index() int { return int(l.Variable()) - 1 }

// IsPositive reports whether l asserts its variable true.
func (l Literal) IsPositive() bool { return l > 0 }

// IsNegative reports whether l asserts its variable false.
func (l Literal) IsNegative() bool { return l < 0 }

// isSameVariable reports whether a and b name the same Variable, regardless
// of polarity.
func isSameVariable(a, b Literal) bool { return a.Variable() == b.Variable() }

// litEql reports whether a and b are the same literal: same variable, same
// polarity.
func litEql(a, b Literal) bool { return a == b }

// validLiteral reports whether l is a well-formed literal against an
// n-variable universe: nonzero and within [-n, n].
func validLiteral(l Literal, n int) bool {
	return l != 0 && int(l) >= -n && int(l) <= n
}
