package dpll

import "errors"

// Error taxonomy for the builder and constraint layer. Solve returns no
// error, and nothing in this package returns ErrOutOfMemory: Go's allocator
// does not expose allocation failure the way a systems-language allocator
// would, so it is reserved for callers that wrap their own bounded arenas.
var (
	// ErrInvalidRange is returned by NewVariable when from > to.
	ErrInvalidRange = errors.New("dpll: invalid range: from > to")

	// ErrInvalidSort is returned by Distinct when the given IntVars do not
	// share the same offset and size.
	ErrInvalidSort = errors.New("dpll: distinct requires IntVars of the same sort")

	// ErrInvalidConstant is returned by EqualToConstant when the value lies
	// outside the IntVar's domain.
	ErrInvalidConstant = errors.New("dpll: constant outside of variable domain")

	// ErrInvalidLiteral is returned when a clause references a literal whose
	// magnitude exceeds the number of variables minted so far.
	ErrInvalidLiteral = errors.New("dpll: literal magnitude exceeds variable count")

	// ErrTooManyVariables is returned by NewLiteral when minting another
	// variable would overflow the literal representation.
	ErrTooManyVariables = errors.New("dpll: too many variables")

	// ErrOutOfMemory is reserved for allocation failure paths.
	ErrOutOfMemory = errors.New("dpll: out of memory")
)
