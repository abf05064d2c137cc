package domain

import "errors"

// Domain errors represent conversion failures.
// Loaders and writers wrap these with format and field/line context.
var (
	// ErrParse indicates malformed input structure (unreadable markup,
	// wrong number of columns). Fatal: the load aborts with no partial
	// result.
	ErrParse = errors.New("parse failure")

	// ErrValidation indicates structurally parseable but physically
	// invalid input (negative dimension, non-monotonic thrust curve,
	// empty stage list). Fatal.
	ErrValidation = errors.New("validation failure")

	// ErrUnsupported indicates a recognised but unhandled construct.
	// Design loads downgrade it to a skip-with-warning; engine loads
	// treat it as fatal since no safe partial result exists.
	ErrUnsupported = errors.New("unsupported feature")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")
)
