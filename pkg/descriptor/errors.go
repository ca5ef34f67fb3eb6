package descriptor

import "errors"

var (
	// ErrInvalidParameter reports a non-positive hyper-parameter or a
	// grid spacing that leaves the radial grid empty.
	ErrInvalidParameter = errors.New("invalid descriptor parameter")

	// ErrDegenerate reports a non-empty neighbor set whose descriptor
	// norm is zero, so the unit-norm rescaling is undefined. Atoms with
	// no neighbors do not hit this: they take the documented zero-fill
	// fallback instead.
	ErrDegenerate = errors.New("degenerate descriptor: zero norm")
)
