package descriptor

import "fmt"

// Params holds the descriptor hyper-parameters.
type Params struct {
	// Cutoff is the interaction radius. Neighbors satisfy 0 < d < Cutoff.
	Cutoff float64

	// Alpha is the radial grid spacing; the grid is k*Alpha for
	// k = 0 .. floor(Cutoff/Alpha)-1. Must lie in (0, Cutoff).
	Alpha float64

	// Beta is the bandwidth of the Gaussian density kernel.
	Beta float64
}

// DefaultParams returns the canonical hyper-parameters used throughout
// the reference tests: cutoff 3.0, alpha 0.5, beta 0.5.
func DefaultParams() Params {
	return Params{
		Cutoff: 3.0,
		Alpha:  0.5,
		Beta:   0.5,
	}
}

// Validate checks that all hyper-parameters are positive and that the
// grid is non-empty. Comparisons are written so NaN fails them too.
func (p Params) Validate() error {
	if !(p.Cutoff > 0) {
		return fmt.Errorf("%w: cutoff %g must be positive", ErrInvalidParameter, p.Cutoff)
	}
	if !(p.Alpha > 0) {
		return fmt.Errorf("%w: alpha %g must be positive", ErrInvalidParameter, p.Alpha)
	}
	if !(p.Beta > 0) {
		return fmt.Errorf("%w: beta %g must be positive", ErrInvalidParameter, p.Beta)
	}
	if !(p.Alpha < p.Cutoff) {
		return fmt.Errorf("%w: alpha %g >= cutoff %g leaves an empty grid", ErrInvalidParameter, p.Alpha, p.Cutoff)
	}
	return nil
}
