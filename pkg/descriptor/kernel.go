package descriptor

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/orneryd/rbfdesc/pkg/f64"
	"github.com/orneryd/rbfdesc/pkg/geometry"
)

// Compute evaluates the normalized RBF descriptor and its Jacobian for
// one atom, given the relative vectors of its neighbors.
//
// The descriptor is rescaled to unit Euclidean norm and the Jacobian
// carries the matching projection correction, so p·q[:][j][c] == 0 for
// every neighbor coordinate.
//
// An empty neighbor set takes the zero-fill fallback: a zero descriptor
// and an empty Jacobian, with no error. Isolated atoms are routine in
// sparse structures and must not poison a whole dataset with NaNs or
// failures. A non-empty neighbor set whose contributions cancel to a
// zero norm returns ErrDegenerate.
//
// Errors: ErrInvalidParameter for bad hyper-parameters,
// geometry.ErrDistanceOutOfRange when any |rel[j]| falls outside
// (0, cutoff).
func Compute(rel []r3.Vec, params Params) ([]float64, *Jacobian, error) {
	p, q, err := ComputeRaw(rel, params)
	if err != nil {
		return nil, nil, err
	}
	if err := normalize(p, q); err != nil {
		return nil, nil, err
	}
	return p, q, nil
}

// ComputeRaw evaluates the descriptor and Jacobian without the
// unit-norm rescaling. Most callers want Compute; the raw pair is
// useful when descriptors feed a model that normalizes internally, and
// in reference-value tests.
func ComputeRaw(rel []r3.Vec, params Params) ([]float64, *Jacobian, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}
	grid, err := Grid(params.Cutoff, params.Alpha)
	if err != nil {
		return nil, nil, err
	}

	p := make([]float64, len(grid))
	q := NewJacobian(len(grid), len(rel))

	for j, v := range rel {
		d := r3.Norm(v)
		if d <= 0 || d >= params.Cutoff {
			return nil, nil, fmt.Errorf("%w: neighbor %d at distance %g (cutoff %g)",
				geometry.ErrDistanceOutOfRange, j, d, params.Cutoff)
		}

		c := SmoothCutoff(d, params.Cutoff)
		dc := SmoothCutoffDerivative(d, params.Cutoff)
		unit := r3.Scale(1/d, v) // direction of increasing d

		qx := q.gridSlice(j, 0)
		qy := q.gridSlice(j, 1)
		qz := q.gridSlice(j, 2)

		for k, x := range grid {
			g := Gaussian(x-d, params.Beta)
			dg := GaussianDerivative(x-d, params.Beta)

			p[k] += g * c

			// d(x - d)/dr = -unit, so the Gaussian contributes
			// -dg*c*unit and the window contributes g*dc*unit.
			a := -dg*c + g*dc
			qx[k] = a * unit.X
			qy[k] = a * unit.Y
			qz[k] = a * unit.Z
		}
	}

	return p, q, nil
}

// normalize rescales p to unit norm in place and applies the derivative
// of the normalization map to q:
//
//	q'[:][j][c] = q[:][j][c]/|p| - p' * (p' · q[:][j][c])
//
// which projects out the component of each grid slice along p, keeping
// the derivative consistent with |p'| = 1 to first order.
func normalize(p []float64, q *Jacobian) error {
	norm := f64.Norm(p)
	if norm == 0 {
		if q.Neighbors() == 0 {
			// Zero-fill fallback for isolated atoms: p is already all
			// zeros and q is empty.
			return nil
		}
		return ErrDegenerate
	}

	f64.ScaleInPlace(p, 1/norm)

	for j := 0; j < q.Neighbors(); j++ {
		for c := 0; c < 3; c++ {
			slice := q.gridSlice(j, c)
			f64.ScaleInPlace(slice, 1/norm)
			along := f64.Dot(p, slice)
			for k := range slice {
				slice[k] -= p[k] * along
			}
		}
	}
	return nil
}
