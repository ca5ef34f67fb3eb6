// Package geometry provides the atomic structure representation and the
// resolution of neighbor records into relative coordinates.
//
// A Structure is a set of atomic positions together with a 3x3 periodic
// cell. For a neighbor j of atom i seen through the periodic image with
// integer offset o, the relative vector is
//
//	r = positions[j] - positions[i] + o[0]*cell[0] + o[1]*cell[1] + o[2]*cell[2]
//
// and the scalar distance is |r|. Non-periodic systems use a zero Cell
// and zero offsets throughout.
//
// Distances handed to the descriptor kernel must lie strictly inside
// (0, cutoff); Resolve enforces that contract and returns
// ErrDistanceOutOfRange on violations, since an out-of-range neighbor
// signals a bug in the neighbor provider rather than a condition to
// clamp or drop silently.
package geometry

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDistanceOutOfRange reports a neighbor whose distance is zero or at
// least the cutoff radius. The neighbor provider contract guarantees
// 0 < d < cutoff, so this is surfaced, never worked around.
var ErrDistanceOutOfRange = errors.New("neighbor distance outside (0, cutoff)")

// Offset is an integer periodic image offset in cell coordinates.
type Offset [3]int

// Structure is an immutable snapshot of an atomic configuration.
type Structure struct {
	// Positions holds one Cartesian coordinate per atom.
	Positions []r3.Vec

	// Cell holds the three lattice vectors as rows. A zero cell marks a
	// non-periodic system.
	Cell [3]r3.Vec
}

// Count returns the number of atoms.
func (s *Structure) Count() int {
	return len(s.Positions)
}

// Shift returns the Cartesian translation for a periodic image offset,
// the integer combination of the cell rows.
func (s *Structure) Shift(o Offset) r3.Vec {
	shift := r3.Scale(float64(o[0]), s.Cell[0])
	shift = r3.Add(shift, r3.Scale(float64(o[1]), s.Cell[1]))
	shift = r3.Add(shift, r3.Scale(float64(o[2]), s.Cell[2]))
	return shift
}

// Relative returns the vector from atom i to the image of atom j
// identified by offset o.
func (s *Structure) Relative(i, j int, o Offset) r3.Vec {
	return r3.Add(r3.Sub(s.Positions[j], s.Positions[i]), s.Shift(o))
}

// Resolve turns a neighbor record into a relative vector and distance,
// verifying the 0 < d < cutoff contract.
func (s *Structure) Resolve(i, j int, o Offset, cutoff float64) (r3.Vec, float64, error) {
	r := s.Relative(i, j, o)
	d := r3.Norm(r)
	if d <= 0 || d >= cutoff {
		return r3.Vec{}, 0, fmt.Errorf("%w: atom %d neighbor %d offset %v at distance %g (cutoff %g)",
			ErrDistanceOutOfRange, i, j, o, d, cutoff)
	}
	return r, d, nil
}
