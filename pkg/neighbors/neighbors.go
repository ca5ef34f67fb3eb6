// Package neighbors defines the neighbor-list contract consumed by the
// dataset driver, together with a brute-force reference implementation.
//
// A neighbor list maps every atom i to the ordered set of (index,
// periodic offset) pairs whose resolved distance d satisfies
// 0 < d < cutoff. The descriptor core trusts this contract and only
// asserts it; production deployments are expected to plug in a
// cell-list or k-d-tree provider behind the Provider interface, while
// BruteForce exists as the correctness baseline and for tests and small
// structures.
package neighbors

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/orneryd/rbfdesc/pkg/geometry"
)

// ErrSingularCell reports a periodic search over a cell whose volume is
// zero along some direction while a nonzero offset range is required.
var ErrSingularCell = errors.New("periodic neighbor search requires a non-singular cell")

// Neighbor identifies one neighbor of an atom: the index of the other
// atom and the periodic image offset it is seen through.
type Neighbor struct {
	Index  int
	Offset geometry.Offset
}

// Provider enumerates, per atom, every neighbor within the cutoff.
//
// Contract: for every returned pair, the resolved distance lies strictly
// inside (0, cutoff). Downstream code asserts this and fails loudly on
// violations instead of re-filtering.
type Provider interface {
	Neighbors(s *geometry.Structure, cutoff float64) ([][]Neighbor, error)
}

// BruteForce is the O(N² · images) reference Provider. It scans every
// atom pair over every periodic image that could fall within the
// cutoff, determined from the spacing between lattice planes.
//
// Results are deterministic: neighbors are ordered by atom index, then
// lexicographically by offset.
type BruteForce struct{}

var _ Provider = BruteForce{}

// Neighbors implements Provider.
func (BruteForce) Neighbors(s *geometry.Structure, cutoff float64) ([][]Neighbor, error) {
	reach, err := imageReach(s.Cell, cutoff)
	if err != nil {
		return nil, err
	}

	n := s.Count()
	lists := make([][]Neighbor, n)
	for i := 0; i < n; i++ {
		var found []Neighbor
		for j := 0; j < n; j++ {
			for ox := -reach[0]; ox <= reach[0]; ox++ {
				for oy := -reach[1]; oy <= reach[1]; oy++ {
					for oz := -reach[2]; oz <= reach[2]; oz++ {
						o := geometry.Offset{ox, oy, oz}
						if i == j && o == (geometry.Offset{}) {
							continue
						}
						d := r3.Norm(s.Relative(i, j, o))
						if d > 0 && d < cutoff {
							found = append(found, Neighbor{Index: j, Offset: o})
						}
					}
				}
			}
		}
		lists[i] = found
	}
	return lists, nil
}

// imageReach returns, per lattice direction, how many periodic images
// must be scanned so that no atom within the cutoff is missed. The
// spacing between lattice planes normal to direction i is
// |V| / |cell[j] x cell[k]|; an image further than ceil(cutoff/spacing)
// cannot contribute.
//
// A zero cell marks a non-periodic system and yields a zero reach. A
// cell that is singular but nonzero cannot support a periodic search
// and is rejected.
func imageReach(cell [3]r3.Vec, cutoff float64) ([3]int, error) {
	if cell == ([3]r3.Vec{}) {
		return [3]int{}, nil
	}

	volume := math.Abs(r3.Dot(cell[0], r3.Cross(cell[1], cell[2])))
	if volume == 0 {
		return [3]int{}, ErrSingularCell
	}

	var reach [3]int
	for i := 0; i < 3; i++ {
		area := r3.Norm(r3.Cross(cell[(i+1)%3], cell[(i+2)%3]))
		spacing := volume / area
		reach[i] = int(math.Ceil(cutoff / spacing))
	}
	return reach, nil
}
