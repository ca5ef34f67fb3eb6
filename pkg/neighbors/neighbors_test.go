package neighbors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/orneryd/rbfdesc/pkg/geometry"
)

func TestBruteForceNonPeriodic(t *testing.T) {
	// Three collinear atoms, 1 apart, no cell.
	s := &geometry.Structure{
		Positions: []r3.Vec{{}, {X: 1}, {X: 2}},
	}

	lists, err := BruteForce{}.Neighbors(s, 1.5)
	require.NoError(t, err)
	require.Len(t, lists, 3)

	assert.Equal(t, []Neighbor{{Index: 1}}, lists[0])
	assert.Equal(t, []Neighbor{{Index: 0}, {Index: 2}}, lists[1])
	assert.Equal(t, []Neighbor{{Index: 1}}, lists[2])
}

func TestBruteForceStrictCutoff(t *testing.T) {
	// Distance exactly at the cutoff is excluded by definition.
	s := &geometry.Structure{
		Positions: []r3.Vec{{}, {X: 1.5}},
	}
	lists, err := BruteForce{}.Neighbors(s, 1.5)
	require.NoError(t, err)
	assert.Empty(t, lists[0])
	assert.Empty(t, lists[1])
}

func TestBruteForcePeriodicCubic(t *testing.T) {
	// One atom in a cubic box of side 2 with cutoff 2.5: the six face
	// images at distance 2 are within the cutoff, the twelve edge
	// images at 2*sqrt(2) ≈ 2.83 are not.
	s := &geometry.Structure{
		Positions: []r3.Vec{{X: 1, Y: 1, Z: 1}},
		Cell: [3]r3.Vec{
			{X: 2},
			{Y: 2},
			{Z: 2},
		},
	}

	lists, err := BruteForce{}.Neighbors(s, 2.5)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Len(t, lists[0], 6)

	for _, nb := range lists[0] {
		assert.Equal(t, 0, nb.Index)
		assert.NotEqual(t, geometry.Offset{}, nb.Offset)
		_, d, err := s.Resolve(0, nb.Index, nb.Offset, 2.5)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, d, 1e-12)
	}
}

func TestBruteForceContractHolds(t *testing.T) {
	// Every returned pair must resolve inside (0, cutoff).
	s := &geometry.Structure{
		Positions: []r3.Vec{
			{X: 0.2, Y: 0.3, Z: 0.1},
			{X: 1.1, Y: 0.9, Z: 1.7},
			{X: 1.9, Y: 1.8, Z: 0.4},
		},
		Cell: [3]r3.Vec{
			{X: 2.2},
			{X: 0.3, Y: 2.4},
			{Y: 0.1, Z: 2.1},
		},
	}
	const cutoff = 2.0

	lists, err := BruteForce{}.Neighbors(s, cutoff)
	require.NoError(t, err)
	for i, list := range lists {
		assert.NotEmpty(t, list, "atom %d should see periodic neighbors", i)
		for _, nb := range list {
			_, _, err := s.Resolve(i, nb.Index, nb.Offset, cutoff)
			assert.NoError(t, err)
		}
	}
}

func TestBruteForceSingularCell(t *testing.T) {
	s := &geometry.Structure{
		Positions: []r3.Vec{{}},
		Cell: [3]r3.Vec{
			{X: 2},
			{X: 4}, // parallel to the first row
			{Z: 2},
		},
	}
	_, err := BruteForce{}.Neighbors(s, 1.0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSingularCell))
}

func TestImageReach(t *testing.T) {
	cubic := [3]r3.Vec{{X: 2}, {Y: 2}, {Z: 2}}

	reach, err := imageReach(cubic, 3.0)
	require.NoError(t, err)
	assert.Equal(t, [3]int{2, 2, 2}, reach)

	reach, err = imageReach([3]r3.Vec{}, 3.0)
	require.NoError(t, err)
	assert.Equal(t, [3]int{0, 0, 0}, reach)
}
