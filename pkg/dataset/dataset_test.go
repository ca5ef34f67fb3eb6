package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/orneryd/rbfdesc/pkg/descriptor"
	"github.com/orneryd/rbfdesc/pkg/f64"
	"github.com/orneryd/rbfdesc/pkg/geometry"
	"github.com/orneryd/rbfdesc/pkg/neighbors"
)

// chain returns n atoms spaced 1 apart along x, non-periodic.
func chain(n int) *geometry.Structure {
	s := &geometry.Structure{Positions: make([]r3.Vec, n)}
	for i := range s.Positions {
		s.Positions[i] = r3.Vec{X: float64(i)}
	}
	return s
}

// stubProvider returns fixed neighbor lists regardless of the structure.
type stubProvider struct {
	lists [][]neighbors.Neighbor
}

func (p stubProvider) Neighbors(*geometry.Structure, float64) ([][]neighbors.Neighbor, error) {
	return p.lists, nil
}

func TestComputeChain(t *testing.T) {
	s := chain(5)
	params := descriptor.Params{Cutoff: 1.5, Alpha: 0.3, Beta: 0.3}

	results, err := Compute(s, neighbors.BruteForce{}, params)
	require.NoError(t, err)
	require.Len(t, results, 5)

	for i, ad := range results {
		assert.Equal(t, i, ad.Atom, "atom order must be preserved")
		assert.InDelta(t, 1.0, f64.Norm(ad.P), 1e-12)
		assert.Equal(t, len(ad.Neighbors), ad.Q.Neighbors())
	}

	// Interior atoms see two neighbors, the chain ends one.
	assert.Len(t, results[0].Neighbors, 1)
	assert.Len(t, results[2].Neighbors, 2)
	assert.Len(t, results[4].Neighbors, 1)

	// The chain is mirror symmetric, so the end atoms match.
	for k := range results[0].P {
		assert.InDelta(t, results[0].P[k], results[4].P[k], 1e-12)
	}
}

func TestComputeParallelMatchesSequential(t *testing.T) {
	s := chain(40)
	params := descriptor.Params{Cutoff: 2.5, Alpha: 0.5, Beta: 0.5}

	old := GetParallelConfig()
	defer SetParallelConfig(old)

	SetParallelConfig(ParallelConfig{Enabled: false, MaxWorkers: old.MaxWorkers, MinAtoms: old.MinAtoms})
	seq, err := Compute(s, neighbors.BruteForce{}, params)
	require.NoError(t, err)

	SetParallelConfig(ParallelConfig{Enabled: true, MaxWorkers: 4, MinAtoms: 1})
	par, err := Compute(s, neighbors.BruteForce{}, params)
	require.NoError(t, err)

	require.Len(t, par, len(seq))
	for i := range seq {
		assert.Equal(t, seq[i].Atom, par[i].Atom)
		assert.Equal(t, seq[i].Neighbors, par[i].Neighbors)
		for k := range seq[i].P {
			assert.Equal(t, seq[i].P[k], par[i].P[k], "atom %d p[%d]", i, k)
		}
	}
}

func TestComputeIsolatedAtom(t *testing.T) {
	// Two atoms too far apart to see each other: zero-fill descriptors.
	s := &geometry.Structure{Positions: []r3.Vec{{}, {X: 10}}}
	params := descriptor.DefaultParams()

	results, err := Compute(s, neighbors.BruteForce{}, params)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, ad := range results {
		assert.Empty(t, ad.Neighbors)
		assert.Equal(t, 0, ad.Q.Neighbors())
		for _, v := range ad.P {
			assert.Zero(t, v)
		}
	}
}

func TestComputeFailFast(t *testing.T) {
	// A provider that returns a neighbor beyond the cutoff violates its
	// contract; the whole call must fail with the atom identified.
	s := &geometry.Structure{Positions: []r3.Vec{{}, {X: 5}}}
	bad := stubProvider{lists: [][]neighbors.Neighbor{
		{{Index: 1}},
		{{Index: 0}},
	}}

	_, err := Compute(s, bad, descriptor.DefaultParams())
	require.Error(t, err)
	assert.ErrorIs(t, err, geometry.ErrDistanceOutOfRange)
	assert.Contains(t, err.Error(), "atom 0")
}

func TestComputeListCountMismatch(t *testing.T) {
	s := chain(3)
	bad := stubProvider{lists: make([][]neighbors.Neighbor, 2)}

	_, err := Compute(s, bad, descriptor.DefaultParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neighbor lists")
}

func TestComputeInvalidParams(t *testing.T) {
	s := chain(2)
	_, err := Compute(s, neighbors.BruteForce{}, descriptor.Params{Cutoff: 3, Alpha: 0, Beta: 1})
	assert.ErrorIs(t, err, descriptor.ErrInvalidParameter)
}

func TestComputeEmptyStructure(t *testing.T) {
	s := &geometry.Structure{}
	results, err := Compute(s, neighbors.BruteForce{}, descriptor.DefaultParams())
	require.NoError(t, err)
	assert.Empty(t, results)
}
