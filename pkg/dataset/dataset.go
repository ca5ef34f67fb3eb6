// Package dataset drives descriptor computation over whole structures.
//
// For every atom of a structure it asks the neighbor provider for the
// atom's neighbor records, resolves them into relative vectors, and
// evaluates the normalized descriptor and Jacobian, collecting results
// in atom order.
//
// Per-atom computations are independent, so the driver distributes
// atoms across a chunked worker pool by default. Parallel execution can
// be tuned or disabled via ParallelConfig:
//
//	dataset.SetParallelConfig(dataset.ParallelConfig{
//	    Enabled:    true,
//	    MaxWorkers: 8,  // Use 8 cores max
//	    MinAtoms:   32, // Stay sequential below 32 atoms
//	})
//
// Errors are fail-fast: a single failing atom fails the whole call,
// since silently skipping atoms would leave the result out of step with
// the structure's atom count.
package dataset

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/orneryd/rbfdesc/pkg/descriptor"
	"github.com/orneryd/rbfdesc/pkg/geometry"
	"github.com/orneryd/rbfdesc/pkg/neighbors"
)

// AtomDescriptor is the per-atom result: the neighbor records the
// descriptor was built from, the normalized descriptor vector, and its
// Jacobian with respect to the neighbors' relative coordinates.
type AtomDescriptor struct {
	// Atom is the index of the central atom in the structure.
	Atom int

	// Neighbors lists the provider's records for this atom, in the
	// order matching the Jacobian's neighbor axis.
	Neighbors []neighbors.Neighbor

	// P is the normalized descriptor vector (zero for isolated atoms).
	P []float64

	// Q holds dP[k]/dr[j][c] for neighbor j, coordinate c.
	Q *descriptor.Jacobian
}

// ParallelConfig controls how atoms are distributed across workers.
type ParallelConfig struct {
	// Enabled enables/disables parallel execution globally
	Enabled bool

	// MaxWorkers is the maximum number of goroutines to use
	// Default: runtime.NumCPU()
	MaxWorkers int

	// MinAtoms is the minimum structure size before parallelizing.
	// Below this threshold, sequential execution is used (overhead not
	// worth it). Default: 16
	MinAtoms int
}

// DefaultParallelConfig returns the default parallel execution
// configuration.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		Enabled:    true,
		MaxWorkers: runtime.NumCPU(),
		MinAtoms:   16,
	}
}

// parallelConfig is the active configuration
var parallelConfig = DefaultParallelConfig()

// SetParallelConfig updates the parallel execution configuration.
func SetParallelConfig(config ParallelConfig) {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = runtime.NumCPU()
	}
	if config.MinAtoms <= 0 {
		config.MinAtoms = 16
	}
	parallelConfig = config
}

// GetParallelConfig returns the current parallel execution
// configuration.
func GetParallelConfig() ParallelConfig {
	return parallelConfig
}

// Compute evaluates the normalized descriptor and Jacobian for every
// atom of the structure, preserving atom order.
//
// The neighbor provider is queried once for the whole structure; each
// record is then resolved against the cell (asserting the 0 < d <
// cutoff contract) and fed to the descriptor kernel. The first error
// from any component aborts the call with the atom index attached.
func Compute(s *geometry.Structure, provider neighbors.Provider, params descriptor.Params) ([]AtomDescriptor, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	lists, err := provider.Neighbors(s, params.Cutoff)
	if err != nil {
		return nil, err
	}
	if len(lists) != s.Count() {
		return nil, fmt.Errorf("provider returned %d neighbor lists for %d atoms", len(lists), s.Count())
	}

	cfg := parallelConfig
	if !cfg.Enabled || s.Count() < cfg.MinAtoms {
		return computeSequential(s, lists, params)
	}
	return computeParallel(s, lists, params, cfg)
}

func computeSequential(s *geometry.Structure, lists [][]neighbors.Neighbor, params descriptor.Params) ([]AtomDescriptor, error) {
	results := make([]AtomDescriptor, s.Count())
	for i := range results {
		ad, err := computeAtom(s, lists[i], params, i)
		if err != nil {
			return nil, err
		}
		results[i] = ad
	}
	return results, nil
}

func computeParallel(s *geometry.Structure, lists [][]neighbors.Neighbor, params descriptor.Params, cfg ParallelConfig) ([]AtomDescriptor, error) {
	n := s.Count()
	numWorkers := cfg.MaxWorkers
	if numWorkers > n {
		numWorkers = n
	}
	chunkSize := (n + numWorkers - 1) / numWorkers

	results := make([]AtomDescriptor, n)

	var (
		wg       sync.WaitGroup
		failed   atomic.Bool
		errMu    sync.Mutex
		firstErr error
	)

	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if start >= n {
			break
		}
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if failed.Load() {
					return
				}
				ad, err := computeAtom(s, lists[i], params, i)
				if err != nil {
					failed.Store(true)
					errMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					errMu.Unlock()
					return
				}
				results[i] = ad
			}
		}(start, end)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

func computeAtom(s *geometry.Structure, list []neighbors.Neighbor, params descriptor.Params, i int) (AtomDescriptor, error) {
	rel := make([]r3.Vec, len(list))
	for j, nb := range list {
		r, _, err := s.Resolve(i, nb.Index, nb.Offset, params.Cutoff)
		if err != nil {
			return AtomDescriptor{}, fmt.Errorf("atom %d: %w", i, err)
		}
		rel[j] = r
	}

	p, q, err := descriptor.Compute(rel, params)
	if err != nil {
		return AtomDescriptor{}, fmt.Errorf("atom %d: %w", i, err)
	}

	return AtomDescriptor{
		Atom:      i,
		Neighbors: list,
		P:         p,
		Q:         q,
	}, nil
}
