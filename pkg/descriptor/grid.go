package descriptor

import (
	"fmt"
	"math"
	"sync"
)

// The radial grid depends only on (cutoff, alpha), is pure, and is
// reused by every atom of every structure, so built grids are cached
// process-wide and shared read-only across workers.
var (
	gridMu    sync.RWMutex
	gridCache = make(map[[2]float64][]float64)
)

// GridSize returns floor(cutoff/alpha), the number of radial grid
// points for the given parameters.
func GridSize(cutoff, alpha float64) int {
	return int(math.Floor(cutoff / alpha))
}

// Grid returns the radial evaluation grid x[k] = k*alpha for
// k = 0 .. floor(cutoff/alpha)-1.
//
// The returned slice is shared with other callers and must not be
// mutated. Returns ErrInvalidParameter for non-positive cutoff or
// alpha, or when the grid would be empty.
func Grid(cutoff, alpha float64) ([]float64, error) {
	// Comparisons are written so NaN fails them too.
	if !(cutoff > 0) || !(alpha > 0) {
		return nil, fmt.Errorf("%w: cutoff %g and alpha %g must be positive", ErrInvalidParameter, cutoff, alpha)
	}
	if !(alpha < cutoff) {
		return nil, fmt.Errorf("%w: alpha %g >= cutoff %g leaves an empty grid", ErrInvalidParameter, alpha, cutoff)
	}

	key := [2]float64{cutoff, alpha}
	gridMu.RLock()
	grid, ok := gridCache[key]
	gridMu.RUnlock()
	if ok {
		return grid, nil
	}

	grid = make([]float64, GridSize(cutoff, alpha))
	for k := range grid {
		grid[k] = float64(k) * alpha
	}

	gridMu.Lock()
	gridCache[key] = grid
	gridMu.Unlock()
	return grid, nil
}
