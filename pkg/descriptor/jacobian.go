package descriptor

// Jacobian holds dp[k]/dr[j][c] for a single atom: the derivative of
// every descriptor component k with respect to every Cartesian
// coordinate c of every neighbor j.
//
// Logical shape is [K][N][3] with K grid points and N neighbors. The
// storage is a single flat buffer in (j, c, k) major order:
//
//	data[(j*3+c)*K + k] = dp[k]/dr[j][c]
//
// so the K-long grid slice belonging to one (neighbor, coordinate) pair
// is contiguous, which is what the normalization projection and the
// dot-product reductions operate on. Each neighbor's contribution to p
// depends only on its own coordinates, so entry (k, j, c) is assembled
// from neighbor j's terms alone.
type Jacobian struct {
	k    int
	n    int
	data []float64
}

// NewJacobian allocates a zeroed Jacobian for k grid points and n
// neighbors.
func NewJacobian(k, n int) *Jacobian {
	return &Jacobian{
		k:    k,
		n:    n,
		data: make([]float64, k*n*3),
	}
}

// GridPoints returns K, the descriptor length.
func (q *Jacobian) GridPoints() int { return q.k }

// Neighbors returns N, the neighbor count.
func (q *Jacobian) Neighbors() int { return q.n }

// At returns dp[k]/dr[j][c]. Indices follow the logical [K][N][3]
// shape: k in [0,K), j in [0,N), c in {0,1,2} for x,y,z.
func (q *Jacobian) At(k, j, c int) float64 {
	return q.data[(j*3+c)*q.k+k]
}

// gridSlice returns the contiguous K-long slice dp[:]/dr[j][c].
func (q *Jacobian) gridSlice(j, c int) []float64 {
	base := (j*3 + c) * q.k
	return q.data[base : base+q.k]
}
