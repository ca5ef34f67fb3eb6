// Package descriptor implements the radial-basis-function (RBF)
// descriptor of local atomic environments together with its exact
// analytic Jacobian.
//
// For an atom with neighbors at distances d[j] (relative vectors r[j]),
// the accumulated neighbor density at distance x is
//
//	f(x) = sum_j exp(-0.5*((x - d[j])/beta)^2) * (1 - d[j]/cutoff)^2
//
// where the (1 - d/cutoff)^2 window smoothly tapers
// contributions to zero at the cutoff radius. The descriptor is f
// sampled on the radial grid x[k] = k*alpha:
//
//	p[k] = f(x[k])    k = 0 .. floor(cutoff/alpha)-1
//
// and the Jacobian is q[k][j][c] = dp[k]/dr[j][c]. By default both are
// rescaled so |p| = 1, with the matching projection correction applied
// to q so the derivative stays consistent with the unit-norm constraint.
//
// This is a two-body descriptor: it sees only the radial distribution
// of neighbors, and configurations that differ purely in bond angles can
// collide. It is intentionally simple; it feeds ML interaction models
// where both the values and the derivatives (for forces) must be
// numerically exact, which is what the finite-difference tests in this
// package pin down.
//
// Hyper-parameters:
//
//	cutoff  interaction radius; neighbors satisfy 0 < d < cutoff
//	alpha   grid spacing in (0, cutoff)
//	beta    Gaussian bandwidth
//
// Example Usage:
//
//	rel := []r3.Vec{{X: 1.0}, {Y: 1.2}}
//	p, q, err := descriptor.Compute(rel, descriptor.DefaultParams())
//	if err != nil {
//		log.Fatal(err)
//	}
//	force := q.At(0, 1, 2) // dp[0] / d r[1].Z
//
// All computation is pure float64 over preallocated buffers; everything
// is safe for concurrent use.
package descriptor
