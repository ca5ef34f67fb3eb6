package descriptor

import "math"

// Gaussian is the density kernel exp(-0.5*(x/beta)^2). Defined for all
// real x.
func Gaussian(x, beta float64) float64 {
	t := x / beta
	return math.Exp(-0.5 * t * t)
}

// GaussianDerivative is d/dx of Gaussian: -(x/beta^2) * Gaussian(x, beta).
func GaussianDerivative(x, beta float64) float64 {
	return -(x / (beta * beta)) * Gaussian(x, beta)
}
