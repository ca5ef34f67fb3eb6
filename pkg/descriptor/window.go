package descriptor

// SmoothCutoff is the taper window (1 - d/cutoff)^2, defined for
// 0 <= d < cutoff. Both the window and its derivative vanish as d
// approaches the cutoff, so a neighbor's contribution fades out
// continuously instead of jumping when it leaves the sphere.
func SmoothCutoff(d, cutoff float64) float64 {
	t := 1 - d/cutoff
	return t * t
}

// SmoothCutoffDerivative is d/dd of SmoothCutoff:
// -2/cutoff * (1 - d/cutoff).
func SmoothCutoffDerivative(d, cutoff float64) float64 {
	return -2 / cutoff * (1 - d/cutoff)
}
