package f64

import "github.com/viterin/vek"

// RuntimeInfo describes the active vector-math backend.
type RuntimeInfo struct {
	// Features lists specific CPU features being used
	Features []string
	// Accelerated indicates whether SIMD acceleration is active
	Accelerated bool
}

// Dot computes the dot product of two float64 vectors.
//
// Returns 0 if the vectors are empty or have different lengths.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	return vek.Dot(a, b)
}

// Norm computes the Euclidean norm (L2 norm) of a float64 vector.
//
// Returns 0 for an empty vector.
func Norm(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return vek.Norm(v)
}

// ScaleInPlace multiplies every element of v by s, modifying v.
func ScaleInPlace(v []float64, s float64) {
	if len(v) == 0 {
		return
	}
	vek.MulNumber_Inplace(v, s)
}

// NormalizeInPlace rescales v to unit Euclidean norm, modifying it in
// place. A zero-norm vector is left unchanged.
func NormalizeInPlace(v []float64) {
	if len(v) == 0 {
		return
	}
	n := vek.Norm(v)
	if n == 0 {
		return
	}
	vek.DivNumber_Inplace(v, n)
}

// Info returns information about the active vector-math backend. Useful
// for verifying that SIMD acceleration is in effect on a given host.
func Info() RuntimeInfo {
	info := vek.Info()
	return RuntimeInfo{
		Features:    info.CPUFeatures,
		Accelerated: info.Acceleration,
	}
}
