// Package f64 provides float64 vector operations for rbfdesc.
//
// Descriptor and Jacobian buffers are double precision throughout, since
// finite-difference validation of the analytic derivatives needs
// tolerances around 1e-6 that float32 accumulation cannot hold. The
// heavy lifting is delegated to github.com/viterin/vek, which selects
// AVX2 or NEON code paths at runtime and falls back to optimized pure Go
// elsewhere. No configuration is required.
//
// All functions guard zero-length and mismatched-length inputs by
// returning 0 (or doing nothing for in-place operations) instead of
// panicking.
//
// # Thread Safety
//
// All functions are safe for concurrent use. They do not modify any
// global state; the *InPlace variants modify only their argument.
package f64
