// Jacobian Self-Check for rbfdesc
//
// This tool validates the analytic descriptor Jacobian against forward
// finite differences over randomized neighbor configurations, the same
// check the package tests run, but with tunable scale for soak-testing
// hyper-parameter combinations on a target machine.
//
// Usage:
//
//	go run cmd/rbf-jacobian-check/main.go [options]
//
// Options:
//
//	-trials     Number of random configurations (default: 1000)
//	-neighbors  Neighbors per configuration (default: 10)
//	-cutoff     Cutoff radius (default: 3.0)
//	-alpha      Radial grid spacing (default: 0.5)
//	-beta       Gaussian bandwidth (default: 0.5)
//	-delta      Finite-difference step (default: 1e-6)
//	-seed       Random seed (default: 42)
//
// Examples:
//
//	# Default check: 1000 configurations, canonical hyper-parameters
//	go run cmd/rbf-jacobian-check/main.go
//
//	# Stress a tighter grid
//	go run cmd/rbf-jacobian-check/main.go -trials 5000 -alpha 0.1
//
// Exits non-zero if any Jacobian entry deviates from the finite
// difference by more than 2*delta.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/orneryd/rbfdesc/pkg/descriptor"
	"github.com/orneryd/rbfdesc/pkg/f64"
)

func main() {
	trials := flag.Int("trials", 1000, "Number of random configurations")
	nNeighbors := flag.Int("neighbors", 10, "Neighbors per configuration")
	cutoff := flag.Float64("cutoff", 3.0, "Cutoff radius")
	alpha := flag.Float64("alpha", 0.5, "Radial grid spacing")
	beta := flag.Float64("beta", 0.5, "Gaussian bandwidth")
	delta := flag.Float64("delta", 1e-6, "Finite-difference step")
	seed := flag.Int64("seed", 42, "Random seed for reproducibility")
	flag.Parse()

	params := descriptor.Params{Cutoff: *cutoff, Alpha: *alpha, Beta: *beta}
	if err := params.Validate(); err != nil {
		log.Fatalf("Invalid parameters: %v", err)
	}

	info := f64.Info()
	log.Printf("Vector backend: accelerated=%v features=%v", info.Accelerated, info.Features)
	log.Printf("Checking %d configurations of %d neighbors (cutoff=%g alpha=%g beta=%g delta=%g)",
		*trials, *nNeighbors, *cutoff, *alpha, *beta, *delta)

	rng := rand.New(rand.NewSource(*seed))
	tolerance := 2 * *delta

	var worst float64
	var checked int

	for trial := 0; trial < *trials; trial++ {
		rel := randomNeighbors(rng, *nNeighbors, *cutoff)

		p1, q, err := descriptor.Compute(rel, params)
		if err != nil {
			log.Fatalf("Trial %d: %v", trial, err)
		}

		for j := range rel {
			for c := 0; c < 3; c++ {
				perturbed := make([]r3.Vec, len(rel))
				copy(perturbed, rel)
				switch c {
				case 0:
					perturbed[j].X += *delta
				case 1:
					perturbed[j].Y += *delta
				case 2:
					perturbed[j].Z += *delta
				}

				p2, _, err := descriptor.Compute(perturbed, params)
				if err != nil {
					log.Fatalf("Trial %d perturbation: %v", trial, err)
				}

				for k := range p1 {
					fd := (p2[k] - p1[k]) / *delta
					dev := math.Abs(fd - q.At(k, j, c))
					if dev > worst {
						worst = dev
					}
					checked++
					if dev > tolerance {
						fmt.Printf("FAIL: trial %d neighbor %d coordinate %d grid %d: analytic %.12g vs finite-difference %.12g (deviation %.3g > %.3g)\n",
							trial, j, c, k, q.At(k, j, c), fd, dev, tolerance)
						os.Exit(1)
					}
				}
			}
		}
	}

	fmt.Printf("OK: %d Jacobian entries checked, worst deviation %.3g (tolerance %.3g)\n",
		checked, worst, tolerance)
}

// randomNeighbors samples relative vectors uniformly from the cube
// [-cutoff, cutoff]^3, keeping those with distance inside
// (0.1*cutoff, 0.999*cutoff). The upper margin keeps the perturbed
// configuration from crossing the cutoff.
func randomNeighbors(rng *rand.Rand, n int, cutoff float64) []r3.Vec {
	rel := make([]r3.Vec, 0, n)
	for len(rel) < n {
		v := r3.Vec{
			X: (2*rng.Float64() - 1) * cutoff,
			Y: (2*rng.Float64() - 1) * cutoff,
			Z: (2*rng.Float64() - 1) * cutoff,
		}
		d := r3.Norm(v)
		if d > 0.1*cutoff && d < 0.999*cutoff {
			rel = append(rel, v)
		}
	}
	return rel
}
