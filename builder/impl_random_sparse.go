// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_random_sparse.go - directed Erdős–Rényi fixture.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability; NaN is rejected).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1} is
//     deterministic and runs without RNG.
//   - One Bernoulli trial per ordered pair (i,j); the diagonal is tried only when
//     g.Looped(), so graphs built WithoutLoops never see a self-loop.
//
// Complexity: O(n²) trials, O(1) extra space.
//
// Determinism:
//   - Trial order i asc, j asc; equal seeds give equal graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed random graph over
// n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := addVertices(g, methodRandomSparse, n, cfg.idFn); err != nil {
			return err
		}

		loops := g.Looped()
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				var keep bool
				switch {
				case p == probMin:
					keep = false
				case p == probMax:
					keep = true
				default:
					keep = rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, methodRandomSparse, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
