// SPDX-License-Identifier: MIT
//
// File: pagerank.go
// Role: Damped power iteration with explicit dangling-node redistribution.

package pagerank

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvrank/core"
)

// Compute runs PageRank on g with the given Options.
//
// Implementation:
//   - Stage 1: Reject a nil graph, then invalid options, then an empty graph
//     (all ErrInvalidParameter) before any matrix work.
//   - Stage 2: Build the sparse Transition (lexicographic node order).
//   - Stage 3: v = 1/N; repeat next = (1-d)/N + d·M·v, residual = ‖next−v‖₁;
//     stop as soon as residual < Tolerance, else swap buffers and continue.
//   - Stage 4: On budget exhaustion keep the last vector and set Converged=false.
//
// Returns:
//   - *Result with ranks for every vertex; see Result.Err for the advisory
//     non-convergence signal.
//
// Determinism:
//   - Bit-identical output for equal graphs and options, independent of Workers.
//
// Complexity:
//   - Time O(V log V + E) to build, O(V + E) per iteration; Memory O(V + E).
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, ErrGraphNil)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	t, err := NewTransition(g)
	if err != nil {
		return nil, err
	}

	return run(t, o)
}

// run iterates on a prepared Transition with validated options.
func run(t *Transition, o Options) (*Result, error) {
	n := t.Len()
	v := make([]float64, n)
	next := make([]float64, n)
	for i := range v {
		v[i] = 1 / float64(n)
	}

	res := &Result{Residuals: make([]float64, 0, min(o.MaxIterations, 128))}
	for iter := 1; iter <= o.MaxIterations; iter++ {
		t.step(next, v, o.Damping, o.danglingUniform, o.Workers)
		residual := floats.Distance(next, v, 1)

		res.Iterations = iter
		res.Residuals = append(res.Residuals, residual)
		o.OnIteration(iter, residual)
		if o.Logger != nil {
			o.Logger.Debug("pagerank iteration", "iter", iter, "residual", residual)
		}

		v, next = next, v
		if residual < o.Tolerance {
			res.Converged = true
			break
		}
	}

	// Only reachable through a broken invariant; inputs are validated above.
	if sum := floats.Sum(v); math.IsNaN(sum) || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("%w: rank vector is not finite (sum %v)", ErrInvalidParameter, sum)
	}

	if !res.Converged && o.Logger != nil {
		o.Logger.Warn("pagerank did not converge",
			"iterations", res.Iterations, "residual", res.lastResidual(), "tolerance", o.Tolerance)
	}

	res.Order = t.IDs()
	res.Vector = v
	res.Ranks = make(map[string]float64, n)
	for i, id := range res.Order {
		res.Ranks[id] = v[i]
	}

	return res, nil
}
