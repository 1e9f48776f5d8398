// Package pagerank ranks the vertices of a directed core.Graph by the
// stationary distribution of a damped random surfer.
//
// Model (N vertices, damping d):
//
//	M[i][j] = 1/outdeg(j)  if j→i
//	M[i][j] = 1/N          if j has no out-edges (dangling)
//	M[i][j] = 0            otherwise
//
//	v₀      = 1/N for every vertex
//	vₖ₊₁[i] = (1-d)/N + d·Σⱼ M[i][j]·vₖ[j]
//
// The loop stops as soon as ‖vₖ₊₁ − vₖ‖₁ < Tolerance (vₖ₊₁ is returned) or
// when MaxIterations steps have run. In the second case the last vector is
// still returned, with Result.Converged == false and Result.Err() wrapping
// ErrNonConvergence.
//
// Behaviors:
//
//   - Ranks are non-negative and sum to 1 within floating-point error.
//   - Vertex index i is the position of the ID in lexicographic order, so equal
//     graphs and options give bit-identical vectors.
//   - M is stored sparsely (CSR of in-neighbours, O(V+E)); dangling columns are
//     folded into one scalar per iteration and never materialised.
//   - WithWorkers splits the rows of each product across goroutines with an
//     errgroup. Every row is still summed sequentially in the same order, so
//     the result does not depend on the worker count.
//   - Self-loops count as ordinary out-edges.
//
// Options:
//
//	WithDamping(d)         // (0,1), default 0.85
//	WithMaxIterations(n)   // ≥ 1, default 100
//	WithTolerance(eps)     // finite, > 0, default 1e-6
//	WithWorkers(n)         // ≥ 1, default 1
//	WithLogger(l)          // *slog.Logger, per-iteration Debug + Warn on budget exhaustion
//	WithOnIteration(fn)    // observer called with (iter, residual)
//
// Cross-check:
//
//	Reference(g, d, eps) runs gonum's network.PageRank on the same graph and
//	MaxDeviation compares two rank maps. Both engines share the dangling model.
//
// Errors:
//
//	ErrInvalidParameter – bad damping/tolerance/iterations/workers, nil or empty graph
//	ErrGraphNil         – joined with ErrInvalidParameter
//	ErrEmptyGraph       – joined with ErrInvalidParameter
//	ErrNonConvergence   – advisory, via Result.Err()
//	ErrReferenceLoops   – Reference on a graph with self-loops
//
// Complexity:
//
//	Build O(V·log V + E), each iteration O(V + E), memory O(V + E).
package pagerank
