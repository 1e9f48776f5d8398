// Package lvrank ranks the vertices of directed graphs with PageRank.
//
// The module is organised in small packages:
//
//	core/         thread-safe directed Graph over string vertex IDs
//	pagerank/     sparse transition operator + damped power iteration,
//	              with a gonum cross-check (Reference, MaxDeviation)
//	builder/      deterministic directed fixtures (Cycle, Path, Star,
//	              Complete, RandomSparse) composed through BuildGraph
//	cmd/lvrank/   command-line front end (cobra + viper)
//	examples/     runnable walkthrough
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B")
//	_ = g.AddEdge("A", "C")
//	_ = g.AddEdge("C", "A")
//
//	res, err := pagerank.Compute(g) // d=0.85, 100 iterations, tol 1e-6
//	if err != nil { ... }
//	res.Ranks // map[A:0.3936 B:0.3032 C:0.3032]
//	res.Err() // nil, or ErrNonConvergence when the budget ran out
//
// Model:
//
//	next[i] = (1-d)/N + d·( Σ_{j dangling} v[j]/N + Σ_{j→i} v[j]/outdeg(j) )
//
// Vertices are indexed in lexicographic ID order, the loop stops when the L1
// distance between successive vectors drops below the tolerance, and results
// are bit-identical for equal inputs whatever the worker count.
package lvrank
