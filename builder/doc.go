// Package builder assembles deterministic directed graphs for tests, benchmarks
// and the lvrank CLI. Every fixture is a Constructor closure applied to a fresh
// core.Graph by BuildGraph, so several fixtures can be composed in order.
//
// The package offers the following key components:
//
//   - Entry point:
//     – BuildGraph(gopts, bopts, cons...): new graph, resolved config, constructors in order.
//   - Directed fixtures (Constructor):
//     – Cycle(n):           i → (i+1) mod n, every vertex has out-degree 1.
//     – Path(n):            0 → 1 → … → n-1, the tail is dangling.
//     – Star(n):            n-1 leaves → "Center", the hub is dangling.
//     – Complete(n):        every ordered pair (i,j), i ≠ j.
//     – RandomSparse(n,p):  directed Erdős–Rényi over ordered pairs, seeded.
//   - Configuration primitives:
//     – BuilderOption:      WithIDScheme, WithSeed, WithRand and the ID-scheme shortcuts.
//   - Vertex-ID schemes (IDFn):
//     – DefaultIDFn ("0","1",…), SymbolIDFn ("A".."Z"), ExcelColumnIDFn ("A",…,"AA"),
//     AlphanumericIDFn (base-36), HexIDFn, SymbolNumberIDFn(prefix) ("v0","v1",…).
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order give equal graphs.
//   - Idempotence: re-running a fixture on the same graph adds nothing, since
//     core.Graph collapses parallel edges and repeated vertices.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name. Option constructors panic on nil arguments.
//
// Errors:
//
//	ErrTooFewVertices      – n below the fixture minimum
//	ErrInvalidProbability  – p outside [0,1] or NaN
//	ErrNeedRandSource      – RandomSparse with 0<p<1 and no WithSeed/WithRand
//	ErrConstructFailed     – nil constructor or a core error while building
package builder
