// SPDX-License-Identifier: MIT

package pagerank

// WithoutDanglingRedistribution lets external tests drop the dangling share
// d·Σ v[dangling]/N while keeping the teleport term.
func WithoutDanglingRedistribution() Option {
	return func(o *Options) { o.danglingUniform = false }
}

// Step exposes one matrix-vector product for tests.
func (t *Transition) Step(next, v []float64, d float64, workers int) {
	t.step(next, v, d, true, workers)
}
