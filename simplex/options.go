// SPDX-License-Identifier: MIT

package simplex

import (
	"io"
	"math"
)

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultEpsilon is the tolerance used by the selection rules: an objective
	// entry must be < -eps to enter, a column entry must be > eps to leave.
	DefaultEpsilon = 1e-9

	// DefaultIterationFactor sizes the default pivot cap:
	// DefaultIterationFactor × (numVars + numConstraints).
	DefaultIterationFactor = 10
)

const (
	panicEpsilonInvalid = "simplex: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterInvalid = "simplex: WithMaxIterations: limit must be >= 0"
)

// Option configures Solve / SolveContext.
type Option func(*Options)

// Options holds the effective solver configuration.
// Fields are unexported; build it through Option setters.
type Options struct {
	eps     float64         // >= 0
	maxIter int             // 0 ⇒ DefaultIterationFactor × (n+m)
	trace   io.Writer       // nil ⇒ no tracing
	onPivot func(Iteration) // nil ⇒ no hook
}

// WithEpsilon sets the selection tolerance. Panics on NaN, ±Inf or negative eps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations caps the number of pivots. Zero restores the default cap.
// Panics on negative limits.
func WithMaxIterations(limit int) Option {
	if limit < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = limit }
}

// WithVerbose prints the initial tableau and every pivot with the resulting
// tableau to w. A nil writer disables tracing.
func WithVerbose(w io.Writer) Option {
	return func(o *Options) { o.trace = w }
}

// WithOnPivot registers a hook called after every accepted pivot.
func WithOnPivot(fn func(Iteration)) Option {
	return func(o *Options) { o.onPivot = fn }
}

// gatherOptions applies opts on top of the defaults (last write wins).
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// iterationLimit resolves the pivot cap for a problem of the given size.
func (o Options) iterationLimit(numVars, numConstraints int) int {
	if o.maxIter > 0 {
		return o.maxIter
	}

	return DefaultIterationFactor * (numVars + numConstraints)
}
