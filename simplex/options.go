// SPDX-License-Identifier: MIT

package simplex

import (
	"context"
	"math"

	"github.com/katalvlaran/orkit/internal/logx"
)

const (
	// DefaultEpsilon is the tolerance below which reduced costs and pivot
	// entries are treated as zero.
	DefaultEpsilon = 1e-9

	// MaxAutoIterations bounds the automatically derived pivot cap, since
	// C(n+m, m) overflows quickly for moderate problem sizes.
	MaxAutoIterations = 1 << 20
)

// Options configures Solve.
//
// Epsilon       – zero tolerance for reduced costs and pivot entries (> 0, finite).
// MaxIterations – pivot cap; 0 selects C(n+m, m)+1 saturated at MaxAutoIterations.
// Logger        – receives one line per pivot; nil disables logging.
// Ctx           – checked before every pivot; nil means context.Background().
type Options struct {
	Epsilon       float64
	MaxIterations int
	Logger        logx.Logger
	Ctx           context.Context
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		MaxIterations: 0,
		Logger:        logx.Nop{},
		Ctx:           context.Background(),
	}
}

// WithEpsilon sets the zero tolerance. Non-positive or non-finite values
// make Solve return ErrBadOption.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxIterations caps the number of pivots. k must be ≥ 0; 0 restores
// the automatic bound.
func WithMaxIterations(k int) Option {
	return func(o *Options) { o.MaxIterations = k }
}

// WithLogger installs a pivot trace logger (for example a *log.Logger).
func WithLogger(l logx.Logger) Option {
	return func(o *Options) { o.Logger = logx.OrNop(l) }
}

// WithContext makes Solve stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// buildOptions applies opts over DefaultOptions and validates the result.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Epsilon <= 0 || math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) {
		return o, wrapf("Epsilon=%g", ErrBadOption, o.Epsilon)
	}
	if o.MaxIterations < 0 {
		return o, wrapf("MaxIterations=%d", ErrBadOption, o.MaxIterations)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	o.Logger = logx.OrNop(o.Logger)

	return o, nil
}

// iterationCap returns C(n+m, m)+1, saturated at MaxAutoIterations.
// The partial products res·(N−k+1)/k stay integral at every step.
func iterationCap(n, m int) int {
	N := n + m
	k := m
	if n < k {
		k = n
	}
	res := 1
	for i := 1; i <= k; i++ {
		res = res * (N - i + 1) / i
		if res >= MaxAutoIterations {
			return MaxAutoIterations
		}
	}

	return res + 1
}
