// SPDX-License-Identifier: MIT

package assignment

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/orkit/internal/logx"
)

// DefaultEpsilon is the tolerance under which a reduced cost counts as zero.
const DefaultEpsilon = 1e-9

// Options configures Solve and SolveRect.
type Options struct {
	Maximize bool            // maximize total weight instead of minimizing cost
	Epsilon  float64         // zero tolerance for reduced costs (> 0)
	Logger   logx.Logger     // one line per augmentation and per adjustment round
	Ctx      context.Context // checked once per augmentation and adjustment round
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns minimization with DefaultEpsilon and no logging.
func DefaultOptions() Options {
	return Options{
		Epsilon: DefaultEpsilon,
		Logger:  logx.Nop{},
		Ctx:     context.Background(),
	}
}

// WithMaximize selects the maximum-weight assignment.
func WithMaximize() Option {
	return func(o *Options) { o.Maximize = true }
}

// WithEpsilon sets the zero tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithLogger installs a trace logger.
func WithLogger(l logx.Logger) Option {
	return func(o *Options) { o.Logger = logx.OrNop(l) }
}

// WithContext enables cooperative cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Epsilon <= 0 || math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) {
		return o, fmt.Errorf("Epsilon=%g: %w", o.Epsilon, ErrBadOption)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	o.Logger = logx.OrNop(o.Logger)

	return o, nil
}
