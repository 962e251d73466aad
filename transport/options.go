// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"
	"math"

	"github.com/katalvlaran/orkit/internal/logx"
)

// DefaultTolerance is the absolute tolerance for the balance check and for
// treating a remainder as exhausted.
const DefaultTolerance = 1e-9

// Options configures NorthWest.
//   - Policy: what to do when Σsupply ≠ Σdemand (default RejectImbalance).
//   - Tolerance: absolute balance tolerance, ≥ 0 (default 1e-9).
//   - Logger: one line per allocation step.
type Options struct {
	Policy    BalancePolicy
	Tolerance float64
	Logger    logx.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Policy:    RejectImbalance,
		Tolerance: DefaultTolerance,
		Logger:    logx.Nop{},
	}
}

// WithBalancePolicy selects the imbalance policy.
func WithBalancePolicy(p BalancePolicy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithTolerance sets the balance tolerance. Use 0 for exact comparison.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithLogger installs a step trace logger.
func WithLogger(l logx.Logger) Option {
	return func(o *Options) { o.Logger = logx.OrNop(l) }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) {
		return o, fmt.Errorf("Tolerance=%g: %w", o.Tolerance, ErrBadOption)
	}
	if o.Policy != RejectImbalance && o.Policy != AddDummy {
		return o, fmt.Errorf("%v: %w", o.Policy, ErrBadOption)
	}
	o.Logger = logx.OrNop(o.Logger)

	return o, nil
}
