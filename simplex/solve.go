// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/orkit/matrix"
)

// Solve optimizes objectiveᵀx subject to A·x ≤ rhs and x ≥ 0.
//
// MAIN DESCRIPTION:
//   - objective has length n ≥ 1; A is m×n; rhs has length m. A may be nil
//     when rhs is empty, in which case only x ≥ 0 constrains the problem.
//   - Inputs are never modified; the tableau is a private copy.
//
// Implementation:
//   - Stage 1: validate options and the problem (see validateProblem).
//   - Stage 2: build the slack tableau over the minimized objective.
//   - Stage 3: pivot until no reduced cost is below -eps (optimal) or the
//     entering column has no positive entry (unbounded).
//   - Stage 4: read X and Slack off the basis and restore the caller's sign.
//
// Errors:
//   - ErrBadOption, ErrDimensionMismatch, ErrNonFinite for malformed input.
//   - ErrInfeasible together with Solution{Status: StatusInfeasible} for a negative rhs.
//   - ErrIterationLimit when the pivot cap is exhausted.
//   - ctx.Err() when the context from WithContext is done.
//
// Complexity: O(k·(m+1)·(n+m+1)) time for k pivots, O((m+1)·(n+m+1)) space.
func Solve(objective []float64, A matrix.Matrix, rhs []float64, sense Sense, opts ...Option) (Solution, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Solution{}, err
	}

	n, m, err := validateProblem(objective, A, rhs, sense)
	if err != nil {
		if errors.Is(err, ErrInfeasible) {
			return Solution{Status: StatusInfeasible}, err
		}
		return Solution{}, err
	}

	// Internally always minimize.
	cost := make([]float64, n)
	copy(cost, objective)
	if sense == Maximize {
		floats.Scale(-1, cost)
	}

	tb, err := newTableau(cost, A, rhs, o.Epsilon)
	if err != nil {
		return Solution{}, fmt.Errorf("simplex: build tableau: %w", err)
	}

	limit := o.MaxIterations
	if limit == 0 {
		limit = iterationCap(n, m)
	}

	var iter, p, q int
	for {
		if err = o.Ctx.Err(); err != nil {
			return Solution{Iterations: iter}, err
		}

		q = tb.entering()
		if q < 0 {
			break
		}
		p = tb.leaving(q)
		if p < 0 {
			o.Logger.Print(fmt.Sprintf("simplex: column %d unbounded after %d pivots", q, iter))
			return Solution{Status: StatusUnbounded, Iterations: iter}, nil
		}
		if iter >= limit {
			return Solution{Iterations: iter}, wrapf("after %d pivots", ErrIterationLimit, iter)
		}

		tb.pivot(p, q)
		iter++
		o.Logger.Print(fmt.Sprintf("simplex: pivot %d: enter %d leave row %d, value %g", iter, q, p, tb.value()))
	}

	x := tb.point()
	obj := tb.value()
	if sense == Maximize {
		obj = -obj
	}
	if obj == 0 {
		obj = 0 // drop a negative zero
	}

	return Solution{
		Status:     StatusOptimal,
		X:          x[:n:n],
		Slack:      x[n:],
		Objective:  obj,
		Iterations: iter,
	}, nil
}
