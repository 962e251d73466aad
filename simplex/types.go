// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is; call sites wrap them
// with the offending index or operation.
var (
	// ErrDimensionMismatch indicates len(objective), A's shape and len(rhs) disagree,
	// or that the objective is empty.
	ErrDimensionMismatch = errors.New("simplex: dimension mismatch")

	// ErrNonFinite indicates a NaN or ±Inf in the objective, A or rhs.
	ErrNonFinite = errors.New("simplex: NaN or Inf in input")

	// ErrInfeasible indicates a negative rhs entry: the origin is not a
	// basic feasible solution and this solver has no phase-one start.
	ErrInfeasible = errors.New("simplex: negative rhs, origin is infeasible")

	// ErrIterationLimit indicates the pivot cap was exhausted (cycling or
	// numerical breakdown).
	ErrIterationLimit = errors.New("simplex: iteration limit exceeded")

	// ErrBadOption indicates an invalid option value or an unknown Sense.
	ErrBadOption = errors.New("simplex: invalid option")
)

// Sense selects the optimization direction.
type Sense int

const (
	// Maximize cᵀx.
	Maximize Sense = iota
	// Minimize cᵀx.
	Minimize
)

// String implements fmt.Stringer.
func (s Sense) String() string {
	switch s {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// Status is the algorithmic outcome of a solve.
type Status int

// The zero value is StatusNotSolved, so a Solution returned alongside an
// error never claims an outcome.
const (
	// StatusNotSolved means the run stopped before reaching an outcome.
	StatusNotSolved Status = iota
	// StatusOptimal means an optimal basic feasible solution was found.
	StatusOptimal
	// StatusInfeasible means the problem was rejected as infeasible at the origin.
	StatusInfeasible
	// StatusUnbounded means the objective improves without bound.
	StatusUnbounded
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusNotSolved:
		return "not solved"
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Solution is the result of Solve.
type Solution struct {
	// Status reports how the run ended.
	Status Status

	// X holds the n decision variables (all ≥ 0). Nil unless Status == StatusOptimal.
	X []float64

	// Slack holds b − A·X for each of the m constraints. Nil unless optimal.
	Slack []float64

	// Objective is cᵀX in the caller's sense. Zero unless optimal.
	Objective float64

	// Iterations counts the pivots performed.
	Iterations int
}
