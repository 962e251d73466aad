// SPDX-License-Identifier: MIT

package orkit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orkit/assignment"
	"github.com/katalvlaran/orkit/matrix"
	"github.com/katalvlaran/orkit/simplex"
	"github.com/katalvlaran/orkit/transport"
)

// Optimization senses for SolveLP.
const (
	Maximize = simplex.Maximize
	Minimize = simplex.Minimize
)

// SolveLP optimizes objectiveᵀx subject to constraints·x ≤ rhs, x ≥ 0.
// An empty constraints slice means x ≥ 0 is the only restriction.
//
// Errors are those of simplex.Solve; malformed rows are reported as
// simplex.ErrDimensionMismatch or simplex.ErrNonFinite.
func SolveLP(objective []float64, constraints [][]float64, rhs []float64, sense simplex.Sense, opts ...simplex.Option) (simplex.Solution, error) {
	var A matrix.Matrix
	if len(constraints) > 0 {
		d, err := matrix.NewDenseFromRows(constraints)
		if err != nil {
			return simplex.Solution{}, mapMatrixErr("SolveLP", err, simplex.ErrDimensionMismatch, simplex.ErrNonFinite)
		}
		A = d
	}

	return simplex.Solve(objective, A, rhs, sense, opts...)
}

// AllocateTransportation returns the north-west corner allocation for the
// given supply, demand and unit-cost rows (len(supply) × len(demand)).
//
// Errors are those of transport.NorthWest.
func AllocateTransportation(supply, demand []float64, cost [][]float64, opts ...transport.Option) (transport.Allocation, error) {
	c, err := matrix.NewDenseFromRows(cost)
	if err != nil {
		return transport.Allocation{}, mapMatrixErr("AllocateTransportation", err, transport.ErrDimensionMismatch, transport.ErrNonFinite)
	}

	return transport.NorthWest(supply, demand, c, opts...)
}

// SolveAssignment returns a minimum-cost bijection for a square cost matrix.
//
// Errors are those of assignment.Solve; an empty matrix is assignment.ErrEmpty
// and ragged rows are assignment.ErrDimensionMismatch.
func SolveAssignment(cost [][]float64, opts ...assignment.Option) (assignment.Assignment, error) {
	if len(cost) == 0 || len(cost[0]) == 0 {
		return assignment.Assignment{}, fmt.Errorf("SolveAssignment: %w", assignment.ErrEmpty)
	}
	c, err := matrix.NewDenseFromRows(cost)
	if err != nil {
		return assignment.Assignment{}, mapMatrixErr("SolveAssignment", err, assignment.ErrDimensionMismatch, assignment.ErrNonFinite)
	}

	return assignment.Solve(c, opts...)
}

// mapMatrixErr re-tags a matrix construction error with the caller's sentinels
// while keeping the original in the chain.
func mapMatrixErr(op string, err, shape, nonFinite error) error {
	if errors.Is(err, matrix.ErrNaNInf) {
		return fmt.Errorf("%s: %w: %w", op, nonFinite, err)
	}

	return fmt.Errorf("%s: %w: %w", op, shape, err)
}
