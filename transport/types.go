// SPDX-License-Identifier: MIT

package transport

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orkit/matrix"
)

// Sentinel errors returned by NorthWest and Allocation methods.
var (
	// ErrDimensionMismatch indicates supply/demand lengths disagree with the
	// cost matrix shape, or that either vector is empty.
	ErrDimensionMismatch = errors.New("transport: dimension mismatch")

	// ErrNegativeInput indicates a negative supply, demand or unit cost.
	ErrNegativeInput = errors.New("transport: negative input")

	// ErrImbalanced indicates Σsupply ≠ Σdemand under RejectImbalance.
	ErrImbalanced = errors.New("transport: total supply differs from total demand")

	// ErrNonFinite indicates a NaN or ±Inf input value.
	ErrNonFinite = errors.New("transport: NaN or Inf in input")

	// ErrBadOption indicates an invalid tolerance or unknown balance policy.
	ErrBadOption = errors.New("transport: invalid option")
)

// BalancePolicy decides what happens to an unbalanced instance.
type BalancePolicy int

const (
	// RejectImbalance fails with ErrImbalanced.
	RejectImbalance BalancePolicy = iota
	// AddDummy appends a zero-cost dummy source or destination.
	AddDummy
)

// String implements fmt.Stringer.
func (p BalancePolicy) String() string {
	switch p {
	case RejectImbalance:
		return "reject"
	case AddDummy:
		return "dummy"
	default:
		return fmt.Sprintf("BalancePolicy(%d)", int(p))
	}
}

// Cell addresses one entry of the allocation matrix.
type Cell struct {
	Row, Col int
}

// Allocation is the result of NorthWest.
type Allocation struct {
	// Quantities[i,j] is the amount shipped from source i to destination j.
	// With a dummy it has one extra row or column.
	Quantities *matrix.Dense

	// Basis lists the visited cells in visiting order, zero allocations included.
	Basis []Cell

	// DummyRow is the index of the dummy source, or -1.
	DummyRow int

	// DummyCol is the index of the dummy destination, or -1.
	DummyCol int
}

// RowSums returns the amount shipped by each source.
func (a Allocation) RowSums() ([]float64, error) {
	return matrix.RowSums(a.Quantities)
}

// ColSums returns the amount received by each destination.
func (a Allocation) ColSums() ([]float64, error) {
	return matrix.ColSums(a.Quantities)
}

// Cost prices the allocation: Σ Quantities[i,j]·cost[i,j].
//
// cost may have the shape of Quantities, or the original shape without the
// dummy row/column (dummy cells cost nothing either way).
//
// Errors: ErrDimensionMismatch for any other shape.
func (a Allocation) Cost(cost matrix.Matrix) (float64, error) {
	if a.Quantities == nil || cost == nil {
		return 0, fmt.Errorf("Allocation.Cost: %w", ErrDimensionMismatch)
	}
	rows, cols := a.Quantities.Shape()
	if cost.Rows() == rows && cost.Cols() == cols {
		return matrix.WeightedSum(a.Quantities, cost)
	}

	if a.DummyRow >= 0 {
		rows--
	}
	if a.DummyCol >= 0 {
		cols--
	}
	if cost.Rows() != rows || cost.Cols() != cols {
		return 0, fmt.Errorf("Allocation.Cost: cost is %dx%d, want %dx%d: %w",
			cost.Rows(), cost.Cols(), rows, cols, ErrDimensionMismatch)
	}

	var (
		acc, q, c float64
		i, j      int
		err       error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if q, err = a.Quantities.At(i, j); err != nil {
				return 0, err
			}
			if c, err = cost.At(i, j); err != nil {
				return 0, err
			}
			acc += q * c
		}
	}

	return acc, nil
}
