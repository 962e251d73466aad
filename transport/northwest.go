// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/orkit/matrix"
)

// NorthWest returns the north-west corner allocation for supply, demand and cost.
//
// Implementation:
//   - Stage 1: validate shapes (len(supply) × len(demand) == cost shape),
//     finiteness and signs, in that order.
//   - Stage 2: compare totals; reject or append a dummy per Options.Policy.
//   - Stage 3: walk the cursor from (0,0), shipping min(remaining supply,
//     remaining demand) and advancing exactly one index per step (row first
//     when both run out). Remainders within Options.Tolerance of zero count
//     as exhausted so decimal rounding never spawns extra sliver shipments.
//
// Inputs are not modified. cost is only validated here; price the result
// with Allocation.Cost.
//
// Errors: ErrBadOption, ErrDimensionMismatch, ErrNonFinite, ErrNegativeInput, ErrImbalanced.
func NorthWest(supply, demand []float64, cost matrix.Matrix, opts ...Option) (Allocation, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Allocation{}, err
	}
	if err = validate(supply, demand, cost); err != nil {
		return Allocation{}, err
	}

	rs := append([]float64(nil), supply...)
	rd := append([]float64(nil), demand...)
	dummyRow, dummyCol := -1, -1

	ts, td := floats.Sum(rs), floats.Sum(rd)
	if !scalar.EqualWithinAbs(ts, td, o.Tolerance) {
		if o.Policy == RejectImbalance {
			return Allocation{}, fmt.Errorf("supply %g, demand %g: %w", ts, td, ErrImbalanced)
		}
		if ts < td {
			dummyRow = len(rs)
			rs = append(rs, td-ts)
		} else {
			dummyCol = len(rd)
			rd = append(rd, ts-td)
		}
		o.Logger.Print(fmt.Sprintf("transport: dummy row %d col %d absorbs %g", dummyRow, dummyCol, math.Abs(ts-td)))
	}

	m, n := len(rs), len(rd)
	q, err := matrix.NewDense(m, n)
	if err != nil {
		return Allocation{}, err
	}
	basis := make([]Cell, 0, m+n-1)

	var (
		i, j int
		x    float64
	)
	for i < m && j < n {
		x = math.Min(rs[i], rd[j])
		if err = q.Set(i, j, x); err != nil {
			return Allocation{}, err
		}
		basis = append(basis, Cell{Row: i, Col: j})
		rs[i] = snap(rs[i]-x, o.Tolerance)
		rd[j] = snap(rd[j]-x, o.Tolerance)
		o.Logger.Print(fmt.Sprintf("transport: ship %g at (%d,%d)", x, i, j))

		if rs[i] == 0 {
			i++
		} else {
			j++
		}
	}

	return Allocation{Quantities: q, Basis: basis, DummyRow: dummyRow, DummyCol: dummyCol}, nil
}

// snap zeroes a remainder whose magnitude is within tol.
func snap(v, tol float64) float64 {
	if math.Abs(v) <= tol {
		return 0
	}
	return v
}

// validate checks shapes, then finiteness, then signs across supply, demand and cost.
func validate(supply, demand []float64, cost matrix.Matrix) error {
	if len(supply) == 0 || len(demand) == 0 {
		return fmt.Errorf("supply %d, demand %d: %w", len(supply), len(demand), ErrDimensionMismatch)
	}
	if err := matrix.ValidateShape(cost, len(supply), len(demand)); err != nil {
		return fmt.Errorf("cost: %w: %w", ErrDimensionMismatch, err)
	}

	if err := matrix.ValidateVecFinite(supply); err != nil {
		return fmt.Errorf("supply: %w: %w", ErrNonFinite, err)
	}
	if err := matrix.ValidateVecFinite(demand); err != nil {
		return fmt.Errorf("demand: %w: %w", ErrNonFinite, err)
	}
	if err := matrix.ValidateFinite(cost); err != nil {
		return fmt.Errorf("cost: %w: %w", ErrNonFinite, err)
	}

	if err := matrix.ValidateVecNonNegative(supply); err != nil {
		return fmt.Errorf("supply: %w: %w", ErrNegativeInput, err)
	}
	if err := matrix.ValidateVecNonNegative(demand); err != nil {
		return fmt.Errorf("demand: %w: %w", ErrNegativeInput, err)
	}
	if err := matrix.ValidateNonNegative(cost); err != nil {
		return fmt.Errorf("cost: %w: %w", ErrNegativeInput, err)
	}

	return nil
}
