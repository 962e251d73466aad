// SPDX-License-Identifier: MIT
// Package matrix: aggregates over Matrix values.
//
// Purpose:
//   - Row/column sums to check transportation allocations against supply and demand.
//   - Weighted element-wise sum Σ a⊙b to price an allocation against a cost matrix.
//
// Determinism & Policy:
//   - Fixed i→j accumulation order; identical inputs give bit-identical sums.
//   - *Dense operands take a flat-slice fast path; other Matrix types go through At.

package matrix

const (
	opRowSums     = "RowSums"
	opColSums     = "ColSums"
	opWeightedSum = "WeightedSum"
)

// RowSums returns vector r where r[i] = Σ_j m[i,j].
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns vector c where c[j] = Σ_i m[i,j].
// Complexity: O(rc).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, cols)

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// WeightedSum returns Σ_{i,j} a[i,j]·b[i,j] for identically shaped a and b.
// With a = allocation and b = unit cost it yields the total shipping cost.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rc).
func WeightedSum(a, b Matrix) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opWeightedSum, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, matrixErrorf(opWeightedSum, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opWeightedSum, err)
	}

	var acc float64
	// Fast path: both *Dense share the same row-major layout.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				acc += da.data[idx] * db.data[idx]
			}
			return acc, nil
		}
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return 0, matrixErrorf(opWeightedSum, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return 0, matrixErrorf(opWeightedSum, err)
			}
			acc += av * bv
		}
	}

	return acc, nil
}

// Copy returns src materialized as a fresh *Dense, regardless of its concrete type.
// Solvers use it to take exclusive ownership of their working state.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, anything src.At reports.
// Complexity: O(rc).
func Copy(src Matrix) (*Dense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf("Copy", err)
	}
	if d, ok := src.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	dst, err := NewDense(src.Rows(), src.Cols())
	if err != nil {
		return nil, matrixErrorf("Copy", err)
	}

	var i, j int
	var v float64
	for i = 0; i < src.Rows(); i++ {
		for j = 0; j < src.Cols(); j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, matrixErrorf("Copy", err)
			}
			dst.data[i*dst.c+j] = v
		}
	}

	return dst, nil
}
