// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for input validation.
//   - Keep solvers minimal by delegating shape/nil/sign checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Element scans stop at the first violation in row-major order, so the
//     reported error always names the same cell for the same input.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil. Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateShape ensures m is non-nil and exactly rows×cols.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateShape(m Matrix, rows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateShape", err)
	}
	if m.Rows() != rows || m.Cols() != cols {
		return fmt.Errorf("ValidateShape: got %dx%d, want %dx%d: %w",
			m.Rows(), m.Cols(), rows, cols, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil, non-empty and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateSquare", ErrInvalidDimensions)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is accepted only when n == 0.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return fmt.Errorf("ValidateVecLen: got %d, want %d: %w", len(x), n, ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m in row-major order and rejects the first NaN/±Inf.
//
// Errors: ErrNilMatrix, ErrNaNInf (wrapped with coordinates).
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	return scanCells("ValidateFinite", m, func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		return nil
	})
}

// ValidateNonNegative scans m in row-major order and rejects the first entry
// that is NaN/±Inf (ErrNaNInf) or negative (ErrNegative).
//
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}
	return scanCells("ValidateNonNegative", m, func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegative
		}
		return nil
	})
}

// ValidateVecFinite rejects the first NaN/±Inf element of x.
// Complexity: O(len(x)).
func ValidateVecFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("ValidateVecFinite: index %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}

// ValidateVecNonNegative rejects the first NaN/±Inf (ErrNaNInf) or negative
// (ErrNegative) element of x.
// Complexity: O(len(x)).
func ValidateVecNonNegative(x []float64) error {
	if err := ValidateVecFinite(x); err != nil {
		return err
	}
	for i, v := range x {
		if v < 0 {
			return fmt.Errorf("ValidateVecNonNegative: index %d: %w", i, ErrNegative)
		}
	}

	return nil
}

// scanCells applies check to every cell of m (row-major) and wraps the first
// violation with the validator tag and cell coordinates.
func scanCells(tag string, m Matrix, check func(v float64) error) error {
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
			}
		}
	}

	return nil
}
