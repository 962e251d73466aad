// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orkit/matrix"
)

// wrapf prefixes sentinel with a formatted call-site context.
func wrapf(format string, sentinel error, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, sentinel)...)
}

// validateProblem checks shapes and numeric policy in the documented priority:
// sense → shape → finiteness → rhs sign. It returns (n, m).
//
// A may be nil only when rhs is empty (no constraints).
//
// Complexity: O(m·n).
func validateProblem(objective []float64, A matrix.Matrix, rhs []float64, sense Sense) (int, int, error) {
	if sense != Maximize && sense != Minimize {
		return 0, 0, wrapf("sense %v", ErrBadOption, sense)
	}

	n, m := len(objective), len(rhs)
	if n == 0 {
		return 0, 0, wrapf("objective is empty", ErrDimensionMismatch)
	}
	if A == nil {
		if m != 0 {
			return 0, 0, wrapf("A is nil with %d rhs entries", ErrDimensionMismatch, m)
		}
	} else if err := matrix.ValidateShape(A, m, n); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}

	if err := matrix.ValidateVecFinite(objective); err != nil {
		return 0, 0, fmt.Errorf("objective: %w: %w", ErrNonFinite, err)
	}
	if err := matrix.ValidateVecFinite(rhs); err != nil {
		return 0, 0, fmt.Errorf("rhs: %w: %w", ErrNonFinite, err)
	}
	if A != nil {
		if err := matrix.ValidateFinite(A); err != nil {
			return 0, 0, fmt.Errorf("A: %w: %w", ErrNonFinite, err)
		}
	}

	if err := matrix.ValidateVecNonNegative(rhs); err != nil {
		if errors.Is(err, matrix.ErrNegative) {
			return n, m, fmt.Errorf("rhs: %w: %w", ErrInfeasible, err)
		}
		return 0, 0, err
	}

	return n, m, nil
}
