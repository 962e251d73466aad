// SPDX-License-Identifier: MIT

package assignment

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orkit/matrix"
)

// Solve returns a minimum-cost perfect assignment for the square matrix cost
// (maximum-weight with WithMaximize). cost is not modified.
//
// Errors: ErrBadOption, ErrEmpty, ErrNonSquare, ErrNonFinite, ctx.Err().
//
// Complexity: O(n³) time, O(n²) space.
func Solve(cost matrix.Matrix, opts ...Option) (Assignment, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Assignment{}, err
	}
	if err = validateSquare(cost); err != nil {
		return Assignment{}, err
	}

	work, err := matrix.Copy(cost)
	if err != nil {
		return Assignment{}, fmt.Errorf("assignment: copy: %w", err)
	}

	return solveOwned(cost, work, o)
}

// SolveRect solves an r×c problem by padding the short side with zero-cost
// dummy rows or columns. Rows or columns left on a dummy are reported as -1
// and contribute nothing to Cost. When r == c it is equivalent to Solve.
//
// Errors: ErrBadOption, ErrEmpty, ErrNonFinite, ctx.Err().
func SolveRect(cost matrix.Matrix, opts ...Option) (Assignment, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Assignment{}, err
	}
	if err = validateCells(cost); err != nil {
		return Assignment{}, err
	}

	r, c := cost.Rows(), cost.Cols()
	n := r
	if c > n {
		n = c
	}
	work, err := matrix.NewDense(n, n)
	if err != nil {
		return Assignment{}, fmt.Errorf("assignment: pad: %w", err)
	}
	var (
		i, j int
		x    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if x, err = cost.At(i, j); err != nil {
				return Assignment{}, err
			}
			if err = work.Set(i, j, x); err != nil {
				return Assignment{}, err
			}
		}
	}

	full, err := solveOwned(work, work.Clone().(*matrix.Dense), o)
	if err != nil {
		return Assignment{}, err
	}

	out := Assignment{
		RowToCol: full.RowToCol[:r:r],
		ColToRow: full.ColToRow[:c:c],
		Cost:     full.Cost, // dummy cells are zero
	}
	for i = range out.RowToCol {
		if out.RowToCol[i] >= c {
			out.RowToCol[i] = unmatched
		}
	}
	for j = range out.ColToRow {
		if out.ColToRow[j] >= r {
			out.ColToRow[j] = unmatched
		}
	}

	return out, nil
}

// solveOwned runs the Hungarian method on work (which it may overwrite) and
// prices the result against orig.
func solveOwned(orig matrix.Matrix, work *matrix.Dense, o Options) (Assignment, error) {
	if err := o.Ctx.Err(); err != nil {
		return Assignment{}, err
	}
	if o.Maximize {
		if err := work.Apply(func(_, _ int, v float64) float64 { return -v }); err != nil {
			return Assignment{}, err
		}
	}

	h := newHungarian(work, o)
	if err := h.run(); err != nil {
		return Assignment{}, err
	}

	var (
		total, x float64
		err      error
	)
	for i, j := range h.rowMatch {
		if x, err = orig.At(i, j); err != nil {
			return Assignment{}, err
		}
		total += x
	}

	return Assignment{RowToCol: h.rowMatch, ColToRow: h.colMatch, Cost: total}, nil
}

// validateSquare maps matrix validator sentinels onto this package's set.
func validateSquare(cost matrix.Matrix) error {
	if err := matrix.ValidateSquare(cost); err != nil {
		switch {
		case errors.Is(err, matrix.ErrNonSquare):
			return fmt.Errorf("%dx%d: %w", cost.Rows(), cost.Cols(), ErrNonSquare)
		default:
			return fmt.Errorf("%w: %w", ErrEmpty, err)
		}
	}

	return validateFinite(cost)
}

// validateCells accepts any non-empty r×c matrix of finite values.
func validateCells(cost matrix.Matrix) error {
	if cost == nil || cost.Rows() <= 0 || cost.Cols() <= 0 {
		return ErrEmpty
	}

	return validateFinite(cost)
}

func validateFinite(cost matrix.Matrix) error {
	if err := matrix.ValidateFinite(cost); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return fmt.Errorf("%w: %w", ErrNonFinite, err)
		}
		return err
	}

	return nil
}
