// SPDX-License-Identifier: MIT

package assignment

import "errors"

// Sentinel errors returned by Solve and SolveRect.
var (
	// ErrDimensionMismatch indicates ragged or inconsistent input rows.
	ErrDimensionMismatch = errors.New("assignment: dimension mismatch")

	// ErrNonSquare indicates Solve received an r×c matrix with r ≠ c.
	ErrNonSquare = errors.New("assignment: cost matrix is not square")

	// ErrNonFinite indicates a NaN or ±Inf cost.
	ErrNonFinite = errors.New("assignment: NaN or Inf cost")

	// ErrEmpty indicates a nil or empty cost matrix.
	ErrEmpty = errors.New("assignment: empty cost matrix")

	// ErrBadOption indicates an invalid option value.
	ErrBadOption = errors.New("assignment: invalid option")
)

// Assignment is an optimal pairing of rows and columns.
type Assignment struct {
	// RowToCol[i] is the column assigned to row i, or -1 (SolveRect only).
	RowToCol []int

	// ColToRow[j] is the row assigned to column j, or -1 (SolveRect only).
	ColToRow []int

	// Cost is the sum of the selected entries of the original cost matrix.
	Cost float64
}

// Pairs returns the matched (row, col) pairs in row order, skipping unmatched rows.
func (a Assignment) Pairs() [][2]int {
	out := make([][2]int, 0, len(a.RowToCol))
	for i, j := range a.RowToCol {
		if j >= 0 {
			out = append(out, [2]int{i, j})
		}
	}

	return out
}
