// Package matrix provides the dense storage shared by the orkit solvers.
//
// The matrix package provides:
//
//   - Matrix, a small bounds-checked interface (Rows, Cols, At, Set, Clone)
//     that solver entry points accept, so callers may plug their own storage.
//   - Dense, a row-major float64 buffer with O(1) safe accessors and a raw
//     row view used by solver hot loops (simplex pivots, Hungarian reductions).
//   - Validators (shape, square, vector length, finite, non-negative) that
//     every solver runs before its algorithm touches the data.
//   - Aggregates (RowSums, ColSums, WeightedSum) used to check transportation
//     allocations and to price them against a cost matrix.
//
// Errors are package sentinels (see errors.go) wrapped with a call-site tag;
// match them with errors.Is. Public methods never panic on user input.
//
// Complexity quicksheet:
//   - NewDense / NewDenseFromRows / Clone: O(r*c).
//   - At / Set / RawRow: O(1).
//   - RowSums / ColSums / WeightedSum / validators: O(r*c).
package matrix
