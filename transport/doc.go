// Package transport builds initial feasible allocations for the
// transportation problem with the north-west corner method.
//
// Given m sources with supply s_i, n destinations with demand d_j and an m×n
// unit-cost matrix, NorthWest fills the allocation matrix greedily from cell
// (0,0): each step ships min(remaining s_i, remaining d_j) and then moves one
// cursor. The result satisfies every supply and every demand exactly but
// ignores cost, so it is a starting basis for stepping-stone or MODI
// improvement rather than an optimum.
//
// Balance policy:
//   - RejectImbalance (default): Σs ≠ Σd returns ErrImbalanced and no allocation.
//   - AddDummy: a zero-cost dummy source or destination absorbs the difference;
//     its index is reported in Allocation.DummyRow / Allocation.DummyCol.
//
// Totals are compared with gonum's scalar.EqualWithinAbs under
// Options.Tolerance, so decimal inputs such as 0.1+0.2 vs 0.3 balance while
// large whole-unit totals that differ by one unit never do. Remainders within
// the same tolerance of zero are treated as exhausted during the walk.
//
// Degenerate steps: when a supply and a demand run out on the same step only
// the row cursor advances. The next step then records a zero allocation in
// the column that just closed, so the basis always has m+n−1 cells.
//
// Complexity: O(m·n) to validate and zero the matrix, O(m+n) steps.
package transport
