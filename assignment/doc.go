// Package assignment solves the linear assignment problem: given an n×n cost
// matrix, find the bijection rows → columns with minimum total cost.
//
// MAIN DESCRIPTION:
//
// Solve runs the Hungarian method:
//  1. Row reduction: subtract each row minimum.
//  2. Column reduction: subtract each column minimum.
//  3. Match rows to columns along zero entries with augmenting paths. When
//     the matching is not perfect, the rows and columns reachable from a free
//     row by alternating paths (set Z) give a minimum cover of the zeros:
//     rows outside Z plus columns inside Z.
//  4. Subtract the smallest uncovered value δ from every uncovered entry,
//     add δ to every entry covered twice, and continue from step 3.
//
// The reductions are kept as row and column potentials (u, v), so the reduced
// matrix c[i,j] − u[i] − v[j] is never materialized and step 4 costs O(n)
// per round. Together with per-column slack this gives O(n³) time and O(n²)
// space (one private copy of the costs).
//
// Ties: among equal-cost optima the lowest row is matched first and each row
// prefers the lowest tight column; the pairing is deterministic and the total
// cost is always the optimum.
//
// Supported inputs:
//   - any finite real costs (negative values are fine);
//   - WithMaximize() for the maximum-weight variant;
//   - SolveRect for r×c matrices, padded with zero-cost dummies; unmatched
//     rows or columns are reported as -1.
//
// Errors:
//   - ErrEmpty (nil or 0×0), ErrNonSquare, ErrNonFinite, ErrBadOption.
//   - ctx.Err() when the context from WithContext is done.
package assignment
