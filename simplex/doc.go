// Package simplex solves linear programs of the form
//
//	max / min  cᵀx
//	subject to A·x ≤ b,  x ≥ 0
//
// with the primal simplex method over a dense tableau.
//
// MAIN DESCRIPTION:
//   - The problem is turned into a minimization (the objective is negated when
//     maximizing) and every constraint receives one slack variable, giving a
//     system over n+m variables whose initial basis is the slack block.
//   - The origin must be feasible: every rhs entry must be ≥ 0. A negative
//     rhs is rejected before any pivot with StatusInfeasible and ErrInfeasible
//     (there is no phase-one / big-M start).
//   - Each iteration enters the column with the most negative reduced cost
//     (lowest index on ties) and leaves the row with the minimum ratio
//     rhs/pivot over positive pivot entries (lowest row on ties).
//   - A column with no positive entry ends the run with StatusUnbounded.
//
// Termination:
//   - In exact arithmetic the method visits at most C(n+m, m) bases, so the
//     default iteration cap is C(n+m, m)+1 (saturated at MaxAutoIterations).
//     Hitting the cap returns ErrIterationLimit, which always signals a
//     numerical or cycling defect rather than bad input.
//
// Outcomes:
//   - StatusOptimal   → Solution.X, Solution.Slack and Solution.Objective are set.
//   - StatusUnbounded → normal result, nil error, no X.
//   - StatusInfeasible → only for the negative-rhs precondition, paired with ErrInfeasible.
//   - StatusNotSolved  → zero value; every other error return carries it.
//
// Options:
//   - WithEpsilon(eps):      tolerance for reduced costs and pivot entries (default 1e-9).
//   - WithMaxIterations(k):  override the automatic pivot cap.
//   - WithLogger(l):         one line per pivot.
//   - WithContext(ctx):      cooperative cancellation, checked before every pivot.
//
// Complexity:
//   - Each pivot costs O((m+1)·(n+m+1)); memory is one tableau of the same size.
//
// Example:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 2}, {3, 2}})
//	sol, err := simplex.Solve([]float64{3, 5}, A, []float64{4, 12, 18}, simplex.Maximize)
//	// sol.Objective == 36, sol.X == [2 6]
package simplex
