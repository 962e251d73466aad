// Package orkit is a small, pure-Go operations-research toolkit: three
// classical solvers behind plain-slice entry points.
//
// What is inside?
//
//   - Linear programming: primal simplex over a dense tableau (simplex/).
//   - Transportation: north-west corner initial allocation (transport/).
//   - Assignment: Hungarian method, O(n³) (assignment/).
//   - Storage: row-major Dense matrices, validators, aggregates (matrix/).
//
// Why orkit?
//
//   - Deterministic: fixed loop orders and explicit tie-break rules; the same
//     input always gives the same answer.
//   - Stateless: every call owns its working state; solvers are safe to run
//     concurrently without locks.
//   - Typed outcomes: "unbounded" is a Status, malformed input is a sentinel
//     error you can match with errors.Is.
//   - Pure Go: gonum's floats kernels, no cgo.
//
// The root package converts [][]float64 input into matrix.Dense values and
// forwards to the solver packages. Use the subpackages directly for options
// such as logging, cancellation, balance policy or maximization.
//
// Quick example:
//
//	sol, err := orkit.SolveLP(
//		[]float64{3, 5},
//		[][]float64{{1, 0}, {0, 2}, {3, 2}},
//		[]float64{4, 12, 18},
//		orkit.Maximize,
//	)
//	// sol.Objective == 36 at x = 2, y = 6
//
//	go get github.com/katalvlaran/orkit
package orkit
