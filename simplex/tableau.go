// SPDX-License-Identifier: MIT

package simplex

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/orkit/matrix"
)

// tableau is the working state of one Solve call.
//
// Layout ((m+1) × (n+m+1), row-major *matrix.Dense):
//
//	rows 0..m-1 : [ A | I | b ]        one row per constraint
//	row  m      : [ c' | 0 | -z ]      reduced costs of the minimized objective c'
//
// The last column holds the rhs; basis[i] is the variable basic in row i.
// With the non-basic variables at zero the current minimized objective is
// -T[m, last].
type tableau struct {
	t     *matrix.Dense
	n, m  int   // decision variables, constraints
	width int   // n + m + 1
	basis []int // len m
	eps   float64
}

// newTableau copies A, rhs and the (already sign-adjusted) costs into a fresh tableau.
func newTableau(cost []float64, A matrix.Matrix, rhs []float64, eps float64) (*tableau, error) {
	n, m := len(cost), len(rhs)
	width := n + m + 1
	t, err := matrix.NewDense(m+1, width)
	if err != nil {
		return nil, err
	}

	basis := make([]int, m)
	var (
		i, j int
		v    float64
		row  []float64
	)
	for i = 0; i < m; i++ {
		if row, err = t.RawRow(i); err != nil {
			return nil, err
		}
		for j = 0; j < n; j++ {
			if v, err = A.At(i, j); err != nil {
				return nil, err
			}
			row[j] = v
		}
		row[n+i] = 1 // slack s_i
		row[width-1] = rhs[i]
		basis[i] = n + i
	}
	if row, err = t.RawRow(m); err != nil {
		return nil, err
	}
	copy(row, cost)

	return &tableau{t: t, n: n, m: m, width: width, basis: basis, eps: eps}, nil
}

// row returns row i of the tableau. Indices are always internal and valid.
func (tb *tableau) row(i int) []float64 {
	r, _ := tb.t.RawRow(i)
	return r
}

// entering returns the column with the most negative reduced cost, or -1
// when every reduced cost is ≥ -eps (optimal). floats.MinIdx reports the
// lowest index among equal minima, which is the tie-break rule.
func (tb *tableau) entering() int {
	costs := tb.row(tb.m)[:tb.n+tb.m]
	q := floats.MinIdx(costs)
	if costs[q] < -tb.eps {
		return q
	}

	return -1
}

// leaving runs the minimum-ratio test on column q and returns the pivot row,
// or -1 when no entry in column q exceeds eps (unbounded direction).
// Ties keep the lowest row index.
func (tb *tableau) leaving(q int) int {
	p := -1
	best := 0.0
	rhs := tb.width - 1
	var (
		i     int
		row   []float64
		ratio float64
	)
	for i = 0; i < tb.m; i++ {
		row = tb.row(i)
		if row[q] <= tb.eps {
			continue
		}
		ratio = row[rhs] / row[q]
		if p < 0 || ratio < best {
			p, best = i, ratio
		}
	}

	return p
}

// pivot makes column q a unit vector with its 1 in row p and records q as basic in row p.
//
// Implementation:
//   - Stage 1: divide row p by its pivot entry (exact 1 written back).
//   - Stage 2: for every other row, including the cost row, subtract
//     row[q] × row p via floats.AddScaled and write an exact 0 into column q.
//
// Complexity: O((m+1)·width).
func (tb *tableau) pivot(p, q int) {
	pr := tb.row(p)
	piv := pr[q]
	var j int
	for j = range pr {
		pr[j] /= piv
	}
	pr[q] = 1

	var (
		i   int
		row []float64
		f   float64
	)
	for i = 0; i <= tb.m; i++ {
		if i == p {
			continue
		}
		row = tb.row(i)
		f = row[q]
		if f == 0 {
			continue
		}
		floats.AddScaled(row, -f, pr)
		row[q] = 0
	}
	tb.basis[p] = q
}

// value returns the current minimized objective.
func (tb *tableau) value() float64 {
	return -tb.row(tb.m)[tb.width-1]
}

// point reads the basic solution over all n+m variables. Values within eps
// of zero are snapped to 0 so degenerate bases do not leak -0 or 1e-17 noise.
func (tb *tableau) point() []float64 {
	x := make([]float64, tb.n+tb.m)
	rhs := tb.width - 1
	var v float64
	for i, b := range tb.basis {
		v = tb.row(i)[rhs]
		if v < tb.eps && v > -tb.eps {
			v = 0
		}
		x[b] = v
	}

	return x
}
