// SPDX-License-Identifier: MIT

package assignment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/orkit/matrix"
)

const unmatched = -1

// hungarian holds the working state of one solve over an n×n matrix.
//
// Invariants:
//   - reduced(i,j) = c[i,j] − u[i] − v[j] ≥ −eps for all i, j;
//   - every matched pair has reduced(i,j) ≈ 0;
//   - rowMatch and colMatch are mutually inverse on matched entries.
type hungarian struct {
	c    *matrix.Dense // private copy, negated when maximizing
	n    int
	eps  float64
	u, v []float64 // row / column potentials (accumulated reductions)

	rowMatch, colMatch []int

	// per-phase scratch
	inZRow, inZCol []bool
	slack          []float64 // min reduced cost into column j from rows in Z
	slackRow       []int     // row of Z achieving slack[j]

	opts   Options
	rounds int // adjustment rounds
}

func newHungarian(c *matrix.Dense, opts Options) *hungarian {
	n := c.Rows()
	h := &hungarian{
		c:        c,
		n:        n,
		eps:      opts.Epsilon,
		u:        make([]float64, n),
		v:        make([]float64, n),
		rowMatch: make([]int, n),
		colMatch: make([]int, n),
		inZRow:   make([]bool, n),
		inZCol:   make([]bool, n),
		slack:    make([]float64, n),
		slackRow: make([]int, n),
		opts:     opts,
	}
	for i := 0; i < n; i++ {
		h.rowMatch[i] = unmatched
		h.colMatch[i] = unmatched
	}

	return h
}

func (h *hungarian) row(i int) []float64 {
	r, _ := h.c.RawRow(i)
	return r
}

// reduced returns c[i,j] − u[i] − v[j].
func (h *hungarian) reduced(i, j int) float64 {
	return h.row(i)[j] - h.u[i] - h.v[j]
}

// reduce performs the row reduction then the column reduction.
func (h *hungarian) reduce() {
	var i, j int
	for i = 0; i < h.n; i++ {
		h.u[i] = floats.Min(h.row(i))
	}
	for j = 0; j < h.n; j++ {
		h.v[j] = math.Inf(1)
	}
	var r float64
	for i = 0; i < h.n; i++ {
		for j = 0; j < h.n; j++ {
			if r = h.row(i)[j] - h.u[i]; r < h.v[j] {
				h.v[j] = r
			}
		}
	}
}

// seed matches rows greedily to the lowest free zero column.
func (h *hungarian) seed() {
	var i, j int
	for i = 0; i < h.n; i++ {
		for j = 0; j < h.n; j++ {
			if h.colMatch[j] == unmatched && h.reduced(i, j) <= h.eps {
				h.rowMatch[i], h.colMatch[j] = j, i
				break
			}
		}
	}
}

// run augments the matching once from every free row.
func (h *hungarian) run() error {
	h.reduce()
	h.seed()

	for r := 0; r < h.n; r++ {
		if h.rowMatch[r] != unmatched {
			continue
		}
		if err := h.opts.Ctx.Err(); err != nil {
			return err
		}
		if err := h.augmentFrom(r); err != nil {
			return err
		}
		h.opts.Logger.Print(fmt.Sprintf("assignment: row %d matched to column %d", r, h.rowMatch[r]))
	}

	return nil
}

// augmentFrom grows the alternating tree Z rooted at the free row r until a
// free column is reached along zero reduced costs, adjusting the potentials
// whenever Z has no zero leaving it, then flips the path.
//
// Z spans rows inZRow and columns inZCol. The current zero cover consists of
// the rows outside Z and the columns inside Z.
func (h *hungarian) augmentFrom(r int) error {
	var j int
	for j = 0; j < h.n; j++ {
		h.inZRow[j] = false
		h.inZCol[j] = false
	}
	h.addRow(r, true)

	for {
		j = h.tightColumn()
		if j == unmatched {
			if err := h.opts.Ctx.Err(); err != nil {
				return err
			}
			h.adjust()
			continue
		}

		h.inZCol[j] = true
		if h.colMatch[j] == unmatched {
			h.flip(j)
			return nil
		}
		h.addRow(h.colMatch[j], false)
	}
}

// addRow puts row i into Z and lowers the column slacks it improves.
func (h *hungarian) addRow(i int, root bool) {
	h.inZRow[i] = true
	var (
		j int
		d float64
	)
	for j = 0; j < h.n; j++ {
		if h.inZCol[j] {
			continue
		}
		d = h.reduced(i, j)
		if root || d < h.slack[j] {
			h.slack[j] = d
			h.slackRow[j] = i
		}
	}
}

// tightColumn returns the lowest column outside Z reached by a zero, or -1.
func (h *hungarian) tightColumn() int {
	for j := 0; j < h.n; j++ {
		if !h.inZCol[j] && h.slack[j] <= h.eps {
			return j
		}
	}

	return unmatched
}

// adjust subtracts δ = min uncovered reduced cost from the uncovered entries
// and adds it to the doubly covered ones, expressed on the potentials:
// u[i] += δ for rows in Z, v[j] −= δ for columns in Z.
func (h *hungarian) adjust() {
	delta := math.Inf(1)
	var j int
	for j = 0; j < h.n; j++ {
		if !h.inZCol[j] && h.slack[j] < delta {
			delta = h.slack[j]
		}
	}
	for i := 0; i < h.n; i++ {
		if h.inZRow[i] {
			h.u[i] += delta
		}
	}
	for j = 0; j < h.n; j++ {
		if h.inZCol[j] {
			h.v[j] -= delta
		} else {
			h.slack[j] -= delta
		}
	}
	h.rounds++
	h.opts.Logger.Print(fmt.Sprintf("assignment: round %d: adjust by %g", h.rounds, delta))
}

// flip augments along the path ending at the free column j.
func (h *hungarian) flip(j int) {
	var i, next int
	for j != unmatched {
		i = h.slackRow[j]
		next = h.rowMatch[i]
		h.rowMatch[i], h.colMatch[j] = j, i
		j = next
	}
}
