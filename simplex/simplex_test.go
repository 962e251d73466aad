// Package simplex_test covers the tableau solver: textbook optima, status
// outcomes, option handling and input validation.
package simplex_test

import (
	"bytes"
	"context"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orkit/matrix"
	"github.com/katalvlaran/orkit/simplex"
)

const tol = 1e-9

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// textbook: max 3x+5y s.t. x ≤ 4, 2y ≤ 12, 3x+2y ≤ 18.
func textbook(t testing.TB) ([]float64, *matrix.Dense, []float64) {
	return []float64{3, 5},
		mustDense(t, [][]float64{{1, 0}, {0, 2}, {3, 2}}),
		[]float64{4, 12, 18}
}

func TestSolveTextbookMaximum(t *testing.T) {
	c, A, b := textbook(t)

	sol, err := simplex.Solve(c, A, b, simplex.Maximize)
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, sol.Status)
	assert.InDelta(t, 36.0, sol.Objective, tol)
	require.Len(t, sol.X, 2)
	assert.InDelta(t, 2.0, sol.X[0], tol)
	assert.InDelta(t, 6.0, sol.X[1], tol)
	require.Len(t, sol.Slack, 3)
	assert.InDelta(t, 2.0, sol.Slack[0], tol)
	assert.InDelta(t, 0.0, sol.Slack[1], tol)
	assert.InDelta(t, 0.0, sol.Slack[2], tol)
	assert.Equal(t, 2, sol.Iterations)
}

func TestSolveMinimizeMirrorsMaximize(t *testing.T) {
	A := mustDense(t, [][]float64{{1, 1}, {1, 0}})
	b := []float64{4, 3}

	maxSol, err := simplex.Solve([]float64{1, 2}, A, b, simplex.Maximize)
	require.NoError(t, err)
	minSol, err := simplex.Solve([]float64{-1, -2}, A, b, simplex.Minimize)
	require.NoError(t, err)

	assert.InDelta(t, 8.0, maxSol.Objective, tol)
	assert.InDelta(t, -8.0, minSol.Objective, tol)
	assert.Equal(t, maxSol.X, minSol.X)
}

func TestSolveMinimizeAtOrigin(t *testing.T) {
	A := mustDense(t, [][]float64{{1, 1}})

	sol, err := simplex.Solve([]float64{1, 1}, A, []float64{5}, simplex.Minimize)
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, sol.Status)
	assert.Equal(t, []float64{0, 0}, sol.X)
	assert.Equal(t, []float64{5}, sol.Slack)
	assert.Equal(t, 0.0, sol.Objective)
	assert.False(t, math.Signbit(sol.Objective), "objective must not be -0")
	assert.Zero(t, sol.Iterations)
}

func TestSolveUnbounded(t *testing.T) {
	t.Run("no constraints", func(t *testing.T) {
		sol, err := simplex.Solve([]float64{1}, nil, nil, simplex.Maximize)
		require.NoError(t, err)
		assert.Equal(t, simplex.StatusUnbounded, sol.Status)
		assert.Nil(t, sol.X)
		assert.Nil(t, sol.Slack)
	})

	t.Run("open direction", func(t *testing.T) {
		// max x+y s.t. x−y ≤ 1: y can grow forever.
		A := mustDense(t, [][]float64{{1, -1}})
		sol, err := simplex.Solve([]float64{1, 1}, A, []float64{1}, simplex.Maximize)
		require.NoError(t, err)
		assert.Equal(t, simplex.StatusUnbounded, sol.Status)
		assert.Equal(t, 1, sol.Iterations)
	})
}

func TestSolveWithoutConstraintsBounded(t *testing.T) {
	sol, err := simplex.Solve([]float64{1, 3}, nil, nil, simplex.Minimize)
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, sol.Status)
	assert.Equal(t, []float64{0, 0}, sol.X)
	assert.Empty(t, sol.Slack)
}

func TestSolveDegenerateZeroRHS(t *testing.T) {
	A := mustDense(t, [][]float64{{1, 0}, {1, 1}})

	sol, err := simplex.Solve([]float64{1, 1}, A, []float64{0, 2}, simplex.Maximize)
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, sol.Status)
	assert.InDelta(t, 2.0, sol.Objective, tol)
	assert.InDelta(t, 0.0, sol.X[0], tol)
	assert.InDelta(t, 2.0, sol.X[1], tol)
}

func TestSolveNegativeRHSIsInfeasible(t *testing.T) {
	A := mustDense(t, [][]float64{{1, 1}, {1, 0}})

	sol, err := simplex.Solve([]float64{1, 1}, A, []float64{3, -1}, simplex.Maximize)
	require.ErrorIs(t, err, simplex.ErrInfeasible)
	require.ErrorIs(t, err, matrix.ErrNegative)
	assert.Equal(t, simplex.StatusInfeasible, sol.Status)
	assert.Nil(t, sol.X)
}

func TestSolveValidation(t *testing.T) {
	A := mustDense(t, [][]float64{{1, 2}})

	tests := []struct {
		name      string
		objective []float64
		A         matrix.Matrix
		rhs       []float64
		sense     simplex.Sense
		wantErr   error
	}{
		{"empty objective", nil, nil, nil, simplex.Maximize, simplex.ErrDimensionMismatch},
		{"nil A with rhs", []float64{1, 2}, nil, []float64{1}, simplex.Maximize, simplex.ErrDimensionMismatch},
		{"rhs too long", []float64{1, 2}, A, []float64{1, 2}, simplex.Maximize, simplex.ErrDimensionMismatch},
		{"objective too short", []float64{1}, A, []float64{1}, simplex.Maximize, simplex.ErrDimensionMismatch},
		{"NaN objective", []float64{1, math.NaN()}, A, []float64{1}, simplex.Maximize, simplex.ErrNonFinite},
		{"Inf rhs", []float64{1, 2}, A, []float64{math.Inf(1)}, simplex.Maximize, simplex.ErrNonFinite},
		{"unknown sense", []float64{1, 2}, A, []float64{1}, simplex.Sense(9), simplex.ErrBadOption},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sol, err := simplex.Solve(tc.objective, tc.A, tc.rhs, tc.sense)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, simplex.Solution{}, sol)
			assert.Equal(t, simplex.StatusNotSolved, sol.Status)
		})
	}
}

func TestSolveBadOptions(t *testing.T) {
	c, A, b := textbook(t)

	_, err := simplex.Solve(c, A, b, simplex.Maximize, simplex.WithEpsilon(0))
	require.ErrorIs(t, err, simplex.ErrBadOption)

	_, err = simplex.Solve(c, A, b, simplex.Maximize, simplex.WithEpsilon(math.NaN()))
	require.ErrorIs(t, err, simplex.ErrBadOption)

	_, err = simplex.Solve(c, A, b, simplex.Maximize, simplex.WithMaxIterations(-1))
	require.ErrorIs(t, err, simplex.ErrBadOption)
}

func TestSolveIterationLimit(t *testing.T) {
	c, A, b := textbook(t)

	sol, err := simplex.Solve(c, A, b, simplex.Maximize, simplex.WithMaxIterations(1))
	require.ErrorIs(t, err, simplex.ErrIterationLimit)
	assert.Equal(t, simplex.StatusNotSolved, sol.Status)
	assert.Equal(t, 1, sol.Iterations)
	assert.Nil(t, sol.X)
}

func TestSolveHonorsContext(t *testing.T) {
	c, A, b := textbook(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol, err := simplex.Solve(c, A, b, simplex.Maximize, simplex.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, simplex.StatusNotSolved, sol.Status)
	assert.Nil(t, sol.X)
}

func TestSolveLogsPivots(t *testing.T) {
	c, A, b := textbook(t)
	var buf bytes.Buffer

	_, err := simplex.Solve(c, A, b, simplex.Maximize, simplex.WithLogger(log.New(&buf, "", 0)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "simplex: pivot 1: enter 1 leave row 1")
	assert.Contains(t, buf.String(), "simplex: pivot 2: enter 0 leave row 2")
}

func TestSolveIsIdempotentAndPure(t *testing.T) {
	c, A, b := textbook(t)
	before := A.ToRows()

	first, err := simplex.Solve(c, A, b, simplex.Maximize)
	require.NoError(t, err)
	second, err := simplex.Solve(c, A, b, simplex.Maximize)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, A.ToRows())
	assert.Equal(t, []float64{3, 5}, c)
	assert.Equal(t, []float64{4, 12, 18}, b)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "maximize", simplex.Maximize.String())
	assert.Equal(t, "minimize", simplex.Minimize.String())
	assert.Equal(t, "Sense(5)", simplex.Sense(5).String())
	assert.Equal(t, "not solved", simplex.StatusNotSolved.String())
	assert.Equal(t, "optimal", simplex.StatusOptimal.String())
	assert.Equal(t, "infeasible", simplex.StatusInfeasible.String())
	assert.Equal(t, "unbounded", simplex.StatusUnbounded.String())
	assert.Equal(t, "Status(7)", simplex.Status(7).String())
}
