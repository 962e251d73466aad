package assignment_test

import (
	"fmt"

	"github.com/katalvlaran/orkit/assignment"
	"github.com/katalvlaran/orkit/matrix"
)

func ExampleSolve() {
	cost, _ := matrix.NewDenseFromRows([][]float64{
		{1, 4, 5},
		{1, 7, 6},
		{1, 9, 8},
	})

	a, err := assignment.Solve(cost)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("pairs:", a.Pairs())
	fmt.Println("cost:", a.Cost)
	// Output:
	// pairs: [[0 1] [1 2] [2 0]]
	// cost: 11
}

// ExampleSolveRect assigns three workers to two jobs; one worker stays idle.
func ExampleSolveRect() {
	cost, _ := matrix.NewDenseFromRows([][]float64{
		{1, 3},
		{2, 1},
		{3, 2},
	})

	a, _ := assignment.SolveRect(cost)
	fmt.Println("worker → job:", a.RowToCol)
	fmt.Println("cost:", a.Cost)
	// Output:
	// worker → job: [0 1 -1]
	// cost: 2
}
