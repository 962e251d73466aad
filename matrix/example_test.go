package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/orkit/matrix"
)

// ExampleWeightedSum prices a shipping plan against unit costs.
func ExampleWeightedSum() {
	plan, _ := matrix.NewDenseFromRows([][]float64{
		{5, 0},
		{2, 3},
	})
	cost, _ := matrix.NewDenseFromRows([][]float64{
		{4, 9},
		{1, 2},
	})

	total, err := matrix.WeightedSum(plan, cost)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rows, _ := matrix.RowSums(plan)
	cols, _ := matrix.ColSums(plan)
	fmt.Println("shipped per source:", rows)
	fmt.Println("received per sink: ", cols)
	fmt.Println("total cost:", total)
	// Output:
	// shipped per source: [5 5]
	// received per sink:  [7 3]
	// total cost: 28
}
