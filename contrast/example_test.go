package contrast_test

import (
	"fmt"

	"github.com/katalvlaran/bootcontrast/contrast"
	"github.com/katalvlaran/bootcontrast/matrix"
	"github.com/katalvlaran/bootcontrast/pairs"
)

// ExampleBuild compares three models over four bootstrap draws.
//
// Scenario:
//
//	Each row holds one model's bootstrap replicates of an accuracy score.
//	The signed matrix feeds per-pair intervals; the per-draw maximum of the
//	absolute matrix feeds a max-type statistic.
func ExampleBuild() {
	X, _ := matrix.NewDenseFrom(3, 4, []float64{
		0.81, 0.79, 0.83, 0.80, // model 0
		0.78, 0.80, 0.77, 0.75, // model 1
		0.81, 0.82, 0.80, 0.84, // model 2
	})
	tbl, _ := pairs.Generate(X.Rows())

	S, _ := contrast.Build(X, tbl, contrast.Signed)
	A, _ := contrast.Build(X, tbl, contrast.Absolute)
	maxAbs, _ := matrix.ColMax(A)

	for r, p := range tbl.All() {
		row, _ := S.Row(r)
		fmt.Printf("(%d,%d) %.2f\n", p.I, p.J, row)
	}
	fmt.Printf("max %.2f\n", maxAbs)
	// Output:
	// (0,1) [0.03 -0.01 0.06 0.05]
	// (0,2) [0.00 -0.03 0.03 -0.04]
	// (1,2) [-0.03 -0.02 -0.03 -0.09]
	// max [0.03 0.03 0.06 0.09]
}

// ExampleBuilder reuses the pair table across builds of the same model count.
func ExampleBuilder() {
	b := contrast.NewBuilder()
	X, _ := matrix.NewDenseFrom(2, 2, []float64{
		10, 11,
		20, 21,
	})
	D, _ := b.Differences(X, contrast.Absolute)
	fmt.Print(D)
	// Output:
	// [10, 10]
}
