package pairs_test

import (
	"fmt"

	"github.com/katalvlaran/bootcontrast/pairs"
)

// ExampleGenerate lists the contrasts between four models.
func ExampleGenerate() {
	tbl, err := pairs.Generate(4)
	if err != nil {
		fmt.Println(err)
		return
	}
	for r, p := range tbl.All() {
		fmt.Printf("%d: (%d,%d)\n", r, p.I, p.J)
	}
	// Output:
	// 0: (0,1)
	// 1: (0,2)
	// 2: (0,3)
	// 3: (1,2)
	// 4: (1,3)
	// 5: (2,3)
}

// ExampleTable_Index finds the row of a pair without scanning.
func ExampleTable_Index() {
	tbl, _ := pairs.Generate(5)
	r, _ := tbl.Index(2, 4)
	p, _ := tbl.At(r)
	fmt.Println(r, p.I, p.J)
	// Output:
	// 8 2 4
}
