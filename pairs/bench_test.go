package pairs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/bootcontrast/pairs"
)

var sinkT *pairs.Table

func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	for _, m := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("m=%d", m), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				tbl, err := pairs.Generate(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkT = tbl
			}
		})
	}
}
