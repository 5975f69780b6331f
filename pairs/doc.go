// Package pairs enumerates every unordered pair of model indices exactly once.
//
// 🚀 What is a pair table?
//
//	Comparing m models (or estimators) pairwise needs R = m(m−1)/2 contrasts.
//	Generate(m) lists them in one fixed order so that row r of every
//	downstream matrix always refers to the same two models:
//
//	  for i := 0; i < m-1; i++ {
//	    for j := i + 1; j < m; j++ {
//	      emit (i, j)
//	    }
//	  }
//
//	m = 4 ⇒ (0,1) (0,2) (0,3) (1,2) (1,3) (2,3)
//
// ✨ Key features:
//   - 0-based indices, ready to address rows of a replicate matrix;
//     Table.Dense(true) exports the 1-based R×2 layout of t(combn(1:m, 2))
//   - O(1) inverse lookup: Table.Index(i, j) returns the row of a pair
//   - immutable tables, safe to share between goroutines
//   - Cache memoizes tables per model count
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bootcontrast/pairs"
//
//	tbl, err := pairs.Generate(5) // 10 pairs
//	if err != nil {
//	  // only ErrNegativeModelCount
//	}
//	for r, p := range tbl.All() {
//	  fmt.Println(r, p.I, p.J)
//	}
//
// Performance:
//
//   - Time:   O(m²)
//   - Memory: O(m²)
package pairs
