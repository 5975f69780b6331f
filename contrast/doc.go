// Package contrast builds pairwise difference matrices from bootstrap replicates.
//
// 🚀 What is a difference matrix?
//
//	Given B bootstrap replicates of a statistic for each of m models (an m×B
//	replicate matrix X) and the pair table of package pairs, the difference
//	matrix D has one row per pair and one column per draw:
//
//	  D[r, b] = X[I_r, b] − X[J_r, b]       (Signed)
//	  D[r, b] = |X[I_r, b] − X[J_r, b]|     (Absolute)
//
//	D is the raw input of quantile-based comparison procedures (intervals
//	for every model difference, max-|D| statistics, ...).
//
// ✨ Key features:
//   - one double loop for both modes; Absolute(r,b) == |Signed(r,b)| bit-for-bit
//   - row-major traversal matching matrix.Dense storage
//   - IEEE-754 propagation: NaN and Inf are carried through, never rejected
//   - optional row-parallel fill (WithWorkers) with identical results
//   - Builder caches pair tables per model count
//   - BuildGonum accepts and returns gonum matrices
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/bootcontrast/contrast"
//	  "github.com/katalvlaran/bootcontrast/pairs"
//	)
//
//	tbl, _ := pairs.Generate(X.Rows())
//	D, err := contrast.Build(X, tbl, contrast.Absolute)
//	if err != nil {
//	  // ErrShapeMismatch, ErrOutOfRange, ErrUnknownMode, ErrNilTable, matrix.ErrNilMatrix
//	}
//
// Performance:
//
//   - Time:   O(R·B), R = m(m−1)/2
//   - Memory: O(R·B) for the result
package contrast
