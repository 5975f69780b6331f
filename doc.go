// Package bootcontrast prepares pairwise model contrasts for bootstrap-based
// model comparison.
//
// 🚀 What is bootcontrast?
//
//	When m models are each evaluated on B bootstrap resamples, comparing them
//	pairwise needs, for every draw, the difference between every two models.
//	bootcontrast produces exactly that raw material:
//		• pairs/    : every unordered model pair (i<j) once, in fixed order
//		• contrast/ : the R×B signed or absolute difference matrix
//		• matrix/   : the dense row-major container, kernels and gonum interop
//
// ✨ Why choose bootcontrast?
//
//   - Deterministic – row r always names the same model pair for a given m
//   - Exact – |signed| and absolute results agree bit-for-bit
//   - Safe – errors, not panics, on shape or index mistakes
//   - Small – pure Go, no cgo
//
// Quick example:
//
//	tbl, _ := pairs.Generate(X.Rows())
//	D, err := contrast.Build(X, tbl, contrast.Signed)
//
// Intervals, tests and rankings built on D are left to the caller.
package bootcontrast
