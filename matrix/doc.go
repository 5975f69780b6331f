// Package matrix offers the dense numeric container used by bootcontrast.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set accessors and an
//     optional finite-only numeric policy (WithValidateNaNInf /
//     WithNoValidateNaNInf).
//   - DiffRowsInto, the row-difference kernel behind pairwise contrast
//     matrices (signed or absolute).
//   - ColMax, the per-column maximum (e.g. of |D| for max-type statistics).
//   - FromGonum / ToGonum converters for gonum.org/v1/gonum/mat.
//
// All errors are package sentinels (ErrOutOfRange, ErrDimensionMismatch, ...)
// wrapped with operation context; match them with errors.Is.
package matrix
