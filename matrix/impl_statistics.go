// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column maximum over replicate/difference matrices
//     (e.g. the per-draw maximum of |D| used by max-type bootstrap statistics).
//
// Exposed API:
//   - ColMax(X) -> []float64 // per-column maximum
//
// Determinism & Performance:
//   - Fixed i→j traversal; Dense fast-path walks the flat buffer row by row.
//   - NaN is sticky: a column holding NaN reduces to NaN.

package matrix

import (
	"fmt"
	"math"
)

const opColMax = "ColMax"

// ColMax returns the maximum of every column of X (len == X.Cols()).
// Each column is seeded from row 0, so all-negative columns keep their sign.
//
// Errors:
//   - ErrNilMatrix for nil X.
//   - ErrBadShape when X has no rows (a maximum over nothing is undefined).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColMax(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColMax, err)
	}
	r, c := X.Rows(), X.Cols()
	if r == 0 {
		return nil, matrixErrorf(opColMax, fmt.Errorf("0x%d: %w", c, ErrBadShape))
	}
	out := make([]float64, c)

	var i, j int
	if d, ok := X.(*Dense); ok {
		copy(out, d.data[:c]) // seed with row 0
		for i = 1; i < r; i++ {
			row := d.data[i*c : (i+1)*c]
			for j = 0; j < c; j++ {
				out[j] = math.Max(out[j], row[j]) // NaN-sticky
			}
		}
		return out, nil
	}

	var v float64
	var err error
	for j = 0; j < c; j++ {
		if out[j], err = X.At(0, j); err != nil {
			return nil, matrixErrorf(opColMax, err)
		}
	}
	for i = 1; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opColMax, err)
			}
			out[j] = math.Max(out[j], v)
		}
	}

	return out, nil
}
