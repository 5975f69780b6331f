// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the row-difference micro-kernel used to build pairwise
//     contrast matrices: out[row, b] = X[i, b] - X[j, b] (optionally |·|).
//   - Keep the loop deterministic and cache-friendly with a Dense fast-path.
//
// Design:
//   - ewDiffRows is the private kernel; DiffRowsInto is the validated facade.
//   - One output row per call: callers own the outer loop, so disjoint output
//     rows may be filled from different goroutines.
//
// Determinism & Performance:
//   - Fixed column order 0..c-1.
//   - Dense fast-path slices both operands once per row; no allocations.
//   - Signed and absolute variants share the same loop; the only difference
//     is the math.Abs step, so |signed| == absolute holds bit-for-bit.

package matrix

import (
	"fmt"
	"math"
)

const opDiffRows = "DiffRowsInto"

// matrixErrorf wraps an underlying error with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// DiffRowsInto writes X[i,·] - X[j,·] into row `row` of dst; abs=true stores
// the magnitude instead.
//
// Implementation:
//   - Stage 1: validate dst and X (non-nil), dst.Cols()==X.Cols(), then the
//     three row indices.
//   - Stage 2: run ewDiffRows (Dense fast-path or At fallback).
//   - Stage 3: enforce dst numeric policy on the written row when enabled.
//
// Behavior highlights:
//   - X is never mutated; only row `row` of dst is written.
//   - No clamping: any index outside its matrix is an error.
//   - NaN/Inf propagate per IEEE-754 when dst has validation off.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOutOfRange, ErrNaNInf (policy on).
//
// Complexity:
//   - Time O(c), Space O(1).
func DiffRowsInto(dst *Dense, row int, X Matrix, i, j int, abs bool) error {
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opDiffRows, err)
	}
	if err := ValidateNotNil(X); err != nil {
		return matrixErrorf(opDiffRows, err)
	}
	if dst.c != X.Cols() {
		return matrixErrorf(opDiffRows, ErrDimensionMismatch)
	}
	if err := ValidateRowIndex(dst, row); err != nil {
		return matrixErrorf(opDiffRows, err)
	}
	if err := ValidateRowIndex(X, i); err != nil {
		return matrixErrorf(opDiffRows, err)
	}
	if err := ValidateRowIndex(X, j); err != nil {
		return matrixErrorf(opDiffRows, err)
	}

	if err := ewDiffRows(dst, row, X, i, j, abs); err != nil {
		return matrixErrorf(opDiffRows, err)
	}

	if dst.validateNaNInf {
		base := row * dst.c
		for b := 0; b < dst.c; b++ {
			if v := dst.data[base+b]; math.IsNaN(v) || math.IsInf(v, 0) {
				return matrixErrorf(opDiffRows, denseErrorf(ctxSet, row, b, ErrNaNInf))
			}
		}
	}

	return nil
}

// ewDiffRows computes dst[row,b] = X[i,b] - X[j,b] (abs: |X[i,b] - X[j,b]|).
// Assumes all indices and widths were validated by the caller.
// Time: O(c). Space: O(1). Deterministic 0..c-1 loop.
func ewDiffRows(dst *Dense, row int, X Matrix, i, j int, abs bool) error {
	c := dst.c
	out := dst.data[row*c : (row+1)*c]

	// Dense fast-path: two source rows and the destination row as flat slices.
	if d, ok := X.(*Dense); ok {
		xi := d.data[i*c : (i+1)*c]
		xj := d.data[j*c : (j+1)*c]
		if abs {
			for b := range out {
				out[b] = math.Abs(xi[b] - xj[b])
			}
		} else {
			for b := range out {
				out[b] = xi[b] - xj[b]
			}
		}
		return nil
	}

	// Generic fallback via At (still deterministic).
	var vi, vj, dv float64
	var err error
	for b := 0; b < c; b++ {
		if vi, err = X.At(i, b); err != nil {
			return err
		}
		if vj, err = X.At(j, b); err != nil {
			return err
		}
		dv = vi - vj
		if abs {
			dv = math.Abs(dv)
		}
		out[b] = dv
	}

	return nil
}
