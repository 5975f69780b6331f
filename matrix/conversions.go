// SPDX-License-Identifier: MIT

// Package matrix: converters between Dense and gonum's mat package.
//
// What & Why:
//
//	Replicate matrices are frequently produced by gonum-based pipelines.
//	FromGonum/ToGonum copy data across the boundary so neither side aliases
//	the other's buffer.
//
// Complexity:
//
//	Both directions run in O(r*c) time and allocate O(r*c).
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	opFromGonum = "FromGonum"
	opToGonum   = "ToGonum"
)

// FromGonum copies any gonum matrix into a fresh *Dense.
// A nil or empty (zero-value) gonum matrix converts to a 0×0 Dense.
// opts select the numeric policy of the result; with the default policy a
// NaN/Inf entry yields ErrNaNInf.
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	if gd, ok := g.(*mat.Dense); ok && gd.IsEmpty() {
		return NewDenseOpts(0, 0, opts...)
	}

	r, c := g.Dims()
	out, err := NewDenseOpts(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	var i, j int
	if gd, ok := g.(*mat.Dense); ok {
		// Fast path: row-major raw storage with stride.
		raw := gd.RawMatrix()
		for i = 0; i < r; i++ {
			copy(out.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				out.data[i*c+j] = g.At(i, j)
			}
		}
	}

	if out.validateNaNInf {
		var bad error
		out.Do(func(i, j int, v float64) bool {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				bad = denseErrorf(ctxSet, i, j, ErrNaNInf)
				return false
			}
			return true
		})
		if bad != nil {
			return nil, matrixErrorf(opFromGonum, bad)
		}
	}

	return out, nil
}

// ToGonum copies m into a fresh *mat.Dense.
// gonum cannot represent 0×N or N×0 shapes; such inputs return the zero-value
// (empty) *mat.Dense, for which IsEmpty() reports true.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return &mat.Dense{}, nil
	}

	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)
	} else {
		var v float64
		var err error
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opToGonum, fmt.Errorf("(%d,%d): %w", i, j, err))
				}
				buf[i*c+j] = v
			}
		}
	}

	return mat.NewDense(r, c, buf), nil
}
