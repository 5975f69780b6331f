package contrast

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bootcontrast/matrix"
	"github.com/katalvlaran/bootcontrast/pairs"
)

// Operation tags for error wrapping.
const (
	opBuild      = "Build"
	opBuildIndex = "BuildIndex"
)

// contrastErrorf wraps err with an operation tag.
func contrastErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Build computes the R×B difference matrix for every pair of table.
//
// Implementation:
//   - Stage 1 (Validate): replicates non-nil, table non-nil, known mode,
//     table.Models() == replicates.Rows().
//   - Stage 2 (Prepare): allocate R×B with NaN/Inf validation off.
//   - Stage 3 (Execute): row r ← X[I_r,·] − X[J_r,·] (|·| for Absolute).
//
// Behavior highlights:
//   - replicates is never mutated; the result is freshly allocated.
//   - m < 2 yields a 0×B matrix and no error.
//   - On error no matrix is returned.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNilTable, ErrUnknownMode, ErrShapeMismatch.
//
// Complexity:
//   - Time O(R·B), Space O(R·B).
func Build(replicates matrix.Matrix, table *pairs.Table, mode Mode, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(replicates); err != nil {
		return nil, contrastErrorf(opBuild, err)
	}
	if table == nil {
		return nil, contrastErrorf(opBuild, ErrNilTable)
	}
	if !mode.valid() {
		return nil, contrastErrorf(opBuild, fmt.Errorf("%v: %w", mode, ErrUnknownMode))
	}
	if table.Models() != replicates.Rows() {
		return nil, contrastErrorf(opBuild, fmt.Errorf("table for %d models, replicates have %d rows: %w",
			table.Models(), replicates.Rows(), ErrShapeMismatch))
	}

	out, err := fill(replicates, table.Pairs(), mode, gatherOptions(opts...))
	if err != nil {
		return nil, contrastErrorf(opBuild, err)
	}

	return out, nil
}

// BuildSigned is Build with mode Signed.
func BuildSigned(replicates matrix.Matrix, table *pairs.Table, opts ...Option) (*matrix.Dense, error) {
	return Build(replicates, table, Signed, opts...)
}

// BuildAbsolute is Build with mode Absolute.
func BuildAbsolute(replicates matrix.Matrix, table *pairs.Table, opts ...Option) (*matrix.Dense, error) {
	return Build(replicates, table, Absolute, opts...)
}

// BuildIndex computes differences for an arbitrary list of contrasts, e.g. a
// subset of a pair table or reversed pairs (I > J flips the sign).
// Row r of the result derives from index[r].
//
// Every entry is checked before allocation: an entry outside
// [0, replicates.Rows()) fails the whole call with an error matching both
// ErrShapeMismatch and ErrOutOfRange. An empty index yields a 0×B matrix.
func BuildIndex(replicates matrix.Matrix, index []pairs.Pair, mode Mode, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(replicates); err != nil {
		return nil, contrastErrorf(opBuildIndex, err)
	}
	if !mode.valid() {
		return nil, contrastErrorf(opBuildIndex, fmt.Errorf("%v: %w", mode, ErrUnknownMode))
	}
	m := replicates.Rows()
	for r, p := range index {
		if p.I < 0 || p.I >= m || p.J < 0 || p.J >= m {
			return nil, contrastErrorf(opBuildIndex, fmt.Errorf("row %d pair (%d,%d) with %d models: %w: %w",
				r, p.I, p.J, m, ErrShapeMismatch, ErrOutOfRange))
		}
	}

	out, err := fill(replicates, index, mode, gatherOptions(opts...))
	if err != nil {
		return nil, contrastErrorf(opBuildIndex, err)
	}

	return out, nil
}

// fill allocates the result and runs the row kernel over index, either on the
// calling goroutine or in contiguous row blocks over o.workers goroutines.
// Rows are disjoint, so workers never write the same cell; X is only read,
// so a custom Matrix must tolerate concurrent At calls when workers > 1.
func fill(X matrix.Matrix, index []pairs.Pair, mode Mode, o Options) (*matrix.Dense, error) {
	R, B := len(index), X.Cols()
	out, err := matrix.NewDenseOpts(R, B, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	abs := mode == Absolute

	if o.workers <= 1 || R < o.minParallelRows || R < 2 {
		if err = fillRows(out, X, index, 0, R, abs); err != nil {
			return nil, err
		}
		return out, nil
	}

	workers := o.workers
	if workers > R {
		workers = R
	}
	chunk := (R + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < R; lo += chunk {
		hi := lo + chunk
		if hi > R {
			hi = R
		}
		g.Go(func() error {
			return fillRows(out, X, index, lo, hi, abs)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// fillRows writes rows [lo, hi) of out.
func fillRows(out *matrix.Dense, X matrix.Matrix, index []pairs.Pair, lo, hi int, abs bool) error {
	for r := lo; r < hi; r++ {
		p := index[r]
		if err := matrix.DiffRowsInto(out, r, X, p.I, p.J, abs); err != nil {
			return fmt.Errorf("row %d pair (%d,%d): %w", r, p.I, p.J, err)
		}
	}

	return nil
}
