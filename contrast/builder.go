package contrast

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bootcontrast/matrix"
	"github.com/katalvlaran/bootcontrast/pairs"
)

const (
	opDifferences = "Builder.Differences"
	opBuildGonum  = "BuildGonum"
)

// Builder derives the pair table from the replicate matrix and reuses it
// across calls: the table depends on the model count alone.
//
// A Builder is safe for concurrent use.
type Builder struct {
	tables *pairs.Cache
	opts   []Option
}

// NewBuilder returns a Builder applying opts to every build.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{
		tables: pairs.NewCache(),
		opts:   append([]Option(nil), opts...),
	}
}

// Table returns the cached pair table for m models.
func (b *Builder) Table(m int) (*pairs.Table, error) {
	return b.tables.Get(m)
}

// Differences builds the difference matrix for all model pairs of replicates,
// taking m from replicates.Rows().
func (b *Builder) Differences(replicates matrix.Matrix, mode Mode) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(replicates); err != nil {
		return nil, contrastErrorf(opDifferences, err)
	}
	tbl, err := b.tables.Get(replicates.Rows())
	if err != nil {
		return nil, contrastErrorf(opDifferences, err)
	}

	return Build(replicates, tbl, mode, b.opts...)
}

// BuildGonum is Build for gonum matrices. The replicates are copied (NaN/Inf
// allowed) and the result is returned as a fresh *mat.Dense.
//
// gonum has no 0×B shape: when the table is empty the result is the
// zero-value *mat.Dense (IsEmpty reports true).
func BuildGonum(replicates mat.Matrix, table *pairs.Table, mode Mode, opts ...Option) (*mat.Dense, error) {
	if replicates == nil {
		return nil, contrastErrorf(opBuildGonum, matrix.ErrNilMatrix)
	}
	X, err := matrix.FromGonum(replicates, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, contrastErrorf(opBuildGonum, err)
	}
	D, err := Build(X, table, mode, opts...)
	if err != nil {
		return nil, contrastErrorf(opBuildGonum, err)
	}
	out, err := matrix.ToGonum(D)
	if err != nil {
		return nil, contrastErrorf(opBuildGonum, fmt.Errorf("export: %w", err))
	}

	return out, nil
}
