// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/bootcontrast/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateRowIndex(t *testing.T) {
	a := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateRowIndex(a, 0))
	require.NoError(t, matrix.ValidateRowIndex(a, 1))
	require.ErrorIs(t, matrix.ValidateRowIndex(a, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateRowIndex(a, -1), matrix.ErrOutOfRange)
}
