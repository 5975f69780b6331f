package contrast_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bootcontrast/matrix"
	"github.com/katalvlaran/bootcontrast/pairs"
)

// hide masks *matrix.Dense so the kernel takes its At fallback.
type hide struct{ matrix.Matrix }

// ramp builds the m×B replicate matrix with row i = [(i+1)*10, (i+1)*10+1, ...].
func ramp(t *testing.T, m, B int) *matrix.Dense {
	t.Helper()
	vals := make([]float64, m*B)
	for i := 0; i < m; i++ {
		for b := 0; b < B; b++ {
			vals[i*B+b] = float64((i+1)*10 + b)
		}
	}
	X, err := matrix.NewDenseFrom(m, B, vals)
	require.NoError(t, err)

	return X
}

// randReplicates builds a seeded m×B matrix with values in [-50, 50).
func randReplicates(t testing.TB, m, B int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, m*B)
	for k := range vals {
		vals[k] = rng.Float64()*100 - 50
	}
	X, err := matrix.NewDenseFrom(m, B, vals, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	return X
}

// mustTable generates the pair table for m models.
func mustTable(t testing.TB, m int) *pairs.Table {
	t.Helper()
	tbl, err := pairs.Generate(m)
	require.NoError(t, err)

	return tbl
}

// mustAt reads m(i,j).
func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
