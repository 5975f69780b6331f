package pairs

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/bootcontrast/matrix"
)

// Count returns R = m(m−1)/2, the number of unordered pairs over m models.
// m = 0 and m = 1 give 0.
//
// Errors: ErrNegativeModelCount for m < 0, ErrModelCountTooLarge when
// m(m−1) overflows int.
func Count(m int) (int, error) {
	if m < 0 {
		return 0, fmt.Errorf("Count(%d): %w", m, ErrNegativeModelCount)
	}
	if m > 1 && m-1 > math.MaxInt/m {
		return 0, fmt.Errorf("Count(%d): %w", m, ErrModelCountTooLarge)
	}

	return m * (m - 1) / 2, nil
}

// Generate builds the pair table for m models.
//
// Steps:
//  1. Validate m and size the table with Count.
//  2. Outer i = 0..m−2, inner j = i+1..m−1; append (i, j).
//
// The result is a pure function of m: two calls with the same m return
// tables with identical content.
//
// Complexity: O(m²) time and memory.
func Generate(m int) (*Table, error) {
	n, err := Count(m)
	if err != nil {
		return nil, err
	}

	out := make([]Pair, 0, n)
	for i := 0; i < m-1; i++ {
		for j := i + 1; j < m; j++ {
			out = append(out, Pair{I: i, J: j})
		}
	}

	return &Table{m: m, pairs: out}, nil
}

// Models returns the model count m the table was generated for.
func (t *Table) Models() int { return t.m }

// Len returns R, the number of pairs.
func (t *Table) Len() int { return len(t.pairs) }

// At returns the pair stored in row r.
func (t *Table) At(r int) (Pair, error) {
	if r < 0 || r >= len(t.pairs) {
		return Pair{}, fmt.Errorf("At(%d): %w", r, ErrPairOutOfRange)
	}

	return t.pairs[r], nil
}

// Pairs returns a copy of all pairs in table order.
func (t *Table) Pairs() []Pair {
	out := make([]Pair, len(t.pairs))
	copy(out, t.pairs)

	return out
}

// All yields (row, pair) in table order.
func (t *Table) All() iter.Seq2[int, Pair] {
	return func(yield func(int, Pair) bool) {
		for r, p := range t.pairs {
			if !yield(r, p) {
				return
			}
		}
	}
}

// Index returns the row holding pair (i, j), the inverse of At.
// The row is computed in closed form: pairs with first index below i occupy
// i(2m−i−1)/2 rows, and (i, j) is the (j−i−1)-th pair starting with i.
//
// Errors: ErrPairOutOfRange unless 0 ≤ i < j < m.
func (t *Table) Index(i, j int) (int, error) {
	if i < 0 || j <= i || j >= t.m {
		return 0, fmt.Errorf("Index(%d,%d): %w", i, j, ErrPairOutOfRange)
	}

	return i*(2*t.m-i-1)/2 + (j - i - 1), nil
}

// Dense exports the table as an R×2 matrix, one pair per row.
// oneBased=true adds 1 to every index, matching t(combn(1:m, 2)).
// An empty table yields a 0×2 matrix.
func (t *Table) Dense(oneBased bool) (*matrix.Dense, error) {
	out, err := matrix.NewDenseOpts(len(t.pairs), 2)
	if err != nil {
		return nil, err
	}
	shift := 0
	if oneBased {
		shift = 1
	}
	for r, p := range t.pairs {
		if err = out.Set(r, 0, float64(p.I+shift)); err != nil {
			return nil, err
		}
		if err = out.Set(r, 1, float64(p.J+shift)); err != nil {
			return nil, err
		}
	}

	return out, nil
}
