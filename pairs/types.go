// Package pairs defines the pair table and its sentinel errors.
package pairs

import "errors"

// ErrNegativeModelCount is returned when the model count m is negative.
var ErrNegativeModelCount = errors.New("pairs: negative model count")

// ErrModelCountTooLarge is returned when m(m−1)/2 does not fit in an int.
var ErrModelCountTooLarge = errors.New("pairs: model count too large")

// ErrPairOutOfRange is returned when a row number or a pair of model indices
// does not address an entry of the table.
var ErrPairOutOfRange = errors.New("pairs: pair out of range")

// Pair is one unordered model pair, stored with I < J (0-based).
type Pair struct {
	I int // first model (smaller index)
	J int // second model (larger index)
}

// Table is the ordered list of all R = m(m−1)/2 pairs over m models.
//
// A Table is immutable after Generate: fields are unexported and every
// accessor either returns a value or a copy. One *Table may be read by any
// number of goroutines.
type Table struct {
	m     int    // model count the table was generated for
	pairs []Pair // len == m(m−1)/2, in (i asc, j asc) order
}
