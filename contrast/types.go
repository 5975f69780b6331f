// Package contrast defines difference modes and sentinel errors.
package contrast

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTable is returned when a nil *pairs.Table is passed.
	ErrNilTable = errors.New("contrast: nil pair table")

	// ErrUnknownMode is returned for a Mode other than Signed or Absolute.
	ErrUnknownMode = errors.New("contrast: unknown difference mode")

	// ErrShapeMismatch is returned when the pair table was generated for a
	// different model count than the replicate matrix has rows, or when an
	// index entry does not address a replicate row.
	ErrShapeMismatch = errors.New("contrast: shape mismatch")

	// ErrOutOfRange marks the index-entry case of ErrShapeMismatch: errors
	// carrying it match both sentinels under errors.Is.
	ErrOutOfRange = errors.New("contrast: pair index out of range")
)

// Mode selects how a pair of replicate values is turned into a difference.
//
//   - Signed : X[i,b] − X[j,b]; negative, zero or positive.
//   - Absolute : |X[i,b] − X[j,b]|; never negative (NaN stays NaN).
type Mode int

const (
	// Signed keeps the sign of X[i,b] − X[j,b].
	Signed Mode = iota

	// Absolute stores the magnitude of X[i,b] − X[j,b].
	Absolute
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Signed:
		return "signed"
	case Absolute:
		return "absolute"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// valid reports whether m is a known mode.
func (m Mode) valid() bool { return m == Signed || m == Absolute }
