package contrast

import (
	"fmt"
	"runtime"
)

// Defaults (single source of truth for zero-configuration behavior).
const (
	// DefaultWorkers fills the difference matrix on the calling goroutine.
	DefaultWorkers = 1

	// DefaultMinParallelRows is the row count below which a build stays
	// sequential even when more than one worker is configured.
	DefaultMinParallelRows = 64
)

const (
	panicWorkersNegative = "contrast: WithWorkers: n must be >= 0"
	panicMinRowsNegative = "contrast: WithMinParallelRows: k must be >= 0"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers         int // >= 1 after gatherOptions
	minParallelRows int // >= 0
}

// WithWorkers splits output rows over n goroutines.
// n = 0 selects runtime.GOMAXPROCS(0); n = 1 is sequential.
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("%s (got %d)", panicWorkersNegative, n))
	}
	return func(o *Options) {
		o.workers = n
		if n == 0 {
			o.workers = runtime.GOMAXPROCS(0)
		}
	}
}

// WithMinParallelRows keeps builds with fewer than k rows sequential.
// Panics if k < 0.
func WithMinParallelRows(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("%s (got %d)", panicMinRowsNegative, k))
	}
	return func(o *Options) { o.minParallelRows = k }
}

// gatherOptions folds opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:         DefaultWorkers,
		minParallelRows: DefaultMinParallelRows,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
