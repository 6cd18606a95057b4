package driver

import (
	"fmt"

	"fortio.org/safecast"
)

// Options configure one driver run.
type Options struct {
	// MaxDiagnostics bounds every per-file Bag; 0 means unlimited.
	MaxDiagnostics int
	// Timings records per-phase durations into the result.
	Timings bool
	// Jobs limits ParseDir parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// Progress, if set, is called by ParseDir when a file starts and finishes.
	Progress ProgressFunc
}

func (o Options) maxErrors() uint {
	if o.MaxDiagnostics <= 0 {
		return 0
	}
	n, err := safecast.Conv[uint](o.MaxDiagnostics)
	if err != nil {
		panic(fmt.Errorf("maxDiagnostics overflow: %w", err))
	}
	return n
}
