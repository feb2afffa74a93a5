package footprint

import (
	"fmt"
)

// Failure records a per-building normalization error. One bad record never
// aborts the batch; failures are accumulated and returned alongside the
// successfully normalized set.
type Failure struct {
	ID  string
	Err error
}

func (f Failure) Error() string {
	return fmt.Sprintf("building %s: %v", f.ID, f.Err)
}

// Unwrap exposes the underlying geometry error for errors.As.
func (f Failure) Unwrap() error {
	return f.Err
}

// ErrOverlap indicates two footprints in the working set whose interiors
// share positive area. Buildings must not overlap; the pipeline reports
// both ids rather than guessing which to keep.
type ErrOverlap struct {
	IDA, IDB string
	Area     float64
}

func (e *ErrOverlap) Error() string {
	return fmt.Sprintf("buildings %s and %s overlap (shared area %g m²)", e.IDA, e.IDB, e.Area)
}

// Warning is a non-fatal condition surfaced in the pipeline result.
type Warning struct {
	ID      string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("building %s: %s", w.ID, w.Message)
}
