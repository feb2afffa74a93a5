package footprint

import (
	"io"

	"github.com/beetlebugorg/footprint/internal/geometry"
)

// Options controls normalization behavior and error handling.
type Options struct {
	// Parallel enables concurrent per-building normalization.
	// Records own their geometry exclusively during their pipeline run,
	// so buildings are processed independently.
	Parallel bool

	// Workers specifies the number of worker goroutines.
	// If 0, defaults to runtime.NumCPU(). Only used when Parallel is true.
	Workers int

	// Progress is an optional callback for tracking progress.
	// Called after each building is processed (successfully or not).
	Progress func(done, total int)

	// ErrorLog is an optional writer for detailed error reporting.
	// Each per-building failure is written here with the building id.
	ErrorLog io.Writer

	// Epsilon is the coordinate-equality epsilon for duplicate removal and
	// geometric predicates. If 0, defaults to geometry.DefaultEpsilon.
	Epsilon float64

	// VertexTolerance is the minimum allowed spacing between consecutive
	// vertices, in metres. Polygons violating it after snapping fail the
	// pre-commit gate. Zero disables the gate.
	VertexTolerance float64

	// SnapTolerance merges consecutive vertices closer than this distance,
	// in metres, propagating the merge to every ring of the polygon so
	// shared party-wall vertices stay coincident. Zero disables snapping.
	SnapTolerance float64

	// MaxRepairPasses caps the collinear-removal fixed-point iteration.
	// Exceeding the cap produces a warning, not an error; the last
	// computed polygon is kept. If 0, defaults to
	// geometry.DefaultMaxRepairPasses.
	MaxRepairPasses int

	// CollinearAllContexts removes a vertex only when every linework
	// member containing it judges it collinear. The default mirrors the
	// historical behavior: removal when any one member judges it
	// collinear, which can over-simplify vertices shared between rings.
	CollinearAllContexts bool
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Parallel:        true,
		Workers:         0, // NumCPU
		Epsilon:         geometry.DefaultEpsilon,
		VertexTolerance: geometry.DefaultSnapTolerance,
		SnapTolerance:   geometry.DefaultSnapTolerance,
		MaxRepairPasses: geometry.DefaultMaxRepairPasses,
	}
}

func (o Options) epsilon() float64 {
	if o.Epsilon <= 0 {
		return geometry.DefaultEpsilon
	}
	return o.Epsilon
}
