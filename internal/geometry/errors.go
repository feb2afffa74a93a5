package geometry

import (
	"fmt"
)

// ErrDegenerateRing indicates a ring collapsed below three distinct vertices
// during normalization or point removal. Ring 0 is the exterior; ring N is
// the N-th interior. Ring is -1 when the ring index is not known.
type ErrDegenerateRing struct {
	Ring     int
	Vertices int
}

func (e *ErrDegenerateRing) Error() string {
	if e.Ring < 0 {
		return fmt.Sprintf("degenerate ring: %d distinct vertices remain (need 3)", e.Vertices)
	}
	if e.Ring == 0 {
		return fmt.Sprintf("degenerate exterior ring: %d distinct vertices remain (need 3)", e.Vertices)
	}
	return fmt.Sprintf("degenerate interior ring %d: %d distinct vertices remain (need 3)", e.Ring, e.Vertices)
}

// ErrInvalidInput indicates input geometry that is neither a polygon nor a
// usable multi-polygon.
type ErrInvalidInput struct {
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input geometry: %s", e.Reason)
}

// ErrInteriorOverlap indicates two footprints whose interiors share positive
// area. Buildings must not overlap; this is a hard validation failure, not a
// touching classification.
type ErrInteriorOverlap struct {
	Area float64
}

func (e *ErrInteriorOverlap) Error() string {
	return fmt.Sprintf("polygon interiors overlap (shared area %g m²)", e.Area)
}

// ErrSelfIntersection indicates a polygon whose interior ring punctures
// through its exterior boundary rather than sitting properly inside it.
type ErrSelfIntersection struct {
	Ring int // interior ring index, 1-based to match ErrDegenerateRing
}

func (e *ErrSelfIntersection) Error() string {
	return fmt.Sprintf("interior ring %d crosses the exterior boundary", e.Ring)
}

// ErrVertexSpacing indicates consecutive vertices closer together than the
// configured tolerance. Overly close vertices produce degenerate thermal
// surfaces downstream.
type ErrVertexSpacing struct {
	Tolerance float64
}

func (e *ErrVertexSpacing) Error() string {
	return fmt.Sprintf("consecutive vertices closer than %g m", e.Tolerance)
}
