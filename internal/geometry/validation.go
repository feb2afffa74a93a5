package geometry

import (
	"github.com/ctessum/geom"
)

// Validate gates a normalized polygon before it is committed to the zone
// builder. tol is the minimum allowed spacing between consecutive vertices;
// eps is the coordinate-equality epsilon for the self-intersection check.
func Validate(poly geom.Polygon, tol, eps float64) error {
	if len(poly) == 0 {
		return &ErrInvalidInput{Reason: "polygon has no rings"}
	}
	for i, ring := range poly {
		if len(StripClosure(ring)) < 3 {
			return &ErrDegenerateRing{Ring: i, Vertices: len(StripClosure(ring))}
		}
	}
	if tol > 0 && MinVertexSpacing(poly, tol) {
		return &ErrVertexSpacing{Tolerance: tol}
	}
	if HasInteriorExteriorIntersection(poly, eps) {
		for i, inner := range poly[1:] {
			sub := geom.Polygon{poly[0], inner}
			if HasInteriorExteriorIntersection(sub, eps) {
				return &ErrSelfIntersection{Ring: i + 1}
			}
		}
		return &ErrSelfIntersection{Ring: -1}
	}
	return nil
}
