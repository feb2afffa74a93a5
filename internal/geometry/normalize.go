package geometry

import (
	"github.com/ctessum/geom"
)

// Orientation convention: EnergyPlus horizontal surfaces expect a clockwise
// exterior ring; holes are subtracted counter-clockwise.

// IsExteriorCCW reports whether a polygon's exterior ring winds
// counter-clockwise.
func IsExteriorCCW(poly geom.Polygon) bool {
	if len(poly) == 0 {
		return false
	}
	return IsCCW(StripClosure(poly[0]))
}

// Orient returns a polygon with the exterior ring clockwise and every
// interior ring counter-clockwise, reversing individual rings as needed.
// Closing duplicates are stripped.
func Orient(poly geom.Polygon) geom.Polygon {
	out := make(geom.Polygon, 0, len(poly))
	for i, ring := range poly {
		r := StripClosure(ring)
		if i == 0 {
			if IsCCW(r) {
				r = ReverseRing(r)
			}
		} else {
			if !IsCCW(r) {
				r = ReverseRing(r)
			}
		}
		out = append(out, r)
	}
	return out
}

// NormalizePolygon returns the canonical form of a polygon: deterministic
// winding (exterior clockwise, interiors counter-clockwise), no closing
// duplicates, and no cyclically-consecutive coordinates within eps of each
// other. Returns ErrDegenerateRing identifying the offending ring if any
// ring collapses below three distinct vertices.
func NormalizePolygon(poly geom.Polygon, eps float64) (geom.Polygon, error) {
	if len(poly) == 0 {
		return nil, &ErrInvalidInput{Reason: "polygon has no rings"}
	}
	oriented := Orient(poly)
	out := make(geom.Polygon, 0, len(oriented))
	for i, ring := range oriented {
		cleaned, err := RemoveConsecutiveDuplicates(ring, eps)
		if err != nil {
			if dr, ok := err.(*ErrDegenerateRing); ok {
				return nil, &ErrDegenerateRing{Ring: i, Vertices: dr.Vertices}
			}
			return nil, err
		}
		out = append(out, cleaned)
	}
	return out, nil
}
