package geometry

import (
	"math"

	"github.com/ctessum/geom"
)

// overlapAreaEps is the intersection area (m²) above which two footprints
// are judged to truly overlap rather than touch. Boolean clipping of
// edge-sharing polygons can leave numerical slivers below this.
const overlapAreaEps = 1e-6

// Touches classifies the contact between two footprints. It returns true
// when they share boundary over more than a single point while their
// interiors stay disjoint — the party-wall relation. Point-only contact is
// non-touching: a point cannot form a party wall. If the interiors share
// positive area the configuration is invalid for the domain (buildings must
// not overlap) and ErrInteriorOverlap is returned instead of a
// classification.
func Touches(a, b geom.Polygon, eps float64) (bool, error) {
	if len(a) == 0 || len(b) == 0 {
		return false, nil
	}
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	var area float64
	if inter := a.Intersection(b); inter != nil {
		for _, p := range inter.Polygons() {
			area += polygonAreaMagnitude(p)
		}
	}
	if area > overlapAreaEps {
		return false, &ErrInteriorOverlap{Area: area}
	}

	ea := StripClosure(a[0])
	eb := StripClosure(b[0])
	na, nb := len(ea), len(eb)
	var shared float64
	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			shared += segmentsOverlapLength(ea[i], ea[(i+1)%na], eb[j], eb[(j+1)%nb], eps)
		}
	}
	return shared > eps, nil
}

// HasInterior reports whether a polygon has one or more interior rings.
// Footprints with holes need special-case zone construction downstream.
func HasInterior(poly geom.Polygon) bool {
	return len(poly) > 1
}

// MinVertexSpacing reports whether any two cyclically-consecutive vertices
// anywhere in the polygon lie within tol of each other. Used as a gate
// before committing a footprint to the zone builder: overly close vertices
// produce degenerate thermal surfaces.
func MinVertexSpacing(poly geom.Polygon, tol float64) bool {
	for _, ring := range poly {
		r := StripClosure(ring)
		n := len(r)
		for i := 0; i < n; i++ {
			if Distance(r[i], r[(i+1)%n]) < tol {
				return true
			}
		}
	}
	return false
}

// polygonAreaMagnitude sums the unsigned areas of one polygon's rings. Only
// used as a non-emptiness measure for clipping results, where ring winding
// is not guaranteed.
func polygonAreaMagnitude(p geom.Polygon) float64 {
	var sum float64
	for _, ring := range p {
		sum += math.Abs(RingArea(StripClosure(ring)))
	}
	return sum
}
