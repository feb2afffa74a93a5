package geometry

import (
	"math"

	"github.com/ctessum/geom"
)

// cross returns the z component of (b-a) × (c-a). Positive when c is left of
// the directed line a→b.
func cross(a, b, c geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// orient classifies c against the directed line a→b: 1 left, -1 right,
// 0 collinear within eps.
func orient(a, b, c geom.Point, eps float64) int {
	v := cross(a, b, c)
	if math.Abs(v) <= eps {
		return 0
	}
	if v > 0 {
		return 1
	}
	return -1
}

// onSegment reports whether p lies on the segment a→b (within eps), endpoints
// included.
func onSegment(p, a, b geom.Point, eps float64) bool {
	if orient(a, b, p, eps) != 0 {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-eps && p.X <= math.Max(a.X, b.X)+eps &&
		p.Y >= math.Min(a.Y, b.Y)-eps && p.Y <= math.Max(a.Y, b.Y)+eps
}

// segmentsCross reports a proper crossing between segments a1→a2 and b1→b2:
// the segment interiors intersect at a single point. Touching at endpoints or
// collinear overlap is not a proper crossing.
func segmentsCross(a1, a2, b1, b2 geom.Point, eps float64) bool {
	o1 := orient(a1, a2, b1, eps)
	o2 := orient(a1, a2, b2, eps)
	o3 := orient(b1, b2, a1, eps)
	o4 := orient(b1, b2, a2, eps)
	return o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0 && o1 != o2 && o3 != o4
}

// segmentsOverlapLength returns the length of the collinear overlap between
// segments a1→a2 and b1→b2, or 0 when they are not collinear or do not
// overlap. A shared party wall shows up as positive overlap length.
func segmentsOverlapLength(a1, a2, b1, b2 geom.Point, eps float64) float64 {
	if orient(a1, a2, b1, eps) != 0 || orient(a1, a2, b2, eps) != 0 {
		return 0
	}
	dx, dy := a2.X-a1.X, a2.Y-a1.Y
	length := math.Hypot(dx, dy)
	if length <= eps {
		return 0
	}
	// Project b1, b2 onto the a direction; overlap is interval intersection.
	t1 := ((b1.X-a1.X)*dx + (b1.Y-a1.Y)*dy) / length
	t2 := ((b2.X-a1.X)*dx + (b2.Y-a1.Y)*dy) / length
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	lo := math.Max(0, t1)
	hi := math.Min(length, t2)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// segmentsTouch reports any contact between two segments: a proper crossing,
// a collinear overlap, or an endpoint lying on the other segment.
func segmentsTouch(a1, a2, b1, b2 geom.Point, eps float64) bool {
	if segmentsCross(a1, a2, b1, b2, eps) {
		return true
	}
	if segmentsOverlapLength(a1, a2, b1, b2, eps) > 0 {
		return true
	}
	return onSegment(b1, a1, a2, eps) || onSegment(b2, a1, a2, eps) ||
		onSegment(a1, b1, b2, eps) || onSegment(a2, b1, b2, eps)
}

// pointInRing classifies p against a ring: 1 inside, 0 on the boundary,
// -1 outside. Ray casting with boundary detection; the ring is open.
func pointInRing(p geom.Point, ring []geom.Point, eps float64) int {
	n := len(ring)
	if n < 3 {
		return -1
	}
	for i := 0; i < n; i++ {
		if onSegment(p, ring[i], ring[(i+1)%n], eps) {
			return 0
		}
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			x := pj.X + (pi.X-pj.X)*(p.Y-pj.Y)/(pi.Y-pj.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	if inside {
		return 1
	}
	return -1
}

// pointInPolygon classifies p against a polygon with holes: 1 inside,
// 0 on any ring boundary, -1 outside (including inside a hole).
func pointInPolygon(p geom.Point, poly geom.Polygon, eps float64) int {
	if len(poly) == 0 {
		return -1
	}
	ext := pointInRing(p, StripClosure(poly[0]), eps)
	if ext <= 0 {
		return ext
	}
	for _, hole := range poly[1:] {
		switch pointInRing(p, StripClosure(hole), eps) {
		case 0:
			return 0
		case 1:
			return -1
		}
	}
	return 1
}

// ringsCross reports whether any segment of r1 properly crosses any segment
// of r2. Both rings are open.
func ringsCross(r1, r2 []geom.Point, eps float64) bool {
	n1, n2 := len(r1), len(r2)
	for i := 0; i < n1; i++ {
		a1, a2 := r1[i], r1[(i+1)%n1]
		for j := 0; j < n2; j++ {
			if segmentsCross(a1, a2, r2[j], r2[(j+1)%n2], eps) {
				return true
			}
		}
	}
	return false
}

// PolygonsIntersect reports whether two polygons share any point: boundary
// contact, crossing, or containment of one within the other.
func PolygonsIntersect(a, b geom.Polygon, eps float64) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	amin, amax, _ := ShapeBounds(PolygonShape(a))
	bmin, bmax, _ := ShapeBounds(PolygonShape(b))
	if amin.X > bmax.X+eps || bmin.X > amax.X+eps ||
		amin.Y > bmax.Y+eps || bmin.Y > amax.Y+eps {
		return false
	}
	ea := StripClosure(a[0])
	eb := StripClosure(b[0])
	na, nb := len(ea), len(eb)
	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			if segmentsTouch(ea[i], ea[(i+1)%na], eb[j], eb[(j+1)%nb], eps) {
				return true
			}
		}
	}
	// No boundary contact: one polygon may still contain the other.
	if len(ea) > 0 && pointInPolygon(ea[0], b, eps) > 0 {
		return true
	}
	if len(eb) > 0 && pointInPolygon(eb[0], a, eps) > 0 {
		return true
	}
	return false
}
