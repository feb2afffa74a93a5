package geometry

import (
	"math"
	"sort"

	"github.com/ctessum/geom"
)

// DefaultBufferSegments is the number of arc segments per quarter circle
// used when buffering.
const DefaultBufferSegments = 8

// ConvexHull returns the convex hull of a point set, wound counter-clockwise
// without a closing duplicate. Collinear input degrades to its two extreme
// points; fewer than three distinct points are returned as-is.
func ConvexHull(points []geom.Point) []geom.Point {
	pts := dedupePreserveOrder(points)
	if len(pts) < 3 {
		return pts
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	// Lower then upper chain, dropping non-left turns.
	build := func(input []geom.Point) []geom.Point {
		var chain []geom.Point
		for _, p := range input {
			for len(chain) >= 2 && cross(chain[len(chain)-2], chain[len(chain)-1], p) <= collinearAreaEps {
				chain = chain[:len(chain)-1]
			}
			chain = append(chain, p)
		}
		return chain
	}
	lower := build(pts)
	upper := build(ReverseRing(pts))

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		// All points collinear: keep the two extremes.
		return []geom.Point{pts[0], pts[len(pts)-1]}
	}
	return hull
}

// BufferConvex expands a convex hull outward by radius metres, joining edge
// offsets with circular arcs at each vertex. segments is the arc resolution
// per quarter circle; zero or negative selects DefaultBufferSegments. The
// hull must be counter-clockwise as produced by ConvexHull; one- and
// two-point hulls buffer to a circle and a capsule respectively.
func BufferConvex(hull []geom.Point, radius float64, segments int) geom.Polygon {
	if radius <= 0 || len(hull) == 0 {
		return geom.Polygon{hull}
	}
	if segments <= 0 {
		segments = DefaultBufferSegments
	}
	step := (math.Pi / 2) / float64(segments)

	if len(hull) == 1 {
		return geom.Polygon{circleRing(hull[0], radius, step)}
	}

	// For a two-point hull walk p→q→p so each endpoint gets a semicircle.
	walk := hull
	if len(hull) == 2 {
		walk = []geom.Point{hull[0], hull[1]}
	}

	n := len(walk)
	ring := make([]geom.Point, 0, n*(segments+2))
	for i := 0; i < n; i++ {
		prev := walk[(i-1+n)%n]
		cur := walk[i]
		next := walk[(i+1)%n]

		// Outward normals of the incoming and outgoing edges. The hull is
		// CCW, so outward is the travel direction rotated -90°.
		a1 := outwardAngle(prev, cur)
		a2 := outwardAngle(cur, next)
		sweep := a2 - a1
		for sweep < 0 {
			sweep += 2 * math.Pi
		}
		steps := int(math.Ceil(sweep/step)) + 1
		if steps < 2 {
			steps = 2
		}
		for s := 0; s < steps; s++ {
			theta := a1 + sweep*float64(s)/float64(steps-1)
			ring = append(ring, geom.Point{
				X: cur.X + radius*math.Cos(theta),
				Y: cur.Y + radius*math.Sin(theta),
			})
		}
	}
	return geom.Polygon{ring}
}

// outwardAngle returns the angle of the outward normal of the directed edge
// p→q on a counter-clockwise ring.
func outwardAngle(p, q geom.Point) float64 {
	dx, dy := q.X-p.X, q.Y-p.Y
	return math.Atan2(-dx, dy)
}

func circleRing(center geom.Point, radius, step float64) []geom.Point {
	steps := int(math.Ceil(2 * math.Pi / step))
	ring := make([]geom.Point, 0, steps)
	for s := 0; s < steps; s++ {
		theta := 2 * math.Pi * float64(s) / float64(steps)
		ring = append(ring, geom.Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		})
	}
	return ring
}
