package footprint

import (
	"github.com/ctessum/geom"

	"github.com/beetlebugorg/footprint/internal/geometry"
)

// Radius is a shading buffer radius in metres, or the unlimited sentinel.
// "No radius" means unlimited context: every other footprint is included.
type Radius struct {
	unlimited bool
	metres    float64
}

// Metres returns a bounded shading radius.
func Metres(m float64) Radius {
	return Radius{metres: m}
}

// UnlimitedRadius returns the unlimited-context sentinel.
func UnlimitedRadius() Radius {
	return Radius{unlimited: true}
}

// SelectShadingBuffer selects which footprints from otherSet fall within the
// shading buffer of the working set and returns them marked as shading-only
// context. The inputs are read-only; selected records are copies.
//
// With the unlimited sentinel every record of otherSet is selected. With a
// bounded radius the working-set geometries are dissolved into one shape,
// its convex hull is expanded outward by the radius, and every otherSet
// record whose geometry intersects the expanded hull is selected. Records
// whose id already appears in the working set are never duplicated into the
// context set.
func SelectShadingBuffer(radius Radius, workingSet, otherSet []Record) []Record {
	workingIDs := make(map[string]struct{}, len(workingSet))
	for _, rec := range workingSet {
		workingIDs[rec.ID] = struct{}{}
	}

	if radius.unlimited {
		out := make([]Record, 0, len(otherSet))
		for _, rec := range otherSet {
			if _, ok := workingIDs[rec.ID]; ok {
				continue
			}
			rec.Shading = true
			out = append(out, rec)
		}
		return out
	}

	dissolved := dissolve(workingSet)
	if len(dissolved) == 0 {
		return []Record{}
	}
	var points []geom.Point
	for _, ring := range dissolved {
		points = append(points, ring...)
	}
	hull := geometry.ConvexHull(points)
	buffered := geometry.BufferConvex(hull, radius.metres, geometry.DefaultBufferSegments)

	bmin, bmax, ok := geometry.ShapeBounds(geometry.PolygonShape(buffered))
	if !ok {
		return []Record{}
	}

	out := make([]Record, 0)
	rtree := buildIndex(otherSet)
	for _, candidate := range rtree.SearchIntersect(boundsRect(bmin, bmax, searchPad)) {
		entry := candidate.(recordEntry)
		if _, exists := workingIDs[entry.rec.ID]; exists {
			continue
		}
		if !shapeIntersects(buffered, entry.rec.Shape) {
			continue
		}
		rec := entry.rec
		rec.Shading = true
		out = append(out, rec)
	}
	return out
}

// dissolve unions every working-set geometry into a single polygon whose
// rings carry all boundary coordinates. Multi-part union results are
// flattened ring by ring; only the coordinates matter downstream.
func dissolve(records []Record) geom.Polygon {
	var acc geom.Polygon
	merge := func(p geom.Polygon) {
		if len(p) == 0 {
			return
		}
		if acc == nil {
			acc = geometry.ClonePolygon(p)
			return
		}
		union := acc.Union(p)
		if union == nil {
			return
		}
		var merged geom.Polygon
		for _, part := range union.Polygons() {
			merged = append(merged, part...)
		}
		acc = merged
	}
	for _, rec := range records {
		switch rec.Shape.Kind {
		case KindEmpty:
		case KindPolygon:
			merge(rec.Shape.Poly)
		case KindMultiPolygon:
			for _, p := range rec.Shape.Multi {
				merge(p)
			}
		}
	}
	return acc
}

// shapeIntersects reports whether any polygon of the shape intersects the
// buffered hull.
func shapeIntersects(buffered geom.Polygon, s Shape) bool {
	switch s.Kind {
	case KindEmpty:
		return false
	case KindPolygon:
		return geometry.PolygonsIntersect(buffered, s.Poly, geometry.DefaultEpsilon)
	case KindMultiPolygon:
		for _, p := range s.Multi {
			if geometry.PolygonsIntersect(buffered, p, geometry.DefaultEpsilon) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
