package footprint

import (
	"github.com/ctessum/geom"
	"github.com/dhconnelly/rtreego"

	"github.com/beetlebugorg/footprint/internal/geometry"
)

// Shape re-exports the tagged geometry variant carried by a record.
type Shape = geometry.Shape

// Kind values for Shape.Kind.
const (
	KindEmpty        = geometry.KindEmpty
	KindPolygon      = geometry.KindPolygon
	KindMultiPolygon = geometry.KindMultiPolygon
)

// Polygon wraps a single polygon as a record shape.
func Polygon(p geom.Polygon) Shape {
	return geometry.PolygonShape(p)
}

// MultiPolygon wraps a multi-part polygon as a record shape.
func MultiPolygon(mp geom.MultiPolygon) Shape {
	return geometry.MultiPolygonShape(mp)
}

// Record is one building footprint: a premises identifier, its geometry, and
// whether it is modelled thermally or included only as a shading
// obstruction. Records move through the pipeline by value; passes return
// replacements rather than mutating shared state.
type Record struct {
	ID      string
	Shape   Shape
	Shading bool
}

// recordEntry indexes one record in an R-tree by its bounding box.
type recordEntry struct {
	rec   Record
	index int
}

// Bounds implements rtreego.Spatial.
func (e recordEntry) Bounds() rtreego.Rect {
	min, max, ok := geometry.ShapeBounds(e.rec.Shape)
	if !ok {
		rect, _ := rtreego.NewRect(rtreego.Point{0, 0}, []float64{bboxPad, bboxPad})
		return rect
	}
	lengths := []float64{max.X - min.X, max.Y - min.Y}
	for i := range lengths {
		if lengths[i] <= 0 {
			lengths[i] = bboxPad
		}
	}
	rect, _ := rtreego.NewRect(rtreego.Point{min.X, min.Y}, lengths)
	return rect
}

// bboxPad keeps degenerate bounding boxes valid for the R-tree.
const bboxPad = 1e-9

// searchPad expands R-tree query rectangles so footprints whose bounding
// boxes meet only along a boundary, as edge-sharing buildings do, still come
// back as candidates. rtreego treats boundary-only rectangle contact as
// disjoint. One millimetre is far above coordinate rounding in a projected
// CRS and far below building scale.
const searchPad = 1e-3

// buildIndex creates an R-tree over the given records.
// (2D, min=25 children, max=50 children)
func buildIndex(records []Record) *rtreego.Rtree {
	rtree := rtreego.NewTree(2, 25, 50)
	for i, rec := range records {
		if rec.Shape.Kind == KindEmpty {
			continue
		}
		rtree.Insert(recordEntry{rec: rec, index: i})
	}
	return rtree
}

// boundsRect converts a min/max pair to an R-tree query rectangle, expanded
// by pad on every side.
func boundsRect(min, max geom.Point, pad float64) rtreego.Rect {
	lengths := []float64{max.X - min.X + 2*pad, max.Y - min.Y + 2*pad}
	for i := range lengths {
		if lengths[i] <= 0 {
			lengths[i] = bboxPad
		}
	}
	rect, _ := rtreego.NewRect(rtreego.Point{min.X - pad, min.Y - pad}, lengths)
	return rect
}
