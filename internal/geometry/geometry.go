package geometry

import (
	"github.com/ctessum/geom"
)

// Kind identifies which variant of a Shape is populated.
type Kind int

const (
	KindEmpty Kind = iota
	KindPolygon
	KindMultiPolygon
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindPolygon:
		return "Polygon"
	case KindMultiPolygon:
		return "MultiPolygon"
	default:
		return "Unknown"
	}
}

// Shape is a tagged variant over the planar geometries a building footprint
// may carry. Exactly one of Poly or Multi is meaningful, selected by Kind.
// Every operation in this package switches exhaustively on Kind rather than
// inspecting runtime types.
type Shape struct {
	Kind  Kind
	Poly  geom.Polygon      // valid when Kind == KindPolygon
	Multi geom.MultiPolygon // valid when Kind == KindMultiPolygon
}

// PolygonShape wraps a single polygon.
func PolygonShape(p geom.Polygon) Shape {
	return Shape{Kind: KindPolygon, Poly: p}
}

// MultiPolygonShape wraps a multi-part polygon.
func MultiPolygonShape(mp geom.MultiPolygon) Shape {
	return Shape{Kind: KindMultiPolygon, Multi: mp}
}

// EmptyShape returns the empty geometry sentinel.
func EmptyShape() Shape {
	return Shape{Kind: KindEmpty}
}

// BoundaryKind identifies which variant of a Boundary is populated.
type BoundaryKind int

const (
	BoundaryEmpty BoundaryKind = iota
	BoundaryLine
	BoundaryMultiLine
)

// Boundary is a tagged variant over exposed party-wall linework: a single
// line, a collection of lines, or the empty sentinel. An exposed boundary
// can legitimately vanish during point removal, so Empty is a valid state
// rather than an error.
type Boundary struct {
	Kind  BoundaryKind
	Lines []geom.LineString
}

// EmptyBoundary returns the empty linework sentinel.
func EmptyBoundary() Boundary {
	return Boundary{Kind: BoundaryEmpty}
}

// LineBoundary wraps a single line.
func LineBoundary(line geom.LineString) Boundary {
	return Boundary{Kind: BoundaryLine, Lines: []geom.LineString{line}}
}

// MultiLineBoundary wraps a collection of lines.
func MultiLineBoundary(lines []geom.LineString) Boundary {
	return Boundary{Kind: BoundaryMultiLine, Lines: lines}
}

// RingArea returns the signed shoelace area of a ring. Positive for
// counter-clockwise winding, negative for clockwise. The ring may be stored
// with or without its closing duplicate.
func RingArea(ring []geom.Point) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return sum / 2
}

// IsCCW reports whether a ring winds counter-clockwise.
func IsCCW(ring []geom.Point) bool {
	return RingArea(ring) > 0
}

// ReverseRing returns a new ring with the coordinate order reversed.
func ReverseRing(ring []geom.Point) []geom.Point {
	out := make([]geom.Point, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}

// StripClosure removes the trailing closing coordinate if the ring carries
// one. Rings in this package are stored open; closure is implied.
func StripClosure(ring []geom.Point) []geom.Point {
	n := len(ring)
	if n > 1 && ring[0].X == ring[n-1].X && ring[0].Y == ring[n-1].Y {
		return ring[:n-1]
	}
	return ring
}

// CloseRing appends the closing duplicate if missing. Used when handing
// rings to consumers that expect explicit closure.
func CloseRing(ring []geom.Point) []geom.Point {
	n := len(ring)
	if n == 0 {
		return ring
	}
	if ring[0].X == ring[n-1].X && ring[0].Y == ring[n-1].Y {
		return ring
	}
	out := make([]geom.Point, n+1)
	copy(out, ring)
	out[n] = ring[0]
	return out
}

// ClonePolygon returns a deep copy of a polygon.
func ClonePolygon(p geom.Polygon) geom.Polygon {
	out := make(geom.Polygon, len(p))
	for i, ring := range p {
		out[i] = make([]geom.Point, len(ring))
		copy(out[i], ring)
	}
	return out
}

// ShapeBounds returns the axis-aligned bounding box over every coordinate
// in the shape. ok is false for the empty shape.
func ShapeBounds(s Shape) (min, max geom.Point, ok bool) {
	extend := func(ring []geom.Point) {
		for _, p := range ring {
			if !ok {
				min, max = p, p
				ok = true
				continue
			}
			if p.X < min.X {
				min.X = p.X
			}
			if p.Y < min.Y {
				min.Y = p.Y
			}
			if p.X > max.X {
				max.X = p.X
			}
			if p.Y > max.Y {
				max.Y = p.Y
			}
		}
	}
	switch s.Kind {
	case KindEmpty:
	case KindPolygon:
		for _, ring := range s.Poly {
			extend(ring)
		}
	case KindMultiPolygon:
		for _, poly := range s.Multi {
			for _, ring := range poly {
				extend(ring)
			}
		}
	}
	return min, max, ok
}
