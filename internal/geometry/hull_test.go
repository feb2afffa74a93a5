package geometry

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func TestConvexHull(t *testing.T) {
	tests := []struct {
		name   string
		points []geom.Point
		want   int
	}{
		{
			name: "square with interior points",
			points: []geom.Point{
				{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
				{X: 5, Y: 5}, {X: 2, Y: 7},
			},
			want: 4,
		},
		{
			name: "collinear midpoint dropped",
			points: []geom.Point{
				{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10},
			},
			want: 3,
		},
		{
			name:   "all collinear degrades to extremes",
			points: []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 10}},
			want:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hull := ConvexHull(tt.points)
			if len(hull) != tt.want {
				t.Fatalf("hull has %d vertices, want %d (%v)", len(hull), tt.want, hull)
			}
			if len(hull) >= 3 && !IsCCW(hull) {
				t.Errorf("hull winds clockwise, want counter-clockwise")
			}
		})
	}
}

func TestBufferConvex(t *testing.T) {
	hull := ConvexHull(square(0, 0, 10))
	buffered := BufferConvex(hull, 5, DefaultBufferSegments)
	ring := buffered[0]

	if len(ring) < 8 {
		t.Fatalf("buffered ring has only %d vertices", len(ring))
	}

	// Every buffered vertex sits exactly radius away from the hull or on an
	// offset edge; none may come closer to the hull than the radius allows.
	for _, p := range ring {
		d := distanceToRing(p, hull)
		if d < 5-1e-6 || d > 5+1e-6 {
			t.Errorf("buffered vertex %v at distance %g from hull, want 5", p, d)
		}
	}

	// A point 4m outside an edge is inside the buffer, 6m is not.
	if pointInRing(geom.Point{X: 5, Y: -4}, ring, DefaultEpsilon) <= 0 {
		t.Errorf("point 4m outside the hull must fall inside the 5m buffer")
	}
	if pointInRing(geom.Point{X: 5, Y: -6}, ring, DefaultEpsilon) > 0 {
		t.Errorf("point 6m outside the hull must fall outside the 5m buffer")
	}
}

func TestBufferConvexDegenerateHulls(t *testing.T) {
	circle := BufferConvex([]geom.Point{{X: 0, Y: 0}}, 2, DefaultBufferSegments)
	if pointInRing(geom.Point{X: 1, Y: 0}, circle[0], DefaultEpsilon) <= 0 {
		t.Errorf("single point buffer must contain points within the radius")
	}

	capsule := BufferConvex([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, 2, DefaultBufferSegments)
	if pointInRing(geom.Point{X: 5, Y: 1}, capsule[0], DefaultEpsilon) <= 0 {
		t.Errorf("segment buffer must contain points beside the segment")
	}
	if pointInRing(geom.Point{X: 5, Y: 3}, capsule[0], DefaultEpsilon) > 0 {
		t.Errorf("segment buffer must not contain points beyond the radius")
	}
}

// distanceToRing returns the minimum distance from p to the ring's segments.
func distanceToRing(p geom.Point, ring []geom.Point) float64 {
	minDist := math.Inf(1)
	n := len(ring)
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		dx, dy := b.X-a.X, b.Y-a.Y
		length2 := dx*dx + dy*dy
		t := 0.0
		if length2 > 0 {
			t = ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / length2
			t = math.Max(0, math.Min(1, t))
		}
		closest := geom.Point{X: a.X + t*dx, Y: a.Y + t*dy}
		if d := Distance(p, closest); d < minDist {
			minDist = d
		}
	}
	return minDist
}
