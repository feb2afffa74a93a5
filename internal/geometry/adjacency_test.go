package geometry

import (
	"testing"

	"github.com/ctessum/geom"
)

// TestTouches covers the party-wall classification: unit squares sharing an
// edge touch, overlapping squares are a hard error, and corner-only contact
// is non-touching.
func TestTouches(t *testing.T) {
	a := geom.Polygon{square(0, 0, 1)}

	tests := []struct {
		name        string
		b           geom.Polygon
		want        bool
		wantOverlap bool
	}{
		{
			name: "shared right edge touches",
			b:    geom.Polygon{square(1, 0, 1)},
			want: true,
		},
		{
			name: "partial shared edge touches",
			b:    geom.Polygon{{{X: 1, Y: 0.5}, {X: 2, Y: 0.5}, {X: 2, Y: 1.5}, {X: 1, Y: 1.5}}},
			want: true,
		},
		{
			name:        "half overlap is an error",
			b:           geom.Polygon{square(0.5, 0, 1)},
			wantOverlap: true,
		},
		{
			name: "corner point contact is not touching",
			b:    geom.Polygon{square(1, 1, 1)},
			want: false,
		},
		{
			name: "disjoint",
			b:    geom.Polygon{square(5, 5, 1)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Touches(a, tt.b, DefaultEpsilon)
			if tt.wantOverlap {
				if _, ok := err.(*ErrInteriorOverlap); !ok {
					t.Fatalf("error = %v, want *ErrInteriorOverlap", err)
				}
				if got {
					t.Errorf("touches reported true alongside an overlap error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Touches() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Touches() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestTouchesSumsDisconnectedOverlapPockets overlaps a rectangle with a
// U-shaped polygon so the clipped region is two disconnected pockets. The
// reported overlap area must cover both.
func TestTouchesSumsDisconnectedOverlapPockets(t *testing.T) {
	a := geom.Polygon{{{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 10}, {X: 0, Y: 10}}}
	// U opening downward: spans y 8..20 except the notch x 10..20, y 8..15.
	b := geom.Polygon{{
		{X: 0, Y: 8}, {X: 10, Y: 8}, {X: 10, Y: 15}, {X: 20, Y: 15},
		{X: 20, Y: 8}, {X: 30, Y: 8}, {X: 30, Y: 20}, {X: 0, Y: 20},
	}}

	_, err := Touches(a, b, DefaultEpsilon)
	overlap, ok := err.(*ErrInteriorOverlap)
	if !ok {
		t.Fatalf("error = %v, want *ErrInteriorOverlap", err)
	}
	// Two 10x2 pockets, one each side of the notch.
	if overlap.Area < 39.9 || overlap.Area > 40.1 {
		t.Errorf("overlap area = %g, want 40", overlap.Area)
	}
}

func TestHasInterior(t *testing.T) {
	if HasInterior(geom.Polygon{square(0, 0, 10)}) {
		t.Errorf("solid polygon reported as having an interior ring")
	}
	if !HasInterior(geom.Polygon{square(0, 0, 10), square(4, 4, 2)}) {
		t.Errorf("holed polygon reported as solid")
	}
}

func TestMinVertexSpacing(t *testing.T) {
	tests := []struct {
		name string
		poly geom.Polygon
		tol  float64
		want bool
	}{
		{
			name: "well spaced",
			poly: geom.Polygon{square(0, 0, 10)},
			tol:  0.1,
			want: false,
		},
		{
			name: "close pair on exterior",
			poly: geom.Polygon{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0.05}, {X: 10, Y: 10}, {X: 0, Y: 10}}},
			tol:  0.1,
			want: true,
		},
		{
			name: "close pair on interior ring",
			poly: geom.Polygon{square(0, 0, 10), {{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 4.01}, {X: 5, Y: 6}}},
			tol:  0.1,
			want: true,
		},
		{
			name: "close pair across the cyclic wrap",
			poly: geom.Polygon{{{X: 0, Y: 0.05}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}}},
			tol:  0.1,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinVertexSpacing(tt.poly, tt.tol); got != tt.want {
				t.Errorf("MinVertexSpacing() = %v, want %v", got, tt.want)
			}
		})
	}
}
