package geometry

import (
	"math"

	"github.com/ctessum/geom"
)

// collinearAreaEps is the triangle-area threshold below which three points
// are treated as collinear.
const collinearAreaEps = 1e-9

// DefaultEpsilon is the coordinate-equality epsilon used when callers do not
// supply one. Coordinates are metres in a projected CRS, so this is well
// below digitisation precision.
const DefaultEpsilon = 1e-9

// DefaultSnapTolerance is the radial distance under which consecutive
// vertices are merged during snapping.
const DefaultSnapTolerance = 0.1

// Distance returns the Euclidean distance between two coordinates.
func Distance(p, q geom.Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// WithinTolerance reports whether two coordinates lie within tol of each
// other.
func WithinTolerance(p, q geom.Point, tol float64) bool {
	return Distance(p, q) <= tol
}

// IsCollinear reports whether m lies on the straight segment between p and q,
// judged by the area of the triangle (p, m, q).
func IsCollinear(p, m, q geom.Point) bool {
	area := math.Abs((m.X-p.X)*(q.Y-p.Y)-(q.X-p.X)*(m.Y-p.Y)) / 2
	return area <= collinearAreaEps
}

// RemoveConsecutiveDuplicates drops every coordinate within eps of its
// predecessor, treating the ring cyclically (the last surviving coordinate is
// also checked against the first). The input ring must be open (no closing
// duplicate). Returns ErrDegenerateRing if fewer than three vertices survive.
func RemoveConsecutiveDuplicates(ring []geom.Point, eps float64) ([]geom.Point, error) {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	out := make([]geom.Point, 0, len(ring))
	for _, p := range ring {
		if len(out) > 0 && WithinTolerance(out[len(out)-1], p, eps) {
			continue
		}
		out = append(out, p)
	}
	// Cyclic wrap: last vs first.
	for len(out) > 1 && WithinTolerance(out[len(out)-1], out[0], eps) {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return nil, &ErrDegenerateRing{Ring: -1, Vertices: len(out)}
	}
	return out, nil
}

// RemoveMembership returns a new ring with every coordinate present in the
// remove set deleted, preserving the relative order of survivors. Membership
// is exact: removal targets come from the ring's own coordinates.
func RemoveMembership(ring []geom.Point, remove []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(ring))
	for _, p := range ring {
		if containsPoint(remove, p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ReplaceCoordinates substitutes each coordinate of ring found in the remove
// set with its nearest candidate from the insert list, then washes out any
// duplicates. Used when a snapped vertex must be substituted rather than
// dropped.
func ReplaceCoordinates(ring []geom.Point, insert []geom.Point, remove []geom.Point) []geom.Point {
	if len(insert) == 0 {
		return dedupePreserveOrder(RemoveMembership(ring, remove))
	}
	out := make([]geom.Point, len(ring))
	copy(out, ring)
	for _, rc := range remove {
		for i, p := range out {
			if p != rc {
				continue
			}
			nearest := insert[0]
			minDist := Distance(rc, insert[0])
			for _, nc := range insert[1:] {
				if d := Distance(rc, nc); d < minDist {
					minDist = d
					nearest = nc
				}
			}
			out[i] = nearest
		}
	}
	return dedupePreserveOrder(out)
}

// SnapPair records a radial-distance merge: Removed was dropped in favour of
// Kept. Pairs are propagated to neighbouring rings so shared party-wall
// vertices stay coincident.
type SnapPair struct {
	Removed, Kept geom.Point
}

// SnapNearbyVertices repeatedly merges consecutive vertices closer together
// than tol until the ring settles, collecting the remove/leave pairs. Each
// pass removes the second vertex of the first offending pair, except at the
// cyclic wrap where the first is removed so the ring's anchor vertex
// survives. Never reduces the ring below three vertices.
func SnapNearbyVertices(ring []geom.Point, tol float64) ([]geom.Point, []SnapPair) {
	if tol <= 0 {
		tol = DefaultSnapTolerance
	}
	out := make([]geom.Point, len(ring))
	copy(out, ring)
	var pairs []SnapPair
	for len(out) > 3 {
		removed, kept, found := firstPairWithin(out, tol)
		if !found {
			break
		}
		out = RemoveMembership(out, []geom.Point{removed})
		pairs = append(pairs, SnapPair{Removed: removed, Kept: kept})
	}
	return out, pairs
}

// ApplySnaps substitutes every removed coordinate of prior snap passes with
// its kept partner, then removes the duplicates this creates. Applied to
// rings that share vertices with a snapped ring.
func ApplySnaps(ring []geom.Point, pairs []SnapPair) []geom.Point {
	out := make([]geom.Point, len(ring))
	copy(out, ring)
	for _, pair := range pairs {
		for i, p := range out {
			if p == pair.Removed {
				out[i] = pair.Kept
			}
		}
	}
	return dedupePreserveOrder(out)
}

// firstPairWithin finds the first cyclically-consecutive pair of vertices
// within tol, returning which of the two to remove and which to keep.
func firstPairWithin(ring []geom.Point, tol float64) (removed, kept geom.Point, found bool) {
	n := len(ring)
	for i := 0; i < n; i++ {
		first := ring[i]
		second := ring[(i+1)%n]
		if Distance(first, second) >= tol {
			continue
		}
		if i < n-1 {
			return second, first, true
		}
		// Wrap pair: keep the anchor vertex at index 0.
		return first, second, true
	}
	return geom.Point{}, geom.Point{}, false
}

// dedupePreserveOrder removes repeated coordinates, keeping the first
// occurrence of each.
func dedupePreserveOrder(coords []geom.Point) []geom.Point {
	seen := make(map[geom.Point]struct{}, len(coords))
	out := make([]geom.Point, 0, len(coords))
	for _, p := range coords {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func containsPoint(set []geom.Point, p geom.Point) bool {
	for _, q := range set {
		if q == p {
			return true
		}
	}
	return false
}
