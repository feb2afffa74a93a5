package geometry

import (
	"github.com/ctessum/geom"
)

// DefaultMaxRepairPasses caps the collinear-removal fixed-point iteration.
const DefaultMaxRepairPasses = 10

// RemoveCollinearOptions configures collinear-point removal.
type RemoveCollinearOptions struct {
	// MaxPasses caps the fixed-point iteration. Zero or negative selects
	// DefaultMaxRepairPasses.
	MaxPasses int

	// RequireAllContexts removes a point only when every linework member
	// containing it judges it collinear. The default (false) removes a
	// point judged collinear by any one member, which can over-simplify a
	// vertex that is a genuine corner in another member's context.
	RequireAllContexts bool
}

// LineworkMembers decomposes a polygon into its boundary linework: the
// exterior ring followed by each interior ring, as open lines. For a valid
// polygon whose rings do not cross this matches the self-union of its
// boundary.
func LineworkMembers(poly geom.Polygon) []geom.LineString {
	members := make([]geom.LineString, 0, len(poly))
	for _, ring := range poly {
		members = append(members, geom.LineString(StripClosure(ring)))
	}
	return members
}

// FindCollinearPoints scans every member's consecutive coordinate triples
// (cyclically when the members are rings) and collects the middle points
// judged collinear. With requireAll false, a point collinear in any one
// member is collected; with requireAll true it must be collinear in every
// member that contains it.
func FindCollinearPoints(members []geom.LineString, cyclic, requireAll bool) []geom.Point {
	collinearIn := make(map[geom.Point]int)
	occursIn := make(map[geom.Point]int)
	var order []geom.Point

	for _, member := range members {
		seen := make(map[geom.Point]struct{})
		coll := make(map[geom.Point]struct{})
		for _, p := range member {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				occursIn[p]++
			}
		}
		n := len(member)
		if n < 3 {
			continue
		}
		if cyclic {
			for i := 0; i < n; i++ {
				prev := member[(i-1+n)%n]
				cur := member[i]
				next := member[(i+1)%n]
				if IsCollinear(prev, cur, next) {
					coll[cur] = struct{}{}
				}
			}
		} else {
			for i := 0; i+2 < n; i++ {
				if IsCollinear(member[i], member[i+1], member[i+2]) {
					coll[member[i+1]] = struct{}{}
				}
			}
		}
		for p := range coll {
			if collinearIn[p] == 0 {
				order = append(order, p)
			}
			collinearIn[p]++
		}
	}

	out := make([]geom.Point, 0, len(order))
	for _, p := range order {
		if requireAll && collinearIn[p] < occursIn[p] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// RebuildPolygonWithoutPoints removes the given coordinates from the
// exterior and all interior rings, then reconstructs the polygon. Returns
// ErrDegenerateRing if any ring drops below three vertices.
func RebuildPolygonWithoutPoints(poly geom.Polygon, remove []geom.Point) (geom.Polygon, error) {
	out := make(geom.Polygon, 0, len(poly))
	for i, ring := range poly {
		rebuilt := RemoveMembership(StripClosure(ring), remove)
		if len(rebuilt) < 3 {
			return nil, &ErrDegenerateRing{Ring: i, Vertices: len(rebuilt)}
		}
		out = append(out, rebuilt)
	}
	return out, nil
}

// RebuildExposedWithoutPoints removes coordinates from exposed party-wall
// linework member by member. A member emptied below two coordinates is
// dropped; if nothing survives the boundary degrades to the empty sentinel
// rather than failing, since an exposed boundary can legitimately vanish.
func RebuildExposedWithoutPoints(b Boundary, remove []geom.Point) Boundary {
	switch b.Kind {
	case BoundaryEmpty:
		return EmptyBoundary()
	case BoundaryLine, BoundaryMultiLine:
		kept := make([]geom.LineString, 0, len(b.Lines))
		for _, line := range b.Lines {
			rebuilt := RemoveMembership(line, remove)
			if len(rebuilt) > 1 {
				kept = append(kept, geom.LineString(rebuilt))
			}
		}
		switch len(kept) {
		case 0:
			return EmptyBoundary()
		case 1:
			return LineBoundary(kept[0])
		default:
			return MultiLineBoundary(kept)
		}
	default:
		return EmptyBoundary()
	}
}

// HasInteriorExteriorIntersection reports whether any interior ring crosses
// the exterior boundary rather than sitting properly inside it. Pure
// touching is permitted; a hole that punctures through the boundary is not.
func HasInteriorExteriorIntersection(poly geom.Polygon, eps float64) bool {
	if len(poly) < 2 {
		return false
	}
	ext := StripClosure(poly[0])
	for _, inner := range poly[1:] {
		hole := StripClosure(inner)
		if ringsCross(ext, hole, eps) {
			return true
		}
		// An exterior vertex strictly inside the hole means the hole
		// reaches past the boundary even without a proper crossing.
		for _, p := range ext {
			if pointInRing(p, hole, eps) > 0 {
				return true
			}
		}
	}
	return false
}

// RemoveCollinear prunes collinear vertices from a polygon's boundary
// linework, iterating to a fixed point. capped is true when MaxPasses was
// exhausted before convergence; the last computed polygon is still returned
// so the caller can surface a warning rather than fail.
func RemoveCollinear(poly geom.Polygon, opts RemoveCollinearOptions) (out geom.Polygon, capped bool, err error) {
	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxRepairPasses
	}
	out = poly
	for pass := 0; pass < maxPasses; pass++ {
		points := FindCollinearPoints(LineworkMembers(out), true, opts.RequireAllContexts)
		if len(points) == 0 {
			return out, false, nil
		}
		rebuilt, err := RebuildPolygonWithoutPoints(out, points)
		if err != nil {
			return nil, false, err
		}
		out = rebuilt
	}
	if len(FindCollinearPoints(LineworkMembers(out), true, opts.RequireAllContexts)) > 0 {
		return out, true, nil
	}
	return out, false, nil
}

// BufferedPolygon rebuilds a polygon's exterior after snapping: coordinates
// in removed are replaced by their nearest counterpart from inserts.
// Interior rings are preserved unchanged.
func BufferedPolygon(poly geom.Polygon, inserts, removed []geom.Point) (geom.Polygon, error) {
	if len(poly) == 0 {
		return nil, &ErrInvalidInput{Reason: "polygon has no rings"}
	}
	ext := ReplaceCoordinates(StripClosure(poly[0]), inserts, removed)
	if len(ext) < 3 {
		return nil, &ErrDegenerateRing{Ring: 0, Vertices: len(ext)}
	}
	out := make(geom.Polygon, 0, len(poly))
	out = append(out, ext)
	for _, inner := range poly[1:] {
		out = append(out, inner)
	}
	return out, nil
}
