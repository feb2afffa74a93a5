package footprint

import (
	"errors"

	"github.com/beetlebugorg/footprint/internal/geometry"
)

// Relation classifies the contact between two footprints.
type Relation int

const (
	// RelationTouching marks a shared party wall: boundary contact over
	// more than a single point with disjoint interiors.
	RelationTouching Relation = iota

	// RelationOverlapping marks interiors sharing positive area — an
	// invalid input configuration reported as an error.
	RelationOverlapping
)

func (r Relation) String() string {
	switch r {
	case RelationTouching:
		return "touching"
	case RelationOverlapping:
		return "overlapping"
	default:
		return "unknown"
	}
}

// Pair identifies an unordered building pair; A sorts before B.
type Pair struct {
	A, B string
}

func pairOf(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// AdjacencyMap records the pairwise relation between footprints that are in
// contact. Pairs with no contact at all are absent.
type AdjacencyMap map[Pair]Relation

// BuildAdjacency classifies every candidate pair of polygons in the record
// set. Touching pairs become party-wall relationships for the zone builder;
// overlapping pairs are invalid and accumulated as ErrOverlap values — the
// full report is returned rather than aborting on the first bad pair.
//
// Candidate pairs come from an R-tree over footprint bounding boxes, so the
// pass is near-linear for sparse building stock. Records must already be
// normalized (the pass runs after the per-building barrier); non-polygon
// records are skipped.
func BuildAdjacency(records []Record, eps float64) (AdjacencyMap, []error) {
	adjacency := make(AdjacencyMap)
	var overlaps []error

	rtree := buildIndex(records)
	for i, rec := range records {
		if rec.Shape.Kind != KindPolygon {
			continue
		}
		min, max, ok := geometry.ShapeBounds(rec.Shape)
		if !ok {
			continue
		}
		// Padded query: edge-sharing footprints have bounding boxes that
		// meet only along a line, which the R-tree would not report.
		for _, candidate := range rtree.SearchIntersect(boundsRect(min, max, searchPad)) {
			other := candidate.(recordEntry)
			if other.index <= i || other.rec.Shape.Kind != KindPolygon {
				continue
			}
			touches, err := geometry.Touches(rec.Shape.Poly, other.rec.Shape.Poly, eps)
			if err != nil {
				var overlap *geometry.ErrInteriorOverlap
				if errors.As(err, &overlap) {
					adjacency[pairOf(rec.ID, other.rec.ID)] = RelationOverlapping
					overlaps = append(overlaps, &ErrOverlap{
						IDA:  rec.ID,
						IDB:  other.rec.ID,
						Area: overlap.Area,
					})
					continue
				}
				overlaps = append(overlaps, Failure{ID: rec.ID, Err: err})
				continue
			}
			if touches {
				adjacency[pairOf(rec.ID, other.rec.ID)] = RelationTouching
			}
		}
	}
	return adjacency, overlaps
}

// Touching reports whether the map records a party-wall relation for the
// given pair, in either order.
func (m AdjacencyMap) Touching(a, b string) bool {
	rel, ok := m[pairOf(a, b)]
	return ok && rel == RelationTouching
}
