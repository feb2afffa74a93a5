// Package footprint normalizes building footprint polygons for thermal
// simulation pre-processing.
//
// Raw cadastral footprints arrive with inconsistent ring winding, closing
// duplicates, collinear vertices, near-duplicate coordinates, and occasional
// topology defects. This package repairs them into a canonical form suitable
// for zone construction: exterior rings wound clockwise, interior rings
// counter-clockwise, open rings with no redundant vertices, and validated
// vertex spacing.
//
// # Basic Usage
//
//	records := []footprint.Record{
//	    {ID: "osgb1000001", Shape: footprint.Polygon(poly)},
//	}
//	result := footprint.Normalize(records, footprint.DefaultOptions())
//	for _, f := range result.Failures {
//	    log.Printf("skipped %s: %v", f.ID, f.Err)
//	}
//
// One bad footprint never aborts the batch. Failures carry the building id
// and wrap a typed geometry error; warnings report non-fatal conditions such
// as multi-part footprints passed through unresolved.
//
// # Adjacency
//
// After normalization, classify party walls across the whole record set:
//
//	adjacency, overlaps := footprint.BuildAdjacency(result.Records, 1e-9)
//	if adjacency.Touching("osgb1000001", "osgb1000002") {
//	    // shared wall: model the boundary as adiabatic
//	}
//
// Touching means boundary contact over more than a single point with
// disjoint interiors. Overlapping interiors are invalid input and are
// returned as errors, one per offending pair.
//
// # Shading Context
//
// Select which surrounding footprints matter as shading obstructions:
//
//	context := footprint.SelectShadingBuffer(footprint.Metres(50), workingSet, otherSet)
//
// The working set is dissolved, hulled, and buffered by the radius; every
// other footprint intersecting the buffer is returned marked Shading. Use
// footprint.UnlimitedRadius() to include the entire surrounding set.
//
// # Concurrency
//
// Normalize processes buildings on a worker pool by default. Each record
// owns its geometry exclusively during its pipeline run, so no locking is
// needed. Set Options.Parallel to false for deterministic serial processing.
package footprint
