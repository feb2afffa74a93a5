package footprint

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/ctessum/geom"

	"github.com/beetlebugorg/footprint/internal/geometry"
)

// Result holds the outcome of a batch normalization run: the canonical
// records, per-building failures, and non-fatal warnings.
type Result struct {
	Records  []Record
	Failures []Failure
	Warnings []Warning
}

// Normalize runs the per-building normalization pipeline over a batch of
// footprint records: multi-geometry flattening, orientation and duplicate
// removal, collinear-point pruning, vertex snapping, and the pre-commit
// validation gate.
//
// Buildings are processed concurrently when opts.Parallel is set; each
// record's geometry is owned exclusively during its own run, so there is no
// shared mutable state. Failures are accumulated per building — one bad
// footprint never aborts the rest of the batch.
//
// Example:
//
//	result := footprint.Normalize(records, footprint.DefaultOptions())
//	for _, f := range result.Failures {
//	    fmt.Printf("skipped %s: %v\n", f.ID, f.Err)
//	}
//	adjacency, overlaps := footprint.BuildAdjacency(result.Records, 1e-9)
func Normalize(records []Record, opts Options) *Result {
	if len(records) == 0 {
		return &Result{Records: []Record{}}
	}
	if !opts.Parallel {
		return normalizeSerial(records, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(records) {
		workers = len(records)
	}

	type job struct {
		index int
		rec   Record
		warns []Warning
		err   error
	}

	jobs := make(chan int, len(records))
	results := make(chan job, len(records))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				rec, warns, err := normalizeRecord(records[index], opts)
				results <- job{index: index, rec: rec, warns: warns, err: err}
			}
		}()
	}

	for i := range records {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	recMap := make(map[int]Record)
	out := &Result{}
	done := 0
	for result := range results {
		done++
		if opts.Progress != nil {
			opts.Progress(done, len(records))
		}
		if result.err != nil {
			failure := Failure{ID: records[result.index].ID, Err: result.err}
			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error normalizing footprint: %v\n", failure)
			}
			out.Failures = append(out.Failures, failure)
			continue
		}
		out.Warnings = append(out.Warnings, result.warns...)
		recMap[result.index] = result.rec
	}

	// Preserve input order.
	out.Records = make([]Record, 0, len(recMap))
	for i := 0; i < len(records); i++ {
		if rec, ok := recMap[i]; ok {
			out.Records = append(out.Records, rec)
		}
	}
	return out
}

// normalizeSerial processes records one at a time (fallback when
// Parallel=false).
func normalizeSerial(records []Record, opts Options) *Result {
	out := &Result{Records: make([]Record, 0, len(records))}
	for i, rec := range records {
		normalized, warns, err := normalizeRecord(rec, opts)
		if err != nil {
			failure := Failure{ID: rec.ID, Err: err}
			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error normalizing footprint: %v\n", failure)
			}
			out.Failures = append(out.Failures, failure)
		} else {
			out.Warnings = append(out.Warnings, warns...)
			out.Records = append(out.Records, normalized)
		}
		if opts.Progress != nil {
			opts.Progress(i+1, len(records))
		}
	}
	return out
}

// normalizeRecord runs the full per-building pipeline on one record.
func normalizeRecord(rec Record, opts Options) (Record, []Warning, error) {
	eps := opts.epsilon()

	isMulti, shape, err := geometry.Flatten(rec.Shape)
	if err != nil {
		return Record{}, nil, err
	}
	if isMulti {
		// True multi-part footprints pass through: the caller decides
		// whether to keep, split, or reject them.
		rec.Shape = shape
		return rec, []Warning{{ID: rec.ID, Message: "multi-part footprint passed through unresolved"}}, nil
	}

	poly, err := geometry.NormalizePolygon(shape.Poly, eps)
	if err != nil {
		return Record{}, nil, err
	}

	var warns []Warning
	poly, capped, err := geometry.RemoveCollinear(poly, geometry.RemoveCollinearOptions{
		MaxPasses:          opts.MaxRepairPasses,
		RequireAllContexts: opts.CollinearAllContexts,
	})
	if err != nil {
		return Record{}, nil, err
	}
	if capped {
		warns = append(warns, Warning{
			ID:      rec.ID,
			Message: fmt.Sprintf("collinear removal did not converge within %d passes", opts.MaxRepairPasses),
		})
	}

	if opts.SnapTolerance > 0 {
		poly, err = snapPolygon(poly, opts.SnapTolerance)
		if err != nil {
			return Record{}, nil, err
		}
	}

	if err := geometry.Validate(poly, opts.VertexTolerance, eps); err != nil {
		return Record{}, nil, err
	}

	rec.Shape = geometry.PolygonShape(poly)
	return rec, warns, nil
}

// snapPolygon merges near-duplicate consecutive vertices ring by ring,
// propagating each merge to the remaining rings so vertices shared between
// rings stay coincident.
func snapPolygon(poly geom.Polygon, tol float64) (geom.Polygon, error) {
	var allPairs []geometry.SnapPair
	out := make(geom.Polygon, 0, len(poly))
	for i, ring := range poly {
		r := geometry.ApplySnaps(ring, allPairs)
		cleaned, pairs := geometry.SnapNearbyVertices(r, tol)
		if len(cleaned) < 3 {
			return nil, &geometry.ErrDegenerateRing{Ring: i, Vertices: len(cleaned)}
		}
		allPairs = append(allPairs, pairs...)
		out = append(out, cleaned)
	}
	return out, nil
}
