package main

import (
	"fmt"
	"os"

	"github.com/ctessum/geom"

	"github.com/beetlebugorg/footprint/pkg/footprint"
)

func square(x, y, size float64) geom.Polygon {
	return geom.Polygon{{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y + size},
		{X: x, Y: y + size},
	}}
}

func main() {
	// Two terraced buildings sharing a party wall, plus a detached
	// neighbour across the street.
	records := []footprint.Record{
		{ID: "osgb1000001", Shape: footprint.Polygon(square(0, 0, 10))},
		{ID: "osgb1000002", Shape: footprint.Polygon(square(10, 0, 10))},
		{ID: "osgb1000003", Shape: footprint.Polygon(square(0, 25, 10))},
	}

	opts := footprint.DefaultOptions()
	opts.ErrorLog = os.Stderr
	result := footprint.Normalize(records, opts)

	fmt.Printf("Normalized: %d of %d\n", len(result.Records), len(records))
	for _, w := range result.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}

	// Classify party walls.
	adjacency, overlaps := footprint.BuildAdjacency(result.Records, 1e-9)
	for _, err := range overlaps {
		fmt.Fprintf(os.Stderr, "Overlap: %v\n", err)
	}
	fmt.Printf("1 touches 2: %v\n", adjacency.Touching("osgb1000001", "osgb1000002"))
	fmt.Printf("1 touches 3: %v\n", adjacency.Touching("osgb1000001", "osgb1000003"))

	// Pick shading context within 50 m of the first building.
	working := result.Records[:1]
	context := footprint.SelectShadingBuffer(footprint.Metres(50), working, result.Records[1:])
	for _, rec := range context {
		fmt.Printf("Shading context: %s\n", rec.ID)
	}
}
