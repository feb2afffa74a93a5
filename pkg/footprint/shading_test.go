package footprint

import (
	"testing"
)

func selectedIDs(records []Record) map[string]bool {
	ids := make(map[string]bool, len(records))
	for _, rec := range records {
		ids[rec.ID] = true
	}
	return ids
}

func TestSelectShadingBufferUnlimited(t *testing.T) {
	working := []Record{squareRecord("w", 0, 0, 10)}
	other := []Record{
		squareRecord("near", 15, 0, 5),
		squareRecord("far", 1000, 1000, 5),
		squareRecord("w", 0, 0, 10), // same premises as the working set
	}

	selected := SelectShadingBuffer(UnlimitedRadius(), working, other)
	ids := selectedIDs(selected)
	if len(selected) != 2 {
		t.Fatalf("expected 2 selected records, got %d", len(selected))
	}
	if !ids["near"] || !ids["far"] {
		t.Errorf("unlimited radius should select every other footprint, got %v", ids)
	}
	if ids["w"] {
		t.Error("working-set premises must not reappear as shading context")
	}
	for _, rec := range selected {
		if !rec.Shading {
			t.Errorf("selected record %s not marked as shading", rec.ID)
		}
	}
}

func TestSelectShadingBufferBoundedRadius(t *testing.T) {
	working := []Record{squareRecord("w", 0, 0, 10)}
	// "near" sits 5 m east of the working footprint, "far" 30 m east.
	other := []Record{
		squareRecord("near", 15, 0, 5),
		squareRecord("far", 40, 0, 5),
	}

	tests := []struct {
		name   string
		radius float64
		want   map[string]bool
	}{
		{"radius reaches near only", 10, map[string]bool{"near": true}},
		{"radius reaches neither", 2, map[string]bool{}},
		{"radius reaches both", 50, map[string]bool{"near": true, "far": true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected := SelectShadingBuffer(Metres(tt.radius), working, other)
			ids := selectedIDs(selected)
			if len(ids) != len(tt.want) {
				t.Fatalf("selected %v, want %v", ids, tt.want)
			}
			for id := range tt.want {
				if !ids[id] {
					t.Errorf("expected %s within radius %g", id, tt.radius)
				}
			}
		})
	}
}

func TestSelectShadingBufferDissolvesWorkingSet(t *testing.T) {
	// Two disjoint working footprints; the hull of their union spans both,
	// so context above the gap is still within reach.
	working := []Record{
		squareRecord("w1", 0, 0, 10),
		squareRecord("w2", 20, 0, 10),
	}
	other := []Record{squareRecord("ctx", 12, 20, 5)}

	if got := SelectShadingBuffer(Metres(12), working, other); len(got) != 1 {
		t.Errorf("expected ctx within 12 m of the dissolved hull, got %d records", len(got))
	}
	if got := SelectShadingBuffer(Metres(5), working, other); len(got) != 0 {
		t.Errorf("expected ctx outside 5 m of the dissolved hull, got %d records", len(got))
	}
}

func TestSelectShadingBufferExcludesWorkingIDs(t *testing.T) {
	working := []Record{squareRecord("w", 0, 0, 10)}
	other := []Record{
		squareRecord("w", 0, 0, 10),
		squareRecord("near", 12, 0, 5),
	}

	selected := SelectShadingBuffer(Metres(10), working, other)
	ids := selectedIDs(selected)
	if ids["w"] {
		t.Error("working-set premises must not be selected as context")
	}
	if !ids["near"] {
		t.Error("expected near within the buffer")
	}
}

func TestSelectShadingBufferInputsUnchanged(t *testing.T) {
	working := []Record{squareRecord("w", 0, 0, 10)}
	other := []Record{squareRecord("near", 12, 0, 5)}

	SelectShadingBuffer(Metres(10), working, other)
	if other[0].Shading {
		t.Error("input records must not be mutated")
	}
}

func TestSelectShadingBufferEmptyWorkingSet(t *testing.T) {
	other := []Record{squareRecord("near", 12, 0, 5)}
	if got := SelectShadingBuffer(Metres(10), nil, other); len(got) != 0 {
		t.Errorf("empty working set should select nothing, got %d records", len(got))
	}
}
