package geometry

import (
	"testing"

	"github.com/ctessum/geom"
)

func TestFlatten(t *testing.T) {
	single := geom.Polygon{square(0, 0, 10)}
	other := geom.Polygon{square(20, 0, 10)}

	tests := []struct {
		name      string
		shape     Shape
		wantMulti bool
		wantKind  Kind
		wantErr   bool
	}{
		{
			name:     "plain polygon passes through",
			shape:    PolygonShape(single),
			wantKind: KindPolygon,
		},
		{
			name:     "single member multi unwraps",
			shape:    MultiPolygonShape(geom.MultiPolygon{single}),
			wantKind: KindPolygon,
		},
		{
			name:      "true multi passes through flagged",
			shape:     MultiPolygonShape(geom.MultiPolygon{single, other}),
			wantMulti: true,
			wantKind:  KindMultiPolygon,
		},
		{
			name:    "zero member multi rejected",
			shape:   MultiPolygonShape(geom.MultiPolygon{}),
			wantErr: true,
		},
		{
			name:    "empty shape rejected",
			shape:   EmptyShape(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isMulti, out, err := Flatten(tt.shape)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Flatten() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if _, ok := err.(*ErrInvalidInput); !ok {
					t.Errorf("error type = %T, want *ErrInvalidInput", err)
				}
				return
			}
			if isMulti != tt.wantMulti {
				t.Errorf("isTrueMulti = %v, want %v", isMulti, tt.wantMulti)
			}
			if out.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", out.Kind, tt.wantKind)
			}
		})
	}
}

// TestFlattenNeverCollapsesParts guards against silent merging: a two-member
// multi keeps both members.
func TestFlattenNeverCollapsesParts(t *testing.T) {
	mp := geom.MultiPolygon{geom.Polygon{square(0, 0, 10)}, geom.Polygon{square(20, 0, 10)}}
	_, out, err := Flatten(MultiPolygonShape(mp))
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	if len(out.Multi) != 2 {
		t.Errorf("members = %d, want 2", len(out.Multi))
	}
}
