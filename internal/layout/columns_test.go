package layout

import (
	"math"
	"testing"
)

func TestNewColumnSpecSumsToWidth(t *testing.T) {
	width := DefaultConfig().UsableWidth()

	tests := []struct {
		name string
		defs []ColumnDef
	}{
		{"single", []ColumnDef{{Label: "A", Weight: 1}}},
		{"even", []ColumnDef{{Label: "A", Weight: 1}, {Label: "B", Weight: 1}}},
		{"uneven", []ColumnDef{{Label: "A", Weight: 1}, {Label: "B", Weight: 3.5}, {Label: "C", Weight: 1.2}, {Label: "D", Weight: 2.3}}},
		{"thirds", []ColumnDef{{Label: "A", Weight: 1}, {Label: "B", Weight: 1}, {Label: "C", Weight: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := NewColumnSpec(width, tt.defs...)
			if len(spec) != len(tt.defs) {
				t.Fatalf("got %d columns, want %d", len(spec), len(tt.defs))
			}
			if err := spec.Validate(width); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if math.Abs(spec.Total()-width) > 1e-9 {
				t.Errorf("Total() = %v, want %v", spec.Total(), width)
			}
		})
	}
}

func TestColumnSpecOffsets(t *testing.T) {
	spec := ColumnSpec{{Width: 10}, {Width: 20}, {Width: 30}}
	got := spec.Offsets()
	want := []float64{0, 10, 30}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Offsets()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestColumnSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    ColumnSpec
		width   float64
		wantErr bool
	}{
		{"exact", ColumnSpec{{Label: "a", Width: 40}, {Label: "b", Width: 60}}, 100, false},
		{"short", ColumnSpec{{Label: "a", Width: 40}, {Label: "b", Width: 50}}, 100, true},
		{"empty", nil, 100, true},
		{"zero width", ColumnSpec{{Label: "a", Width: 0}, {Label: "b", Width: 100}}, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate(tt.width)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
