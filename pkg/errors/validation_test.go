package errors

import (
	"math"
	"testing"
)

func TestValidateStructurePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid sdf", "ligand.sdf", false},
		{"valid mol", "dir/methanol.mol", false},
		{"valid sd upper", "ALA.SD", false},
		{"absolute", "/tmp/x.sdf", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 5000)), true},
		{"null byte", "foo\x00.sdf", true},
		{"newline", "foo\n.sdf", true},
		{"no extension", "structure", true},
		{"pdb", "1crn.pdb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStructurePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStructurePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateStructurePath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateStep(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"thirty", 30, false},
		{"fractional", 0.5, false},

		{"zero", 0, true},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStep("coarse_step_degrees", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStep(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("ValidateStep(%v) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateFinite(t *testing.T) {
	if err := ValidateFinite("probe_radius", -3); err != nil {
		t.Errorf("ValidateFinite(-3) error = %v, want nil", err)
	}
	if err := ValidateFinite("probe_radius", math.NaN()); err == nil {
		t.Error("ValidateFinite(NaN) error = nil, want error")
	}
}
