package mover

import (
	"errors"
	"math"
	"slices"
	"testing"

	apperrors "github.com/matzehuels/movergraph/pkg/errors"
	"github.com/matzehuels/movergraph/pkg/geom"
	"github.com/matzehuels/movergraph/pkg/structure"
)

// threeAtoms returns atoms at distance 1 from a Z axis through (0,0,-1),
// each at a different height.
func threeAtoms(t *testing.T) ([]*structure.Atom, geom.Axis) {
	t.Helper()
	s := structure.New()
	var atoms []*structure.Atom
	for i, p := range []geom.Vec{{X: 1}, {Y: 1, Z: 1}, {X: -1, Z: 2}} {
		a, err := s.AddAtom("H", "", p)
		if err != nil {
			t.Fatalf("AddAtom(%d) error: %v", i, err)
		}
		atoms = append(atoms, a)
	}
	axis, _ := geom.NewAxis(geom.Vec{Z: -1}, geom.Vec{Z: 1})
	return atoms, axis
}

func TestCoarseLadder(t *testing.T) {
	tests := []struct {
		name      string
		rng, step float64
		want      []float64
	}{
		{"quarter steps", 180, 90, []float64{0, -90, 90, -180}},
		{"single state", 180, 180, []float64{0, -180}},
		{"step past range", 10, 30, []float64{0}},
		{"zero range", 0, 30, []float64{0}},
		{"open positive end", 60, 30, []float64{0, -30, 30, -60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coarseLadder(tt.rng, tt.step)
			if !slices.Equal(got, tt.want) {
				t.Errorf("coarseLadder(%v, %v) = %v, want %v", tt.rng, tt.step, got, tt.want)
			}
		})
	}
}

func TestRotatorCounts(t *testing.T) {
	tests := []struct {
		name       string
		cfg        RotatorConfig
		wantCoarse int
		wantFine   int
	}{
		{
			name:       "range 180 step 90",
			cfg:        RotatorConfig{CoarseRange: 180, CoarseStep: 90, FineStep: 1, DoFine: true},
			wantCoarse: 4,
			wantFine:   89,
		},
		{
			name:       "range 180 step 15",
			cfg:        RotatorConfig{CoarseRange: 180, CoarseStep: 15, FineStep: 1, DoFine: true},
			wantCoarse: 24,
			wantFine:   14,
		},
		{
			name:       "default steps",
			cfg:        RotatorConfig{CoarseRange: 180, CoarseStep: DefaultCoarseStep, FineStep: DefaultFineStep, DoFine: true},
			wantCoarse: 12,
			wantFine:   29,
		},
		{
			name:       "legacy fine step",
			cfg:        RotatorConfig{CoarseRange: 180, CoarseStep: DefaultCoarseStep, FineStep: LegacyFineStep, DoFine: true},
			wantCoarse: 12,
			wantFine:   5,
		},
		{
			name:       "fine disabled",
			cfg:        RotatorConfig{CoarseRange: 180, CoarseStep: 180},
			wantCoarse: 2,
			wantFine:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atoms, axis := threeAtoms(t)
			r, err := NewRotator(atoms, axis, tt.cfg)
			if err != nil {
				t.Fatalf("NewRotator() error: %v", err)
			}

			coarse := r.CoarsePositions()
			if coarse.Len() != tt.wantCoarse {
				t.Errorf("coarse count = %d, want %d", coarse.Len(), tt.wantCoarse)
			}
			if len(coarse.Preferences) != coarse.Len() {
				t.Errorf("preferences = %d, want %d", len(coarse.Preferences), coarse.Len())
			}
			for i := 0; i < coarse.Len(); i++ {
				if len(coarse.Positions[i]) != len(coarse.Atoms) {
					t.Fatalf("candidate %d has %d coordinates, want %d", i, len(coarse.Positions[i]), len(coarse.Atoms))
				}
				fine, err := r.FinePositions(i)
				if err != nil {
					t.Fatalf("FinePositions(%d) error: %v", i, err)
				}
				if fine.Len() != tt.wantFine {
					t.Errorf("FinePositions(%d) count = %d, want %d", i, fine.Len(), tt.wantFine)
				}
			}
		})
	}
}

func TestRotatorPositions(t *testing.T) {
	atoms, axis := threeAtoms(t)
	r, err := NewRotator(atoms, axis, RotatorConfig{CoarseRange: 180, CoarseStep: 90, FineStep: 30, DoFine: true})
	if err != nil {
		t.Fatalf("NewRotator() error: %v", err)
	}

	coarse := r.CoarsePositions()
	// Angle order is 0, -90, +90, -180.
	want := [][]geom.Vec{
		{{X: 1}, {Y: 1, Z: 1}, {X: -1, Z: 2}},
		{{Y: -1}, {X: 1, Z: 1}, {Y: 1, Z: 2}},
		{{Y: 1}, {X: -1, Z: 1}, {Y: -1, Z: 2}},
		{{X: -1}, {Y: -1, Z: 1}, {X: 1, Z: 2}},
	}
	for i := range want {
		for j := range want[i] {
			if got := coarse.Positions[i][j]; !geom.ApproxEqual(got, want[i][j], geom.Tolerance) {
				t.Errorf("coarse[%d][%d] = %v, want %v", i, j, got, want[i][j])
			}
		}
	}

	// Fine positions around +90 are at 60 and 120 degrees.
	fine, err := r.FinePositions(2)
	if err != nil {
		t.Fatalf("FinePositions(2) error: %v", err)
	}
	if fine.Len() != 2 {
		t.Fatalf("FinePositions(2) count = %d, want 2", fine.Len())
	}
	c, s := math.Cos(geom.Radians(60)), math.Sin(geom.Radians(60))
	if got := fine.Positions[0][0]; !geom.ApproxEqual(got, geom.Vec{X: c, Y: s}, geom.Tolerance) {
		t.Errorf("fine[0][0] = %v, want (%v, %v, 0)", got, c, s)
	}

	// Querying positions never moves the atoms.
	if !geom.ApproxEqual(atoms[0].Pos, geom.Vec{X: 1}, geom.Tolerance) {
		t.Errorf("atom moved to %v", atoms[0].Pos)
	}
}

func TestRotatorPreferences(t *testing.T) {
	atoms, axis := threeAtoms(t)
	r, err := NewRotator(atoms, axis, RotatorConfig{
		CoarseRange:     180,
		CoarseStep:      90,
		Preference:      func(deg float64) float64 { return deg },
		PreferenceScale: 2,
	})
	if err != nil {
		t.Fatalf("NewRotator() error: %v", err)
	}
	got := r.CoarsePositions().Preferences
	want := []float64{0, -180, 180, -360}
	if !slices.Equal(got, want) {
		t.Errorf("preferences = %v, want %v", got, want)
	}

	r, _ = NewRotator(atoms, axis, RotatorConfig{CoarseRange: 180, CoarseStep: 90})
	for i, p := range r.CoarsePositions().Preferences {
		if p != 0 {
			t.Errorf("preference %d without function = %v, want 0", i, p)
		}
	}
}

func TestPeriodicPreference(t *testing.T) {
	pref := periodicPreference(120)
	tests := []struct {
		deg, want float64
	}{
		{0, 0.2},
		{120, 0.2},
		{-120, 0.2},
		{60, 0},
		{30, 0.1},
	}
	for _, tt := range tests {
		if got := pref(tt.deg); math.Abs(got-tt.want) > geom.Tolerance {
			t.Errorf("pref(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestRotatorFineIndexErrors(t *testing.T) {
	atoms, axis := threeAtoms(t)
	r, _ := NewRotator(atoms, axis, RotatorConfig{CoarseRange: 180, CoarseStep: 90, FineStep: 5, DoFine: true})

	for _, idx := range []int{-1, 4, 100} {
		_, err := r.FinePositions(idx)
		if !errors.Is(err, ErrBadCoarseIndex) {
			t.Errorf("FinePositions(%d) error = %v, want ErrBadCoarseIndex", idx, err)
		}
		if !apperrors.Is(err, apperrors.ErrCodeInvalidIndex) {
			t.Errorf("FinePositions(%d) code = %v, want %v", idx, apperrors.GetCode(err), apperrors.ErrCodeInvalidIndex)
		}
	}

	// With fine rotations off, any index yields an empty set.
	off, _ := NewRotator(atoms, axis, RotatorConfig{CoarseRange: 180, CoarseStep: 180})
	for _, idx := range []int{-1, 0, 1, 7} {
		fine, err := off.FinePositions(idx)
		if err != nil || fine.Len() != 0 || len(fine.Atoms) != 0 {
			t.Errorf("FinePositions(%d) = %d positions, %v; want empty, nil", idx, fine.Len(), err)
		}
	}
}

func TestRotatorFixUpEmpty(t *testing.T) {
	atoms, axis := threeAtoms(t)
	r, _ := NewRotator(atoms, axis, RotatorConfig{CoarseRange: 180, CoarseStep: 30, FineStep: 1, DoFine: true})
	p := NewPoint(atoms[0])

	for _, m := range []Mover{r, p} {
		for _, idx := range []int{-1, 0, 1, 11, 50} {
			fix, err := m.FixUp(idx)
			if err != nil || !fix.Empty() || len(fix.Positions) != 0 {
				t.Errorf("%s FixUp(%d) = %v, %v; want empty, nil", m.Kind(), idx, fix, err)
			}
		}
	}
}

func TestNewRotatorErrors(t *testing.T) {
	atoms, axis := threeAtoms(t)

	tests := []struct {
		name  string
		atoms []*structure.Atom
		axis  geom.Axis
		cfg   RotatorConfig
		code  apperrors.Code
	}{
		{"no atoms", nil, axis, RotatorConfig{CoarseRange: 180, CoarseStep: 30}, apperrors.ErrCodeInvalidInput},
		{"zero axis", atoms, geom.Axis{}, RotatorConfig{CoarseRange: 180, CoarseStep: 30}, apperrors.ErrCodeInvalidInput},
		{"zero coarse step", atoms, axis, RotatorConfig{CoarseRange: 180}, apperrors.ErrCodeInvalidConfig},
		{"negative range", atoms, axis, RotatorConfig{CoarseRange: -1, CoarseStep: 30}, apperrors.ErrCodeInvalidConfig},
		{"zero fine step", atoms, axis, RotatorConfig{CoarseRange: 180, CoarseStep: 30, DoFine: true}, apperrors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRotator(tt.atoms, tt.axis, tt.cfg)
			if !apperrors.Is(err, tt.code) {
				t.Errorf("NewRotator() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestPoint(t *testing.T) {
	atoms, _ := threeAtoms(t)
	p := NewPoint(atoms[1])

	coarse := p.CoarsePositions()
	if coarse.Len() != 1 || coarse.Positions[0][0] != atoms[1].Pos || coarse.Preferences[0] != 0 {
		t.Errorf("CoarsePositions() = %+v, want the atom position with preference 0", coarse)
	}
	fine, err := p.FinePositions(0)
	if err != nil || fine.Len() != 0 {
		t.Errorf("FinePositions(0) = %d, %v; want 0, nil", fine.Len(), err)
	}
	if p.Kind() != KindPoint || p.Kind().String() != "point" {
		t.Errorf("Kind() = %v", p.Kind())
	}
}

func TestPositionSetApply(t *testing.T) {
	atoms, axis := threeAtoms(t)
	r, _ := NewRotator(atoms, axis, RotatorConfig{CoarseRange: 180, CoarseStep: 90})
	coarse := r.CoarsePositions()

	if err := coarse.Apply(3); err != nil {
		t.Fatalf("Apply(3) error: %v", err)
	}
	if !geom.ApproxEqual(atoms[0].Pos, geom.Vec{X: -1}, geom.Tolerance) {
		t.Errorf("atom 0 at %v after Apply(3), want (-1, 0, 0)", atoms[0].Pos)
	}
	if err := coarse.Apply(4); !errors.Is(err, ErrBadCoarseIndex) {
		t.Errorf("Apply(4) error = %v, want ErrBadCoarseIndex", err)
	}
}
