package molfile

import (
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/matzehuels/movergraph/pkg/errors"
	"github.com/matzehuels/movergraph/pkg/geom"
)

func TestReadFile(t *testing.T) {
	s, err := ReadFile(filepath.Join("testdata", "methylamine.sdf"))
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if s.AtomCount() != 8 || s.BondCount() != 7 {
		t.Fatalf("counts = %d atoms, %d bonds; want 8, 7", s.AtomCount(), s.BondCount())
	}
	n := s.Atom(1)
	if n.Element != "N" || n.Name != "N2" {
		t.Errorf("atom 1 = %s %s, want N N2", n.Element, n.Name)
	}
	if !geom.ApproxEqual(n.Pos, geom.Vec{Z: 1.47}, geom.Tolerance) {
		t.Errorf("atom 1 position = %v", n.Pos)
	}
	if s.Degree(s.Atom(0)) != 4 || s.Degree(n) != 4 {
		t.Error("bond block not applied")
	}
	if s.Frozen() {
		t.Error("ReadFile() returned a frozen structure")
	}
}

func TestReadFileErrors(t *testing.T) {
	tests := []struct {
		path string
		code apperrors.Code
	}{
		{"testdata/missing.sdf", apperrors.ErrCodeFileNotFound},
		{"testdata/methylamine.pdb", apperrors.ErrCodeInvalidPath},
		{"", apperrors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		_, err := ReadFile(tt.path)
		if !apperrors.Is(err, tt.code) {
			t.Errorf("ReadFile(%q) error = %v, want %s", tt.path, err, tt.code)
		}
	}
}

func TestReadLooseCounts(t *testing.T) {
	src := "water\n\n\n3 2\n0 0 0 o\n0.96 0 0 H\n-0.24 0.93 0 H\n1 2 1\n1 3 1\n"
	s, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if s.AtomCount() != 3 || s.BondCount() != 2 {
		t.Errorf("counts = %d, %d; want 3, 2", s.AtomCount(), s.BondCount())
	}
	if s.Atom(0).Element != "O" {
		t.Errorf("element = %q, want O", s.Atom(0).Element)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantLine string
	}{
		{"truncated header", "title\n\n", "line 3"},
		{"bad counts", "t\n\n\nabc\n", "line 4"},
		{"v3000", "t\n\n\n  0  0  0     0  0            999 V3000\n", "line 4"},
		{"missing atom", "t\n\n\n  2  0\n0 0 0 C\n", "line 6"},
		{"bad coordinate", "t\n\n\n  1  0\n0 x 0 C\n", "line 5"},
		{"bond to unknown atom", "t\n\n\n  1  1\n0 0 0 C\n  1  2  1\n", "line 6"},
		{"self bond", "t\n\n\n  1  1\n0 0 0 C\n  1  1  1\n", "line 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.src))
			if !apperrors.Is(err, apperrors.ErrCodeInvalidFormat) {
				t.Fatalf("Read() error = %v, want INVALID_FORMAT", err)
			}
			if !strings.Contains(err.Error(), tt.wantLine) {
				t.Errorf("error %q does not name %s", err, tt.wantLine)
			}
		})
	}
}
