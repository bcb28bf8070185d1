package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// structureExtensions lists the file extensions accepted as structure input.
var structureExtensions = map[string]bool{
	".sdf": true,
	".mol": true,
	".sd":  true,
}

// ValidateStructurePath validates the path of a structure file before it is
// opened.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Extension must be one of .sdf, .sd, .mol (case insensitive)
func ValidateStructurePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !structureExtensions[ext] {
		return New(ErrCodeInvalidPath, "unsupported structure file extension %q (want .sdf, .sd or .mol)", ext)
	}

	return nil
}

// ValidateStep validates an angular step in degrees. Steps must be finite
// and strictly positive.
func ValidateStep(name string, degrees float64) error {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return New(ErrCodeInvalidConfig, "%s must be finite, got %v", name, degrees)
	}
	if degrees <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %v", name, degrees)
	}
	return nil
}

// ValidateFinite validates that a scalar setting is a finite number.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be finite, got %v", name, v)
	}
	return nil
}
