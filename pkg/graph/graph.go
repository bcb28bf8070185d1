package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	apperrors "github.com/matzehuels/movergraph/pkg/errors"
)

// =============================================================================
// Plan Serialization API
// =============================================================================

// MarshalPlan converts a Plan to indented JSON bytes.
func MarshalPlan(p Plan) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePlan(p, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePlan writes a Plan as JSON to an io.Writer.
func WritePlan(p Plan, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WritePlanFile writes a Plan to a JSON file.
// The file is created with 0644 permissions.
func WritePlanFile(p Plan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePlan(p, f)
}

// UnmarshalPlan decodes and checks a Plan. Every edge and component member
// must name a listed mover.
func UnmarshalPlan(data []byte) (Plan, error) {
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return Plan{}, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "decode plan")
	}
	if err := p.validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// ReadPlanFile reads and checks a Plan from a JSON file.
func ReadPlanFile(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	return UnmarshalPlan(data)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func (p Plan) validate() error {
	n := len(p.Movers)
	for i, m := range p.Movers {
		if m.Index != i {
			return apperrors.New(apperrors.ErrCodeInvalidFormat, "mover %d has index %d", i, m.Index)
		}
	}
	for _, e := range p.Edges {
		if e.From < 0 || e.To >= n || e.From >= e.To {
			return apperrors.New(apperrors.ErrCodeInvalidFormat, "edge %d-%d out of range for %d movers", e.From, e.To, n)
		}
	}
	for _, c := range p.Components {
		for _, i := range c {
			if i < 0 || i >= n {
				return apperrors.New(apperrors.ErrCodeInvalidFormat, "component member %d out of range for %d movers", i, n)
			}
		}
	}
	return nil
}
