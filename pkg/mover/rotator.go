package mover

import (
	"math"

	apperrors "github.com/matzehuels/movergraph/pkg/errors"
	"github.com/matzehuels/movergraph/pkg/geom"
	"github.com/matzehuels/movergraph/pkg/structure"
)

const (
	// DefaultCoarseStep is the default coarse angular step in degrees.
	DefaultCoarseStep = 30.0

	// DefaultFineStep is the fine step used by the hydrogen and methyl
	// rotators unless configured otherwise.
	DefaultFineStep = 1.0

	// LegacyFineStep is the coarser fine step some callers use for bare
	// rotators. It is never applied implicitly.
	LegacyFineStep = 5.0

	// DefaultPreferenceScale multiplies every preference energy.
	DefaultPreferenceScale = 1.0
)

// ladderEpsilon absorbs floating point drift when comparing ladder angles
// against the range bound.
const ladderEpsilon = 1e-9

// Options holds the tunables shared by every mover constructor. Resolve
// defaults before construction; constructors never consult global state.
type Options struct {
	CoarseStep      float64 // Coarse angular step in degrees
	FineStep        float64 // Fine angular step in degrees
	PreferenceScale float64 // Multiplier applied to preference energies
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		CoarseStep:      DefaultCoarseStep,
		FineStep:        DefaultFineStep,
		PreferenceScale: DefaultPreferenceScale,
	}
}

// Validate checks that both steps are positive and the scale is finite.
func (o Options) Validate() error {
	if err := apperrors.ValidateStep("coarse step", o.CoarseStep); err != nil {
		return err
	}
	if err := apperrors.ValidateStep("fine step", o.FineStep); err != nil {
		return err
	}
	return apperrors.ValidateFinite("preference scale", o.PreferenceScale)
}

// RotatorConfig parameterizes [NewRotator].
type RotatorConfig struct {
	CoarseRange     float64 // Degrees; closed on the negative end, open on the positive
	CoarseStep      float64 // Degrees, must be positive
	FineStep        float64 // Degrees, must be positive when DoFine is set
	DoFine          bool
	Preference      func(degrees float64) float64 // Optional; nil means all zero
	PreferenceScale float64
}

// Rotator spins a group of atoms about a shared axis. Its candidates are the
// canonical placement rotated by each angle of a coarse ladder, with an
// optional fine ladder around each coarse angle.
type Rotator struct {
	kind   Kind
	atoms  []*structure.Atom
	base   []geom.Vec
	axis   geom.Axis
	coarse []float64
	fine   []float64
	doFine bool
	pref   func(float64) float64
	scale  float64
}

// NewRotator builds a rotator over atoms, treating their current positions
// as the canonical 0° placement.
func NewRotator(atoms []*structure.Atom, axis geom.Axis, cfg RotatorConfig) (*Rotator, error) {
	return newRotator(KindRotator, atoms, axis, cfg)
}

func newRotator(kind Kind, atoms []*structure.Atom, axis geom.Axis, cfg RotatorConfig) (*Rotator, error) {
	if len(atoms) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "%s mover needs at least one atom", kind)
	}
	dir, ok := geom.Unit(axis.Direction)
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "%s mover axis has no direction", kind)
	}
	axis.Direction = dir

	if err := apperrors.ValidateStep("coarse step", cfg.CoarseStep); err != nil {
		return nil, err
	}
	if cfg.CoarseRange < 0 || math.IsNaN(cfg.CoarseRange) || math.IsInf(cfg.CoarseRange, 0) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "coarse range must be finite and non-negative, got %v", cfg.CoarseRange)
	}
	r := &Rotator{
		kind:   kind,
		atoms:  atoms,
		base:   positionsOf(atoms),
		axis:   axis,
		coarse: coarseLadder(cfg.CoarseRange, cfg.CoarseStep),
		doFine: cfg.DoFine,
		pref:   cfg.Preference,
		scale:  cfg.PreferenceScale,
	}
	if cfg.DoFine {
		if err := apperrors.ValidateStep("fine step", cfg.FineStep); err != nil {
			return nil, err
		}
		r.fine = fineLadder(cfg.CoarseStep/2, cfg.FineStep)
	}
	return r, nil
}

// coarseLadder returns 0 followed by ±step, ±2·step, ... up to rng. The
// range is closed on the negative end and open on the positive end.
func coarseLadder(rng, step float64) []float64 {
	angles := []float64{0}
	for i := 1; ; i++ {
		k := float64(i) * step
		if k > rng+ladderEpsilon {
			break
		}
		angles = append(angles, -k)
		if k < rng-ladderEpsilon {
			angles = append(angles, k)
		}
	}
	return angles
}

// fineLadder is coarseLadder without the leading zero.
func fineLadder(rng, step float64) []float64 {
	return coarseLadder(rng, step)[1:]
}

func (*Rotator) sealed() {}

// Kind implements Mover.
func (r *Rotator) Kind() Kind { return r.kind }

// Atoms implements Mover.
func (r *Rotator) Atoms() []*structure.Atom { return r.atoms }

// Axis returns the rotation axis.
func (r *Rotator) Axis() geom.Axis { return r.axis }

// CoarseAngles returns a copy of the coarse angle ladder in degrees.
func (r *Rotator) CoarseAngles() []float64 { return append([]float64(nil), r.coarse...) }

// FineAngles returns a copy of the fine ladder, relative to a coarse angle.
func (r *Rotator) FineAngles() []float64 { return append([]float64(nil), r.fine...) }

// CoarsePositions implements Mover.
func (r *Rotator) CoarsePositions() PositionSet {
	return r.positionsFor(r.coarse)
}

// FinePositions implements Mover. It returns an empty set when fine
// rotations are disabled, whatever the index.
func (r *Rotator) FinePositions(coarseIndex int) (PositionSet, error) {
	if !r.doFine {
		return PositionSet{}, nil
	}
	if coarseIndex < 0 || coarseIndex >= len(r.coarse) {
		return PositionSet{}, badIndex(coarseIndex, len(r.coarse))
	}
	angles := make([]float64, len(r.fine))
	for i, f := range r.fine {
		angles[i] = f + r.coarse[coarseIndex]
	}
	return r.positionsFor(angles), nil
}

// FixUp is always empty for rotators.
func (*Rotator) FixUp(int) (FixUpResult, error) { return FixUpResult{}, nil }

func (r *Rotator) positionsFor(angles []float64) PositionSet {
	ps := PositionSet{
		Atoms:       r.atoms,
		Positions:   make([][]geom.Vec, len(angles)),
		Preferences: make([]float64, len(angles)),
	}
	for i, ang := range angles {
		ps.Positions[i] = geom.RotateAll(r.base, r.axis, ang)
		if r.pref != nil {
			ps.Preferences[i] = r.pref(ang) * r.scale
		}
	}
	return ps
}

// periodicPreference favors angles that are multiples of period.
func periodicPreference(period float64) func(float64) float64 {
	return func(deg float64) float64 {
		return 0.1 + 0.1*math.Cos(geom.Radians(deg*360/period))
	}
}
