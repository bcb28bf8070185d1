package structure

// RadiusLookup maps an atom identity to its van der Waals radius. Lookups
// are read-only and safe for concurrent use.
type RadiusLookup interface {
	Radius(id AtomID) float64
}

// RadiusTable is a RadiusLookup backed by a map. Missing identities have
// radius 0.
type RadiusTable map[AtomID]float64

// Radius implements RadiusLookup.
func (t RadiusTable) Radius(id AtomID) float64 { return t[id] }

// UniformRadius is a RadiusLookup that gives every atom the same radius.
type UniformRadius float64

// Radius implements RadiusLookup.
func (u UniformRadius) Radius(AtomID) float64 { return float64(u) }

// DefaultRadius is used for elements missing from the van der Waals table.
const DefaultRadius = 1.05

// vdwRadii holds van der Waals radii in Angstroms. Hydrogen uses the
// electron-cloud radius for explicit hydrogens.
var vdwRadii = map[string]float64{
	"H":  1.22,
	"D":  1.22,
	"C":  1.70,
	"N":  1.55,
	"O":  1.40,
	"F":  1.30,
	"P":  1.80,
	"S":  1.80,
	"Cl": 1.77,
	"Se": 1.90,
	"Br": 1.95,
	"I":  2.10,
}

// VDWRadius returns the van der Waals radius of an element, or
// [DefaultRadius] when the element is not tabulated.
func VDWRadius(element string) float64 {
	if r, ok := vdwRadii[NormalizeElement(element)]; ok {
		return r
	}
	return DefaultRadius
}

// ElementRadii builds a RadiusTable for every atom of s from its element.
func ElementRadii(s *Structure) RadiusTable {
	t := make(RadiusTable, s.AtomCount())
	for _, a := range s.Atoms() {
		t[a.ID] = VDWRadius(a.Element)
	}
	return t
}
