// Package pkg provides the core libraries of movergraph.
//
// # Overview
//
// Movergraph finds the parts of a molecular structure that an optimizer may
// move (rotatable hydrogens, methyl and NH3 groups, amide flips), builds a
// mover for each one, and computes which movers can touch each other. Movers
// in different connected components of that interaction graph are
// independent, so each component can be optimized on its own.
//
// # Architecture
//
//	structure file (.sdf / .mol)
//	         ↓
//	    [molfile] package (atoms and bonds)
//	         ↓
//	    [placement] package (one [mover] per matching group)
//	         ↓
//	    [interaction] package (approximate or exact graph, components)
//	         ↓
//	    [graph] package (serializable plan)
//	         ↓
//	    [render/nodelink] package (DOT, SVG, PNG)
//
// [pipeline] runs these stages with caching ([cache]) and hooks
// ([observability]); [config] loads the settings from TOML.
//
// # Quick Start
//
//	s, err := molfile.ReadFile("ligand.sdf")
//	if err != nil {
//	    return err
//	}
//	res := placement.Place(s, mover.DefaultOptions())
//	g, err := interaction.BuildExact(res.Movers, structure.ElementRadii(s), interaction.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	for _, comp := range g.Components() {
//	    // optimize the movers in comp together
//	}
//
// # Foundations
//
//   - [geom]: vectors, boxes and rotation about an axis
//   - [structure]: atoms, bonds and the radius lookup
//   - [errors]: coded errors shared by every package
package pkg
