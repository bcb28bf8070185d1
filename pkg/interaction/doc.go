// Package interaction builds the graph of movers that may spatially overlap.
//
// # Overview
//
// Each node of a [Graph] is one mover. Two movers are joined when some
// combination of their candidate placements could bring their atoms into
// contact. Movers in different connected components never interact, so an
// optimizer can search each component on its own instead of the full
// cross-product of every mover's states.
//
// Candidate placements are every coarse position of a mover plus every fine
// position around each coarse one. Both builders gather them the same way.
//
// # Algorithms
//
//   - [BuildApproximate]: one axis-aligned box per mover enclosing every atom
//     of every candidate, each grown by its radius, and the whole box grown by
//     the probe radius. Movers whose boxes overlap on all three axes are
//     joined. Never misses a contact; may report false ones.
//   - [BuildExact]: movers are joined when two atoms come within
//     r1 + r2 + 2·probe of each other in some pair of candidates. Rows of the
//     pairwise test run on a bounded pool of goroutines.
//
// Every edge of the exact graph is an edge of the approximate graph for the
// same movers, radii and probe. Edge sets never depend on evaluation order.
//
// # Usage
//
//	g, err := interaction.BuildExact(movers, structure.ElementRadii(s), interaction.DefaultOptions())
//	for _, comp := range g.Components() {
//	    // optimize movers g.Mover(i) for i in comp jointly
//	}
//
// Probe radii below zero are treated as zero. Radii are read through a
// structure.RadiusLookup, which must not change while a build runs.
package interaction
