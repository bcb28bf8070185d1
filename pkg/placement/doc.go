// Package placement finds the rotatable and flippable groups of a structure
// and builds one mover for each.
//
// Patterns, checked per atom in ID order:
//
//   - N with two hydrogens on a carbon carrying one terminal O: [mover.KindFlip]
//   - N with three hydrogens and one heavy partner: [mover.KindNH3]
//   - C with three hydrogens and one heavy partner: [mover.KindAromaticMethyl]
//     when the partner has three bonds, otherwise [mover.KindTetrahedralMethyl]
//   - H on O, S or Se: [mover.KindSingleHydrogen]
//
// A pattern match only nominates a candidate. The mover constructor makes
// the final geometric checks, and a candidate it rejects is reported as a
// [Failure] rather than aborting the rest of the placement.
package placement
