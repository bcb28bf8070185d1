// Package mover generates discrete candidate placements for small groups of
// atoms whose positions are ambiguous, such as rotatable hydrogens and
// flippable terminal heavy-atom pairs.
//
// # Overview
//
// Every variant satisfies the [Mover] interface:
//
//   - [Mover.CoarsePositions]: all coarse candidates, with preference energies
//   - [Mover.FinePositions]: candidates around one coarse candidate
//   - [Mover.FixUp]: corrective placements after a candidate is chosen
//
// The optimizer moves the atoms to a chosen candidate, then applies the
// fix-up for the chosen coarse index. Preference energies are added to the
// optimizer's score; movers never interpret them.
//
// # Variants
//
// The set of variants is closed:
//
//   - [Point]: one atom, one candidate (its current position)
//   - [Rotator]: atoms spun about an axis over a coarse and a fine angle ladder
//   - [NewSingleHydrogenRotator]: OH, SH and SeH hydrogens
//   - [NewNH3Rotator]: the three hydrogens of an amine
//   - [NewAromaticMethylRotator]: two-state methyl on a ring atom
//   - [NewTetrahedralMethylRotator]: methyl on a tetrahedral atom
//   - [Flip]: terminal heavy-atom swap with rigid realignment
//
// # Angle Ladders
//
// Coarse angles start at 0 and step outward in both directions up to the
// range, closed on the negative end and open on the positive one. A range of
// 180° with a 90° step yields 0, -90, +90, -180. Fine angles use the same
// rule over half a coarse step, without 0, and are offset by the chosen
// coarse angle.
//
// # Construction
//
// Specialized constructors read the bonded-neighbor snapshot once, validate
// the bonding pattern and move their atoms into a canonical starting
// orientation. Pattern mismatches are returned as INVALID_STRUCTURE errors
// from pkg/errors that name the offending atom; nothing is moved when
// construction fails. Configuration is passed explicitly through [Options].
//
// The structure must not gain or lose atoms or bonds after movers are built
// from it; freeze it first (see structure.Structure.Freeze).
package mover
