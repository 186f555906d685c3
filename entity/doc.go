// Package entity provides the node types of the macromolecular structure
// hierarchy and the keyed collections that hold them together.
//
// # Overview
//
// A structure is a tree: Structure -> Model -> Chain -> Residue -> Atom.
// Ownership runs strictly parent to child; every node also carries a
// non-owning back reference to its parent for identity computation, so
// the tree never contains ownership cycles.
//
// Real structure records are not clean. The same residue slot may be
// declared twice with different names (a point mutation), and the same
// physical atom may be recorded at several alternate locations
// (conformational disorder). The hierarchy represents both defects with
// explicit group nodes rather than by dropping data:
//
//   - AtomNode has exactly two variants: *Atom (a single observed atom)
//     and *DisorderedAtom (alternates keyed by altloc tag, one selected).
//   - ResidueNode has exactly two variants: *Residue and
//     *DisorderedResidue (variants keyed by residue name, one selected).
//
// Code that needs to distinguish the variants type-switches on the
// interface; there is no reflection or kind field.
//
// # Identity
//
// Residues are keyed within a chain by ResID, the composite of hetero
// flag, sequence number and insertion code. Atoms are keyed within a
// residue by name; when two distinct atoms collide only because of
// whitespace padding, the space-padded full spelling becomes the key.
//
// # Invariants
//
// After every mutation:
//
//   - a ResID maps to exactly one ResidueNode within a Chain
//   - a DisorderedResidue's children are unique by residue name, and
//     exactly one child is selected
//   - an atom key maps to exactly one AtomNode within a Residue
//   - a DisorderedAtom's children are unique by altloc tag, and exactly
//     one child is selected
//
// Collections enforce these invariants by returning errors from Add
// rather than overwriting.
//
// # Related Packages
//
//   - github.com/Truman-Xu/crimm/builder: incremental construction from
//     a record stream, including all duplicate/disorder resolution
//   - github.com/Truman-Xu/crimm/topology: residue template definitions
package entity
