// Package topology carries residue template definitions: which atoms a
// residue of a given name is supposed to have, how they are typed and
// charged, and which bonds and impropers connect them.
//
// # Overview
//
// Definitions are data, not geometry: a ResidueDef lists AtomDefs in
// template order together with Bond and Improper identity tuples. Bonds
// and impropers are canonically oriented so the same connection always
// compares equal no matter which way a source wrote it down, and both
// are comparable and usable as map keys.
//
// AtomDef.NewAtom creates a placeholder entity.Atom with no coordinate,
// which is how missing atoms enter a structure before any positions are
// computed for them. MissingAtoms compares a built residue against its
// definition.
//
// The built-in registry holds CHARMM c36 definitions for a small set of
// common residues; Lookup finds them by residue name.
package topology
