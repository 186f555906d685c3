package entity

import "errors"

var (
	// ErrAtomExists indicates an atom key is already present in the residue.
	ErrAtomExists = errors.New("entity: atom already present in residue")

	// ErrResidueExists indicates a residue key is already present in the chain.
	ErrResidueExists = errors.New("entity: residue already present in chain")

	// ErrChainExists indicates a chain id is already present in the model.
	ErrChainExists = errors.New("entity: chain already present in model")

	// ErrDuplicateAltLoc indicates a disordered atom group already holds a
	// child with the given alternate-location tag.
	ErrDuplicateAltLoc = errors.New("entity: duplicate altloc in disordered atom")

	// ErrDuplicateVariant indicates a disordered residue group already holds
	// a child with the given residue name.
	ErrDuplicateVariant = errors.New("entity: duplicate variant in disordered residue")

	// ErrUnknownAltLoc indicates a selection of an altloc tag the group
	// does not contain.
	ErrUnknownAltLoc = errors.New("entity: unknown altloc")

	// ErrUnknownVariant indicates a selection of a residue name the group
	// does not contain.
	ErrUnknownVariant = errors.New("entity: unknown variant")

	// ErrNotFound indicates a key lookup with no matching node.
	ErrNotFound = errors.New("entity: not found")
)
