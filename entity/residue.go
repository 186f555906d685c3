package entity

import "fmt"

// ResidueNode is a slot in a chain's residue collection. It has exactly
// two variants: *Residue and *DisorderedResidue. Callers that need the
// variant type-switch on the interface value.
type ResidueNode interface {
	// ID returns the composite key the node is stored under in its chain.
	ID() ResID

	// Selected returns the effective residue for the slot: the node
	// itself for a plain residue, the selected variant for a group.
	Selected() *Residue
}

// Residue holds the atoms observed for one residue declaration. Atom
// nodes are kept in insertion order and keyed by atom name.
type Residue struct {
	id    ResID
	name  string
	segID string

	order []string
	nodes map[string]AtomNode

	disordered bool
	parent     *Chain
}

// NewResidue creates an empty residue with the given identity, residue
// name and segment id.
func NewResidue(id ResID, name, segID string) *Residue {
	return &Residue{
		id:    id,
		name:  name,
		segID: segID,
		nodes: make(map[string]AtomNode, 8),
	}
}

// ID implements ResidueNode.
func (r *Residue) ID() ResID { return r.id }

// Selected implements ResidueNode; a plain residue is its own effective
// residue.
func (r *Residue) Selected() *Residue { return r }

// Name returns the residue name, e.g. "ALA".
func (r *Residue) Name() string { return r.name }

// SegID returns the segment identifier the residue was declared under.
func (r *Residue) SegID() string { return r.segID }

// Chain returns the owning chain, or nil while detached.
func (r *Residue) Chain() *Chain { return r.parent }

// SetChain records the owning chain (non-owning back reference).
func (r *Residue) SetChain(c *Chain) { r.parent = c }

// Add inserts an atom node under its own key. The key must be unused.
func (r *Residue) Add(node AtomNode) error {
	key := node.AtomID()
	if _, ok := r.nodes[key]; ok {
		return fmt.Errorf("%w: %q in residue %s %s", ErrAtomExists, key, r.name, r.id)
	}
	r.nodes[key] = node
	r.order = append(r.order, key)
	r.adopt(node)
	return nil
}

// Get returns the atom node stored under key.
func (r *Residue) Get(key string) (AtomNode, bool) {
	n, ok := r.nodes[key]
	return n, ok
}

// Has reports whether an atom node is stored under key.
func (r *Residue) Has(key string) bool {
	_, ok := r.nodes[key]
	return ok
}

// Detach removes and returns the atom node stored under key.
func (r *Residue) Detach(key string) (AtomNode, bool) {
	n, ok := r.nodes[key]
	if !ok {
		return nil, false
	}
	delete(r.nodes, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return n, true
}

// Replace swaps the node stored under key for another node with the same
// key, preserving the slot's position in the residue. Used when an atom
// turns out to be disordered after a blank-altloc occurrence was already
// inserted.
func (r *Residue) Replace(key string, node AtomNode) error {
	if _, ok := r.nodes[key]; !ok {
		return fmt.Errorf("%w: atom %q in residue %s %s", ErrNotFound, key, r.name, r.id)
	}
	if node.AtomID() != key {
		return fmt.Errorf("entity: replacement atom key %q does not match %q", node.AtomID(), key)
	}
	r.nodes[key] = node
	r.adopt(node)
	return nil
}

// FlagDisordered marks the residue as containing disordered atoms.
func (r *Residue) FlagDisordered() { r.disordered = true }

// Disordered reports whether any atom slot in the residue holds a group.
func (r *Residue) Disordered() bool { return r.disordered }

// FullyDisordered reports whether every atom reachable in the residue,
// group children included, carries a non-blank altloc tag. This is the
// precondition for absorbing the residue into a disordered residue
// group: a blank-tagged atom means the source records are malformed.
func (r *Residue) FullyDisordered() bool {
	for _, a := range r.UnpackedAtoms() {
		if a.AltLoc == "" {
			return false
		}
	}
	return true
}

// Len returns the number of atom slots (groups count once).
func (r *Residue) Len() int { return len(r.order) }

// Atoms returns the effective atom per slot in insertion order: the
// selected alternate for disordered slots, the atom itself otherwise.
func (r *Residue) Atoms() []*Atom {
	out := make([]*Atom, 0, len(r.order))
	for _, key := range r.order {
		if a := r.nodes[key].Selected(); a != nil {
			out = append(out, a)
		}
	}
	return out
}

// AtomNodes returns the raw slots in insertion order.
func (r *Residue) AtomNodes() []AtomNode {
	out := make([]AtomNode, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.nodes[key])
	}
	return out
}

// DisorderedAtoms returns every disordered atom group in the residue.
func (r *Residue) DisorderedAtoms() []*DisorderedAtom {
	var out []*DisorderedAtom
	for _, key := range r.order {
		if d, ok := r.nodes[key].(*DisorderedAtom); ok {
			out = append(out, d)
		}
	}
	return out
}

// UnpackedAtoms returns every atom reachable in the residue, including
// all alternates of disordered slots, in file order.
func (r *Residue) UnpackedAtoms() []*Atom {
	out := make([]*Atom, 0, len(r.order))
	for _, key := range r.order {
		switch n := r.nodes[key].(type) {
		case *Atom:
			out = append(out, n)
		case *DisorderedAtom:
			out = append(out, n.Alternates()...)
		}
	}
	return out
}

// adopt points all atoms under node back at this residue.
func (r *Residue) adopt(node AtomNode) {
	switch n := node.(type) {
	case *Atom:
		n.SetResidue(r)
	case *DisorderedAtom:
		for _, a := range n.Alternates() {
			a.SetResidue(r)
		}
	}
}

func (r *Residue) String() string {
	return fmt.Sprintf("<Residue %s %s>", r.name, r.id)
}
