package entity

import "fmt"

// DisorderedResidue is a slot that holds more than one residue variant
// under a single chain key, produced by point mutations or by heteroatom
// groups reusing a sequence number. Children are keyed by residue name
// and exactly one is selected at any time.
type DisorderedResidue struct {
	id ResID

	order    []string
	children map[string]*Residue
	selected string
	pinned   bool
}

// NewDisorderedResidue creates an empty group for the given slot key.
func NewDisorderedResidue(id ResID) *DisorderedResidue {
	return &DisorderedResidue{
		id:       id,
		children: make(map[string]*Residue, 2),
	}
}

// ID implements ResidueNode.
func (d *DisorderedResidue) ID() ResID { return d.id }

// Selected implements ResidueNode, returning the active variant. Nil
// only for a group that never received a child.
func (d *DisorderedResidue) Selected() *Residue {
	if d.selected == "" && len(d.order) == 0 {
		return nil
	}
	return d.children[d.selected]
}

// Add inserts a variant keyed by its residue name and makes it the
// active one, unless a selection has been pinned with Select.
func (d *DisorderedResidue) Add(r *Residue) error {
	name := r.Name()
	if _, ok := d.children[name]; ok {
		return fmt.Errorf("%w: %q at %s", ErrDuplicateVariant, name, d.id)
	}
	d.children[name] = r
	d.order = append(d.order, name)
	if !d.pinned {
		d.selected = name
	}
	return nil
}

// Activate makes the named variant the active one without pinning it;
// the finishing pass may still reset the group to its canonical default.
// This is the builder's cursor move when a known alternate re-occurs in
// the record stream.
func (d *DisorderedResidue) Activate(name string) error {
	if _, ok := d.children[name]; !ok {
		return fmt.Errorf("%w: %q at %s", ErrUnknownVariant, name, d.id)
	}
	if !d.pinned {
		d.selected = name
	}
	return nil
}

// Select pins the active variant to the given residue name. A pinned
// selection survives both later Adds and the finishing pass.
func (d *DisorderedResidue) Select(name string) error {
	if _, ok := d.children[name]; !ok {
		return fmt.Errorf("%w: %q at %s", ErrUnknownVariant, name, d.id)
	}
	d.selected = name
	d.pinned = true
	return nil
}

// Pinned reports whether a caller pinned the selection with Select.
func (d *DisorderedResidue) Pinned() bool { return d.pinned }

// Has reports whether the group holds a variant with the given name.
func (d *DisorderedResidue) Has(name string) bool {
	_, ok := d.children[name]
	return ok
}

// Get returns the variant with the given residue name.
func (d *DisorderedResidue) Get(name string) (*Residue, bool) {
	r, ok := d.children[name]
	return r, ok
}

// Variants returns every child in insertion (file) order.
func (d *DisorderedResidue) Variants() []*Residue {
	out := make([]*Residue, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.children[name])
	}
	return out
}

// Len returns the number of variants held.
func (d *DisorderedResidue) Len() int { return len(d.order) }

func (d *DisorderedResidue) String() string {
	return fmt.Sprintf("<DisorderedResidue %s (%d variants)>", d.id, len(d.order))
}
