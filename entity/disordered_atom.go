package entity

import "fmt"

// DisorderedAtom is a named slot holding alternates of one physical atom
// keyed by alternate-location tag. Exactly one child is selected at any
// time and stands in as the effective atom for the slot.
//
// A group is only ever created when a second atom arrives for a key that
// already holds one, so a live group always has at least one child.
type DisorderedAtom struct {
	// Name is the shared atom key, see Atom.Name.
	Name string

	order    []string
	children map[string]*Atom
	selected string
	pinned   bool
}

// NewDisorderedAtom creates an empty group for the given atom key.
func NewDisorderedAtom(name string) *DisorderedAtom {
	return &DisorderedAtom{
		Name:     name,
		children: make(map[string]*Atom, 2),
	}
}

// AtomID implements AtomNode.
func (d *DisorderedAtom) AtomID() string { return d.Name }

// Selected implements AtomNode, returning the currently selected
// alternate. Nil only for a group that never received a child.
func (d *DisorderedAtom) Selected() *Atom {
	if d.selected == "" && len(d.order) == 0 {
		return nil
	}
	return d.children[d.selected]
}

// Add inserts an alternate keyed by its altloc tag. Unless a caller has
// pinned a choice with Select, the child with the highest occupancy
// becomes the selected one; on ties the earlier arrival wins.
func (d *DisorderedAtom) Add(a *Atom) error {
	if _, ok := d.children[a.AltLoc]; ok {
		return fmt.Errorf("%w: %q on atom %q", ErrDuplicateAltLoc, a.AltLoc, d.Name)
	}
	d.children[a.AltLoc] = a
	d.order = append(d.order, a.AltLoc)
	if d.pinned {
		return nil
	}
	if len(d.order) == 1 || a.Occupancy > d.children[d.selected].Occupancy {
		d.selected = a.AltLoc
	}
	return nil
}

// Select pins the selected alternate to the given altloc tag. Once
// pinned, later Adds no longer move the selection.
func (d *DisorderedAtom) Select(altloc string) error {
	if _, ok := d.children[altloc]; !ok {
		return fmt.Errorf("%w: %q on atom %q", ErrUnknownAltLoc, altloc, d.Name)
	}
	d.selected = altloc
	d.pinned = true
	return nil
}

// Get returns the alternate with the given altloc tag.
func (d *DisorderedAtom) Get(altloc string) (*Atom, bool) {
	a, ok := d.children[altloc]
	return a, ok
}

// Alternates returns every child in insertion (file) order.
func (d *DisorderedAtom) Alternates() []*Atom {
	out := make([]*Atom, 0, len(d.order))
	for _, tag := range d.order {
		out = append(out, d.children[tag])
	}
	return out
}

// Len returns the number of alternates held.
func (d *DisorderedAtom) Len() int { return len(d.order) }

func (d *DisorderedAtom) String() string {
	return fmt.Sprintf("<DisorderedAtom %s (%d alternates)>", d.Name, len(d.order))
}
