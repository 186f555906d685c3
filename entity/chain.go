package entity

import "fmt"

// Chain is an ordered collection of residue slots keyed by ResID.
type Chain struct {
	id     string
	parent *Model

	order []ResID
	nodes map[ResID]ResidueNode
}

// NewChain creates an empty chain with the given identifier.
func NewChain(id string) *Chain {
	return &Chain{
		id:    id,
		nodes: make(map[ResID]ResidueNode, 64),
	}
}

// ID returns the chain identifier.
func (c *Chain) ID() string { return c.id }

// Model returns the owning model, or nil while detached.
func (c *Chain) Model() *Model { return c.parent }

// SetModel records the owning model (non-owning back reference).
func (c *Chain) SetModel(m *Model) { c.parent = m }

// Add inserts a residue node under its own key. The key must be unused.
func (c *Chain) Add(node ResidueNode) error {
	id := node.ID()
	if _, ok := c.nodes[id]; ok {
		return fmt.Errorf("%w: %s in chain %q", ErrResidueExists, id, c.id)
	}
	c.nodes[id] = node
	c.order = append(c.order, id)
	c.adopt(node)
	return nil
}

// Get returns the residue node stored under id.
func (c *Chain) Get(id ResID) (ResidueNode, bool) {
	n, ok := c.nodes[id]
	return n, ok
}

// Has reports whether a residue node is stored under id.
func (c *Chain) Has(id ResID) bool {
	_, ok := c.nodes[id]
	return ok
}

// Detach removes and returns the residue node stored under id.
func (c *Chain) Detach(id ResID) (ResidueNode, bool) {
	n, ok := c.nodes[id]
	if !ok {
		return nil, false
	}
	delete(c.nodes, id)
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return n, true
}

// Replace swaps the node stored under id for another node with the same
// key, preserving the slot's position in the chain. Used when a plain
// residue is absorbed into a newly created disordered residue group.
func (c *Chain) Replace(id ResID, node ResidueNode) error {
	if _, ok := c.nodes[id]; !ok {
		return fmt.Errorf("%w: residue %s in chain %q", ErrNotFound, id, c.id)
	}
	if node.ID() != id {
		return fmt.Errorf("entity: replacement residue key %s does not match %s", node.ID(), id)
	}
	c.nodes[id] = node
	c.adopt(node)
	return nil
}

// FindHetBySeq returns, in chain order, the keys of every heteroatom
// residue slot with the given bare sequence number, ignoring hetero flag
// and insertion code. Source files sometimes reuse a sequence number for
// a second heteroatom group without a distinguishing flag; this lookup
// is how such duplicates are found regardless of what else shares the
// number.
func (c *Chain) FindHetBySeq(seq int) []ResID {
	var out []ResID
	for _, id := range c.order {
		if id.IsHet() && id.Seq == seq {
			out = append(out, id)
		}
	}
	return out
}

// Len returns the number of residue slots (groups count once).
func (c *Chain) Len() int { return len(c.order) }

// Residues returns the effective residue per slot in chain order: the
// selected variant for disordered slots, the residue itself otherwise.
func (c *Chain) Residues() []*Residue {
	out := make([]*Residue, 0, len(c.order))
	for _, id := range c.order {
		if r := c.nodes[id].Selected(); r != nil {
			out = append(out, r)
		}
	}
	return out
}

// ResidueNodes returns the raw slots in chain order.
func (c *Chain) ResidueNodes() []ResidueNode {
	out := make([]ResidueNode, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.nodes[id])
	}
	return out
}

// DisorderedResidues returns every disordered residue group in the chain.
func (c *Chain) DisorderedResidues() []*DisorderedResidue {
	var out []*DisorderedResidue
	for _, id := range c.order {
		if d, ok := c.nodes[id].(*DisorderedResidue); ok {
			out = append(out, d)
		}
	}
	return out
}

// Finish resets every disordered residue group whose selection was never
// pinned to its canonical default: the variant whose own identity equals
// the group's stored key, i.e. the slot's original occupant. After
// Finish, iterating the chain yields exactly one consistent residue per
// key on every run with identical input.
func (c *Chain) Finish() {
	for _, id := range c.order {
		group, ok := c.nodes[id].(*DisorderedResidue)
		if !ok || group.Pinned() {
			continue
		}
		for _, variant := range group.Variants() {
			if variant.ID() == group.ID() {
				group.Activate(variant.Name())
			}
		}
	}
}

// adopt points all residues under node back at this chain.
func (c *Chain) adopt(node ResidueNode) {
	switch n := node.(type) {
	case *Residue:
		n.SetChain(c)
	case *DisorderedResidue:
		for _, r := range n.Variants() {
			r.SetChain(c)
		}
	}
}

func (c *Chain) String() string {
	return fmt.Sprintf("<Chain %s (%d residues)>", c.id, len(c.order))
}
