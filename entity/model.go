package entity

import "fmt"

// Model is one coordinate set of a structure, holding chains in file
// order keyed by chain id. Most crystallographic entries have a single
// model; NMR ensembles have many.
type Model struct {
	serial int
	parent *Structure

	order  []string
	chains map[string]*Chain
}

// NewModel creates an empty model with the given serial number.
func NewModel(serial int) *Model {
	return &Model{
		serial: serial,
		chains: make(map[string]*Chain, 4),
	}
}

// Serial returns the model's serial number.
func (m *Model) Serial() int { return m.serial }

// Structure returns the owning structure, or nil while detached.
func (m *Model) Structure() *Structure { return m.parent }

// SetStructure records the owning structure (non-owning back reference).
func (m *Model) SetStructure(s *Structure) { m.parent = s }

// Add inserts a chain under its id. The id must be unused.
func (m *Model) Add(c *Chain) error {
	if _, ok := m.chains[c.ID()]; ok {
		return fmt.Errorf("%w: %q in model %d", ErrChainExists, c.ID(), m.serial)
	}
	m.chains[c.ID()] = c
	m.order = append(m.order, c.ID())
	c.SetModel(m)
	return nil
}

// Get returns the chain with the given id.
func (m *Model) Get(id string) (*Chain, bool) {
	c, ok := m.chains[id]
	return c, ok
}

// Has reports whether a chain with the given id exists.
func (m *Model) Has(id string) bool {
	_, ok := m.chains[id]
	return ok
}

// Chains returns the chains in file order.
func (m *Model) Chains() []*Chain {
	out := make([]*Chain, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.chains[id])
	}
	return out
}

// Len returns the number of chains.
func (m *Model) Len() int { return len(m.order) }

func (m *Model) String() string {
	return fmt.Sprintf("<Model %d (%d chains)>", m.serial, len(m.order))
}
