// Package testutil provides shared fixtures for building small test
// structures without repeating builder boilerplate in every package.
package testutil

import (
	"testing"

	"github.com/Truman-Xu/crimm/builder"
	"github.com/Truman-Xu/crimm/entity"
)

// NewBuilder creates a lenient builder with one open chain, ready to
// receive residue events.
//
// Example:
//
//	b := testutil.NewBuilder(t, "1abc", "A")
//	testutil.AddResidue(t, b, "ALA", 1)
func NewBuilder(t *testing.T, structureID, chainID string) *builder.Builder {
	t.Helper()
	b := builder.New(nil)
	mustOK(t, b.BeginStructure(structureID))
	mustOK(t, b.BeginModel(0))
	mustOK(t, b.BeginChain(chainID))
	return b
}

// AddResidue opens a standard (non-het) residue with no insertion code.
func AddResidue(t *testing.T, b *builder.Builder, name string, seq int) {
	t.Helper()
	mustOK(t, b.BeginResidue(name, "", seq, 0))
}

// AddAtom admits an ordered atom with full occupancy into the current
// residue.
func AddAtom(t *testing.T, b *builder.Builder, name string) {
	t.Helper()
	mustOK(t, b.AddAtom(builder.AtomRecord{
		Name:      name,
		FullName:  pad4(name),
		Coord:     &entity.Coord{X: 1, Y: 2, Z: 3},
		Occupancy: 1,
	}))
}

// Finish closes the stream and returns the built structure.
func Finish(t *testing.T, b *builder.Builder) *entity.Structure {
	t.Helper()
	mustOK(t, b.EndChain())
	mustOK(t, b.EndModel())
	mustOK(t, b.EndStructure())
	st, err := b.Structure()
	if err != nil {
		t.Fatalf("finished builder refused to yield structure: %v", err)
	}
	return st
}

// SimpleStructure builds a one-chain structure with the given residue
// names at consecutive sequence numbers, each holding an N/CA/C/O
// backbone.
func SimpleStructure(t *testing.T, names ...string) *entity.Structure {
	t.Helper()
	b := NewBuilder(t, "test", "A")
	for i, name := range names {
		AddResidue(t, b, name, i+1)
		for _, atom := range []string{"N", "CA", "C", "O"} {
			AddAtom(t, b, atom)
		}
	}
	return Finish(t, b)
}

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("fixture setup failed: %v", err)
	}
}

func pad4(name string) string {
	switch len(name) {
	case 1:
		return " " + name + "  "
	case 2:
		return " " + name + " "
	case 3:
		return " " + name
	default:
		return name
	}
}
