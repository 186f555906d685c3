package stream

import (
	"fmt"
	"io"

	"github.com/Truman-Xu/crimm/builder"
)

// Kind discriminates the event a Record carries.
type Kind int

const (
	KindStructure Kind = iota
	KindModel
	KindSeg
	KindChain
	KindResidue
	KindAtom
	KindEndChain
	KindEndModel
	KindEndStructure
)

func (k Kind) String() string {
	switch k {
	case KindStructure:
		return "structure"
	case KindModel:
		return "model"
	case KindSeg:
		return "seg"
	case KindChain:
		return "chain"
	case KindResidue:
		return "residue"
	case KindAtom:
		return "atom"
	case KindEndChain:
		return "endchain"
	case KindEndModel:
		return "endmodel"
	case KindEndStructure:
		return "end"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Record is one construction event. Which fields are meaningful depends
// on Kind: ID for structure/seg/chain, Serial for model, the residue
// fields for residue, Atom for atom. The end events carry no payload.
type Record struct {
	Kind Kind

	// Line is the source line the record came from; zero when the
	// source has no line numbering.
	Line int

	ID     string
	Serial int

	ResName string
	HetFlag string
	Seq     int
	ICode   byte

	Atom *builder.AtomRecord
}

// Source yields records in stream order. Next returns io.EOF after the
// last record.
type Source interface {
	Next() (Record, error)
}

// SliceSource replays records from memory. Useful in tests and for
// callers that assemble event lists programmatically.
type SliceSource struct {
	records []Record
	pos     int
}

// NewSliceSource creates a source over the given records. The slice is
// not copied.
func NewSliceSource(records []Record) *SliceSource {
	return &SliceSource{records: records}
}

// Next implements Source.
func (s *SliceSource) Next() (Record, error) {
	if s.pos >= len(s.records) {
		return Record{}, io.EOF
	}
	rec := s.records[s.pos]
	s.pos++
	return rec, nil
}
