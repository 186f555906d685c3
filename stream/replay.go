package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/Truman-Xu/crimm/builder"
)

// Replay drives b with every record src yields, in order, until io.EOF.
//
// A rejected residue declaration (builder.ConstructionError) does not
// stop the replay: the builder records it and drops the residue's atom
// records, which is the recovery the event contract prescribes. Any
// other builder error, strict-mode promotions included, stops the
// replay immediately.
func Replay(src Source, b *builder.Builder) error {
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if rec.Line > 0 {
			b.SetLine(rec.Line)
		}
		if err := apply(rec, b); err != nil {
			var cerr *builder.ConstructionError
			if errors.As(err, &cerr) {
				continue
			}
			return err
		}
	}
}

func apply(rec Record, b *builder.Builder) error {
	switch rec.Kind {
	case KindStructure:
		return b.BeginStructure(rec.ID)
	case KindModel:
		return b.BeginModel(rec.Serial)
	case KindSeg:
		b.BeginSeg(rec.ID)
		return nil
	case KindChain:
		return b.BeginChain(rec.ID)
	case KindResidue:
		return b.BeginResidue(rec.ResName, rec.HetFlag, rec.Seq, rec.ICode)
	case KindAtom:
		if rec.Atom == nil {
			return fmt.Errorf("%w: atom record without payload (line %d)", ErrBadRecord, rec.Line)
		}
		return b.AddAtom(*rec.Atom)
	case KindEndChain:
		return b.EndChain()
	case KindEndModel:
		return b.EndModel()
	case KindEndStructure:
		return b.EndStructure()
	default:
		return fmt.Errorf("%w: unknown record kind %d (line %d)", ErrBadRecord, int(rec.Kind), rec.Line)
	}
}
