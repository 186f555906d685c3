package builder

import (
	"errors"
	"fmt"

	"github.com/Truman-Xu/crimm/entity"
)

var (
	// ErrStructureBegun indicates BeginStructure was called twice; one
	// builder builds exactly one structure.
	ErrStructureBegun = errors.New("builder: structure already begun")

	// ErrNoStructure indicates an event arrived before BeginStructure.
	ErrNoStructure = errors.New("builder: no structure begun")

	// ErrNoChain indicates a residue event arrived with no open chain.
	ErrNoChain = errors.New("builder: no chain begun")

	// ErrFinished indicates an event arrived after EndStructure.
	ErrFinished = errors.New("builder: structure already finished")

	// ErrNotFinished indicates the structure was requested before the
	// stream signaled completion.
	ErrNotFinished = errors.New("builder: structure not finished")

	// ErrStrict wraps a recoverable defect promoted to an error by
	// Options.Strict.
	ErrStrict = errors.New("builder: defect rejected in strict mode")
)

// ConstructionError reports a fatal defect: a duplicate residue record
// with a different name at an occupied key whose existing atoms are not
// all non-blank-altloc, so no disordered residue group can be formed.
// The offending residue's construction is aborted; the chain keeps the
// original node and subsequent atom records for the slot are dropped.
type ConstructionError struct {
	ID      entity.ResID
	ResName string
	Line    int
}

func (e *ConstructionError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("builder: blank altlocs in duplicate residue %s %s (line %d)",
			e.ResName, e.ID, e.Line)
	}
	return fmt.Sprintf("builder: blank altlocs in duplicate residue %s %s", e.ResName, e.ID)
}
