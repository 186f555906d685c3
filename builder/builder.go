package builder

import (
	"fmt"

	"github.com/Truman-Xu/crimm/diag"
	"github.com/Truman-Xu/crimm/entity"
)

// Builder assembles one structure from an ordered event stream. Its
// cursor state (current model, chain, residue, atom) is session state
// owned exclusively by the builder; it is never shared and never global.
type Builder struct {
	opts   *Options
	report *diag.Report
	line   int

	structure *entity.Structure
	model     *entity.Model
	chain     *entity.Chain

	// residue is the active residue slot for incoming atoms. Nil when
	// no residue is open or when the current residue's construction was
	// aborted, in which case atom events are dropped.
	residue entity.ResidueNode

	// atom is the most recently admitted atom.
	atom *entity.Atom

	segID string
	done  bool
}

// New creates a builder. A nil opts uses DefaultOptions().
func New(opts *Options) *Builder {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Builder{
		opts:   opts,
		report: diag.NewReport(),
		segID:  opts.SegID,
	}
}

// SetLine records the source line number of the records that follow, so
// diagnostics can point back into the feeding file. Optional.
func (b *Builder) SetLine(n int) { b.line = n }

// Report returns the accumulating diagnostics report. The report is
// owned by the builder and grows until EndStructure.
func (b *Builder) Report() *diag.Report { return b.report }

// BeginStructure starts the single structure this builder will build.
func (b *Builder) BeginStructure(id string) error {
	if b.done {
		return ErrFinished
	}
	if b.structure != nil {
		return ErrStructureBegun
	}
	b.structure = entity.NewStructure(id)
	return nil
}

// BeginModel opens a new model. Models nest directly under the
// structure; chains opened before any BeginModel land in an implicit
// model with serial 0.
func (b *Builder) BeginModel(serial int) error {
	if b.done {
		return ErrFinished
	}
	if b.structure == nil {
		return ErrNoStructure
	}
	m := entity.NewModel(serial)
	b.structure.Add(m)
	b.model = m
	b.chain = nil
	b.residue = nil
	b.atom = nil
	return nil
}

// BeginSeg flags a change of segment identifier for residues that follow.
func (b *Builder) BeginSeg(segID string) {
	b.segID = segID
}

// BeginChain opens the chain records that follow belong to. The event is
// idempotent: when the id already exists in the current model the
// existing chain is reused and a discontinuous-chain warning is
// recorded, rather than a second chain appearing under the same id.
func (b *Builder) BeginChain(id string) error {
	if b.done {
		return ErrFinished
	}
	if b.structure == nil {
		return ErrNoStructure
	}
	if b.model == nil {
		if err := b.BeginModel(0); err != nil {
			return err
		}
	}
	if existing, ok := b.model.Get(id); ok {
		b.chain = existing
		b.residue = nil
		return b.warn(diag.Diagnostic{
			Severity: diag.SevWarning,
			Category: diag.CatChain,
			Code:     diag.CodeDiscontinuousChain,
			Message:  fmt.Sprintf("chain %q is discontinuous", id),
			Line:     b.line,
		})
	}
	c := entity.NewChain(id)
	if err := b.model.Add(c); err != nil {
		return err
	}
	b.chain = c
	b.residue = nil
	return nil
}

// EndChain closes the current chain and runs the finishing pass over it,
// fixing a canonical default selection for every disordered residue
// group that was never explicitly chosen. Calling it with no open chain
// is a no-op.
func (b *Builder) EndChain() error {
	if b.done {
		return ErrFinished
	}
	if b.chain != nil {
		b.chain.Finish()
	}
	b.chain = nil
	b.residue = nil
	b.atom = nil
	return nil
}

// EndModel closes the current model. As a safety net for streams that
// never signal EndChain, the finishing pass runs over every chain in the
// model; the pass is idempotent.
func (b *Builder) EndModel() error {
	if b.done {
		return ErrFinished
	}
	if b.model != nil {
		for _, c := range b.model.Chains() {
			c.Finish()
		}
	}
	b.model = nil
	b.chain = nil
	b.residue = nil
	b.atom = nil
	return nil
}

// EndStructure signals the end of the stream. Every chain in every model
// gets its finishing pass (idempotent), and the builder is closed: no
// further events are accepted and the structure becomes observable.
func (b *Builder) EndStructure() error {
	if b.done {
		return ErrFinished
	}
	if b.structure == nil {
		return ErrNoStructure
	}
	for _, m := range b.structure.Models() {
		for _, c := range m.Chains() {
			c.Finish()
		}
	}
	b.model = nil
	b.chain = nil
	b.residue = nil
	b.atom = nil
	b.done = true
	return nil
}

// Structure returns the finished structure. It fails before EndStructure:
// intermediate states may hold unresolved disorder slots and must not be
// observed downstream.
func (b *Builder) Structure() (*entity.Structure, error) {
	if !b.done {
		return nil, ErrNotFinished
	}
	return b.structure, nil
}

// Result returns the finished structure together with its report.
func (b *Builder) Result() (*entity.Structure, *diag.Report, error) {
	st, err := b.Structure()
	if err != nil {
		return nil, nil, err
	}
	return st, b.report, nil
}

// warn records a recoverable diagnostic; in strict mode it is also
// returned as an error.
func (b *Builder) warn(d diag.Diagnostic) error {
	b.report.Add(d)
	if b.opts.Strict {
		return fmt.Errorf("%w: %s", ErrStrict, d.Message)
	}
	return nil
}
