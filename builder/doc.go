// Package builder assembles a structure hierarchy incrementally from an
// ordered stream of record events, resolving duplicate and disorder
// defects online as each record arrives.
//
// # Overview
//
// A record-stream collaborator (a file parser, a test fixture, a replay
// of stream.Records) drives one Builder through the event sequence
//
//	BeginStructure -> BeginModel -> BeginChain -> BeginResidue ->
//	AddAtom ... -> EndChain -> EndModel -> EndStructure
//
// in strict file order. The builder mutates a single hierarchy in place
// with no lookahead: for every incoming residue or atom it decides
// whether the record is new, a duplicate, or a disordered variant of
// something already present, and restructures the tree accordingly.
//
// Defect categories and their resolution:
//
//   - Point mutation: a residue key re-declared with a different name.
//     The existing residue is absorbed into a DisorderedResidue group
//     together with the new variant, provided every atom of the existing
//     residue carries a non-blank altloc tag. Otherwise the input is
//     malformed and construction of that residue aborts.
//   - Duplicate heteroatom group: a sequence number reused by a second
//     heteroatom group without a distinguishing flag. Found via the
//     chain's bare-sequence lookup and resolved like a point mutation.
//   - Disordered atom: repeated atom records differing only in altloc
//     tag collect into a DisorderedAtom group. When the first occurrence
//     arrived with a blank tag, the group is formed post hoc and the
//     defect is recorded.
//   - Whitespace collision: atom names identical after trimming are
//     disambiguated by re-keying on the space-padded full spelling.
//
// Every recoverable defect is recorded in a diag.Report attached to the
// builder; nothing is silently swallowed. Fatal defects are recorded and
// returned as a *ConstructionError, after which atom records for the
// aborted residue are dropped.
//
// # Basic Usage
//
//	b := builder.New(nil)
//	b.BeginStructure("1abc")
//	b.BeginModel(0)
//	b.BeginChain("A")
//	b.BeginResidue("ALA", "", 1, 0)
//	b.AddAtom(builder.AtomRecord{Name: "CA", FullName: " CA ", ...})
//	b.EndChain()
//	b.EndModel()
//	if err := b.EndStructure(); err != nil {
//	    return err
//	}
//	st, report, err := b.Result()
//
// # Thread Safety
//
// Builder instances are NOT thread-safe and not reentrant: one builder
// builds exactly one structure. Independent structures can be built
// concurrently by separate builders with no shared state.
//
// Downstream readers must not observe the structure before EndStructure
// has returned: until the finishing pass has run for every chain,
// disorder slots may hold unresolved provisional selections.
package builder
