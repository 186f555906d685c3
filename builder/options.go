package builder

// Options configures a Builder's behavior.
type Options struct {
	// Strict promotes recoverable defects (discontinuous chains,
	// duplicate declarations, whitespace collisions, late disorder) to
	// errors returned by the triggering event. The defect is still
	// recorded in the report and the hierarchy is left in the same
	// consistent state as in lenient mode, so a caller may choose to
	// keep feeding events after a strict failure.
	// Default: false
	Strict bool

	// SegID seeds the segment identifier applied to residues created
	// before the first BeginSeg event.
	// Default: ""
	SegID string
}

// DefaultOptions returns the recommended options for general-purpose
// construction: lenient, with every defect recorded in the report.
func DefaultOptions() *Options {
	return &Options{}
}
