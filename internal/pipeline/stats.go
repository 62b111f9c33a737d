package pipeline

// Outcome tags what happened to one plan entry.
type Outcome int

const (
	OutcomePlanned        Outcome = iota // Dry run: nothing written.
	OutcomeCopied                        // Copied to its new name.
	OutcomeSkippedMissing                // Original vanished after the scan.
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlanned:
		return "planned"
	case OutcomeCopied:
		return "copied"
	case OutcomeSkippedMissing:
		return "skipped-missing"
	default:
		return "unknown"
	}
}

// RunStats tracks aggregate counters and byte totals across a run.
type RunStats struct {
	Total       int
	Copied      int
	Skipped     int
	BytesCopied int64
}
