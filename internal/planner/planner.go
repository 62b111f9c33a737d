package planner

import (
	"github.com/backmassage/seqname/internal/naming"
	"github.com/backmassage/seqname/internal/natsort"
)

// BuildPlan sorts names naturally and assigns sequential names starting at
// start. ext must already be normalized (leading dot). The input slice is
// not modified.
//
// start+len(names)-1 must fit in an int; pipeline.Run rejects larger
// starts before planning.
//
// When digit is too small for the last number the name simply grows past
// digit characters; see [naming.SequenceName].
func BuildPlan(names []string, start, digit int, ext string) *RenamePlan {
	sorted := make([]string, len(names))
	copy(sorted, names)
	natsort.Sort(sorted)

	plan := &RenamePlan{
		Entries: make([]FileEntry, 0, len(sorted)),
		Start:   start,
		Digit:   digit,
		Ext:     ext,
	}
	for i, name := range sorted {
		plan.Entries = append(plan.Entries, FileEntry{
			Original: name,
			NewName:  naming.SequenceName(start+i, digit, ext),
		})
	}
	return plan
}

// Overflows reports whether any assigned number needs more than Digit
// characters.
func (p *RenamePlan) Overflows() bool {
	if len(p.Entries) == 0 {
		return false
	}
	return len(naming.SequenceName(p.Last(), 0, "")) > p.Digit
}
