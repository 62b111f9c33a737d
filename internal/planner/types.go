package planner

// FileEntry pairs an original filename (no directory component) with the
// sequential name assigned to it. NewName is empty until planned.
type FileEntry struct {
	Original string `json:"original" yaml:"original"`
	NewName  string `json:"new" yaml:"new"`
}

// RenamePlan is the ordered result of planning. Entries follow the natural
// order of Original; their new names carry the numbers Start, Start+1, ...
// padded to Digit characters and suffixed with Ext.
type RenamePlan struct {
	Entries []FileEntry
	Start   int
	Digit   int
	Ext     string
}

// Len returns the number of planned entries.
func (p *RenamePlan) Len() int { return len(p.Entries) }

// Last returns the highest sequence number in the plan, or Start-1 when the
// plan is empty.
func (p *RenamePlan) Last() int { return p.Start + len(p.Entries) - 1 }
