package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	difflib "github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/seqname/internal/config"
	"github.com/backmassage/seqname/internal/term"
)

// Mapping is one report row: an original name, its planned name, and what
// happened to it ("planned", "copied", "skipped-missing").
type Mapping struct {
	Original string `json:"original" yaml:"original"`
	New      string `json:"new" yaml:"new"`
	Outcome  string `json:"outcome" yaml:"outcome"`
}

// Report is the structured form of a run, used by the json and yaml formats.
type Report struct {
	Dir       string    `json:"dir" yaml:"dir"`
	OutputDir string    `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	DryRun    bool      `json:"dry_run" yaml:"dry_run"`
	Entries   []Mapping `json:"entries" yaml:"entries"`
}

var (
	originalStyle = lipgloss.NewStyle()
	arrowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	newStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	skippedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// WriteReport renders r in the given format.
func WriteReport(w io.Writer, r Report, format config.Format) error {
	switch format {
	case config.FormatPretty, "":
		WriteMapping(w, r.Entries)
		return nil
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatDiff:
		return WriteDiff(w, r)
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|yaml|diff)", format)
	}
}

// WriteMapping prints one "original -> new" line per entry, in order.
// Names are styled only when terminal colors are enabled.
func WriteMapping(w io.Writer, entries []Mapping) {
	styled := term.Enabled()
	for _, m := range entries {
		if !styled {
			fmt.Fprintf(w, "%s -> %s\n", m.Original, m.New)
			continue
		}
		target := newStyle.Render(m.New)
		if m.Outcome == "skipped-missing" {
			target = skippedStyle.Render(m.New + " (missing)")
		}
		fmt.Fprintf(w, "%s %s %s\n", originalStyle.Render(m.Original), arrowStyle.Render("->"), target)
	}
}

// WriteDiff prints a unified diff from the original listing to the renamed
// listing. Names are one per line, in plan order.
func WriteDiff(w io.Writer, r Report) error {
	if len(r.Entries) == 0 {
		return nil
	}
	before := make([]string, 0, len(r.Entries))
	after := make([]string, 0, len(r.Entries))
	for _, m := range r.Entries {
		before = append(before, m.Original+"\n")
		after = append(after, m.New+"\n")
	}

	to := r.OutputDir
	if to == "" {
		to = r.Dir + " (renamed)"
	}
	s, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        before,
		B:        after,
		FromFile: r.Dir,
		ToFile:   to,
		Context:  len(r.Entries),
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, strings.TrimRight(s, "\n")+"\n")
	return err
}
