package display

import (
	"fmt"
	"io"

	"github.com/backmassage/seqname/internal/config"
)

// PrintConfig echoes the resolved configuration, one "key: value" line per
// option, followed by a blank line.
func PrintConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "dir: %s\n", cfg.Dir)
	if cfg.OutDir != cfg.Dir {
		fmt.Fprintf(w, "out: %s\n", cfg.OutDir)
	}
	fmt.Fprintf(w, "start: %d\n", cfg.Start)
	fmt.Fprintf(w, "digit: %d\n", cfg.Digit)
	fmt.Fprintf(w, "ext: %s\n", cfg.Ext)
	fmt.Fprintf(w, "test: %d\n", cfg.Test)
	if cfg.NumericOnly {
		fmt.Fprintln(w, "numeric-only: true")
	}
	fmt.Fprintln(w)
}
