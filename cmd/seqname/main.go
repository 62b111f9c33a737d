// Command seqname copies the files of one directory into a new timestamped
// subdirectory under zero-padded sequential names (001.jpg, 002.jpg, ...),
// in natural order of the original names. Originals are never modified.
package main

import (
	"os"
	"path/filepath"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	cmd := newRootCmd(rootDeps{
		WorkDir: wd,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	})
	if err := cmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		return 1
	}
	return 0
}
