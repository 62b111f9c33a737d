// Package term holds the ANSI color palette shared by the logger and the
// report writers.
//
// The palette lives in package-level strings that are empty while colors are
// off, so callers concatenate them unconditionally.
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/backmassage/seqname/internal/config"
)

// ANSI color codes. Empty when colors are disabled.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	NC      = "" // Reset sequence.
)

var palette = []struct {
	dst  *string
	code string
}{
	{&Red, "\033[1;91m"},
	{&Green, "\033[1;92m"},
	{&Yellow, "\033[1;93m"},
	{&Blue, "\033[1;94m"},
	{&Magenta, "\033[1;95m"},
	{&Cyan, "\033[1;96m"},
	{&NC, "\033[0m"},
}

// Configure turns the palette on or off for mode. [logging.NewLogger] calls
// it once per run.
func Configure(mode config.ColorMode) {
	on := wantColor(mode)
	for _, c := range palette {
		if on {
			*c.dst = c.code
		} else {
			*c.dst = ""
		}
	}
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// wantColor applies mode. Auto means stdout is a terminal, NO_COLOR
// (https://no-color.org) is unset and TERM is not "dumb".
func wantColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
