package display

import (
	"fmt"
	"io"

	"github.com/backmassage/seqname/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, `  ___  ___  __ _ _ __   __ _ _ __ ___   ___
 / __|/ _ \/ _`+"`"+` | '_ \ / _`+"`"+` | '_ `+"`"+` _ \ / _ \
 \__ \  __/ (_| | | | | (_| | | | | | |  __/
 |___/\___|\__, |_| |_|\__,_|_| |_| |_|\___|
              |_|
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
