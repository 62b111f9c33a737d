// Package natsort orders strings the way people read them: embedded digit
// runs compare by numeric value, so "img2" sorts before "img10".
//
// A name is split into a [Key] of alternating text and digit runs. The key
// always starts with a text run (possibly empty), so runs at the same index
// are always the same kind and comparison never mixes numbers with text.
package natsort

import (
	"sort"
	"strings"
)

// Run is one segment of a [Key]: either a text run or a digit run.
type Run struct {
	Text    string // Lowercased text; empty for digit runs.
	Digits  string // Digit run with leading zeros stripped ("" means zero).
	Width   int    // Original digit run length, leading zeros included.
	Numeric bool
}

// Key is the comparable form of a name.
type Key []Run

// KeyOf splits s into alternating text and digit runs. Only ASCII digits
// start a numeric run; other Unicode digits are treated as text.
func KeyOf(s string) Key {
	key := Key{}
	var text strings.Builder
	i := 0
	for i < len(s) {
		if !isDigit(s[i]) {
			text.WriteByte(s[i])
			i++
			continue
		}
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		key = append(key, Run{Text: strings.ToLower(text.String())})
		text.Reset()
		raw := s[start:i]
		key = append(key, Run{
			Digits:  strings.TrimLeft(raw, "0"),
			Width:   len(raw),
			Numeric: true,
		})
	}
	if text.Len() > 0 || len(key) == 0 {
		key = append(key, Run{Text: strings.ToLower(text.String())})
	}
	return key
}

// Compare returns -1, 0 or +1 ordering k before, equal to, or after o.
// A key that is a prefix of another sorts first.
func (k Key) Compare(o Key) int {
	for i := 0; i < len(k) && i < len(o); i++ {
		if c := compareRun(k[i], o[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(k) < len(o):
		return -1
	case len(k) > len(o):
		return 1
	}
	return 0
}

// Compare orders a and b naturally. Names that are equal under natural
// ordering fall back to plain byte order so the result is a total order.
func Compare(a, b string) int {
	if c := KeyOf(a).Compare(KeyOf(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Less reports whether a sorts before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort sorts names in place in natural order. Keys are computed once per
// name. Identical names keep their input order.
func Sort(names []string) {
	keys := make([]Key, len(names))
	for i, n := range names {
		keys[i] = KeyOf(n)
	}
	sort.Stable(byKey{names: names, keys: keys})
}

type byKey struct {
	names []string
	keys  []Key
}

func (b byKey) Len() int { return len(b.names) }

func (b byKey) Less(i, j int) bool {
	if c := b.keys[i].Compare(b.keys[j]); c != 0 {
		return c < 0
	}
	return b.names[i] < b.names[j]
}

func (b byKey) Swap(i, j int) {
	b.names[i], b.names[j] = b.names[j], b.names[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}

func compareRun(a, b Run) int {
	if !a.Numeric {
		return strings.Compare(a.Text, b.Text)
	}
	// Arbitrary-length digit strings: longer (after zero stripping) is larger.
	if len(a.Digits) != len(b.Digits) {
		if len(a.Digits) < len(b.Digits) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.Digits, b.Digits); c != 0 {
		return c
	}
	// Same value: fewer leading zeros first ("1" before "01").
	switch {
	case a.Width < b.Width:
		return -1
	case a.Width > b.Width:
		return 1
	}
	return 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
