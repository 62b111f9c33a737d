package naming

import (
	"fmt"
	"path/filepath"
	"time"
)

// TimestampLayout names output directories: date and time with one
// underscore between them, second resolution.
const TimestampLayout = "20060102_150405"

// SequenceName returns n left-padded with zeros to digit characters,
// followed by ext. A number wider than digit is kept whole, never truncated.
func SequenceName(n, digit int, ext string) string {
	return fmt.Sprintf("%0*d", digit, n) + ext
}

// OutputDir returns the timestamped directory under root for the instant
// now, expressed in zone. A nil zone means UTC.
func OutputDir(root string, now time.Time, zone *time.Location) string {
	if zone == nil {
		zone = time.UTC
	}
	return filepath.Join(root, now.In(zone).Format(TimestampLayout))
}
