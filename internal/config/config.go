// Package config holds runtime configuration: defaults, CLI flag binding,
// interactive prompts, the optional YAML defaults file, and validation.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/seqname/internal/domain"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Format selects how the rename plan is reported.
type Format string

const (
	FormatPretty Format = "pretty" // "original -> new" lines (default).
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatDiff   Format = "diff" // Unified diff of the original and renamed listings.
)

// MaxNameLen is the longest filename, in bytes, that common filesystems
// accept. A padded sequence name plus its extension must fit in it.
const MaxNameLen = 255

// DefaultTimestampZone is the zone used to name output directories,
// independent of the host timezone. Only the config file can change it.
var DefaultTimestampZone = time.FixedZone("JST", 9*60*60)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// overlaid by the config file, CLI flags and prompts, and then frozen by
// [Config.Validate] before the pipeline runs.
type Config struct {
	// Paths.
	Dir    string // Source directory. Default: working directory (set by the entry point).
	OutDir string // Root for the timestamped output directory. Default: Dir.

	// Naming.
	Start       int    // Default: 1.
	Digit       int    // Default: 3. Minimum width, never truncates.
	Ext         string // Default: "jpg". Normalized to ".jpg" by Validate.
	NumericOnly bool   // Only select files whose stem is all digits.

	// Behavior.
	Test int // Count of --test; any value > 0 means dry run.

	// Output.
	Format        Format         // Default: "pretty".
	TimestampZone *time.Location // Default: DefaultTimestampZone.

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	NoInput    bool      // Never prompt for unsupplied options.
	ConfigFile string    // Optional YAML defaults file.
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Start:         1,
		Digit:         3,
		Ext:           "jpg",
		Format:        FormatPretty,
		TimestampZone: DefaultTimestampZone,
		ColorMode:     ColorAuto,
	}
}

// DryRun reports whether the plan should only be printed.
func (c *Config) DryRun() bool { return c.Test > 0 }

// NormalizeExt returns ext with exactly one leading dot. Surrounding spaces
// are trimmed. An empty or dot-only extension yields "".
func NormalizeExt(ext string) string {
	e := strings.TrimLeft(strings.TrimSpace(ext), ".")
	if e == "" {
		return ""
	}
	return "." + e
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks every option and normalizes Dir, OutDir and Ext. Dir and
// OutDir become absolute paths. All failures are KindConfiguration errors.
func (c *Config) Validate() error {
	dir := NormalizeDirArg(strings.TrimSpace(c.Dir))
	if dir == "" {
		return domain.ConfigError("dir", "source directory must not be empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return domain.ConfigError("dir", err.Error())
	}
	c.Dir = abs

	out := NormalizeDirArg(strings.TrimSpace(c.OutDir))
	if out == "" {
		c.OutDir = c.Dir
	} else if c.OutDir, err = filepath.Abs(out); err != nil {
		return domain.ConfigError("out", err.Error())
	}

	if c.Start < 0 {
		return domain.ConfigError("start", "must be >= 0")
	}
	if c.Digit < 0 {
		return domain.ConfigError("digit", "must be >= 0")
	}

	ext := NormalizeExt(c.Ext)
	if ext == "" {
		return domain.ConfigError("ext", "extension must not be empty")
	}
	if strings.ContainsAny(ext, `/\`) {
		return domain.ConfigError("ext", "extension must not contain path separators")
	}
	if len(ext) >= MaxNameLen {
		return domain.ConfigError("ext", fmt.Sprintf("must be shorter than %d bytes", MaxNameLen))
	}
	if c.Digit > MaxNameLen-len(ext) {
		return domain.ConfigError("digit", fmt.Sprintf("must be <= %d for extension %q", MaxNameLen-len(ext), ext))
	}
	c.Ext = ext

	switch c.Format {
	case FormatPretty, FormatJSON, FormatYAML, FormatDiff:
		// valid
	default:
		return domain.ConfigError("format", "use 'pretty', 'json', 'yaml' or 'diff'")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return domain.ConfigError("color", "use 'auto', 'always' or 'never'")
	}

	if c.TimestampZone == nil {
		c.TimestampZone = DefaultTimestampZone
	}
	return nil
}
