package config

// This file binds CLI flags onto a Config. Flags are grouped into naming,
// output, and display. Negated flags (e.g. --no-color) are captured
// separately and applied after parsing so Config defaults hold unless set.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flag names that may be prompted for when absent from the command line.
const (
	FlagDir   = "dir"
	FlagStart = "start"
	FlagDigit = "digit"
	FlagExt   = "ext"
)

// PromptedFlags lists, in prompt order, the options requested interactively
// when not supplied.
var PromptedFlags = []string{FlagDir, FlagStart, FlagDigit, FlagExt}

// Flags holds flag values that are applied to Config after parsing.
type Flags struct {
	forceColor bool
	noColor    bool
}

// BindFlags registers every seqname flag on fs, writing directly into cfg.
// Call it after cfg holds its defaults so help text shows them.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{}
	defineNamingFlags(fs, cfg)
	defineOutputFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, f)
	return f
}

// defineNamingFlags registers --dir, --start, --digit, --ext, --numeric-only.
func defineNamingFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Dir, FlagDir, cfg.Dir, "Directory holding the files to renumber")
	fs.IntVar(&cfg.Start, FlagStart, cfg.Start, "First sequence number")
	fs.IntVar(&cfg.Digit, FlagDigit, cfg.Digit, "Zero-padding width of the sequence number")
	fs.StringVar(&cfg.Ext, FlagExt, cfg.Ext, "Target extension, with or without a leading dot")
	fs.BoolVar(&cfg.NumericOnly, "numeric-only", false, "Only select files whose name (without extension) is all digits")
}

// defineOutputFlags registers --test, --out, --format, --config.
func defineOutputFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.CountVarP(&cfg.Test, "test", "t", "Preview the renaming without copying any file (repeatable)")
	fs.StringVarP(&cfg.OutDir, "out", "o", "", "Root for the timestamped output directory (default: --dir)")
	fs.VarP(&formatValue{&cfg.Format}, "format", "f", "Report format: pretty | json | yaml | diff")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML file with default option values")
}

// defineDisplayFlags registers --color, --no-color, --verbose, --log, --no-input.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, f *Flags) {
	fs.BoolVar(&f.forceColor, "color", false, "Force colored output")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	fs.BoolVar(&cfg.NoInput, "no-input", false, "Never prompt; use defaults for options not given")
}

// Apply copies negated and override flag values into cfg.
func (f *Flags) Apply(cfg *Config) {
	if f.noColor {
		cfg.ColorMode = ColorNever
	} else if f.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// pflag.Value adapter so the Format enum can be used with fs.Var.

type formatValue struct{ p *Format }

func (v *formatValue) String() string { return string(*v.p) }
func (v *formatValue) Type() string   { return "format" }
func (v *formatValue) Set(s string) error {
	f, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*v.p = f
	return nil
}

// ParseFormat maps a user-supplied format name onto a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pretty", "":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "diff":
		return FormatDiff, nil
	default:
		return "", fmt.Errorf("invalid format %q (use 'pretty', 'json', 'yaml' or 'diff')", s)
	}
}

// ParseColorMode maps a user-supplied color name onto a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
}
