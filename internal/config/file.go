package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/seqname/internal/domain"
)

// File is the YAML defaults file. Every field is optional; nil means "not
// set" so that only present keys override the built-in defaults.
//
//	dir: /photos/trip
//	start: 1
//	digit: 4
//	ext: .jpg
//	numeric_only: false
//	format: pretty
//	color: auto
//	timestamp_utc_offset_hours: 9
type File struct {
	Dir                     *string  `yaml:"dir"`
	Out                     *string  `yaml:"out"`
	Start                   *int     `yaml:"start"`
	Digit                   *int     `yaml:"digit"`
	Ext                     *string  `yaml:"ext"`
	NumericOnly             *bool    `yaml:"numeric_only"`
	Format                  *string  `yaml:"format"`
	Color                   *string  `yaml:"color"`
	TimestampUTCOffsetHours *float64 `yaml:"timestamp_utc_offset_hours"`
}

// LoadFile reads and parses a YAML defaults file.
func LoadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "config.load_file",
			Kind: domain.KindConfiguration,
			Path: path,
			Err:  err,
		}
	}

	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, &domain.OpError{
			Op:   "config.load_file",
			Kind: domain.KindConfiguration,
			Path: path,
			Err:  err,
		}
	}
	return &f, nil
}

// ApplyTo overlays the file's values onto cfg, skipping any option for which
// changed reports true (command-line values win). It returns the set of
// option names it applied, keyed by flag name.
func (f *File) ApplyTo(cfg *Config, changed func(name string) bool) (map[string]bool, error) {
	applied := map[string]bool{}
	set := func(name string, apply func()) {
		if changed(name) {
			return
		}
		apply()
		applied[name] = true
	}

	if f.Dir != nil {
		set(FlagDir, func() { cfg.Dir = *f.Dir })
	}
	if f.Out != nil {
		set("out", func() { cfg.OutDir = *f.Out })
	}
	if f.Start != nil {
		set(FlagStart, func() { cfg.Start = *f.Start })
	}
	if f.Digit != nil {
		set(FlagDigit, func() { cfg.Digit = *f.Digit })
	}
	if f.Ext != nil {
		set(FlagExt, func() { cfg.Ext = *f.Ext })
	}
	if f.NumericOnly != nil {
		set("numeric-only", func() { cfg.NumericOnly = *f.NumericOnly })
	}
	if f.Format != nil && !changed("format") {
		format, err := ParseFormat(*f.Format)
		if err != nil {
			return nil, domain.ConfigError("format", err.Error())
		}
		cfg.Format = format
		applied["format"] = true
	}
	if f.Color != nil && !changed("color") && !changed("no-color") {
		mode, err := ParseColorMode(*f.Color)
		if err != nil {
			return nil, domain.ConfigError("color", err.Error())
		}
		cfg.ColorMode = mode
		applied["color"] = true
	}
	if f.TimestampUTCOffsetHours != nil {
		zone, err := zoneForOffset(*f.TimestampUTCOffsetHours)
		if err != nil {
			return nil, err
		}
		cfg.TimestampZone = zone
		applied["timestamp_utc_offset_hours"] = true
	}
	return applied, nil
}

// zoneForOffset builds a fixed zone from an hour offset (fractions allowed,
// e.g. 5.5 for UTC+05:30).
func zoneForOffset(hours float64) (*time.Location, error) {
	if math.IsNaN(hours) || hours < -14 || hours > 14 {
		return nil, domain.ConfigError("timestamp_utc_offset_hours", "must be between -14 and 14")
	}
	secs := int(math.Round(hours * 3600))
	sign := '+'
	abs := secs
	if secs < 0 {
		sign = '-'
		abs = -secs
	}
	name := fmt.Sprintf("UTC%c%02d:%02d", sign, abs/3600, (abs%3600)/60)
	return time.FixedZone(name, secs), nil
}
