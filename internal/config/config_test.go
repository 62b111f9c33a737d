package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/seqname/internal/domain"
)

func validCfg() Config {
	cfg := DefaultConfig()
	cfg.Dir = "/photos"
	return cfg
}

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/photos/trip", "/photos/trip"},
		{"single trailing slash", "/photos/trip/", "/photos/trip"},
		{"multiple trailing slashes", "/photos/trip///", "/photos/trip"},
		{"root path", "/", "/"},
		{"relative path", "output", "output"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jpg", ".jpg"},
		{".jpg", ".jpg"},
		{"..jpg", ".jpg"},
		{" JPG ", ".JPG"},
		{"tar.gz", ".tar.gz"},
		{"", ""},
		{".", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeExt(tt.in))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"start zero is valid", func(c *Config) { c.Start = 0 }, false},
		{"digit zero is valid", func(c *Config) { c.Digit = 0 }, false},
		{"negative start", func(c *Config) { c.Start = -1 }, true},
		{"negative digit", func(c *Config) { c.Digit = -3 }, true},
		{"digit fills the name limit", func(c *Config) { c.Digit = MaxNameLen - len(".jpg") }, false},
		{"digit past the name limit", func(c *Config) { c.Digit = MaxNameLen - len(".jpg") + 1 }, true},
		{"digit beyond fmt width", func(c *Config) { c.Digit = 2000000 }, true},
		{"ext as long as the name limit", func(c *Config) { c.Ext = strings.Repeat("x", MaxNameLen) }, true},
		{"empty ext", func(c *Config) { c.Ext = "" }, true},
		{"dot-only ext", func(c *Config) { c.Ext = "." }, true},
		{"ext with separator", func(c *Config) { c.Ext = "a/b" }, true},
		{"empty dir", func(c *Config) { c.Dir = "  " }, true},
		{"unknown format", func(c *Config) { c.Format = "xml" }, true},
		{"unknown color", func(c *Config) { c.ColorMode = "sometimes" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validCfg()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindConfiguration), "got %v", err)
		})
	}
}

func TestValidate_Normalizes(t *testing.T) {
	cfg := validCfg()
	cfg.Dir = "/photos/"
	cfg.Ext = "png"
	cfg.TimestampZone = nil
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/photos", cfg.Dir)
	assert.Equal(t, "/photos", cfg.OutDir, "OutDir defaults to Dir")
	assert.Equal(t, ".png", cfg.Ext)
	assert.Equal(t, DefaultTimestampZone, cfg.TimestampZone)
}

func TestValidate_ResolvesRelativeDirs(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	cfg := validCfg()
	cfg.Dir = "."
	cfg.OutDir = "renamed/"
	require.NoError(t, cfg.Validate())

	assert.Equal(t, wd, cfg.Dir)
	assert.Equal(t, filepath.Join(wd, "renamed"), cfg.OutDir)
}

func TestValidate_DigitErrorNamesField(t *testing.T) {
	cfg := validCfg()
	cfg.Digit = 2000000
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "digit: must be <= 251")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Start)
	assert.Equal(t, 3, cfg.Digit)
	assert.Equal(t, "jpg", cfg.Ext)
	assert.False(t, cfg.DryRun())
	assert.Equal(t, FormatPretty, cfg.Format)
	assert.Equal(t, ColorAuto, cfg.ColorMode)

	_, offset := time.Date(2024, 5, 27, 0, 0, 0, 0, cfg.TimestampZone).Zone()
	assert.Equal(t, 9*60*60, offset)
}

func TestBindFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("seqname", pflag.ContinueOnError)
	f := BindFlags(fs, &cfg)

	err := fs.Parse([]string{"--dir", "/in", "--start", "10", "--digit", "2", "--ext", ".png",
		"-t", "--test", "--format", "json", "--no-color", "--numeric-only"})
	require.NoError(t, err)
	f.Apply(&cfg)

	assert.Equal(t, "/in", cfg.Dir)
	assert.Equal(t, 10, cfg.Start)
	assert.Equal(t, 2, cfg.Digit)
	assert.Equal(t, ".png", cfg.Ext)
	assert.Equal(t, 2, cfg.Test)
	assert.True(t, cfg.DryRun())
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.True(t, cfg.NumericOnly)
	assert.True(t, fs.Changed(FlagStart))
	assert.False(t, fs.Changed("log"))
}

func TestBindFlags_InvalidFormat(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("seqname", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	BindFlags(fs, &cfg)

	err := fs.Parse([]string{"--format", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestPrompter_Fill(t *testing.T) {
	cfg := validCfg()
	var out strings.Builder
	p := NewPrompter(strings.NewReader("/other\nabc\n7\n\npng\n"), &out)

	err := p.Fill(&cfg, func(string) bool { return false })
	require.NoError(t, err)

	assert.Equal(t, "/other", cfg.Dir)
	assert.Equal(t, 7, cfg.Start, "invalid integer is asked again")
	assert.Equal(t, 3, cfg.Digit, "empty answer keeps the default")
	assert.Equal(t, "png", cfg.Ext)
	assert.Contains(t, out.String(), "Directory [/photos]: ")
	assert.Contains(t, out.String(), `Error: "abc" is not a valid integer.`)
}

func TestPrompter_SkipsAndEOF(t *testing.T) {
	cfg := validCfg()
	var out strings.Builder
	p := NewPrompter(strings.NewReader(""), &out)

	err := p.Fill(&cfg, func(name string) bool { return name == FlagDir })
	require.NoError(t, err)

	assert.Equal(t, "/photos", cfg.Dir)
	assert.Equal(t, 1, cfg.Start)
	assert.Equal(t, 3, cfg.Digit)
	assert.Equal(t, "jpg", cfg.Ext)
	assert.NotContains(t, out.String(), "Directory")
	assert.Equal(t, 1, strings.Count(out.String(), "["), "input exhausted after the first prompt")
}

func TestLoadFile_AppliesUnchangedOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqname.yaml")
	content := "start: 5\ndigit: 4\next: png\nformat: yaml\ncolor: never\ntimestamp_utc_offset_hours: -5.5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)

	cfg := validCfg()
	cfg.Digit = 6
	applied, err := f.ApplyTo(&cfg, func(name string) bool { return name == FlagDigit })
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Start)
	assert.Equal(t, 6, cfg.Digit, "command-line value wins")
	assert.Equal(t, "png", cfg.Ext)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.True(t, applied[FlagStart])
	assert.False(t, applied[FlagDigit])

	name, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, cfg.TimestampZone).Zone()
	assert.Equal(t, -(5*3600 + 1800), offset)
	assert.Equal(t, "UTC-05:30", name)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindConfiguration))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("start: [unclosed"), 0o644))
	_, err = LoadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)

	outOfRange := 20.0
	f := &File{TimestampUTCOffsetHours: &outOfRange}
	cfg := validCfg()
	_, err = f.ApplyTo(&cfg, func(string) bool { return false })
	assert.True(t, domain.IsKind(err, domain.KindConfiguration))
}
