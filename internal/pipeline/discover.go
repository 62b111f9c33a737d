package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/seqname/internal/domain"
)

// Filter decides which directory entries are selected.
type Filter struct {
	Ext         string // Normalized target extension, e.g. ".jpg".
	NumericOnly bool   // Require the stem to be all ASCII digits.
}

// Match reports whether a bare filename passes the filter. The extension
// comparison is case-insensitive.
func (f Filter) Match(name string) bool {
	stem, ext := splitExt(name)
	if ext == "" || !strings.EqualFold(ext, f.Ext) {
		return false
	}
	if f.NumericOnly {
		return isAllDigits(stem)
	}
	return true
}

// Discover lists dir (non-recursively) and returns the names of regular
// files accepted by f, in directory order. Symlinks are followed to decide
// whether the target is a regular file. A missing or unreadable dir yields a
// KindFileSystemAccess error; a dir that is a file wraps
// [domain.ErrNotDirectory].
func Discover(dir string, f Filter) ([]string, error) {
	if fi, err := os.Stat(dir); err == nil && !fi.IsDir() {
		return nil, domain.FSError("pipeline.discover", dir, domain.ErrNotDirectory)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, domain.FSError("pipeline.discover", dir, err)
	}

	names := []string{}
	for _, e := range entries {
		if !f.Match(e.Name()) {
			continue
		}
		if !isRegular(dir, e) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func isRegular(dir string, e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && fi.Mode().IsRegular()
}

// splitExt splits name into stem and extension. Leading dots belong to the
// stem, so ".jpg" has no extension and ".hidden.jpg" has ".jpg".
func splitExt(name string) (stem, ext string) {
	trimmed := strings.TrimLeft(name, ".")
	ext = filepath.Ext(trimmed)
	return strings.TrimSuffix(name, ext), ext
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
