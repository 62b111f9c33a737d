package pipeline

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"time"
)

// errSourceMissing marks a source that no longer exists.
var errSourceMissing = errors.New("source file missing")

// copyFile copies src to dst, carrying over the permission bits and the
// modification time. dst is created or truncated. It returns the number of
// bytes written, or errSourceMissing when src does not exist.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, errSourceMissing
		}
		return 0, err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		os.Remove(dst)
		return n, err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return n, err
	}

	// Zero atime leaves the access time unchanged.
	if err := os.Chtimes(dst, time.Time{}, info.ModTime()); err != nil {
		return n, err
	}
	return n, nil
}
