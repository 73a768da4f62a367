// Package fileutil holds small file helpers shared by the manifest builders.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
)

// WriteFile replaces path with data. The file is truncated in place rather than
// renamed over, so a failed write can leave a partial file behind.
func WriteFile(fsys billy.Filesystem, path string, data []byte, mode os.FileMode) error {
	out, err := fsys.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	return out.Close()
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(fsys billy.Filesystem, path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}

// CopyFile streams src to dst with default permissions (0o644), creating the
// destination directory when needed.
func CopyFile(fsys billy.Filesystem, src, dst string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := EnsureParentDir(fsys, dst); err != nil {
		return err
	}
	out, err := fsys.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
