package manifest

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"assetmanifest/internal/fileutil"
)

// DefaultName is the manifest file written inside the base directory.
const DefaultName = "manifest.json"

// Result describes one completed build.
type Result struct {
	Path     string
	Manifest *Manifest
	JSON     []byte
}

// Builder scans a base directory and writes its manifest.
type Builder struct {
	fs      billy.Filesystem
	scanner *Scanner
	name    string
	logger  *slog.Logger
}

// NewBuilder returns a Builder writing name (DefaultName when empty) through fsys.
func NewBuilder(fsys billy.Filesystem, name string, opts ...Option) *Builder {
	if fsys == nil {
		fsys = osfs.New("")
	}
	if name == "" {
		name = DefaultName
	}
	scanner := NewScanner(fsys, opts...)
	return &Builder{
		fs:      fsys,
		scanner: scanner,
		name:    name,
		logger:  scanner.logger,
	}
}

// Build scans baseDir and overwrites <baseDir>/<name> with the indented manifest.
func (b *Builder) Build(baseDir string) (*Result, error) {
	m, err := b.scanner.Scan(baseDir)
	if err != nil {
		return nil, err
	}
	data, err := m.Encode()
	if err != nil {
		return nil, err
	}

	path := b.fs.Join(baseDir, b.name)
	if err := fileutil.WriteFile(b.fs, path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write manifest %s: %w", path, err)
	}
	b.logger.Info("image manifest written",
		slog.String("path", path),
		slog.Int("folders", m.Len()),
		slog.Int("files", m.FileCount()),
	)
	return &Result{Path: path, Manifest: m, JSON: data}, nil
}

// Report prints the confirmation line followed by the manifest JSON.
func Report(w io.Writer, res *Result) error {
	if _, err := fmt.Fprintf(w, "Manifest generated at %s\n", res.Path); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n", res.JSON)
	return err
}
