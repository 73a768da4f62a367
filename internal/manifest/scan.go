package manifest

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

var (
	// ErrNotDirectory reports a base directory path that exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrInvalidName reports a file or folder name that is not valid UTF-8 and
	// therefore cannot be written to the manifest without losing data.
	ErrInvalidName = errors.New("name is not valid UTF-8")
)

// DefaultExtensions lists the image extensions accepted when none are configured.
var DefaultExtensions = []string{".png", ".jpg", ".jpeg"}

// Option customizes a Scanner.
type Option func(*Scanner)

// WithExtensions replaces the accepted image extensions. Matching is case-insensitive.
func WithExtensions(exts ...string) Option {
	return func(s *Scanner) {
		if len(exts) == 0 {
			return
		}
		s.extensions = make([]string, 0, len(exts))
		for _, ext := range exts {
			s.extensions = append(s.extensions, strings.ToLower(ext))
		}
	}
}

// WithLogger attaches a logger for per-entry debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Scanner discovers asset folders and their image files.
type Scanner struct {
	fs         billy.Filesystem
	extensions []string
	logger     *slog.Logger
}

// NewScanner returns a Scanner reading from fsys. A nil fsys uses the host filesystem.
func NewScanner(fsys billy.Filesystem, opts ...Option) *Scanner {
	if fsys == nil {
		fsys = osfs.New("")
	}
	s := &Scanner{
		fs:         fsys,
		extensions: append([]string(nil), DefaultExtensions...),
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan builds the manifest for baseDir without writing anything.
func (s *Scanner) Scan(baseDir string) (*Manifest, error) {
	folders, err := s.Folders(baseDir)
	if err != nil {
		return nil, err
	}
	m := New()
	for _, folder := range folders {
		files, err := s.Files(baseDir, folder)
		if err != nil {
			return nil, err
		}
		m.Set(folder, files)
	}
	return m, nil
}

// Folders lists the asset folders directly under baseDir in byte-wise order.
func (s *Scanner) Folders(baseDir string) ([]string, error) {
	info, err := s.fs.Stat(baseDir)
	if err != nil {
		return nil, fmt.Errorf("stat base directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("base directory %s: %w", baseDir, ErrNotDirectory)
	}

	entries, err := s.fs.ReadDir(baseDir)
	if err != nil {
		return nil, fmt.Errorf("read base directory: %w", err)
	}

	folders := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !startsWithDigit(name) {
			continue
		}
		isDir, err := s.isDir(baseDir, entry)
		if err != nil {
			return nil, err
		}
		if !isDir {
			s.logger.Debug("skipping non-directory entry", slog.String("name", name))
			continue
		}
		if !utf8.ValidString(name) {
			return nil, fmt.Errorf("asset folder %q: %w", name, ErrInvalidName)
		}
		folders = append(folders, name)
	}
	sort.Strings(folders)
	return folders, nil
}

// Files lists the image files directly inside baseDir/folder in byte-wise order.
func (s *Scanner) Files(baseDir, folder string) ([]string, error) {
	dir := s.fs.Join(baseDir, folder)
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read asset folder %s: %w", folder, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if s.hasImageExtension(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	// Hidden files are dropped in their own pass after the extension filter.
	visible := files[:0]
	for _, name := range files {
		if strings.HasPrefix(name, ".") {
			s.logger.Debug("skipping hidden file", slog.String("folder", folder), slog.String("name", name))
			continue
		}
		if !utf8.ValidString(name) {
			return nil, fmt.Errorf("asset file %q in %s: %w", name, folder, ErrInvalidName)
		}
		visible = append(visible, name)
	}
	sort.Strings(visible)
	return visible, nil
}

func (s *Scanner) hasImageExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range s.extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// isDir follows symlinks so a linked folder counts as a directory.
func (s *Scanner) isDir(baseDir string, entry os.FileInfo) (bool, error) {
	if entry.Mode()&os.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}
	info, err := s.fs.Stat(s.fs.Join(baseDir, entry.Name()))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", entry.Name(), err)
	}
	return info.IsDir(), nil
}

func startsWithDigit(name string) bool {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return false
	}
	return unicode.IsDigit(r)
}
