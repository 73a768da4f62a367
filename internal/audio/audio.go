package audio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"assetmanifest/internal/fileutil"
)

// DefaultExtensions lists the audio extensions accepted when none are configured.
var DefaultExtensions = []string{".mp3", ".m4a", ".wav"}

// DefaultURLPrefix is the public URL root for audio files.
const DefaultURLPrefix = "/audio"

// Section binds a manifest key to a directory below the audio root.
type Section struct {
	Key string
	Dir string
}

// Track is one playable file.
type Track struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type sectionTracks struct {
	key    string
	tracks []Track
}

// Manifest maps section keys to tracks in configured section order.
type Manifest struct {
	sections []sectionTracks
}

// Tracks returns the tracks recorded for key.
func (m *Manifest) Tracks(key string) ([]Track, bool) {
	for _, s := range m.sections {
		if s.key == key {
			return s.tracks, true
		}
	}
	return nil, false
}

// Keys returns section keys in manifest order.
func (m *Manifest) Keys() []string {
	keys := make([]string, len(m.sections))
	for i, s := range m.sections {
		keys[i] = s.key
	}
	return keys
}

// TrackCount reports the total number of tracks.
func (m *Manifest) TrackCount() int {
	total := 0
	for _, s := range m.sections {
		total += len(s.tracks)
	}
	return total
}

// MarshalJSON encodes the manifest as an object keyed by section.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, s := range m.sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(s.key); err != nil {
			return nil, fmt.Errorf("encode section %q: %w", s.key, err)
		}
		buf.WriteByte(':')
		tracks := s.tracks
		if tracks == nil {
			tracks = []Track{}
		}
		if err := enc.Encode(tracks); err != nil {
			return nil, fmt.Errorf("encode tracks for %q: %w", s.key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode renders the manifest with two-space indentation and no trailing newline.
func (m *Manifest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode audio manifest: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Option customizes a Builder.
type Option func(*Builder)

// WithExtensions replaces the accepted audio extensions. Matching is case-sensitive.
func WithExtensions(exts ...string) Option {
	return func(b *Builder) {
		if len(exts) > 0 {
			b.extensions = append([]string(nil), exts...)
		}
	}
}

// WithURLPrefix sets the URL root used for track paths.
func WithURLPrefix(prefix string) Option {
	return func(b *Builder) {
		if prefix = strings.TrimRight(prefix, "/"); prefix != "" {
			b.urlPrefix = prefix
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Builder lists audio sections and writes the audio manifest.
type Builder struct {
	fs         billy.Filesystem
	extensions []string
	urlPrefix  string
	logger     *slog.Logger
	collator   *collate.Collator
}

// NewBuilder returns a Builder reading from fsys. A nil fsys uses the host filesystem.
func NewBuilder(fsys billy.Filesystem, opts ...Option) *Builder {
	if fsys == nil {
		fsys = osfs.New("")
	}
	b := &Builder{
		fs:         fsys,
		extensions: append([]string(nil), DefaultExtensions...),
		urlPrefix:  DefaultURLPrefix,
		logger:     slog.New(slog.DiscardHandler),
		collator:   collate.New(language.Und, collate.Loose, collate.Numeric),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Scan lists every section below root. Missing section directories yield
// empty track lists.
func (b *Builder) Scan(root string, sections []Section) (*Manifest, error) {
	m := &Manifest{sections: make([]sectionTracks, 0, len(sections))}
	for _, section := range sections {
		tracks, err := b.tracks(root, section)
		if err != nil {
			return nil, err
		}
		m.sections = append(m.sections, sectionTracks{key: section.Key, tracks: tracks})
	}
	return m, nil
}

func (b *Builder) tracks(root string, section Section) ([]Track, error) {
	dir := b.fs.Join(root, section.Dir)
	entries, err := b.fs.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.logger.Debug("audio section directory missing", slog.String("section", section.Key), slog.String("dir", dir))
			return []Track{}, nil
		}
		return nil, fmt.Errorf("read audio section %s: %w", section.Key, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !b.hasAudioExtension(name) {
			continue
		}
		names = append(names, name)
	}
	b.sort(names)

	tracks := make([]Track, 0, len(names))
	for _, name := range names {
		tracks = append(tracks, Track{
			Name: name,
			Path: path.Join(b.urlPrefix, section.Dir) + "/" + escapeComponent(name),
		})
	}
	return tracks, nil
}

// sort orders names by collation and falls back to byte order for names the
// collator treats as equal.
func (b *Builder) sort(names []string) {
	slices.SortFunc(names, func(x, y string) int {
		if c := b.collator.CompareString(x, y); c != 0 {
			return c
		}
		return strings.Compare(x, y)
	})
}

// escapeComponent percent-encodes name the way browsers encode a URI
// component: ASCII letters, digits and -_.!~*'() pass through, every other
// UTF-8 byte is escaped.
func escapeComponent(name string) string {
	const hex = "0123456789ABCDEF"
	var sb strings.Builder
	sb.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if unreservedComponent(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hex[c>>4])
		sb.WriteByte(hex[c&0x0f])
	}
	return sb.String()
}

func unreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

func (b *Builder) hasAudioExtension(name string) bool {
	for _, ext := range b.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Result describes one completed audio build.
type Result struct {
	Path     string
	Manifest *Manifest
	JSON     []byte
}

// Build scans root and overwrites output, creating its directory when needed.
func (b *Builder) Build(root string, sections []Section, output string) (*Result, error) {
	m, err := b.Scan(root, sections)
	if err != nil {
		return nil, err
	}
	data, err := m.Encode()
	if err != nil {
		return nil, err
	}
	if err := fileutil.EnsureParentDir(b.fs, output); err != nil {
		return nil, err
	}
	if err := fileutil.WriteFile(b.fs, output, data, 0o644); err != nil {
		return nil, fmt.Errorf("write audio manifest %s: %w", output, err)
	}
	b.logger.Info("audio manifest written",
		slog.String("path", output),
		slog.Int("sections", len(m.sections)),
		slog.Int("tracks", m.TrackCount()),
	)
	return &Result{Path: output, Manifest: m, JSON: data}, nil
}

// Report prints the confirmation line for an audio build.
func Report(w io.Writer, res *Result) error {
	_, err := fmt.Fprintf(w, "Audio manifest generated at %s\n", res.Path)
	return err
}
