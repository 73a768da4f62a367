package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is one asset folder and its image file names.
type Entry struct {
	Folder string
	Files  []string
}

// Manifest maps asset folder names to image file names. Keys keep insertion
// order, which is the sorted folder order when produced by Scanner.
type Manifest struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{index: make(map[string]int)}
}

// Set records files for folder. A folder already present keeps its position.
func (m *Manifest) Set(folder string, files []string) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if files == nil {
		files = []string{}
	}
	if i, ok := m.index[folder]; ok {
		m.entries[i].Files = files
		return
	}
	m.index[folder] = len(m.entries)
	m.entries = append(m.entries, Entry{Folder: folder, Files: files})
}

// Files returns the image names recorded for folder.
func (m *Manifest) Files(folder string) ([]string, bool) {
	i, ok := m.index[folder]
	if !ok {
		return nil, false
	}
	return m.entries[i].Files, true
}

// Folders returns the folder names in manifest order.
func (m *Manifest) Folders() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Folder
	}
	return out
}

// Entries returns the manifest contents in order.
func (m *Manifest) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len reports the number of asset folders.
func (m *Manifest) Len() int {
	return len(m.entries)
}

// FileCount reports the total number of image files across all folders.
func (m *Manifest) FileCount() int {
	total := 0
	for _, e := range m.entries {
		total += len(e.Files)
	}
	return total
}

// MarshalJSON encodes the manifest as a JSON object in insertion order.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(e.Folder); err != nil {
			return nil, fmt.Errorf("encode folder %q: %w", e.Folder, err)
		}
		buf.WriteByte(':')
		files := e.Files
		if files == nil {
			files = []string{}
		}
		if err := enc.Encode(files); err != nil {
			return nil, fmt.Errorf("encode files for %q: %w", e.Folder, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode renders the manifest with two-space indentation and no trailing
// newline. Output is byte-identical for identical manifests.
func (m *Manifest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
