package media

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Manifest writes the concat list, one clip per line in slide order.
// It stays open for the whole run and must be closed on every exit path.
type Manifest struct {
	path    string
	file    *os.File
	writer  *bufio.Writer
	entries []string
}

// CreateManifest creates or truncates the list file at path
func CreateManifest(path string) (*Manifest, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create manifest: %w", err)
	}
	return &Manifest{
		path:   path,
		file:   f,
		writer: bufio.NewWriter(f),
	}, nil
}

// Append records a clip. Paths are made absolute so the list does not depend on its own location.
func (m *Manifest) Append(clipPath string) error {
	abs, err := filepath.Abs(clipPath)
	if err != nil {
		return fmt.Errorf("resolve clip path: %w", err)
	}
	if _, err := fmt.Fprintf(m.writer, "file '%s'\n", escapeQuotes(abs)); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	m.entries = append(m.entries, abs)
	return nil
}

// Flush pushes buffered lines to disk so ffmpeg can read the list
func (m *Manifest) Flush() error {
	if err := m.writer.Flush(); err != nil {
		return fmt.Errorf("flush manifest: %w", err)
	}
	return nil
}

// Close flushes and closes the file, it is safe to call more than once
func (m *Manifest) Close() error {
	if m.file == nil {
		return nil
	}
	flushErr := m.writer.Flush()
	closeErr := m.file.Close()
	m.file = nil
	if flushErr != nil {
		return fmt.Errorf("flush manifest: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close manifest: %w", closeErr)
	}
	return nil
}

func (m *Manifest) Path() string {
	return m.path
}

// Entries returns the absolute clip paths in the order they were appended
func (m *Manifest) Entries() []string {
	return append([]string(nil), m.entries...)
}

// escapeQuotes follows the concat demuxer quoting rule: ' becomes '\''
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}
