// Package source loads Markdown documents from files or stdin.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// StdinName is the path used for a document read from stdin
const StdinName = "-"

// Document is a loaded Markdown document
type Document struct {
	Path string // Source path, StdinName for stdin
	Text string // Document text
}

// Name returns a display name for the document
func (d *Document) Name() string {
	if d.Path == StdinName {
		return "stdin"
	}
	return filepath.Base(d.Path)
}

// HTMLPath returns the path of the .html file next to the source, or "" for stdin
func (d *Document) HTMLPath() string {
	if d.Path == StdinName {
		return ""
	}
	return strings.TrimSuffix(d.Path, filepath.Ext(d.Path)) + ".html"
}

// Loader reads documents
type Loader struct {
	stdin     io.Reader
	normalize bool
}

// NewLoader creates a loader reading stdin from os.Stdin
func NewLoader() *Loader {
	return &Loader{stdin: os.Stdin}
}

// WithStdin sets the reader used for stdin (useful for testing)
func (l *Loader) WithStdin(r io.Reader) *Loader {
	l.stdin = r
	return l
}

// WithNormalize enables NFC normalization of loaded text
func (l *Loader) WithNormalize(normalize bool) *Loader {
	l.normalize = normalize
	return l
}

// Load reads a single document. An empty path or "-" reads stdin.
func (l *Loader) Load(path string) (*Document, error) {
	if path == "" || path == StdinName {
		return l.read(StdinName, l.stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return l.read(path, file)
}

// LoadAll reads every path in order, or stdin when paths is empty
func (l *Loader) LoadAll(paths []string) ([]*Document, error) {
	if len(paths) == 0 {
		paths = []string{StdinName}
	}
	docs := make([]*Document, 0, len(paths))
	for _, path := range paths {
		doc, err := l.Load(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (l *Loader) read(path string, r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	text := string(data)
	if l.normalize {
		text = norm.NFC.String(text)
	}
	return &Document{Path: path, Text: text}, nil
}
