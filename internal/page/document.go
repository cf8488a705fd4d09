// Package page holds the HTML document the renderers write into.
package page

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed HTML page safe for concurrent edits. It tracks whether
// anything changed since the last flush.
type Document struct {
	mu    sync.Mutex
	doc   *goquery.Document
	dirty bool
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Load parses the HTML file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page template: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// edit runs fn with the document locked. fn reports whether it changed
// anything.
func (d *Document) edit(fn func(doc *goquery.Document) bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if fn(d.doc) {
		d.dirty = true
	}
}

// read runs fn with the document locked.
func (d *Document) read(fn func(doc *goquery.Document)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.doc)
}

// Dirty reports whether the document changed since the last successful flush.
func (d *Document) Dirty() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dirty
}

// Render writes the serialized document to w.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.render(w)
}

func (d *Document) render(w io.Writer) error {
	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("render page: %w", err)
		}
	}
	return nil
}

// HTML returns the serialized document.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteFile atomically replaces path with the serialized document and clears
// the dirty flag.
func (d *Document) WriteFile(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var buf bytes.Buffer
	if err := d.render(&buf); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace page: %w", err)
	}
	d.dirty = false
	return nil
}

// FlushIfDirty writes the document only when it changed.
func (d *Document) FlushIfDirty(path string) (bool, error) {
	if !d.Dirty() {
		return false, nil
	}
	if err := d.WriteFile(path); err != nil {
		return false, err
	}
	return true, nil
}
