package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Char is one positioned text fragment on a page.
type Char struct {
	Text     string  // Text content of the fragment (often a single glyph).
	Size     float64 // Font size in points.
	FontName string  // Font name, e.g. "Helvetica-Bold".
	Top      float64 // Vertical position measured from the top of the page.
}

// Page exposes the positioned characters of a single page.
type Page interface {
	Chars() []Char
}

// Document is an ordered sequence of pages. Implementations own any
// underlying file handle; Close releases it.
type Document interface {
	NumPages() int
	Page(i int) Page // 0-based
	Close() error
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
	".txt":      true,
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Open returns a Document for the file at path, chosen by extension.
func Open(path string) (Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return openPDF(path)
	case ".md", ".markdown":
		return openMarkdown(path)
	case ".html", ".htm":
		return openHTML(path)
	case ".docx":
		return openDOCX(path)
	case ".txt":
		return openText(path)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// staticPage is an in-memory Page.
type staticPage struct {
	chars []Char
}

func (p *staticPage) Chars() []Char { return p.chars }

// staticDocument is an in-memory Document, used by the non-PDF adapters
// and by tests.
type staticDocument struct {
	pages []*staticPage
}

func (d *staticDocument) NumPages() int { return len(d.pages) }

func (d *staticDocument) Page(i int) Page {
	if i < 0 || i >= len(d.pages) {
		return nil
	}
	return d.pages[i]
}

func (d *staticDocument) Close() error { return nil }

// NewStaticDocument builds an in-memory Document from per-page character
// slices.
func NewStaticDocument(pages ...[]Char) Document {
	d := &staticDocument{}
	for _, chars := range pages {
		d.pages = append(d.pages, &staticPage{chars: chars})
	}
	return d
}
