package source

import (
	"fmt"
	"os"

	pdflib "github.com/ledongthuc/pdf"
)

// defaultPageHeight is US Letter, used when a page has no usable MediaBox.
const defaultPageHeight = 792.0

// pdfDocument adapts a ledongthuc/pdf reader to the Document interface.
// Content-stream parsing stays entirely inside the library; this adapter
// only reshapes its positioned text runs into Chars.
type pdfDocument struct {
	f *os.File
	r *pdflib.Reader
}

func openPDF(path string) (Document, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &pdfDocument{f: f, r: r}, nil
}

func (d *pdfDocument) NumPages() int { return d.r.NumPage() }

func (d *pdfDocument) Page(i int) Page {
	return &pdfPage{r: d.r, num: i + 1} // reader pages are 1-based
}

func (d *pdfDocument) Close() error { return d.f.Close() }

type pdfPage struct {
	r   *pdflib.Reader
	num int
}

func (p *pdfPage) Chars() []Char {
	page := p.r.Page(p.num)
	if page.V.IsNull() {
		return nil
	}

	// The library reports Y from the bottom of the page; headings logic
	// wants a top-down coordinate so same-baseline runs share a key.
	height := pageHeight(page)

	content := page.Content()
	chars := make([]Char, 0, len(content.Text))
	for _, t := range content.Text {
		chars = append(chars, Char{
			Text:     t.S,
			Size:     t.FontSize,
			FontName: t.Font,
			Top:      height - t.Y,
		})
	}
	return chars
}

func pageHeight(page pdflib.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.Kind() == pdflib.Array && box.Len() == 4 {
		if h := box.Index(3).Float64() - box.Index(1).Float64(); h > 0 {
			return h
		}
	}
	return defaultPageHeight
}
