package outline

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/pdfoutline/internal/source"
)

// Extractor runs the two-pass heading extraction over a document. It is
// stateless across documents; every call builds a fresh histogram and
// classifier, so extractions of independent documents may run in
// parallel. Pages and lines within one document are processed strictly
// in order — the running average and title detection depend on it.
type Extractor struct {
	log *slog.Logger
}

func NewExtractor(log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{log: log}
}

// ExtractFile opens the document at path and extracts its outline. Any
// failure to open or read the document — including panics from the
// underlying parser on malformed input — is logged and yields the empty
// result. Failures are terminal for this document only.
func (e *Extractor) ExtractFile(path string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("document parse panic", "file", path, "panic", r)
			res = EmptyResult()
		}
	}()

	doc, err := source.Open(path)
	if err != nil {
		e.log.Error("open document", "file", path, "error", err)
		return EmptyResult()
	}
	defer doc.Close()

	return e.Extract(doc)
}

// Extract runs extraction over an already-open document.
func (e *Extractor) Extract(doc source.Document) Result {
	stats := NewFontStats()
	cls := NewClassifier(stats)

	// First pass: seed the histogram with whole-document font statistics
	// so early-page thresholds are not starved.
	numPages := doc.NumPages()
	for i := 0; i < numPages; i++ {
		page := doc.Page(i)
		if page == nil {
			continue
		}
		for _, ch := range page.Chars() {
			stats.Observe(ch.Size)
		}
	}

	// Second pass: assemble lines and classify. The histogram carries
	// over from the first pass and keeps growing as lines are classified.
	res := EmptyResult()
	for i := 0; i < numPages; i++ {
		page := doc.Page(i)
		if page == nil {
			continue
		}
		lines := assembleLines(page.Chars(), i+1)
		for _, ln := range lines {
			text := strings.TrimSpace(ln.Text)
			if text == "" || utf8.RuneCountInString(text) > maxHeadingLen {
				continue
			}
			if !cls.IsHeading(text, ln.Size, ln.Font) {
				continue
			}
			level := cls.DetermineLevel(ln.Size)
			if res.Title == DefaultTitle && ln.Size >= cls.TitleThreshold() {
				res.Title = text
			}
			res.Outline = append(res.Outline, Heading{Text: text, Page: ln.Page, Level: level})
		}
		e.log.Debug("page processed", "page", i+1, "lines", len(lines), "headings", len(res.Outline))
	}

	return res
}
