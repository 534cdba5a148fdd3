package outline

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dgallion1/pdfoutline/internal/source"
)

func newTestExtractor() *Extractor {
	return NewExtractor(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestExtractEmptyDocument(t *testing.T) {
	doc := source.NewStaticDocument()
	res := newTestExtractor().Extract(doc)

	if res.Title != DefaultTitle {
		t.Errorf("expected title %q, got %q", DefaultTitle, res.Title)
	}
	if res.Outline == nil {
		t.Fatal("expected non-nil outline")
	}
	if len(res.Outline) != 0 {
		t.Errorf("expected empty outline, got %d entries", len(res.Outline))
	}
}

func TestExtractZeroCharacterPages(t *testing.T) {
	doc := source.NewStaticDocument(nil, nil, nil)
	res := newTestExtractor().Extract(doc)
	if res.Title != DefaultTitle || len(res.Outline) != 0 {
		t.Fatalf("expected empty result, got title=%q outline=%d", res.Title, len(res.Outline))
	}
}

func TestExtractAnnualReportScenario(t *testing.T) {
	// One page: a 24pt bold banner, a 20pt bold section, and body text at
	// 10pt. Largest observed size is 24, so H1 >= 21.6 and H2 >= 19.2.
	chars := []source.Char{
		{Text: "ANNUAL REPORT", Size: 24, FontName: "Helvetica-Bold", Top: 40},
		{Text: "Introduction", Size: 20, FontName: "Helvetica-Bold", Top: 80},
		{Text: "This is body text explaining things in more than five plain lowercase words.", Size: 10, FontName: "Helvetica", Top: 120},
	}
	res := newTestExtractor().Extract(source.NewStaticDocument(chars))

	if res.Title != "ANNUAL REPORT" {
		t.Errorf("expected title %q, got %q", "ANNUAL REPORT", res.Title)
	}
	if len(res.Outline) != 2 {
		t.Fatalf("expected 2 headings, got %d: %+v", len(res.Outline), res.Outline)
	}
	if res.Outline[0].Text != "ANNUAL REPORT" || res.Outline[0].Level != LevelH1 || res.Outline[0].Page != 1 {
		t.Errorf("unexpected first heading: %+v", res.Outline[0])
	}
	if res.Outline[1].Text != "Introduction" || res.Outline[1].Level != LevelH2 || res.Outline[1].Page != 1 {
		t.Errorf("unexpected second heading: %+v", res.Outline[1])
	}
}

func TestExtractLevelRelativeToLargest(t *testing.T) {
	// With a 24pt banner present, a 16pt heading falls below 0.8*24 and
	// lands at H3.
	chars := []source.Char{
		{Text: "BIG BANNER", Size: 24, FontName: "Helvetica-Bold", Top: 40},
		{Text: "Introduction", Size: 16, FontName: "Helvetica-Bold", Top: 80},
	}
	res := newTestExtractor().Extract(source.NewStaticDocument(chars))

	if len(res.Outline) != 2 {
		t.Fatalf("expected 2 headings, got %d", len(res.Outline))
	}
	if res.Outline[1].Level != LevelH3 {
		t.Errorf("expected 16pt under a 24pt banner to be H3, got %s", res.Outline[1].Level)
	}
}

func TestExtractTitleFirstWins(t *testing.T) {
	// Both headings clear the 0.95*largest threshold; the first one seen
	// keeps the title even though a later heading is larger. The larger
	// heading sits on page 2 so the page-1 banner is classified first.
	page1 := []source.Char{
		{Text: "Executive Summary", Size: 23, FontName: "Helvetica-Bold", Top: 40},
	}
	page2 := []source.Char{
		{Text: "APPENDIX", Size: 24, FontName: "Helvetica-Bold", Top: 40},
	}
	res := newTestExtractor().Extract(source.NewStaticDocument(page1, page2))

	if res.Title != "Executive Summary" {
		t.Errorf("expected first qualifying heading to keep the title, got %q", res.Title)
	}
	if len(res.Outline) != 2 {
		t.Fatalf("expected 2 headings, got %d", len(res.Outline))
	}
	if res.Outline[1].Page != 2 {
		t.Errorf("expected second heading on page 2, got %d", res.Outline[1].Page)
	}
}

func TestExtractTitleBelowThresholdStaysUntitled(t *testing.T) {
	// A 30pt observation pushes the title threshold to 28.5. It comes from
	// an overlong line, so it feeds the pre-pass histogram without ever
	// being a heading candidate itself. The lone 14pt heading never
	// qualifies as the title but still makes the outline.
	banner := strings.Repeat("decorative cover page filler ", 5)
	chars := []source.Char{
		{Text: banner, Size: 30, FontName: "Helvetica", Top: 10},
		{Text: "Quarterly Update", Size: 14, FontName: "Helvetica-Bold", Top: 40},
	}
	res := newTestExtractor().Extract(source.NewStaticDocument(chars))

	if res.Title != DefaultTitle {
		t.Errorf("expected %q, got %q", DefaultTitle, res.Title)
	}
	found := false
	for _, h := range res.Outline {
		if h.Text == "Quarterly Update" {
			found = true
		}
	}
	if !found {
		t.Error("expected sub-threshold heading to remain in the outline")
	}
}

func TestExtractLongLinesExcluded(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "WORD "
	}
	chars := []source.Char{
		{Text: long, Size: 40, FontName: "Helvetica-Bold", Top: 10},
	}
	res := newTestExtractor().Extract(source.NewStaticDocument(chars))
	if len(res.Outline) != 0 {
		t.Fatalf("expected overlong line to be excluded, got %d headings", len(res.Outline))
	}
}

func TestExtractFileOpenFailure(t *testing.T) {
	res := newTestExtractor().ExtractFile("/nonexistent/path/report.pdf")
	if res.Title != DefaultTitle {
		t.Errorf("expected %q on open failure, got %q", DefaultTitle, res.Title)
	}
	if res.Outline == nil || len(res.Outline) != 0 {
		t.Errorf("expected empty non-nil outline, got %#v", res.Outline)
	}
}

func TestExtractFileUnsupportedExtension(t *testing.T) {
	res := newTestExtractor().ExtractFile("notes.xyz")
	if res.Title != DefaultTitle || len(res.Outline) != 0 {
		t.Fatalf("expected empty result for unsupported extension, got %+v", res)
	}
}

func TestExtractCJKHeadings(t *testing.T) {
	chars := []source.Char{
		{Text: "第1章 はじめに", Size: 18, FontName: "MS-Gothic", Top: 40},
		{Text: "概要", Size: 14, FontName: "MS-Gothic", Top: 80},
	}
	res := newTestExtractor().Extract(source.NewStaticDocument(chars))

	if len(res.Outline) != 2 {
		t.Fatalf("expected 2 CJK headings, got %d: %+v", len(res.Outline), res.Outline)
	}
	if res.Outline[0].Text != "第1章 はじめに" {
		t.Errorf("unexpected heading text %q", res.Outline[0].Text)
	}
	if res.Title != "第1章 はじめに" {
		t.Errorf("expected CJK title, got %q", res.Title)
	}
}
