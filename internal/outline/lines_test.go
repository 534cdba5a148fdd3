package outline

import (
	"testing"

	"github.com/dgallion1/pdfoutline/internal/source"
)

func TestAssembleLinesGroupsByQuantizedTop(t *testing.T) {
	chars := []source.Char{
		{Text: "He", Size: 14, FontName: "Helvetica-Bold", Top: 100.02},
		{Text: "ad", Size: 14, FontName: "Helvetica-Bold", Top: 100.04},
		{Text: "ing", Size: 14, FontName: "Helvetica-Bold", Top: 99.97},
		{Text: "body", Size: 10, FontName: "Helvetica", Top: 120.0},
	}
	lines := assembleLines(chars, 3)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "Heading" {
		t.Errorf("expected concatenated text %q, got %q", "Heading", lines[0].Text)
	}
	if lines[0].Size != 14 || lines[0].Font != "Helvetica-Bold" {
		t.Errorf("expected size/font from first char, got %v/%q", lines[0].Size, lines[0].Font)
	}
	if lines[0].Page != 3 || lines[1].Page != 3 {
		t.Errorf("expected page 3 on all lines")
	}
}

func TestAssembleLinesFirstSeenWinsStyle(t *testing.T) {
	// A later character at the same position must not re-style the line.
	chars := []source.Char{
		{Text: "Mixed", Size: 18, FontName: "Times-Bold", Top: 50},
		{Text: " style", Size: 9, FontName: "Times-Roman", Top: 50},
	}
	lines := assembleLines(chars, 1)

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Size != 18 || lines[0].Font != "Times-Bold" {
		t.Errorf("expected style of opening char, got %v/%q", lines[0].Size, lines[0].Font)
	}
	if lines[0].Text != "Mixedstyle" {
		t.Errorf("expected per-char trimmed concatenation %q, got %q", "Mixedstyle", lines[0].Text)
	}
}

func TestAssembleLinesInsertionOrderNotVerticalOrder(t *testing.T) {
	// Content streams may emit runs out of top-to-bottom order. Lines come
	// back in first-seen order, deliberately unsorted.
	chars := []source.Char{
		{Text: "second", Size: 10, FontName: "F", Top: 200},
		{Text: "first", Size: 10, FontName: "F", Top: 100},
		{Text: " on the page", Size: 10, FontName: "F", Top: 200},
	}
	lines := assembleLines(chars, 1)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "secondon the page" {
		t.Errorf("expected first-seen bucket first, got %q", lines[0].Text)
	}
	if lines[1].Text != "first" {
		t.Errorf("expected later-seen bucket second, got %q", lines[1].Text)
	}
}

func TestAssembleLinesEmptyPage(t *testing.T) {
	if lines := assembleLines(nil, 1); len(lines) != 0 {
		t.Fatalf("expected no lines for empty page, got %d", len(lines))
	}
}
