package source

import "strings"

// Formats without glyph geometry (markdown, HTML, DOCX, plain text) are
// mapped onto the same character-stream shape: every logical line becomes
// one Char at a synthetic vertical position, and structural headings get
// level-derived sizes and a bold font name so the visual heuristics fire
// the same way they do for PDFs.

const (
	bodySize    = 11.0
	headingFont = "Helvetica-Bold"
	bodyFont    = "Helvetica"

	// Vertical advance between synthetic lines. Any value larger than the
	// assembler's quantization step keeps lines in distinct buckets.
	lineAdvance = 12.0
)

// headingSize maps a structural heading level (1-6) to a synthetic font
// size. The values are chosen so the size-ratio level rules classify
// level 1 as H1, level 2 as H2 and everything deeper as H3.
func headingSize(level int) float64 {
	switch level {
	case 1:
		return 24
	case 2:
		return 20
	case 3:
		return 16
	case 4:
		return 14
	case 5:
		return 13
	default:
		return 12
	}
}

// lineWriter accumulates synthetic lines for a single-page document.
type lineWriter struct {
	chars   []Char
	nextTop float64
}

func (w *lineWriter) addHeading(level int, text string) {
	w.add(text, headingSize(level), headingFont)
}

func (w *lineWriter) addBody(text string) {
	// Long body runs are split on newlines so each stays a separate line.
	for _, ln := range strings.Split(text, "\n") {
		w.add(ln, bodySize, bodyFont)
	}
}

func (w *lineWriter) add(text string, size float64, font string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	w.chars = append(w.chars, Char{
		Text:     text,
		Size:     size,
		FontName: font,
		Top:      w.nextTop,
	})
	w.nextTop += lineAdvance
}

func (w *lineWriter) document() Document {
	return NewStaticDocument(w.chars)
}
