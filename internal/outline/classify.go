package outline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxHeadingLen is the longest line, in runes, still considered a heading
// candidate. Anything longer is assumed to be body text.
const maxHeadingLen = 100

// Classifier decides whether assembled lines are headings. It owns the
// font statistics for one document and mutates them while classifying, so
// the short-line rule sees a running average that sharpens as more of the
// document is read. That temporal coupling is intentional; do not replace
// it with a whole-document-aware pass.
type Classifier struct {
	stats *FontStats
}

func NewClassifier(stats *FontStats) *Classifier {
	return &Classifier{stats: stats}
}

// IsHeading applies the rule chain in order, short-circuiting on the
// first match.
func (c *Classifier) IsHeading(line string, fontSize float64, fontName string) bool {
	if line == "" || utf8.RuneCountInString(line) > maxHeadingLen {
		return false
	}

	// Every candidate past the length gate feeds the histogram, even ones
	// rejected further down.
	c.stats.Observe(fontSize)

	// Keyword openers in any configured language.
	for _, words := range headingKeywords {
		for _, k := range words {
			if strings.HasPrefix(line, k) {
				return true
			}
		}
	}

	// Numbered section prefixes like "1.", "1.1", "1.1.1": the first six
	// runes, trimmed and with periods removed, must be all digits, and
	// must have contained at least one period.
	if prefix := firstRunes(line, 6); strings.Contains(prefix, ".") {
		if allDigits(strings.ReplaceAll(strings.TrimSpace(prefix), ".", "")) {
			return true
		}
	}

	// Short ALL CAPS lines.
	if isUpperLine(line) && wordCount(line) <= 6 {
		return true
	}

	// Title Case with few words.
	if isTitleLine(line) && wordCount(line) <= 8 {
		return true
	}

	// Short lines at or above the running average size.
	if wordCount(line) <= 5 && fontSize >= c.stats.Average() {
		return true
	}

	// Bold font with few words.
	if strings.Contains(strings.ToLower(fontName), "bold") && wordCount(line) <= 8 {
		return true
	}

	// Form-field labels like "Name: ____".
	if strings.Contains(line, ":") && !strings.HasSuffix(line, ".") {
		return false
	}

	return false
}

// DetermineLevel maps a font size to a heading level relative to the
// largest size observed so far. An empty histogram always yields H3.
func (c *Classifier) DetermineLevel(size float64) Level {
	if c.stats.Empty() {
		return LevelH3
	}
	largest := c.stats.Largest()
	switch {
	case size >= largest*0.9:
		return LevelH1
	case size >= largest*0.8:
		return LevelH2
	default:
		return LevelH3
	}
}

// TitleThreshold is the minimum font size for a heading to also become
// the document title.
func (c *Classifier) TitleThreshold() float64 {
	if c.stats.Empty() {
		return fallbackLargestSize
	}
	return c.stats.Largest() * 0.95
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// firstRunes returns the first n runes of s.
func firstRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// allDigits reports whether s is non-empty and entirely decimal digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isUpperLine reports whether the line contains at least one cased rune
// and no lowercase ones.
func isUpperLine(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// isTitleLine reports whether the line is in title case: uppercase runes
// only start words (follow uncased runes), lowercase runes only continue
// them, and at least one cased rune exists.
func isTitleLine(s string) bool {
	cased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			cased = true
		default:
			prevCased = false
		}
	}
	return cased
}
