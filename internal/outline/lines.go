package outline

import (
	"strings"

	"github.com/dgallion1/pdfoutline/internal/source"
)

// Line is a row of text assembled from characters sharing a quantized
// vertical position.
type Line struct {
	Text string
	Size float64 // font size of the character that opened the bucket
	Font string
	Page int // 1-based
}

// assembleLines groups a page's characters into lines. Characters whose
// top coordinate rounds to the same tenth of a point are concatenated in
// stream order; the first character seen at a position fixes the line's
// size and font. Lines are returned in first-seen position order, not
// sorted vertical order, which matters when the content stream emits
// runs out of top-to-bottom order.
func assembleLines(chars []source.Char, page int) []*Line {
	byTop := make(map[float64]*Line)
	var order []float64

	for _, c := range chars {
		top := round1(c.Top)
		ln, ok := byTop[top]
		if !ok {
			ln = &Line{
				Size: round1(c.Size),
				Font: c.FontName,
				Page: page,
			}
			byTop[top] = ln
			order = append(order, top)
		}
		ln.Text += strings.TrimSpace(c.Text)
	}

	lines := make([]*Line, 0, len(order))
	for _, top := range order {
		lines = append(lines, byTop[top])
	}
	return lines
}
