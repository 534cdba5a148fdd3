// Package outline turns positioned character streams into a document
// title and a leveled H1/H2/H3 outline using visual heuristics: font
// size statistics, boldness, casing and numbering patterns, and a
// multilingual heading keyword table.
package outline

// Level is a heading level in the extracted outline.
type Level string

const (
	LevelH1 Level = "H1"
	LevelH2 Level = "H2"
	LevelH3 Level = "H3"
)

// Heading is one entry of the extracted outline. Entries are appended in
// page order, then line order within a page, and are immutable once added.
type Heading struct {
	Text  string `json:"text"`
	Page  int    `json:"page"` // 1-based
	Level Level  `json:"level"`
}

// DefaultTitle is used when no line qualifies as the document title.
const DefaultTitle = "Untitled"

// Result is the outcome of extracting one document.
type Result struct {
	Title   string    `json:"title"`
	Outline []Heading `json:"outline"`
}

// EmptyResult is what failed or empty documents yield: the default title
// and a non-nil, empty outline.
func EmptyResult() Result {
	return Result{Title: DefaultTitle, Outline: []Heading{}}
}
