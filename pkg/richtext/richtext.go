// Package richtext provides the rich text value type shared by comment and
// shared-string parts: ordered runs of text, each with an optional font
// descriptor.
package richtext

import "strings"

// Font describes the formatting of a single run. Color is a 6-digit hex
// value without a leading marker; Size is the point size.
type Font struct {
	Bold      bool
	Italic    bool
	Underline bool
	Color     string
	Size      int
	Family    string
}

// Run is a contiguous span of text sharing one font descriptor. A nil Font
// means the run is unformatted.
type Run struct {
	Text string
	Font *Font
}

// Text is a rich text value, an ordered sequence of runs
type Text []Run

// Plain creates an unformatted rich text value from a string
func Plain(s string) Text {
	return Text{{Text: s}}
}

// Plain returns the concatenated text of all runs, formatting discarded
func (t Text) Plain() string {
	var sb strings.Builder
	for _, r := range t {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
