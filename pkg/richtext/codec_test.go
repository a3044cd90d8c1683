package richtext_test

import (
	"testing"

	"github.com/arthur-debert/cellnotes/pkg/richtext"
	"github.com/arthur-debert/cellnotes/pkg/xmltree"
	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseRun(t *testing.T, src string) *xmltree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(src))
	return xmltree.FromEtree(doc.Root())
}

func writeRun(t *testing.T, el *xmltree.Element) string {
	t.Helper()
	doc := etree.NewDocument()
	doc.SetRoot(xmltree.ToEtree(el, nil))
	s, err := doc.WriteToString()
	require.NoError(t, err)
	return s
}

func TestDecodeRun(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want richtext.Run
	}{
		{
			name: "plain run",
			src:  `<r><t>Hi</t></r>`,
			want: richtext.Run{Text: "Hi"},
		},
		{
			name: "formatted run",
			src:  `<r><rPr><b/><color rgb="FF0000"/><sz val="11"/><name val="Calibri"/></rPr><t>warn</t></r>`,
			want: richtext.Run{
				Text: "warn",
				Font: &richtext.Font{Bold: true, Color: "FF0000", Size: 11, Family: "Calibri"},
			},
		},
		{
			name: "underline and italic markers",
			src:  `<r><rPr><i/><u/><sz val="9"/><name val="Arial"/></rPr><t>em</t></r>`,
			want: richtext.Run{
				Text: "em",
				Font: &richtext.Font{Italic: true, Underline: true, Size: 9, Family: "Arial"},
			},
		},
		{
			name: "unknown formatting children are skipped",
			src:  `<r><rPr><b/><charset val="1"/><sz val="10"/><name val="Arial"/></rPr><t>x</t></r>`,
			want: richtext.Run{
				Text: "x",
				Font: &richtext.Font{Bold: true, Size: 10, Family: "Arial"},
			},
		},
		{
			name: "preserved whitespace text",
			src:  `<r><t xml:space="preserve">  leading</t></r>`,
			want: richtext.Run{Text: "  leading"},
		},
		{
			name: "missing literal text",
			src:  `<r><rPr><b/></rPr></r>`,
			want: richtext.Run{Font: &richtext.Font{Bold: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := richtext.DecodeRun(parseRun(t, tt.src))
			assert.Empty(t, cmp.Diff(tt.want, got))
		})
	}
}

func TestEncodeRun(t *testing.T) {
	tests := []struct {
		name string
		run  richtext.Run
		want string
	}{
		{
			name: "plain run",
			run:  richtext.Run{Text: "Hi"},
			want: `<r><t>Hi</t></r>`,
		},
		{
			name: "leading whitespace marks preserve",
			run:  richtext.Run{Text: "  leading"},
			want: `<r><t xml:space="preserve">  leading</t></r>`,
		},
		{
			name: "trailing whitespace marks preserve",
			run:  richtext.Run{Text: "trailing\n"},
			want: "<r><t xml:space=\"preserve\">trailing\n</t></r>",
		},
		{
			name: "interior double space marks preserve",
			run:  richtext.Run{Text: "a  b"},
			want: `<r><t xml:space="preserve">a  b</t></r>`,
		},
		{
			name: "font emits size and family even when zero-valued",
			run:  richtext.Run{Text: "x", Font: &richtext.Font{Bold: true}},
			want: `<r><rPr><b/><sz val="0"/><name val=""/></rPr><t>x</t></r>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, writeRun(t, richtext.EncodeRun(tt.run)))
		})
	}
}

func TestRunRoundTrip(t *testing.T) {
	// Serialized form is stable once sz and name are present
	src := `<r><rPr><b/><color rgb="FF0000"/><sz val="11"/><name val="Calibri"/></rPr><t>warn</t></r>`

	run := richtext.DecodeRun(parseRun(t, src))
	require.NotNil(t, run.Font)
	assert.True(t, run.Font.Bold)
	assert.Equal(t, "FF0000", run.Font.Color)

	assert.Equal(t, src, writeRun(t, richtext.EncodeRun(run)))
}

func TestNeedsPreserve(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", false},
		{"plain", false},
		{"two words", false},
		{"  leading", true},
		{"trailing ", true},
		{"\ttabbed", true},
		{"line\n", true},
		{"   ", true},
		{"a  b", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, richtext.NeedsPreserve(tt.text), "%q", tt.text)
	}
}

func TestPlain(t *testing.T) {
	text := richtext.Text{
		{Text: "Hello, "},
		{Text: "world", Font: &richtext.Font{Bold: true}},
	}
	assert.Equal(t, "Hello, world", text.Plain())
	assert.Equal(t, "just text", richtext.Plain("just text").Plain())
}
