// pkg/comments/serialize_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test deterministic serialization and round-trip fidelity

package comments_test

import (
	"testing"

	"github.com/arthur-debert/cellnotes/pkg/cellref"
	"github.com/arthur-debert/cellnotes/pkg/comments"
	"github.com/arthur-debert/cellnotes/pkg/richtext"
	"github.com/arthur-debert/cellnotes/pkg/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize_Basic(t *testing.T) {
	part := &comments.Part{
		Authors: []string{"Ann"},
		Comments: []comments.Comment{
			{
				Ref:      cellref.Ref{Col: 0, Row: 0},
				AuthorID: 0,
				Text:     richtext.Plain("Hi"),
			},
		},
	}

	got := testutil.WriteXML(t, part.Serialize())
	assert.Equal(t,
		`<comments><authors><author>Ann</author></authors>`+
			`<commentList><comment authorId="0" ref="A1"><text><r><t>Hi</t></r></text></comment></commentList>`+
			`</comments>`,
		got)
}

func TestSerialize_AttributesSortedByName(t *testing.T) {
	part := &comments.Part{
		Comments: []comments.Comment{
			{
				Ref:          cellref.Ref{Col: 1, Row: 1},
				AuthorID:     3,
				GUID:         "{g}",
				UnknownAttrs: map[string]string{"shapeId": "7", "xr:uid": "u1"},
				Text:         richtext.Plain("x"),
			},
		},
	}

	got := testutil.WriteXML(t, part.Serialize())
	assert.Contains(t, got,
		`<comment authorId="3" guid="{g}" ref="B2" shapeId="7" xr:uid="u1">`)
}

func TestSerialize_AuthorAndCommentOrderIsPreserved(t *testing.T) {
	part := &comments.Part{
		Authors: []string{"Zed", "Ann"},
		Comments: []comments.Comment{
			{Ref: cellref.Ref{Col: 25, Row: 8}, AuthorID: 1, Text: richtext.Plain("second cell")},
			{Ref: cellref.Ref{Col: 0, Row: 0}, AuthorID: 0, Text: richtext.Plain("first cell")},
		},
	}

	got := testutil.WriteXML(t, part.Serialize())

	// Insertion order, not sorted by cell or name
	assert.Regexp(t, `Zed.*Ann`, got)
	assert.Regexp(t, `Z9.*A1`, got)
}

func TestSerialize_Deterministic(t *testing.T) {
	part := &comments.Part{
		Authors: []string{"Ann"},
		Comments: []comments.Comment{
			{
				Ref:      cellref.Ref{Col: 0, Row: 0},
				AuthorID: 0,
				UnknownAttrs: map[string]string{
					"zeta": "1", "alpha": "2", "mid": "3",
				},
				Text: richtext.Plain("Hi"),
			},
		},
	}

	first := testutil.WriteXML(t, part.Serialize())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, testutil.WriteXML(t, part.Serialize()))
	}
}

func roundTrip(t *testing.T, src string) (*comments.Part, *comments.Part, string) {
	t.Helper()

	part, err := comments.Parse(testutil.MustParseXML(t, src))
	require.NoError(t, err)

	out := testutil.WriteXML(t, part.Serialize())
	reparsed, err := comments.Parse(testutil.MustParseXML(t, out))
	require.NoError(t, err)

	return part, reparsed, out
}

func TestRoundTrip_ModelEquality(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "basic part",
			src: `<comments><authors><author>Ann</author></authors>` +
				`<commentList><comment ref="A1" authorId="0"><text><r><t>Hi</t></r></text></comment></commentList></comments>`,
		},
		{
			name: "formatted runs",
			src: `<comments><commentList><comment ref="B2" authorId="1">` +
				`<text><r><rPr><b/><color rgb="FF0000"/><sz val="11"/><name val="Calibri"/></rPr><t>bold red</t></r>` +
				`<r><t xml:space="preserve"> tail</t></r></text></comment></commentList></comments>`,
		},
		{
			name: "unknown data at every level",
			src: `<comments><authors><author>Ann</author></authors>` +
				`<commentList><comment ref="A1" authorId="0" shapeId="7">` +
				`<text><r><t>Hi</t></r></text><commentPr locked="1"/></comment></commentList>` +
				`<extLst><ext uri="fut"/></extLst></comments>`,
		},
		{
			name: "guid and multiple comments",
			src: `<comments><authors><author>Ann</author><author>Bob</author></authors>` +
				`<commentList>` +
				`<comment ref="A1" authorId="0" guid="{1}"><text><r><t>one</t></r></text></comment>` +
				`<comment ref="ZZ99" authorId="1"><text><r><t>two</t></r></text></comment>` +
				`</commentList></comments>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			part, reparsed, _ := roundTrip(t, tt.src)
			assert.Empty(t, cmp.Diff(part, reparsed, cmpopts.EquateEmpty()))
		})
	}
}

func TestRoundTrip_IdempotentSerialize(t *testing.T) {
	src := `<comments><authors><author>Ann</author></authors>` +
		`<commentList><comment ref="A1" authorId="0" shapeId="7">` +
		`<text><r><t>Hi</t></r></text><commentPr locked="1"/></comment></commentList>` +
		`<extLst><ext uri="fut"/></extLst></comments>`

	_, reparsed, out := roundTrip(t, src)
	assert.Equal(t, out, testutil.WriteXML(t, reparsed.Serialize()))
}

func TestRoundTrip_UnknownDataAppearsAfterKnownData(t *testing.T) {
	src := `<comments>` +
		`<extLst><ext uri="fut"/></extLst>` + // before the containers on input
		`<authors><author>Ann</author></authors>` +
		`<commentList><comment ref="A1" authorId="0">` +
		`<commentPr locked="1"/><text><r><t>Hi</t></r></text>` + // before text on input
		`</comment></commentList></comments>`

	_, _, out := roundTrip(t, src)

	// Known content first, forward-compatible leftovers after
	assert.Regexp(t, `</commentList><extLst>`, out)
	assert.Regexp(t, `</text><commentPr`, out)
}

func TestRoundTrip_WhitespacePreservation(t *testing.T) {
	src := `<comments><commentList><comment ref="A1" authorId="0">` +
		`<text><r><t xml:space="preserve">  leading</t></r><r><t>plain</t></r></text>` +
		`</comment></commentList></comments>`

	part, _, out := roundTrip(t, src)

	assert.Equal(t, "  leading", part.Comments[0].Text[0].Text)
	assert.Contains(t, out, `<t xml:space="preserve">  leading</t>`)
	assert.Contains(t, out, `<t>plain</t>`)
}

func TestRoundTrip_FontDescriptor(t *testing.T) {
	src := `<comments><commentList><comment ref="A1" authorId="0">` +
		`<text><r><rPr><b/><color rgb="FF0000"/><sz val="11"/><name val="Calibri"/></rPr><t>warn</t></r></text>` +
		`</comment></commentList></comments>`

	part, _, out := roundTrip(t, src)

	font := part.Comments[0].Text[0].Font
	require.NotNil(t, font)
	assert.True(t, font.Bold)
	assert.Equal(t, "FF0000", font.Color)
	assert.Equal(t, 11, font.Size)
	assert.Equal(t, "Calibri", font.Family)

	// The serialized form reproduces the input run XML exactly
	assert.Contains(t, out,
		`<r><rPr><b/><color rgb="FF0000"/><sz val="11"/><name val="Calibri"/></rPr><t>warn</t></r>`)
}
