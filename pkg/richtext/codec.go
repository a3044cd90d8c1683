package richtext

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/cellnotes/pkg/xmltree"
)

// XML shape of a run, shared by the comments and shared strings parts:
//
//	<r><rPr><b/><i/><u/><color rgb="FF0000"/><sz val="11"/><name val="Calibri"/></rPr><t>text</t></r>
const (
	runTag       = "r"
	propsTag     = "rPr"
	literalTag   = "t"
	boldTag      = "b"
	italicTag    = "i"
	underlineTag = "u"
	colorTag     = "color"
	sizeTag      = "sz"
	familyTag    = "name"
)

// DecodeRun converts an <r> element into a Run. Unrecognized formatting
// children are skipped; a missing <t> yields an empty run text.
func DecodeRun(el *xmltree.Element) Run {
	var run Run
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case propsTag:
			run.Font = decodeFont(child)
		case literalTag:
			run.Text = child.Text()
		}
	}
	return run
}

func decodeFont(el *xmltree.Element) *Font {
	font := &Font{}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case boldTag:
			font.Bold = true
		case italicTag:
			font.Italic = true
		case underlineTag:
			font.Underline = true
		case colorTag:
			font.Color = child.SelectAttrValue("rgb", "")
		case sizeTag:
			if v, err := strconv.Atoi(child.SelectAttrValue("val", "")); err == nil {
				font.Size = v
			}
		case familyTag:
			font.Family = child.SelectAttrValue("val", "")
		}
	}
	return font
}

// EncodeRun converts a Run back into an <r> element. The literal-text child
// is marked xml:space="preserve" whenever naive re-parsing would normalize
// its whitespace.
func EncodeRun(run Run) *xmltree.Element {
	el := xmltree.NewElement(runTag)
	if run.Font != nil {
		el.AddChild(encodeFont(run.Font))
	}

	literal := el.CreateElement(literalTag)
	if NeedsPreserve(run.Text) {
		literal.CreateAttr("xml:space", "preserve")
	}
	literal.CreateText(run.Text)
	return el
}

func encodeFont(font *Font) *xmltree.Element {
	el := xmltree.NewElement(propsTag)
	if font.Bold {
		el.CreateElement(boldTag)
	}
	if font.Italic {
		el.CreateElement(italicTag)
	}
	if font.Underline {
		el.CreateElement(underlineTag)
	}
	if font.Color != "" {
		el.CreateElement(colorTag).CreateAttr("rgb", font.Color)
	}
	el.CreateElement(sizeTag).CreateAttr("val", strconv.Itoa(font.Size))
	el.CreateElement(familyTag).CreateAttr("val", font.Family)
	return el
}

// NeedsPreserve reports whether a run text requires xml:space="preserve" to
// survive re-parsing: leading or trailing whitespace, all-whitespace content,
// or consecutive interior spaces
func NeedsPreserve(s string) bool {
	if s == "" {
		return false
	}
	if strings.TrimSpace(s) == "" {
		return true
	}
	if isSpace(s[0]) || isSpace(s[len(s)-1]) {
		return true
	}
	return strings.Contains(s, "  ")
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
