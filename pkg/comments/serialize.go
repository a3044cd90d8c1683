package comments

import (
	"sort"
	"strconv"

	"github.com/arthur-debert/cellnotes/pkg/richtext"
	"github.com/arthur-debert/cellnotes/pkg/xmltree"
)

// Serialize converts the part back into an element tree. The output is
// deterministic: attributes are emitted sorted by name, authors and comments
// in stored order, and unknown data after known data at every level.
// Serialize never fails.
func (p *Part) Serialize() *xmltree.Element {
	root := xmltree.NewElement(rootTag)

	authorsEl := root.CreateElement(authorsTag)
	for _, name := range p.Authors {
		authorsEl.CreateElement(authorTag).CreateText(name)
	}

	listEl := root.CreateElement(listTag)
	for i := range p.Comments {
		listEl.AddChild(serializeComment(&p.Comments[i]))
	}

	for _, child := range p.UnknownChildren {
		root.AddChild(child)
	}

	return root
}

func serializeComment(c *Comment) *xmltree.Element {
	el := xmltree.NewElement(commentTag)

	attrs := map[string]string{
		refAttr:      c.Ref.String(),
		authorIDAttr: strconv.Itoa(c.AuthorID),
	}
	if c.GUID != "" {
		attrs[guidAttr] = c.GUID
	}
	for name, value := range c.UnknownAttrs {
		if _, known := attrs[name]; !known {
			attrs[name] = value
		}
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		el.CreateAttr(name, attrs[name])
	}

	el.AddChild(serializeText(c.Text))
	for _, child := range c.UnknownChildren {
		el.AddChild(child)
	}

	return el
}

func serializeText(text richtext.Text) *xmltree.Element {
	el := xmltree.NewElement(textTag)
	for _, run := range text {
		el.AddChild(richtext.EncodeRun(run))
	}
	return el
}
