package comments

import (
	"github.com/arthur-debert/cellnotes/pkg/cellref"
	"github.com/arthur-debert/cellnotes/pkg/richtext"
	"github.com/arthur-debert/cellnotes/pkg/xmltree"
)

// Part is the whole comments fragment of one worksheet. Authors and Comments
// keep their document order; UnknownChildren holds the direct children of the
// root that are neither the authors list nor the comment list, preserved
// verbatim for round-tripping.
type Part struct {
	Authors         []string
	Comments        []Comment
	UnknownChildren []*xmltree.Element
}

// Comment is one cell annotation. AuthorID indexes into Part.Authors; the
// codec does not check that the index is in range. UnknownAttrs holds every
// comment attribute outside {ref, authorId, guid}; UnknownChildren holds the
// element siblings of the text child, in document order.
type Comment struct {
	Ref             cellref.Ref
	AuthorID        int
	Text            richtext.Text
	GUID            string
	UnknownAttrs    map[string]string
	UnknownChildren []*xmltree.Element
}
