package comments

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/cellnotes/pkg/cellref"
	"github.com/arthur-debert/cellnotes/pkg/errors"
	"github.com/arthur-debert/cellnotes/pkg/logging"
	"github.com/arthur-debert/cellnotes/pkg/richtext"
	"github.com/arthur-debert/cellnotes/pkg/xmltree"
)

// Element and attribute names of the comments part
const (
	rootTag    = "comments"
	authorsTag = "authors"
	authorTag  = "author"
	listTag    = "commentList"
	commentTag = "comment"
	textTag    = "text"
	runTag     = "r"

	refAttr      = "ref"
	authorIDAttr = "authorId"
	guidAttr     = "guid"
)

// Parse decodes a comments part root element into a Part. Any structural
// failure in any single comment aborts the whole parse; unrecognized extra
// attributes and elements are captured, never rejected.
func Parse(root *xmltree.Element) (*Part, error) {
	logger := logging.GetLogger("comments.parse")

	if root.Tag != rootTag {
		return nil, errors.Newf(errors.ErrUnexpectedRoot,
			"expected <%s> root, got <%s>", rootTag, root.FullTag())
	}

	part := &Part{}

	// Partition the root's children into the two recognized containers and
	// everything else, preserving relative order of the rest
	var authorsEl, listEl *xmltree.Element
	for _, child := range root.ChildElements() {
		switch {
		case child.Tag == authorsTag && authorsEl == nil:
			authorsEl = child
		case child.Tag == listTag && listEl == nil:
			listEl = child
		default:
			part.UnknownChildren = append(part.UnknownChildren, child)
		}
	}

	if authorsEl != nil {
		for _, entry := range authorsEl.ChildElements() {
			if entry.Tag == authorTag {
				part.Authors = append(part.Authors, strings.TrimSpace(entry.Text()))
			}
		}
	}

	if listEl != nil {
		for _, entry := range listEl.ChildElements() {
			if entry.Tag != commentTag {
				continue
			}
			comment, err := parseComment(entry)
			if err != nil {
				return nil, err
			}
			part.Comments = append(part.Comments, comment)
		}
	}

	logger.Trace().
		Int("authors", len(part.Authors)).
		Int("comments", len(part.Comments)).
		Int("unknownChildren", len(part.UnknownChildren)).
		Msg("parsed comments part")

	return part, nil
}

func parseComment(el *xmltree.Element) (Comment, error) {
	var comment Comment

	refValue := el.SelectAttr(refAttr)
	if refValue == nil {
		return Comment{}, errors.Newf(errors.ErrMissingAttribute,
			"comment is missing attribute %q", refAttr)
	}
	ref, err := cellref.Parse(refValue.Value)
	if err != nil {
		return Comment{}, errors.Wrapf(err, errors.ErrInvalidCellRef,
			"invalid cell reference %q", refValue.Value).WithDetail("value", refValue.Value)
	}
	comment.Ref = ref

	idValue := el.SelectAttr(authorIDAttr)
	if idValue == nil {
		return Comment{}, errors.Newf(errors.ErrMissingAttribute,
			"comment is missing attribute %q", authorIDAttr)
	}
	id, err := strconv.Atoi(idValue.Value)
	if err != nil {
		return Comment{}, errors.Newf(errors.ErrInvalidAuthorID,
			"author id %q is not an integer", idValue.Value).WithDetail("value", idValue.Value)
	}
	comment.AuthorID = id

	comment.GUID = el.SelectAttrValue(guidAttr, "")

	for _, a := range el.Attr {
		name := a.Name()
		if name == refAttr || name == authorIDAttr || name == guidAttr {
			continue
		}
		if comment.UnknownAttrs == nil {
			comment.UnknownAttrs = make(map[string]string)
		}
		if _, dup := comment.UnknownAttrs[name]; !dup {
			comment.UnknownAttrs[name] = a.Value
		}
	}

	// The first <text> child backs the comment text; every other element
	// child is preserved as-is
	var textEl *xmltree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == textTag && textEl == nil {
			textEl = child
		} else {
			comment.UnknownChildren = append(comment.UnknownChildren, child)
		}
	}
	if textEl == nil {
		return Comment{}, errors.Newf(errors.ErrMissingChild,
			"comment at %s is missing a <%s> child", comment.Ref, textTag)
	}

	text, err := parseText(textEl, comment.Ref)
	if err != nil {
		return Comment{}, err
	}
	comment.Text = text

	return comment, nil
}

// parseText decodes the <text> child: one run per <r> element when runs are
// present, otherwise the trimmed direct text content as a single
// unformatted run
func parseText(el *xmltree.Element, ref cellref.Ref) (richtext.Text, error) {
	var runs richtext.Text
	for _, child := range el.ChildElements() {
		if child.Tag == runTag {
			runs = append(runs, richtext.DecodeRun(child))
		}
	}
	if len(runs) > 0 {
		return runs, nil
	}

	plain := strings.TrimSpace(el.Text())
	if plain == "" {
		return nil, errors.Newf(errors.ErrEmptyCommentText,
			"comment at %s has empty text", ref)
	}
	return richtext.Plain(plain), nil
}
