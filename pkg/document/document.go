// Package document is the thin packaging boundary around the part codecs:
// it reads a standalone part XML file into an element tree and writes a tree
// back out as a standalone XML document.
package document

import (
	"io"
	"os"

	"github.com/beevik/etree"

	"github.com/arthur-debert/cellnotes/pkg/errors"
	"github.com/arthur-debert/cellnotes/pkg/logging"
	"github.com/arthur-debert/cellnotes/pkg/xmltree"
)

// xmlDeclaration matches the declaration OOXML writers emit on part files
const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

// Load reads an XML file and returns its root element as a tree
func Load(path string) (*xmltree.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocRead, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	root, err := LoadReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocParse, "failed to parse %s", path)
	}
	return root, nil
}

// LoadReader reads an XML document from a reader and returns its root
// element as a tree
func LoadReader(r io.Reader) (*xmltree.Element, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocParse, "malformed XML document")
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrDocParse, "document has no root element")
	}
	return xmltree.FromEtree(root), nil
}

// Write streams the tree to w as a standalone XML document, emitting the
// declaration followed by the serialized root element
func Write(w io.Writer, root *xmltree.Element) error {
	if _, err := io.WriteString(w, xmlDeclaration+"\n"); err != nil {
		return errors.Wrap(err, errors.ErrDocWrite, "failed to write XML declaration")
	}
	if err := xmltree.Emit(root, nil, xmltree.NewStreamWriter(w)); err != nil {
		return errors.Wrap(err, errors.ErrDocWrite, "failed to emit document")
	}
	return nil
}

// Save writes the tree to a file. When backup is set and the file already
// exists, its previous content is kept next to it with a .bak suffix.
func Save(path string, root *xmltree.Element, backup bool) error {
	logger := logging.GetLogger("document.save")

	if backup {
		if prev, err := os.ReadFile(path); err == nil {
			if err := os.WriteFile(path+".bak", prev, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrDocWrite, "failed to write backup for %s", path)
			}
			logger.Debug().Str("path", path+".bak").Msg("wrote backup")
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDocWrite, "failed to create %s", path)
	}

	werr := Write(f, root)
	if cerr := f.Close(); werr == nil && cerr != nil {
		werr = errors.Wrapf(cerr, errors.ErrDocWrite, "failed to close %s", path)
	}
	return werr
}
