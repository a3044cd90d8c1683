package testutil

import (
	"testing"

	"github.com/arthur-debert/cellnotes/pkg/xmltree"
	"github.com/beevik/etree"
)

// MustParseXML parses an XML string and converts its root element into a
// tree, failing the test on malformed input
func MustParseXML(t *testing.T, src string) *xmltree.Element {
	t.Helper()

	doc := etree.NewDocument()
	if err := doc.ReadFromString(src); err != nil {
		t.Fatalf("failed to parse test XML: %v", err)
	}
	root := doc.Root()
	if root == nil {
		t.Fatal("test XML has no root element")
	}
	return xmltree.FromEtree(root)
}

// WriteXML serializes a tree to an XML string, failing the test on error
func WriteXML(t *testing.T, el *xmltree.Element) string {
	t.Helper()

	doc := etree.NewDocument()
	doc.SetRoot(xmltree.ToEtree(el, nil))
	s, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("failed to write test XML: %v", err)
	}
	return s
}
