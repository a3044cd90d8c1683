package xmltree

import (
	"fmt"
	"io"
	"strings"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// StreamWriter is a Writer that produces escaped XML text on an io.Writer.
// Empty elements are written self-closing. Namespace URIs passed to
// StartElementNS are informational; declarations reach the output as
// ordinary xmlns attributes.
type StreamWriter struct {
	w     io.Writer
	stack []string
	open  bool
	err   error
}

// NewStreamWriter creates a StreamWriter over w
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// StartElement opens a new element
func (s *StreamWriter) StartElement(name string) error {
	s.closeStartTag()
	s.print("<" + name)
	s.stack = append(s.stack, name)
	s.open = true
	return s.err
}

// StartElementNS opens a new element bound to a namespace URI
func (s *StreamWriter) StartElementNS(name, uri string) error {
	return s.StartElement(name)
}

// WriteAttributes writes an attribute batch into the currently open start tag
func (s *StreamWriter) WriteAttributes(attrs []Attr) error {
	if s.err != nil {
		return s.err
	}
	if !s.open {
		s.err = fmt.Errorf("xmltree: attributes written outside a start tag")
		return s.err
	}
	for _, a := range attrs {
		s.print(` ` + a.Name() + `="` + attrEscaper.Replace(a.Value) + `"`)
	}
	return s.err
}

// CharData writes escaped character data
func (s *StreamWriter) CharData(data string) error {
	s.closeStartTag()
	s.print(textEscaper.Replace(data))
	return s.err
}

// EndElement closes the most recently opened element
func (s *StreamWriter) EndElement() error {
	if s.err != nil {
		return s.err
	}
	if len(s.stack) == 0 {
		s.err = fmt.Errorf("xmltree: end element without a matching start")
		return s.err
	}
	name := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	if s.open {
		s.print("/>")
		s.open = false
	} else {
		s.print("</" + name + ">")
	}
	return s.err
}

func (s *StreamWriter) closeStartTag() {
	if s.open {
		s.print(">")
		s.open = false
	}
}

func (s *StreamWriter) print(text string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, text)
}
