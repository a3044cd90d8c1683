package xmltree

import "strings"

// Binding is a single namespace binding visible at a node. An empty prefix
// denotes the default namespace.
type Binding struct {
	Prefix string
	URI    string
}

// Attr is a single element attribute
type Attr struct {
	Prefix string
	Key    string
	Value  string
}

// Name returns the qualified attribute name, "prefix:key" when a prefix is
// present and "key" otherwise
func (a Attr) Name() string {
	if a.Prefix != "" {
		return a.Prefix + ":" + a.Key
	}
	return a.Key
}

// Node is implemented by the kinds of children an Element can hold
type Node interface {
	isNode()
}

// Element is one node of the tree. Scope holds the resolved namespace
// bindings visible at this node, innermost binding first; namespace
// declarations are represented only in Scope, never in Attr.
type Element struct {
	Prefix   string
	Tag      string
	Attr     []Attr
	Scope    []Binding
	Children []Node
}

// Text is a character data child
type Text string

func (e *Element) isNode() {}
func (t Text) isNode()     {}

// NewElement creates a standalone element with the given tag. A tag of the
// form "prefix:local" is split into prefix and local parts.
func NewElement(tag string) *Element {
	e := &Element{}
	if i := strings.Index(tag, ":"); i > 0 {
		e.Prefix, e.Tag = tag[:i], tag[i+1:]
	} else {
		e.Tag = tag
	}
	return e
}

// FullTag returns the qualified element name
func (e *Element) FullTag() string {
	if e.Prefix != "" {
		return e.Prefix + ":" + e.Tag
	}
	return e.Tag
}

// CreateElement appends a new child element with the given tag and returns it
func (e *Element) CreateElement(tag string) *Element {
	child := NewElement(tag)
	e.Children = append(e.Children, child)
	return child
}

// AddChild appends an existing node as a child
func (e *Element) AddChild(n Node) {
	e.Children = append(e.Children, n)
}

// CreateAttr appends an attribute. A key of the form "prefix:local" is split
// into prefix and local parts.
func (e *Element) CreateAttr(key, value string) {
	a := Attr{Key: key, Value: value}
	if i := strings.Index(key, ":"); i > 0 {
		a.Prefix, a.Key = key[:i], key[i+1:]
	}
	e.Attr = append(e.Attr, a)
}

// CreateText appends a character data child
func (e *Element) CreateText(text string) {
	e.Children = append(e.Children, Text(text))
}

// ChildElements returns the element children in document order
func (e *Element) ChildElements() []*Element {
	var elems []*Element
	for _, child := range e.Children {
		if el, ok := child.(*Element); ok {
			elems = append(elems, el)
		}
	}
	return elems
}

// SelectAttr returns the first attribute whose qualified name matches, or nil
func (e *Element) SelectAttr(name string) *Attr {
	for i := range e.Attr {
		if e.Attr[i].Name() == name {
			return &e.Attr[i]
		}
	}
	return nil
}

// SelectAttrValue returns the value of the first attribute whose qualified
// name matches, or the fallback when no such attribute exists
func (e *Element) SelectAttrValue(name, fallback string) string {
	if a := e.SelectAttr(name); a != nil {
		return a.Value
	}
	return fallback
}

// Text returns the concatenated direct character data of the element
func (e *Element) Text() string {
	var sb strings.Builder
	for _, child := range e.Children {
		if t, ok := child.(Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}

// LookupPrefix resolves a prefix against the element's own scope, returning
// the bound URI or an empty string when the prefix is unbound
func (e *Element) LookupPrefix(prefix string) string {
	for _, b := range e.Scope {
		if b.Prefix == prefix {
			return b.URI
		}
	}
	return ""
}
