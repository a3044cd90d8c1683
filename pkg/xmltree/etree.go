package xmltree

import "github.com/beevik/etree"

// FromEtree converts a parsed etree element into a tree. Namespace
// declarations found as xmlns attributes become scope bindings (visible to
// the element and its descendants) and are dropped from the ordinary
// attribute list; comments and processing instructions are not carried over.
func FromEtree(src *etree.Element) *Element {
	return fromEtree(src, nil)
}

func fromEtree(src *etree.Element, parent []Binding) *Element {
	el := &Element{Prefix: src.Space, Tag: src.Tag}

	var local []Binding
	for _, a := range src.Attr {
		switch {
		case a.Space == "xmlns":
			local = append(local, Binding{Prefix: a.Key, URI: a.Value})
		case a.Space == "" && a.Key == "xmlns":
			local = append(local, Binding{Prefix: "", URI: a.Value})
		default:
			el.Attr = append(el.Attr, Attr{Prefix: a.Space, Key: a.Key, Value: a.Value})
		}
	}

	el.Scope = make([]Binding, 0, len(local)+len(parent))
	el.Scope = append(el.Scope, local...)
	el.Scope = append(el.Scope, parent...)
	if len(el.Scope) == 0 {
		el.Scope = nil
	}

	for _, token := range src.Child {
		switch t := token.(type) {
		case *etree.Element:
			el.Children = append(el.Children, fromEtree(t, el.Scope))
		case *etree.CharData:
			el.Children = append(el.Children, Text(t.Data))
		}
	}
	return el
}

// ToEtree converts a tree back into an etree element, declaring only the
// namespace bindings not already visible in the given parent scope.
// Attributes are emitted deduplicated and sorted by qualified name.
func ToEtree(el *Element, parent []Binding) *etree.Element {
	out := etree.NewElement(el.FullTag())

	for _, a := range CombinedAttributes(el, parent) {
		out.CreateAttr(a.Name(), a.Value)
	}

	for _, child := range el.Children {
		switch c := child.(type) {
		case *Element:
			out.AddChild(ToEtree(c, el.Scope))
		case Text:
			out.CreateText(string(c))
		}
	}
	return out
}
