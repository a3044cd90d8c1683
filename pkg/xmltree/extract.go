package xmltree

import "sort"

// Attributes deduplicates an attribute list by qualified name, keeping the
// first occurrence per name in traversal order, and returns the result sorted
// by qualified name
func Attributes(attrs []Attr) []Attr {
	seen := make(map[string]bool, len(attrs))
	out := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		name := a.Name()
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// NamespaceBindings returns one declaration attribute per distinct prefix in
// the scope, keeping the first (innermost) binding per prefix, sorted by
// declaration name. The empty prefix maps to plain "xmlns", any other prefix
// to "xmlns:prefix".
func NamespaceBindings(scope []Binding) []Attr {
	out := declAttrs(effectiveBindings(scope))
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// LocalNamespaces returns the declaration attributes for bindings introduced
// at a node: bindings present in the node's resolved scope that are absent
// from, or bound to a different URI in, the parent's resolved scope. Sorted
// by declaration name.
func LocalNamespaces(scope, parent []Binding) []Attr {
	parentEff := make(map[string]string)
	for _, b := range effectiveBindings(parent) {
		parentEff[b.Prefix] = b.URI
	}

	var local []Binding
	for _, b := range effectiveBindings(scope) {
		if uri, ok := parentEff[b.Prefix]; !ok || uri != b.URI {
			local = append(local, b)
		}
	}

	out := declAttrs(local)
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// CombinedAttributes merges the namespace declarations local to an element
// with its ordinary attributes, keeping the namespace-derived value when both
// exist for the same name, sorted by qualified name
func CombinedAttributes(el *Element, parent []Binding) []Attr {
	decls := LocalNamespaces(el.Scope, parent)
	taken := make(map[string]bool, len(decls))
	for _, d := range decls {
		taken[d.Name()] = true
	}

	out := decls
	for _, a := range Attributes(el.Attr) {
		if taken[a.Name()] {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// effectiveBindings reduces a scope chain to one binding per prefix, keeping
// the first occurrence, in chain order
func effectiveBindings(scope []Binding) []Binding {
	seen := make(map[string]bool, len(scope))
	out := make([]Binding, 0, len(scope))
	for _, b := range scope {
		if seen[b.Prefix] {
			continue
		}
		seen[b.Prefix] = true
		out = append(out, b)
	}
	return out
}

func declAttrs(bindings []Binding) []Attr {
	out := make([]Attr, 0, len(bindings))
	for _, b := range bindings {
		if b.Prefix == "" {
			out = append(out, Attr{Key: "xmlns", Value: b.URI})
		} else {
			out = append(out, Attr{Prefix: "xmlns", Key: b.Prefix, Value: b.URI})
		}
	}
	return out
}
