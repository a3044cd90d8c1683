package xmltree

// Writer is the push-style sink the emitter replays a tree into. Every
// StartElement or StartElementNS call must eventually be balanced by an
// EndElement call; WriteAttributes applies to the most recently started
// element and must precede any of its content.
type Writer interface {
	StartElement(name string) error
	StartElementNS(name, uri string) error
	WriteAttributes(attrs []Attr) error
	CharData(data string) error
	EndElement() error
}

// Emit walks the element depth-first and replays it through the writer.
// The parent scope decides which namespace bindings are declared at this
// element; pass nil when the element has no emitted parent. An element that
// has been started is always ended, even when writing its content fails.
func Emit(el *Element, parent []Binding, w Writer) error {
	name := el.FullTag()

	var err error
	if uri := el.LookupPrefix(el.Prefix); el.Prefix != "" && uri != "" {
		err = w.StartElementNS(name, uri)
	} else {
		err = w.StartElement(name)
	}
	if err != nil {
		return err
	}

	err = emitContent(el, parent, w)
	if endErr := w.EndElement(); err == nil {
		err = endErr
	}
	return err
}

func emitContent(el *Element, parent []Binding, w Writer) error {
	if attrs := CombinedAttributes(el, parent); len(attrs) > 0 {
		if err := w.WriteAttributes(attrs); err != nil {
			return err
		}
	}

	for _, child := range el.Children {
		switch c := child.(type) {
		case *Element:
			if err := Emit(c, el.Scope, w); err != nil {
				return err
			}
		case Text:
			if err := w.CharData(string(c)); err != nil {
				return err
			}
		default:
			// Unrecognized node kinds are skipped, not an error
		}
	}
	return nil
}
