// Package xmltree provides the element tree representation shared by the
// part codecs, plus a tree-to-event emitter that replays a tree through a
// push-style XML writer. The emitter re-derives which namespace declarations
// must appear at each node, declaring a binding exactly once at the element
// that introduces it.
package xmltree
