// Package comments implements the fidelity codec for the worksheet comments
// part: parsing the comments XML fragment into a structured model and
// serializing it back deterministically, preserving any attributes and
// elements the codec does not recognize.
package comments
