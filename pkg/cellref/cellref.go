// Package cellref provides the A1-style cell address value type used by the
// sheet part codecs.
package cellref

import (
	"strconv"

	"github.com/arthur-debert/cellnotes/pkg/errors"
)

// Ref is a single cell address. Col and Row are 0-based; "A1" is {0, 0}.
type Ref struct {
	Col int
	Row int
}

// Parse converts an A1-style address (uppercase column letters followed by a
// 1-based row number) into a Ref
func Parse(s string) (Ref, error) {
	if s == "" {
		return Ref{}, errors.New(errors.ErrCellRefSyntax, "empty cell reference")
	}

	i := 0
	col := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			break
		}
		col = col*26 + int(c-'A') + 1
	}
	if i == 0 {
		return Ref{}, errors.Newf(errors.ErrCellRefSyntax, "missing column letters in %q", s)
	}
	if i == len(s) {
		return Ref{}, errors.Newf(errors.ErrCellRefSyntax, "missing row number in %q", s)
	}

	row, err := strconv.Atoi(s[i:])
	if err != nil || row < 1 {
		return Ref{}, errors.Newf(errors.ErrCellRefSyntax, "invalid row number in %q", s)
	}

	return Ref{Col: col - 1, Row: row - 1}, nil
}

// String formats the address back into A1 style
func (r Ref) String() string {
	col := r.Col + 1
	var letters []byte
	for col > 0 {
		col--
		letters = append([]byte{byte('A' + col%26)}, letters...)
		col /= 26
	}
	return string(letters) + strconv.Itoa(r.Row+1)
}
