package lexer

import (
	"fmt"
)

// Location is a 1-indexed line and column in the source text. Columns count
// runes, not bytes.
type Location struct {
	Line   int
	Column int
}

// StartLocation is where every lexer begins.
var StartLocation = Location{Line: 1, Column: 1}

// IsValid reports whether the location points somewhere in a source text.
func (l Location) IsValid() bool {
	return l.Line > 0 && l.Column > 0
}

// Before returns true if l comes strictly before m.
func (l Location) Before(m Location) bool {
	if l.Line != m.Line {
		return l.Line < m.Line
	}
	return l.Column < m.Column
}

// advance returns the location after consuming r. Newlines in verbatim mode
// (string literals) are counted as ordinary columns.
func (l Location) advance(r rune, verbatim bool) Location {
	if r == '\n' && !verbatim {
		return Location{Line: l.Line + 1, Column: 1}
	}
	return Location{Line: l.Line, Column: l.Column + 1}
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}
