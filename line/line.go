package line

import (
	"strings"
)

// Line is one line of a chart. It is either an Opaque line kept as text or
// a *Note parsed into measure, channel and slots.
type Line interface {
	String() string
}

// Opaque is any line that is not note data: headers, timing, comments and
// lines that only look like note data.
type Opaque string

func (o Opaque) String() string {
	return string(o)
}

// Classify never fails. Lines that do not parse as note data come back as
// Opaque with their trailing whitespace removed.
func Classify(raw string) Line {
	raw = Trim(raw)
	note, err := ParseNote(raw)
	if err != nil {
		return Opaque(raw)
	}
	return note
}

// Trim strips line endings and trailing blanks.
func Trim(raw string) string {
	return strings.TrimRight(raw, " \t\r\n")
}

func AsNote(l Line) (*Note, bool) {
	n, ok := l.(*Note)
	return n, ok
}
