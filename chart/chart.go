package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/keysound/bms"
	"github.com/jsphweid/keysound/keysound"
	"github.com/jsphweid/keysound/line"
)

var ErrParse = errors.New("could not parse chart")

type ParseError struct {
	LineNum int
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d: %s", ErrParse.Error(), e.LineNum, e.Err.Error())
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// Document is a chart split into the lines before the first #WAV
// declaration, the declaration table, and everything after it.
type Document struct {
	head      []line.Line
	keysounds *keysound.Table
	tail      []line.Line
}

func New() *Document {
	return &Document{keysounds: keysound.NewTable()}
}

// Parse builds a Document from the lines of a chart. Every #WAV line joins
// the declaration table; other lines land in head until the first
// declaration and in tail after it. A malformed declaration fails the
// whole parse.
func Parse(lines []string) (*Document, error) {
	doc := New()
	for i, raw := range lines {
		raw = line.Trim(raw)
		if keysound.IsDeclaration(raw) {
			k, err := keysound.ParseDeclaration(raw)
			if err != nil {
				return nil, &ParseError{LineNum: i + 1, Err: err}
			}
			doc.keysounds.Add(k)
			continue
		}

		l := line.Classify(raw)
		if doc.keysounds.Len() == 0 {
			doc.head = append(doc.head, l)
		} else {
			doc.tail = append(doc.tail, l)
		}
	}
	return doc, nil
}

func ParseText(text string) (*Document, error) {
	return Parse(strings.Split(text, "\n"))
}

func (d *Document) Serialize() []string {
	res := make([]string, 0, len(d.head)+d.keysounds.Len()+len(d.tail))
	for _, l := range d.head {
		res = append(res, line.Trim(l.String()))
	}
	for _, k := range d.keysounds.All() {
		res = append(res, k.String())
	}
	for _, l := range d.tail {
		res = append(res, line.Trim(l.String()))
	}
	return res
}

func (d *Document) Bytes() []byte {
	return []byte(strings.Join(d.Serialize(), "\n"))
}

func (d *Document) Keysounds() []keysound.Keysound {
	return d.keysounds.All()
}

func (d *Document) Keysound(id bms.ID) (keysound.Keysound, bool) {
	return d.keysounds.Lookup(id)
}

func (d *Document) HasKeysound(id bms.ID) bool {
	return d.keysounds.Contains(id)
}

// IsUsed is false for undeclared IDs even when note data references them.
func (d *Document) IsUsed(id bms.ID) bool {
	if !d.HasKeysound(id) {
		return false
	}
	for _, note := range d.notes() {
		if note.UsesKeysound(id) {
			return true
		}
	}
	return false
}

// UnusedKeysounds returns, in declaration order, every declaration no note
// line references.
func (d *Document) UnusedKeysounds() []keysound.Keysound {
	var res []keysound.Keysound
	for _, k := range d.keysounds.All() {
		if !d.IsUsed(k.ID) {
			res = append(res, k)
		}
	}
	return res
}

// Usage counts the slots that reference each declared keysound.
func (d *Document) Usage() map[bms.ID]int {
	res := make(map[bms.ID]int, d.keysounds.Len())
	for _, id := range d.keysounds.IDs() {
		res[id] = 0
	}
	for _, note := range d.notes() {
		for _, slot := range note.Slots {
			if _, ok := res[slot]; ok {
				res[slot] += 1
			}
		}
	}
	return res
}

// RemoveKeysounds drops the declarations of ids and returns the number of
// declaration lines removed. Note data is not touched.
func (d *Document) RemoveKeysounds(ids ...bms.ID) int {
	var removed int
	for _, id := range ids {
		removed += d.keysounds.Remove(id)
	}
	return removed
}

func (d *Document) notes() []*line.Note {
	var res []*line.Note
	for _, l := range d.tail {
		if note, ok := line.AsNote(l); ok {
			res = append(res, note)
		}
	}
	return res
}
