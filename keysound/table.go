package keysound

import (
	"github.com/jsphweid/keysound/bms"
)

// Table holds declarations in file order. Duplicate IDs are all kept; the
// last one wins on Lookup.
type Table struct {
	keysounds []Keysound
}

func NewTable(keysounds ...Keysound) *Table {
	t := &Table{}
	for _, k := range keysounds {
		t.Add(k)
	}
	return t
}

func (t *Table) Add(k Keysound) {
	t.keysounds = append(t.keysounds, k)
}

func (t *Table) Lookup(id bms.ID) (Keysound, bool) {
	for i := len(t.keysounds) - 1; i >= 0; i-- {
		if t.keysounds[i].ID == id {
			return t.keysounds[i], true
		}
	}
	return Keysound{}, false
}

func (t *Table) Contains(id bms.ID) bool {
	_, ok := t.Lookup(id)
	return ok
}

// Remove drops every declaration of id and returns how many were dropped.
func (t *Table) Remove(id bms.ID) int {
	kept := t.keysounds[:0]
	for _, k := range t.keysounds {
		if k.ID != id {
			kept = append(kept, k)
		}
	}
	removed := len(t.keysounds) - len(kept)
	for i := len(kept); i < len(t.keysounds); i++ {
		t.keysounds[i] = Keysound{}
	}
	t.keysounds = kept
	return removed
}

// All returns a copy of the declarations in file order.
func (t *Table) All() []Keysound {
	res := make([]Keysound, len(t.keysounds))
	copy(res, t.keysounds)
	return res
}

// IDs returns each declared ID once, in first-declared order.
func (t *Table) IDs() []bms.ID {
	seen := make(map[bms.ID]bool, len(t.keysounds))
	var res []bms.ID
	for _, k := range t.keysounds {
		if !seen[k.ID] {
			seen[k.ID] = true
			res = append(res, k.ID)
		}
	}
	return res
}

func (t *Table) Len() int {
	return len(t.keysounds)
}
