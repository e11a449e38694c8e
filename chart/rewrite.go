package chart

import (
	"errors"

	"github.com/jsphweid/keysound/bms"
	"github.com/jsphweid/keysound/line"
)

type RewriteResult struct {
	Old bms.ID
	New bms.ID

	// Declarations is how many #WAV lines for Old were removed.
	Declarations int
	Lines        int
	Slots        int

	// Protected counts note lines on protected channels that still
	// reference Old after the rewrite.
	Protected int
}

// Dangling reports whether Old is still referenced by note data even though
// its declaration is gone.
func (r RewriteResult) Dangling() bool {
	return r.Protected > 0
}

// Rewrite removes the declaration of oldID and points every playable note
// slot at newID. The declaration is removed even when protected channels
// keep referencing oldID; check Dangling on the result.
func (d *Document) Rewrite(oldID, newID bms.ID) RewriteResult {
	res := RewriteResult{Old: oldID, New: newID}
	res.Declarations = d.keysounds.Remove(oldID)

	for _, note := range d.notes() {
		n, err := note.ReplaceKeysounds(oldID, newID)
		if errors.Is(err, line.ErrProtectedChannel) {
			if note.UsesKeysound(oldID) {
				res.Protected += 1
			}
			continue
		}
		if n > 0 {
			res.Lines += 1
			res.Slots += n
		}
	}
	return res
}
