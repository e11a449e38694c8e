package line

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/keysound/bms"
	"golang.org/x/exp/slices"
)

var notePattern = regexp.MustCompile(`^#[A-Za-z0-9]{5}:`)

var (
	ErrNotNote          = errors.New("not a note line")
	ErrProtectedChannel = errors.New("channel is protected")
)

// bodyOffset is where slot data begins: "#" + measure + channel + ":".
const bodyOffset = 7

// playableBase is channel "10". Everything below it is background or
// control data.
var playableBase = bms.MustDecode("10")

type NoteError struct {
	Line   string
	Reason string
}

func (e *NoteError) Error() string {
	return fmt.Sprintf("%s: %s: %q", ErrNotNote.Error(), e.Reason, e.Line)
}

func (e *NoteError) Unwrap() error { return ErrNotNote }

type ChannelError struct {
	Channel bms.ID
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProtectedChannel.Error(), e.Channel)
}

func (e *ChannelError) Unwrap() error { return ErrProtectedChannel }

type Note struct {
	Measure int
	Channel bms.ID
	Slots   []bms.ID
}

// ParseNote parses "#MMMCC:" followed by two-character slot tokens.
func ParseNote(raw string) (*Note, error) {
	raw = Trim(raw)
	if !notePattern.MatchString(raw) {
		return nil, &NoteError{Line: raw, Reason: "no #MMMCC: prefix"}
	}

	measure, err := parseMeasure(raw[1:4])
	if err != nil {
		return nil, &NoteError{Line: raw, Reason: err.Error()}
	}
	channel, err := bms.Decode(raw[4:6])
	if err != nil {
		return nil, &NoteError{Line: raw, Reason: err.Error()}
	}

	body := raw[bodyOffset:]
	if len(body)%2 != 0 {
		return nil, &NoteError{Line: raw, Reason: "odd number of body characters"}
	}

	slots := make([]bms.ID, 0, len(body)/2)
	for i := 0; i < len(body); i += 2 {
		id, err := bms.Decode(body[i : i+2])
		if err != nil {
			return nil, &NoteError{Line: raw, Reason: err.Error()}
		}
		slots = append(slots, id)
	}

	return &Note{Measure: measure, Channel: channel, Slots: slots}, nil
}

func parseMeasure(s string) (int, error) {
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("measure %q is not decimal", s)
		}
	}
	return strconv.Atoi(s)
}

func (n *Note) String() string {
	var b strings.Builder
	b.Grow(bodyOffset + len(n.Slots)*2)
	fmt.Fprintf(&b, "#%03d%s:", n.Measure, bms.Encode(n.Channel))
	for _, id := range n.Slots {
		b.WriteString(bms.Encode(id))
	}
	return b.String()
}

// KeysoundsUsed returns each distinct slot value once, in ascending order.
func (n *Note) KeysoundsUsed() []bms.ID {
	seen := make(map[bms.ID]bool, len(n.Slots))
	var res []bms.ID
	for _, id := range n.Slots {
		if !seen[id] {
			seen[id] = true
			res = append(res, id)
		}
	}
	slices.Sort(res)
	return res
}

func (n *Note) UsesKeysound(id bms.ID) bool {
	for _, slot := range n.Slots {
		if slot == id {
			return true
		}
	}
	return false
}

// ReplaceKeysounds swaps every oldID slot for newID and returns how many
// slots changed. Protected channels are left alone and report a
// *ChannelError, so a zero count always means oldID was not present.
func (n *Note) ReplaceKeysounds(oldID, newID bms.ID) (int, error) {
	if !Playable(n.Channel) {
		return 0, &ChannelError{Channel: n.Channel}
	}

	var replaced int
	for i, slot := range n.Slots {
		if slot == oldID {
			n.Slots[i] = newID
			replaced += 1
		}
	}
	return replaced, nil
}

// Playable reports whether keysounds on channel may be rewritten. Channels
// from "10" up are always eligible. Everything below, the BGM lane "01"
// included, carries background or control data.
func Playable(channel bms.ID) bool {
	return channel >= playableBase
}
