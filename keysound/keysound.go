package keysound

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/keysound/bms"
	"github.com/jsphweid/keysound/line"
)

const (
	Prefix = "#WAV"

	idStart   = len(Prefix)
	idEnd     = idStart + 2
	fileStart = idEnd + 1
)

var ErrDeclaration = errors.New("malformed keysound declaration")

type DeclarationError struct {
	Line string
	Err  error
}

func (e *DeclarationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", ErrDeclaration.Error(), e.Line)
	}
	return fmt.Sprintf("%s: %q: %s", ErrDeclaration.Error(), e.Line, e.Err.Error())
}

func (e *DeclarationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDeclaration}
	}
	return []error{ErrDeclaration, e.Err}
}

// Keysound binds an ID to the audio file named by a #WAV line. File is kept
// exactly as written.
type Keysound struct {
	ID   bms.ID
	File string
}

func (k Keysound) String() string {
	if k.File == "" {
		return Prefix + bms.Encode(k.ID)
	}
	return fmt.Sprintf("%s%s %s", Prefix, bms.Encode(k.ID), k.File)
}

func IsDeclaration(raw string) bool {
	return strings.HasPrefix(raw, Prefix)
}

// ParseDeclaration reads "#WAVxx filename". The ID must be followed by a
// single space or the end of the line. Unlike note lines, a declaration
// that breaks this never degrades to plain text.
func ParseDeclaration(raw string) (Keysound, error) {
	raw = line.Trim(raw)
	if !IsDeclaration(raw) || len(raw) < idEnd {
		return Keysound{}, &DeclarationError{Line: raw}
	}

	id, err := bms.Decode(raw[idStart:idEnd])
	if err != nil {
		return Keysound{}, &DeclarationError{Line: raw, Err: err}
	}
	if len(raw) > idEnd && raw[idEnd] != ' ' {
		return Keysound{}, &DeclarationError{Line: raw, Err: fmt.Errorf("expected a space after the id, got %q", raw[idEnd])}
	}

	var file string
	if len(raw) > fileStart {
		file = raw[fileStart:]
	}
	return Keysound{ID: id, File: file}, nil
}
