package bms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ID is a decoded keysound identifier. Charts store it as two base-36
// characters, so valid values are 0 through MaxID.
type ID uint64

const (
	// MaxID is "ZZ", the largest value two base-36 digits can hold.
	MaxID ID = 36*36 - 1

	idWidth = 2
)

var ErrDecode = errors.New("invalid base-36 token")

type DecodeError struct {
	Token string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %q", ErrDecode.Error(), e.Token)
	}
	return fmt.Sprintf("%s %q: %s", ErrDecode.Error(), e.Token, e.Err.Error())
}

func (e *DecodeError) Unwrap() error { return ErrDecode }

// Decode reads token as a base-36 number. Lowercase letters are accepted.
// Length is not checked; callers pass the two-character chunk they cut.
func Decode(token string) (ID, error) {
	if token == "" {
		return 0, &DecodeError{Token: token}
	}
	for _, c := range token {
		if !isAlnum(c) {
			return 0, &DecodeError{Token: token}
		}
	}
	n, err := strconv.ParseUint(strings.ToUpper(token), 36, 64)
	if err != nil {
		return 0, &DecodeError{Token: token, Err: err}
	}
	return ID(n), nil
}

func MustDecode(token string) ID {
	id, err := Decode(token)
	if err != nil {
		panic(err)
	}
	return id
}

// Encode renders id as two uppercase base-36 characters. It panics for
// ids above MaxID since the chart format cannot hold them.
func Encode(id ID) string {
	if id > MaxID {
		panic(fmt.Sprintf("keysound id %d does not fit in %d base-36 digits", id, idWidth))
	}
	s := strings.ToUpper(strconv.FormatUint(uint64(id), 36))
	if len(s) < idWidth {
		s = strings.Repeat("0", idWidth-len(s)) + s
	}
	return s
}

func (id ID) String() string {
	if id > MaxID {
		return strconv.FormatUint(uint64(id), 10)
	}
	return Encode(id)
}

func isAlnum(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
