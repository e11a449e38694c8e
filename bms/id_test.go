package bms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDecodeKnownTokens(t *testing.T) {
	cases := map[string]ID{
		"00": 0,
		"01": 1,
		"0Z": 35,
		"10": 36,
		"11": 37,
		"S2": 1010,
		"ZZ": MaxID,
	}

	for token, want := range cases {
		t.Run(token, func(t *testing.T) {
			got, err := Decode(token)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(want, got)
		})
	}
}

func TestDecodeIsCaseInsensitive(t *testing.T) {
	lower, err := Decode("s2")
	assert.NoError(t, err)
	upper, err := Decode("S2")
	assert.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestDecodeDoesNotCheckLength(t *testing.T) {
	id, err := Decode("100")
	assert.NoError(t, err)
	assert.Equal(t, ID(1296), id)
}

func TestDecodeRejectsBadTokens(t *testing.T) {
	for _, token := range []string{"", "0-", " 1", "+1", "é1", "0_"} {
		t.Run(token, func(t *testing.T) {
			_, err := Decode(token)
			assert := assert.New(t)
			assert.Error(err)
			assert.True(errors.Is(err, ErrDecode))

			var decErr *DecodeError
			assert.True(errors.As(err, &decErr))
			assert.Equal(token, decErr.Token)
		})
	}
}

func TestEncodePadsToTwoCharacters(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("00", Encode(0))
	assert.Equal("0A", Encode(10))
	assert.Equal("10", Encode(36))
	assert.Equal("ZZ", Encode(MaxID))
}

func TestEncodePanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Encode(MaxID + 1) })
}

func TestStringFallsBackToDecimal(t *testing.T) {
	assert.Equal(t, "0B", ID(11).String())
	assert.Equal(t, "1296", ID(1296).String())
}

func TestCodecRoundTripAllIDs(t *testing.T) {
	for id := ID(0); id <= MaxID; id++ {
		s := Encode(id)
		if len(s) != 2 {
			t.Fatalf("Encode(%d) = %q, want 2 characters", id, s)
		}
		back, err := Decode(s)
		if err != nil || back != id {
			t.Fatalf("Decode(Encode(%d)) = %d, %v", id, back, err)
		}
	}
}

func testDecodeLowerMatchesUpper_Properties(t *rapid.T) {
	token := rapid.StringMatching(`[0-9A-Z]{2}`).Draw(t, "token")
	upper, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode(%q): %v", token, err)
	}
	lower, err := Decode(toLower(token))
	if err != nil {
		t.Fatalf("Decode(lower %q): %v", token, err)
	}
	if upper != lower {
		t.Fatalf("case changed value of %q: %d vs %d", token, upper, lower)
	}
	if Encode(upper) != token {
		t.Fatalf("Encode(Decode(%q)) = %q", token, Encode(upper))
	}
}

func TestDecodeLowerMatchesUpper_Properties(t *testing.T) {
	rapid.Check(t, testDecodeLowerMatchesUpper_Properties)
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
