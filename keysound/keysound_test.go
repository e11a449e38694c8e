package keysound

import (
	"errors"
	"testing"

	"github.com/jsphweid/keysound/bms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclaration(t *testing.T) {
	k, err := ParseDeclaration("#WAV0A kick 01.wav  \r")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(bms.MustDecode("0A"), k.ID)
	assert.Equal("kick 01.wav", k.File)
	assert.Equal("#WAV0A kick 01.wav", k.String())
}

func TestParseDeclarationLowercaseID(t *testing.T) {
	k, err := ParseDeclaration("#WAVzz snare.ogg")
	require.NoError(t, err)
	assert.Equal(t, bms.MaxID, k.ID)
	assert.Equal(t, "#WAVZZ snare.ogg", k.String())
}

func TestParseDeclarationWithoutFile(t *testing.T) {
	k, err := ParseDeclaration("#WAV01")
	require.NoError(t, err)
	assert.Equal(t, "", k.File)
	assert.Equal(t, "#WAV01", k.String())
}

func TestParseDeclarationRequiresSpaceAfterID(t *testing.T) {
	cases := []string{
		"#WAV01kick.wav",
		"#WAVCMD 00",
		"#WAV01\tkick.wav",
		"#WAV01_kick.wav",
	}

	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseDeclaration(raw)
			assert := assert.New(t)
			assert.Error(err)
			assert.True(errors.Is(err, ErrDeclaration))

			var declErr *DeclarationError
			assert.True(errors.As(err, &declErr))
			assert.Equal(raw, declErr.Line)
		})
	}
}

func TestParseDeclarationRejectsBadID(t *testing.T) {
	for _, raw := range []string{"#WAV", "#WAV1", "#WAV-1 a.wav", "#WAV!! b.wav"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseDeclaration(raw)
			assert := assert.New(t)
			assert.Error(err)
			assert.True(errors.Is(err, ErrDeclaration))
		})
	}
}

func TestParseDeclarationWrapsDecodeError(t *testing.T) {
	_, err := ParseDeclaration("#WAV-1 a.wav")
	assert.True(t, errors.Is(err, bms.ErrDecode))
}

func TestIsDeclaration(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsDeclaration("#WAV01 a.wav"))
	assert.False(IsDeclaration("#wav01 a.wav"))
	assert.False(IsDeclaration("#BMP01 a.bmp"))
	assert.False(IsDeclaration(" #WAV01 a.wav"))
}

func TestTableLookupLastDuplicateWins(t *testing.T) {
	table := NewTable(
		Keysound{ID: 1, File: "a.wav"},
		Keysound{ID: 2, File: "b.wav"},
		Keysound{ID: 1, File: "c.wav"},
	)

	k, ok := table.Lookup(1)

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal("c.wav", k.File)
	assert.Equal(3, table.Len())
	assert.Equal([]bms.ID{1, 2}, table.IDs())
}

func TestTableRemove(t *testing.T) {
	table := NewTable(
		Keysound{ID: 1, File: "a.wav"},
		Keysound{ID: 2, File: "b.wav"},
		Keysound{ID: 1, File: "c.wav"},
	)

	assert := assert.New(t)
	assert.Equal(2, table.Remove(1))
	assert.False(table.Contains(1))
	assert.True(table.Contains(2))
	assert.Equal([]Keysound{{ID: 2, File: "b.wav"}}, table.All())
	assert.Equal(0, table.Remove(1))
}

func TestTableAllIsACopy(t *testing.T) {
	table := NewTable(Keysound{ID: 1, File: "a.wav"})
	all := table.All()
	all[0].File = "changed.wav"

	k, _ := table.Lookup(1)
	assert.Equal(t, "a.wav", k.File)
}
