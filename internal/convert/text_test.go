package convert

import (
	"strings"
	"testing"
	"unicode/utf16"

	serr "binviz/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextToBinary(t *testing.T) {
	entries, err := TextToBinary("Hi")
	require.NoError(t, err)
	assert.Equal(t, []TextEntry{
		{Char: "H", CodeUnit: 'H', Binary: "01001000"},
		{Char: "i", CodeUnit: 'i', Binary: "01101001"},
	}, entries)
	assert.Equal(t, "01001000 01101001", JoinBinary(entries))
}

func TestTextToBinaryEmpty(t *testing.T) {
	entries, err := TextToBinary("")
	require.Error(t, err)
	assert.Nil(t, entries)
	assert.True(t, serr.Is(err, serr.ErrEmptyText))
	assert.Equal(t, "Please enter some text.", serr.UserMessage(err))
}

func TestTextRoundTrip(t *testing.T) {
	var sb strings.Builder
	for r := rune(0); r <= 0xFF; r++ {
		sb.WriteRune(r)
	}
	inputs := []string{"Hello, World!", "a", " ", "tab\tand\nnewline", "café ÿ", sb.String()}

	for _, input := range inputs {
		entries, err := TextToBinary(input, WithCodeUnitMode(Latin1))
		require.NoError(t, err, input)
		assert.Len(t, entries, len(utf16.Encode([]rune(input))))
		for _, e := range entries {
			assert.Len(t, e.Binary, OctetWidth)
			assert.False(t, e.Wide())
		}

		decoded, err := DecodeText(entries)
		require.NoError(t, err)
		assert.Equal(t, input, decoded)
	}
}

func TestTextWideCodeUnits(t *testing.T) {
	entries, err := TextToBinary("€a")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "€", entries[0].Char)
	assert.Equal(t, uint16(0x20AC), entries[0].CodeUnit)
	assert.Equal(t, "10000010101100", entries[0].Binary)
	assert.True(t, entries[0].Wide())
	assert.False(t, entries[1].Wide())

	decoded, err := DecodeText(entries)
	require.NoError(t, err)
	assert.Equal(t, "€a", decoded)
}

func TestTextSurrogatePairs(t *testing.T) {
	entries, err := TextToBinary("😀")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, `\uD83D`, entries[0].Char)
	assert.Equal(t, `\uDE00`, entries[1].Char)
	assert.Len(t, entries[0].Binary, 16)

	decoded, err := DecodeText(entries)
	require.NoError(t, err)
	assert.Equal(t, "😀", decoded)
}

func TestTextLatin1Rejects(t *testing.T) {
	_, err := TextToBinary("price: 5€", WithCodeUnitMode(Latin1))
	require.Error(t, err)
	assert.True(t, serr.IsValidation(err))
	assert.Equal(t, `Character "€" is outside the 0-255 range.`, serr.UserMessage(err))
}

func TestDecodeTextInvalid(t *testing.T) {
	_, err := DecodeText([]TextEntry{{Binary: "0102"}})
	assert.Error(t, err)
}
