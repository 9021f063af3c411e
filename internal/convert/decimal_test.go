package convert

import (
	"strconv"
	"testing"

	serr "binviz/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalToBinaryFullRange(t *testing.T) {
	for n := MinDecimal; n <= MaxDecimal; n++ {
		got, err := DecimalToBinary(strconv.Itoa(n))
		require.NoError(t, err, n)
		require.Len(t, got, OctetWidth, n)
		assert.Regexp(t, "^[01]{8}$", got)

		v, err := ParseBinary(got)
		require.NoError(t, err)
		assert.Equal(t, uint64(n), v)
	}
}

func TestDecimalToBinary(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5", "00000101"},
		{"0", "00000000"},
		{"255", "11111111"},
		{"128", "10000000"},
		{"  42", "00101010"},
		{"+7", "00000111"},
		{"3.9", "00000011"},
		{"-0.5", "00000000"},
		{"12abc", "00001100"},
		{"007", "00000111"},
		{"0x10", "00000000"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := DecimalToBinary(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecimalToBinaryRejects(t *testing.T) {
	inputs := []string{"", "   ", "256", "-1", "-300", "abc", ".5", "1000", "99999999999999999999999", "-", "x1"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := DecimalToBinary(input)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, serr.IsValidation(err))
			assert.True(t, serr.Is(err, serr.ErrInvalidNumber))
			assert.Equal(t, "Please enter a valid number between 0 and 255.", serr.UserMessage(err))
		})
	}
}

func TestBits(t *testing.T) {
	bits := Bits("00000101")
	require.Len(t, bits, 8)

	var digits []byte
	for i, b := range bits {
		assert.Equal(t, 7-i, b.Power)
		digits = append(digits, b.Digit())
	}
	assert.Equal(t, "00000101", string(digits))
	assert.True(t, bits[5].Set)
	assert.True(t, bits[7].Set)
	assert.False(t, bits[6].Set)

	wide := Bits("1000000010101100")
	assert.Equal(t, 15, wide[0].Power)
	assert.Equal(t, 0, wide[15].Power)
}
