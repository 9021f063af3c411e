package convert

import (
	"strconv"
	"strings"
)

// OctetWidth is the minimum number of digits in a binary string.
const OctetWidth = 8

// Bit is one cell of a bit visualization.
type Bit struct {
	Set   bool
	Power int // position as a power of two; the leftmost bit has the highest power
}

// Digit returns '1' or '0'.
func (b Bit) Digit() byte {
	if b.Set {
		return '1'
	}
	return '0'
}

// padBinary formats v in base 2, left-padded with zeros to at least
// OctetWidth digits. Wider values keep all of their digits.
func padBinary(v uint64) string {
	s := strconv.FormatUint(v, 2)
	if len(s) >= OctetWidth {
		return s
	}
	return strings.Repeat("0", OctetWidth-len(s)) + s
}

// Bits splits a binary string into cells, most significant first. Characters
// other than '0' and '1' are treated as clear bits.
func Bits(binary string) []Bit {
	bits := make([]Bit, len(binary))
	for i := 0; i < len(binary); i++ {
		bits[i] = Bit{
			Set:   binary[i] == '1',
			Power: len(binary) - 1 - i,
		}
	}
	return bits
}

// ParseBinary interprets s as an unsigned base-2 number.
func ParseBinary(s string) (uint64, error) {
	return strconv.ParseUint(s, 2, 64)
}
