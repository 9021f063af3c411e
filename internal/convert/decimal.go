package convert

import (
	"strconv"
	"strings"
	"unicode"

	serr "binviz/internal/errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Bounds of the decimal converter.
const (
	MinDecimal = 0
	MaxDecimal = 255
)

var decimalRules = []validation.Rule{
	validation.Min(MinDecimal),
	validation.Max(MaxDecimal),
}

// DecimalToBinary converts a decimal string in [0,255] to its 8-bit binary
// form. The input is parsed first and range-checked second, so "3.9" becomes
// 3 and " 42" becomes 42.
func DecimalToBinary(input string) (string, error) {
	n, err := ParseDecimal(input)
	if err != nil {
		return "", err
	}
	return padBinary(uint64(n)), nil
}

// ParseDecimal reads the leading base-10 integer of input and checks that it
// lies in [0,255].
func ParseDecimal(input string) (int, error) {
	n, ok := parseLeadingInt(input)
	if !ok {
		return 0, serr.NewValidationError(serr.MsgDecimalRange, "decimal", serr.InvalidNumber, nil)
	}
	if err := validation.Validate(n, decimalRules...); err != nil {
		return 0, serr.NewValidationError(serr.MsgDecimalRange, "decimal", serr.InvalidNumber, err)
	}
	return int(n), nil
}

// parseLeadingInt skips leading whitespace, accepts an optional sign and
// consumes digits up to the first non-digit. It reports false when no digit
// was found. Values too large for int64 saturate, which keeps them out of
// range without failing the parse.
func parseLeadingInt(s string) (int64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// only ErrRange is possible on an all-digit string
		n = 1<<63 - 1
	}
	if neg {
		n = -n
	}
	return n, true
}
