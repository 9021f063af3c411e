package convert

import (
	"fmt"
	"strings"
	"unicode/utf16"

	serr "binviz/internal/errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CodeUnitMode decides what happens to UTF-16 code units above 255.
type CodeUnitMode int

const (
	// Widen keeps every digit, so such entries are 9 to 16 bits wide.
	Widen CodeUnitMode = iota
	// Latin1 rejects input containing such code units.
	Latin1
)

// TextEntry is one code unit of the input and its binary form.
type TextEntry struct {
	Char     string `yaml:"char"`
	CodeUnit uint16 `yaml:"code_unit"`
	Binary   string `yaml:"binary"`
}

// Wide reports whether the entry needs more than OctetWidth bits.
func (e TextEntry) Wide() bool {
	return len(e.Binary) > OctetWidth
}

// TextOption configures TextToBinary.
type TextOption func(*textOptions)

type textOptions struct {
	mode CodeUnitMode
}

// WithCodeUnitMode selects how code units above 255 are handled.
func WithCodeUnitMode(mode CodeUnitMode) TextOption {
	return func(o *textOptions) { o.mode = mode }
}

// TextToBinary converts each UTF-16 code unit of input to a binary string,
// preserving order. The result has exactly as many entries as input has
// UTF-16 code units.
func TextToBinary(input string, opts ...TextOption) ([]TextEntry, error) {
	o := textOptions{mode: Widen}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validation.Validate(input, validation.Required); err != nil {
		return nil, serr.NewValidationError(serr.MsgEmptyText, "text", serr.EmptyText, err)
	}

	units := utf16.Encode([]rune(input))
	entries := make([]TextEntry, 0, len(units))
	for _, u := range units {
		if o.mode == Latin1 && u > 0xFF {
			return nil, serr.NewValidationError(
				fmt.Sprintf("Character %q is outside the 0-255 range.", unitChar(u)),
				"text", serr.UnsupportedCharacter, nil)
		}
		entries = append(entries, TextEntry{
			Char:     unitChar(u),
			CodeUnit: u,
			Binary:   padBinary(uint64(u)),
		})
	}
	return entries, nil
}

// unitChar renders a code unit for display. Lone surrogate halves have no
// printable form, so they are shown as escapes.
func unitChar(u uint16) string {
	if utf16.IsSurrogate(rune(u)) {
		return fmt.Sprintf(`\u%04X`, u)
	}
	return string(rune(u))
}

// JoinBinary joins the entries' binaries with single spaces.
func JoinBinary(entries []TextEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Binary
	}
	return strings.Join(parts, " ")
}

// DecodeText reads each entry's binary back as a code unit and rebuilds the
// original string.
func DecodeText(entries []TextEntry) (string, error) {
	units := make([]uint16, len(entries))
	for i, e := range entries {
		v, err := ParseBinary(e.Binary)
		if err != nil {
			return "", serr.Wrapf(err, "entry %d", i)
		}
		if v > 0xFFFF {
			return "", serr.Newf("entry %d: %d is not a UTF-16 code unit", i, v)
		}
		units[i] = uint16(v)
	}
	return string(utf16.Decode(units)), nil
}
