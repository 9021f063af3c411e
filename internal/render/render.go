// Package render draws conversion results for terminals with lipgloss.
package render

import (
	"fmt"
	"sort"
	"strings"

	"binviz/internal/config"
	"binviz/internal/convert"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const cellWidth = 3

// Styles holds every style used to draw results.
type Styles struct {
	One   lipgloss.Style
	Zero  lipgloss.Style
	Label lipgloss.Style
	Title lipgloss.Style
	Char  lipgloss.Style
	Mono  lipgloss.Style
	Muted lipgloss.Style
	Alert lipgloss.Style
}

// NewStyles builds styles from the configured display colors.
func NewStyles(d config.Display) Styles {
	cell := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color(d.TextColor))

	return Styles{
		One:   cell.Background(lipgloss.Color(d.OneColor)),
		Zero:  cell.Background(lipgloss.Color(d.ZeroColor)),
		Label: lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Faint(true),
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(d.Accent)),
		Char:  lipgloss.NewStyle().Width(8).Bold(true),
		Mono:  lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle().Faint(true),
		Alert: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(d.Error)).
			Foreground(lipgloss.Color(d.Error)).
			Padding(0, 1),
	}
}

// DefaultStyles uses the default theme.
func DefaultStyles() Styles {
	return NewStyles(config.New().Display)
}

var superscripts = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")

// Superscript writes n with superscript digits.
func Superscript(n int) string {
	var sb strings.Builder
	for _, r := range fmt.Sprint(n) {
		if r >= '0' && r <= '9' {
			sb.WriteRune(superscripts[r-'0'])
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// BitGrid draws one colored cell per bit, most significant first.
func (s Styles) BitGrid(bits []convert.Bit) string {
	cells := make([]string, 0, len(bits))
	for _, b := range bits {
		style := s.Zero
		if b.Set {
			style = s.One
		}
		cells = append(cells, style.Render(string(b.Digit())))
	}
	return strings.Join(cells, " ")
}

// PowerLabels draws 2ⁿ under each cell of BitGrid.
func (s Styles) PowerLabels(bits []convert.Bit) string {
	labels := make([]string, 0, len(bits))
	for _, b := range bits {
		labels = append(labels, s.Label.Render("2"+Superscript(b.Power)))
	}
	return strings.Join(labels, " ")
}

// Decimal draws the result of a decimal conversion.
func (s Styles) Decimal(binary string) string {
	bits := convert.Bits(binary)
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Binary representation:")+" "+binary,
		"",
		s.BitGrid(bits),
		s.PowerLabels(bits),
	)
}

// Text draws one row per entry followed by the full binary string.
func (s Styles) Text(entries []convert.TextEntry) string {
	rows := []string{s.Title.Render("Binary representation:"), ""}
	for _, e := range entries {
		char := e.Char
		switch char {
		case " ":
			char = "␠"
		case "\n":
			char = "⏎"
		case "\t":
			char = "⇥"
		}
		row := s.Char.Render(char) + s.BitGrid(convert.Bits(e.Binary))
		if e.Wide() {
			row += s.Muted.Render(fmt.Sprintf("  %d bits", len(e.Binary)))
		}
		rows = append(rows, row)
	}
	rows = append(rows, "", s.Title.Render("Full binary string:"), s.Mono.Render(convert.JoinBinary(entries)))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Image draws a file preview, wrapping the dump to width when width > 0.
func (s Styles) Image(p *convert.Preview, width int) string {
	size := "size unknown"
	if p.Size >= 0 {
		size = humanize.Bytes(uint64(p.Size))
	}
	header := fmt.Sprintf("%s (%s, %s)", p.Name, size, p.MIME)
	if p.Name == "" {
		header = fmt.Sprintf("(%s, %s)", size, p.MIME)
	}

	title := fmt.Sprintf("Binary representation (first %d characters):", len(strings.TrimSuffix(p.Dump, convert.Ellipsis)))
	if !p.Truncated {
		title = "Binary representation:"
	}

	dump := s.Mono
	if width > 0 {
		dump = dump.Width(width)
	}
	rows := []string{s.Muted.Render(header)}
	if len(p.Metadata) > 0 {
		keys := make([]string, 0, len(p.Metadata))
		for k := range p.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rows = append(rows, s.Muted.Render(k+": "+p.Metadata[k]))
		}
	}
	rows = append(rows, s.Title.Render(title), dump.Render(p.Dump))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Error draws the alert box. An empty message draws nothing.
func (s Styles) Error(msg string) string {
	if msg == "" {
		return ""
	}
	return s.Alert.Render("Error: " + msg)
}
