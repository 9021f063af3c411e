package types

// Tab is one of the conversion modes shown by the interactive front ends.
type Tab int

const (
	// DecimalTab converts a number between 0 and 255
	DecimalTab Tab = iota
	// TextTab converts each character of a text
	TextTab
	// ImageTab previews the bytes of a file
	ImageTab
)

// Tabs lists every tab in display order.
var Tabs = []Tab{DecimalTab, TextTab, ImageTab}

func (t Tab) String() string {
	switch t {
	case DecimalTab:
		return "Decimal to Binary"
	case TextTab:
		return "Text to Binary"
	case ImageTab:
		return "Image to Binary"
	}
	return "Unknown"
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(Tabs))
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	return Tab((int(t) + len(Tabs) - 1) % len(Tabs))
}
