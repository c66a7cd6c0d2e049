package models

// StyleRecord is the minimal style description of a cell: only attributes
// that differ from workbook defaults are present. An unstyled cell marshals
// as an empty object.
type StyleRecord struct {
	// Font holds font attributes when any differ from the default.
	Font *FontInfo `json:"font,omitempty"`
	// Fill holds the fill pattern and colors when a pattern is set.
	Fill *FillInfo `json:"fill,omitempty"`
	// Border holds per-side line descriptions for sides that have one.
	Border *BorderInfo `json:"border,omitempty"`
	// Alignment holds alignment attributes when any are set.
	Alignment *AlignmentInfo `json:"alignment,omitempty"`
	// NumFmt is the number format code, omitted for General.
	NumFmt string `json:"numFmt,omitempty"`
}

// FontInfo describes non-default font attributes.
type FontInfo struct {
	// Name is the font face name.
	Name string `json:"name,omitempty"`
	// Sz is the font size in points.
	Sz float64 `json:"sz,omitempty"`
	// Bold is present only when true.
	Bold bool `json:"bold,omitempty"`
	// Italic is present only when true.
	Italic bool `json:"italic,omitempty"`
	// Color is the resolved font color reference.
	Color string `json:"color,omitempty"`
}

// FillInfo describes a cell fill.
type FillInfo struct {
	// Pattern is the OOXML pattern type name (e.g. solid).
	Pattern string `json:"pattern"`
	// StartColor is the foreground color reference.
	StartColor string `json:"start_color,omitempty"`
	// EndColor is the background color reference.
	EndColor string `json:"end_color,omitempty"`
}

// BorderInfo describes cell borders, one entry per side that has a line.
type BorderInfo struct {
	Left   *BorderSide `json:"left,omitempty"`
	Right  *BorderSide `json:"right,omitempty"`
	Top    *BorderSide `json:"top,omitempty"`
	Bottom *BorderSide `json:"bottom,omitempty"`
}

// BorderSide describes one border line.
type BorderSide struct {
	// Style is the OOXML border style name (thin, medium, dashed, ...).
	Style string `json:"style"`
	// Color is the resolved line color reference.
	Color string `json:"color,omitempty"`
}

// AlignmentInfo describes non-default alignment attributes.
type AlignmentInfo struct {
	// Horizontal is the horizontal alignment (left, center, right, ...).
	Horizontal string `json:"horizontal,omitempty"`
	// Vertical is the vertical alignment (top, center, bottom, ...).
	Vertical string `json:"vertical,omitempty"`
	// WrapText is present only when true.
	WrapText bool `json:"wrap_text,omitempty"`
}
