package models

// ConditionalFormatRule represents one conditional formatting rule applied to
// a cell range. The base triple (range, type, priority) is always present;
// at most one detail payload follows, depending on what the rule carries.
type ConditionalFormatRule struct {
	// Range is the sqref the rule applies to (e.g. "A1:A10").
	Range string `json:"range"`
	// Type is the rule type tag as stored (colorScale, dataBar, expression, ...),
	// null when the rule omits the attribute.
	Type *string `json:"type"`
	// Priority is the rule evaluation priority.
	Priority int `json:"priority"`
	// ColorScale is present for color-scale rules.
	ColorScale *ColorScale `json:"color_scale,omitempty"`
	// DataBar is present for data-bar rules.
	DataBar *DataBar `json:"data_bar,omitempty"`
	// Formula is the first formula of formula-driven rules.
	Formula string `json:"formula,omitempty"`
}

// ColorScale holds the stop colors and threshold values of a color-scale
// rule. Colors[i] corresponds to Values[i]; min/max stops without an
// explicit threshold carry nil.
type ColorScale struct {
	Colors []string      `json:"colors"`
	Values []interface{} `json:"values"`
}

// DataBar holds the bar color and length bounds of a data-bar rule.
type DataBar struct {
	// Color is the bar color reference.
	Color string `json:"color,omitempty"`
	// MinLength is the shortest bar as a percentage of the cell width.
	MinLength int `json:"min_length"`
	// MaxLength is the longest bar as a percentage of the cell width.
	MaxLength int `json:"max_length"`
}
