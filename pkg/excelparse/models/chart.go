package models

// Chart represents one chart embedded in a sheet.
type Chart struct {
	// Type is the chart type name (Bar, Line, Pie, ...), "unknown" when the
	// chart part carries no recognized plot element.
	Type string `json:"type"`
	// Title is the chart title, null when the chart has none.
	Title *string `json:"title"`
	// Anchor is the cell range the chart is anchored to ("A1:F10"), or a
	// descriptive rendering for anchors without a to-marker.
	Anchor string `json:"anchor"`
	// Series is the list of data series in document order.
	Series []ChartSeries `json:"series"`
}

// ChartSeries represents one data series of a chart. Each field is null when
// the chart part does not carry it.
type ChartSeries struct {
	// Header is the series display name from the cached or literal tx value.
	Header *string `json:"header"`
	// Values is the range reference backing the series values.
	Values *string `json:"values"`
	// Categories is the range reference backing the series categories.
	Categories *string `json:"categories"`
}
