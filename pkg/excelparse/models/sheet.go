package models

// SheetData represents the full extracted snapshot of a single sheet.
// Collection fields are always non-nil so they marshal as [] when empty.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// MergedCells lists merged ranges in stored order (e.g. "A1:B2").
	MergedCells []string `json:"merged_cells"`
	// Data is the rectangular row-major cell grid, including empty cells.
	Data [][]CellData `json:"data"`
	// ConditionalFormats lists conditional formatting rules in stored order.
	ConditionalFormats []ConditionalFormatRule `json:"conditional_formats"`
	// Charts lists charts anchored to the sheet.
	Charts []Chart `json:"charts"`
}

// NewSheetData returns a SheetData for name with all collections allocated.
func NewSheetData(name string) SheetData {
	return SheetData{
		Name:               name,
		MergedCells:        []string{},
		Data:               [][]CellData{},
		ConditionalFormats: []ConditionalFormatRule{},
		Charts:             []Chart{},
	}
}
