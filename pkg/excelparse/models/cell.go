// Package models defines the wire-level data structures produced by extraction.
package models

// CellData represents a single grid position within a sheet.
type CellData struct {
	// Address is the A1-style cell reference.
	Address string `json:"address"`
	// Value is the cell value: string, number, boolean, or nil for empty cells.
	Value interface{} `json:"value"`
	// Style is the normalized style diff. Present (possibly empty) on every
	// regular cell, absent on merged placeholders.
	Style *StyleRecord `json:"style,omitempty"`
	// IsMergedPart marks non-anchor positions covered by a merged range.
	IsMergedPart bool `json:"is_merged_part,omitempty"`
}
