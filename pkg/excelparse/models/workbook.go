package models

// WorkbookData is the top-level extraction result.
type WorkbookData struct {
	// Sheets holds per-sheet snapshots in workbook order.
	Sheets []SheetData `json:"sheets"`
}
