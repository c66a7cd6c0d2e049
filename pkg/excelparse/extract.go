// Package excelparse turns xlsx workbooks into structured JSON-ready
// snapshots: cell grids with normalized styles, merged ranges, conditional
// formatting rules, and charts.
package excelparse

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/elvenok1/excel-phyton-analize/pkg/excelparse/models"
	"github.com/elvenok1/excel-phyton-analize/pkg/excelparse/parser"
	"github.com/xuri/excelize/v2"
)

// Parse extracts the structured snapshot of a workbook held in memory.
// Sheets follow workbook order and the output is deterministic for a given
// input. Formulas are never evaluated; cells expose cached values only.
func Parse(data []byte) (*models.WorkbookData, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	// The same bytes back the raw part reads for conditional formats and
	// charts, which excelize does not expose.
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	parts := parser.LoadWorkbookParts(zr)

	sheetList := f.GetSheetList()
	wb := &models.WorkbookData{Sheets: make([]models.SheetData, 0, len(sheetList))}

	for _, sheetName := range sheetList {
		sheet := models.NewSheetData(sheetName)
		sheetPath := parts.SheetPath(sheetName)

		merges, err := parser.ExtractMergedRanges(f, sheetName)
		if err != nil {
			return nil, NewExtractionError(sheetName, "merged_cells", err)
		}
		for _, m := range merges {
			sheet.MergedCells = append(sheet.MergedCells, m.Ref)
		}

		sheet.Data, err = parser.ExtractGrid(f, sheetName, merges, parser.SheetExtent(zr, sheetPath))
		if err != nil {
			return nil, NewExtractionError(sheetName, "grid", err)
		}

		sheet.ConditionalFormats, err = parser.ExtractConditionalFormats(zr, sheetPath)
		if err != nil {
			return nil, NewExtractionError(sheetName, "conditional_formats", err)
		}
		sheet.Charts, err = parser.ExtractCharts(zr, sheetPath)
		if err != nil {
			return nil, NewExtractionError(sheetName, "charts", err)
		}

		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}
