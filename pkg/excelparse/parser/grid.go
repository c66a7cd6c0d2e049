package parser

import (
	"strconv"

	"github.com/elvenok1/excel-phyton-analize/pkg/excelparse/models"
	"github.com/xuri/excelize/v2"
)

// ExtractMergedRanges returns the sheet's merged regions in stored order.
func ExtractMergedRanges(f *excelize.File, sheetName string) ([]MergedRange, error) {
	mcs, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	result := make([]MergedRange, 0, len(mcs))
	for _, mc := range mcs {
		ref := mc.GetStartAxis() + ":" + mc.GetEndAxis()
		startCol, startRow, endCol, endRow, err := parseRangeRef(ref)
		if err != nil {
			continue
		}
		result = append(result, MergedRange{
			Ref:      ref,
			StartCol: startCol,
			StartRow: startRow,
			EndCol:   endCol,
			EndRow:   endRow,
		})
	}
	return result, nil
}

// Extent is a used-range bounding box with 1-based inclusive bounds. The
// zero Extent means no cells.
type Extent struct {
	MinRow int
	MinCol int
	MaxRow int
	MaxCol int
}

// expand widens the extent to include the 1-based coordinate.
func (e Extent) expand(col, row int) Extent {
	if e.MaxRow == 0 {
		return Extent{MinRow: row, MinCol: col, MaxRow: row, MaxCol: col}
	}
	if row < e.MinRow {
		e.MinRow = row
	}
	if row > e.MaxRow {
		e.MaxRow = row
	}
	if col < e.MinCol {
		e.MinCol = col
	}
	if col > e.MaxCol {
		e.MaxCol = col
	}
	return e
}

// ExtractGrid extracts the rectangular cell grid over the sheet's used
// range, including empty cells inside it. stored is the extent of cell
// records in the worksheet part; it covers cells that carry only a style,
// which GetRows trims from row tails. Non-anchor positions of merged
// regions become placeholders with a nil value and no style; every other
// cell carries its typed value and normalized style.
func ExtractGrid(f *excelize.File, sheetName string, merges []MergedRange, stored Extent) ([][]models.CellData, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	bounds := gridBounds(rows, merges, stored)
	if bounds.MaxRow == 0 {
		return [][]models.CellData{}, nil
	}

	grid := make([][]models.CellData, 0, bounds.MaxRow-bounds.MinRow+1)
	for row := bounds.MinRow; row <= bounds.MaxRow; row++ {
		var raw []string
		if row <= len(rows) {
			raw = rows[row-1]
		}

		outRow := make([]models.CellData, 0, bounds.MaxCol-bounds.MinCol+1)
		for col := bounds.MinCol; col <= bounds.MaxCol; col++ {
			cellName, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}

			if covered, anchor := mergedAt(merges, col, row); covered && !anchor {
				outRow = append(outRow, models.CellData{
					Address:      cellName,
					IsMergedPart: true,
				})
				continue
			}

			formatted := ""
			if col <= len(raw) {
				formatted = raw[col-1]
			}
			outRow = append(outRow, models.CellData{
				Address: cellName,
				Value:   cellValue(f, sheetName, cellName, formatted),
				Style:   NormalizeStyle(f, sheetName, cellName),
			})
		}
		grid = append(grid, outRow)
	}
	return grid, nil
}

// gridBounds unions the stored-cell extent with cached-value rows and merge
// extents. Value rows contribute their rightmost cell; exact minima come
// from the stored records, so the union never widens past real cells.
func gridBounds(rows [][]string, merges []MergedRange, stored Extent) Extent {
	b := stored
	for i, row := range rows {
		if len(row) > 0 {
			b = b.expand(len(row), i+1)
		}
	}
	for _, m := range merges {
		b = b.expand(m.StartCol, m.StartRow)
		b = b.expand(m.EndCol, m.EndRow)
	}
	return b
}

func mergedAt(merges []MergedRange, col, row int) (covered, anchor bool) {
	for _, m := range merges {
		if m.Contains(col, row) {
			return true, m.IsAnchor(col, row)
		}
	}
	return false, false
}

// cellValue converts the formatted value from GetRows into a typed value.
// Booleans surface as bool, string-typed cells never re-parse as numbers,
// and empty cells yield nil. Formula cells contribute their cached value
// only; formulas are never evaluated.
func cellValue(f *excelize.File, sheetName, cell, formatted string) interface{} {
	if formatted == "" {
		return nil
	}

	ctype, err := f.GetCellType(sheetName, cell)
	if err == nil {
		switch ctype {
		case excelize.CellTypeBool:
			return formatted == "TRUE" || formatted == "1"
		case excelize.CellTypeInlineString, excelize.CellTypeSharedString,
			excelize.CellTypeFormula, excelize.CellTypeDate, excelize.CellTypeError:
			return formatted
		}
	}
	return parseValue(formatted)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
