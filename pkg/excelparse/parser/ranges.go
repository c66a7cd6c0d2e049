package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// MergedRange describes one merged region of a sheet.
type MergedRange struct {
	// Ref is the range reference as stored (e.g. "A1:B2").
	Ref string
	// StartCol, StartRow, EndCol, EndRow are the 1-based bounds, inclusive.
	StartCol int
	StartRow int
	EndCol   int
	EndRow   int
}

// Contains reports whether the 1-based coordinate lies inside the range.
func (m MergedRange) Contains(col, row int) bool {
	return col >= m.StartCol && col <= m.EndCol && row >= m.StartRow && row <= m.EndRow
}

// IsAnchor reports whether the coordinate is the top-left cell of the range.
func (m MergedRange) IsAnchor(col, row int) bool {
	return col == m.StartCol && row == m.StartRow
}

// parseRangeRef parses a range string like "A1:D10" or "$A$1:$D$10" into
// 1-based bounds. A single-cell reference yields equal start and end.
func parseRangeRef(ref string) (startCol, startRow, endCol, endRow int, err error) {
	ref = strings.ReplaceAll(ref, "$", "")

	start, end, found := strings.Cut(ref, ":")
	if !found {
		end = start
	}

	startCol, startRow, err = excelize.CellNameToCoordinates(start)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	endCol, endRow, err = excelize.CellNameToCoordinates(end)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return startCol, startRow, endCol, endRow, nil
}
