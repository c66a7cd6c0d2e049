package parser

import "testing"

func TestParseRangeRef(t *testing.T) {
	tests := []struct {
		ref      string
		startCol int
		startRow int
		endCol   int
		endRow   int
		wantErr  bool
	}{
		{"A1:B4", 1, 1, 2, 4, false},
		{"$A$1:$D$10", 1, 1, 4, 10, false},
		{"C3", 3, 3, 3, 3, false},
		{"AA10:AB12", 27, 10, 28, 12, false},
		{"bogus", 0, 0, 0, 0, true},
		{"", 0, 0, 0, 0, true},
	}

	for _, tt := range tests {
		startCol, startRow, endCol, endRow, err := parseRangeRef(tt.ref)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseRangeRef(%q) expected error, got none", tt.ref)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRangeRef(%q) unexpected error: %v", tt.ref, err)
			continue
		}
		if startCol != tt.startCol || startRow != tt.startRow || endCol != tt.endCol || endRow != tt.endRow {
			t.Errorf("parseRangeRef(%q) = (%d,%d,%d,%d), expected (%d,%d,%d,%d)",
				tt.ref, startCol, startRow, endCol, endRow,
				tt.startCol, tt.startRow, tt.endCol, tt.endRow)
		}
	}
}

func TestMergedRangeContains(t *testing.T) {
	m := MergedRange{Ref: "B2:D4", StartCol: 2, StartRow: 2, EndCol: 4, EndRow: 4}

	tests := []struct {
		col, row int
		contains bool
		anchor   bool
	}{
		{2, 2, true, true},
		{3, 3, true, false},
		{4, 4, true, false},
		{1, 2, false, false},
		{5, 4, false, false},
		{2, 5, false, false},
	}

	for _, tt := range tests {
		if got := m.Contains(tt.col, tt.row); got != tt.contains {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.col, tt.row, got, tt.contains)
		}
		if got := m.IsAnchor(tt.col, tt.row); got != tt.anchor {
			t.Errorf("IsAnchor(%d, %d) = %v, expected %v", tt.col, tt.row, got, tt.anchor)
		}
	}
}
