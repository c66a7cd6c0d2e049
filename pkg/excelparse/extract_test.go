package excelparse

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildTestWorkbook serializes a workbook exercising every extractor: merged
// cells, typed values, styles, a conditional format, a chart, and a second
// sheet that stays plain.
func buildTestWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Informe")
	if err := f.MergeCell(sheet, "A1", "B1"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}
	f.SetCellValue(sheet, "A2", "Región")
	f.SetCellValue(sheet, "B2", 1500)
	f.SetCellValue(sheet, "A3", "Activo")
	f.SetCellValue(sheet, "B3", true)

	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Family: "Arial"},
	})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle(sheet, "A2", "A2", styleID); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}

	err = f.SetConditionalFormat(sheet, "B2:B10", []excelize.ConditionalFormatOptions{{
		Type:     "3_color_scale",
		Criteria: "=",
		MinType:  "min",
		MidType:  "percentile",
		MidValue: "50",
		MaxType:  "max",
		MinColor: "#F8696B",
		MidColor: "#FFEB84",
		MaxColor: "#63BE7B",
	}})
	if err != nil {
		t.Fatalf("SetConditionalFormat failed: %v", err)
	}

	err = f.AddChart(sheet, "E1", &excelize.Chart{
		Type:  excelize.Col,
		Title: []excelize.RichTextRun{{Text: "Ventas"}},
		Series: []excelize.ChartSeries{{
			Name:       "Sheet1!$B$2",
			Categories: "Sheet1!$A$2:$A$3",
			Values:     "Sheet1!$B$2:$B$3",
		}},
	})
	if err != nil {
		t.Fatalf("AddChart failed: %v", err)
	}

	if _, err := f.NewSheet("Hoja2"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Hoja2", "A1", "solo texto")

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return buf.Bytes()
}

func TestParseWorkbook(t *testing.T) {
	wb, err := Parse(buildTestWorkbook(t))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(wb.Sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(wb.Sheets))
	}
	if wb.Sheets[0].Name != "Sheet1" || wb.Sheets[1].Name != "Hoja2" {
		t.Errorf("unexpected sheet order: %q, %q", wb.Sheets[0].Name, wb.Sheets[1].Name)
	}

	s := wb.Sheets[0]
	if len(s.MergedCells) != 1 || s.MergedCells[0] != "A1:B1" {
		t.Errorf("unexpected merged cells: %v", s.MergedCells)
	}

	if len(s.Data) != 3 || len(s.Data[0]) != 2 {
		t.Fatalf("unexpected grid shape: %d rows", len(s.Data))
	}
	anchor := s.Data[0][0]
	if anchor.Address != "A1" || anchor.Value != "Informe" || anchor.IsMergedPart {
		t.Errorf("unexpected A1: %+v", anchor)
	}
	if anchor.Style == nil {
		t.Error("A1 should carry a style record")
	}
	placeholder := s.Data[0][1]
	if placeholder.Address != "B1" || !placeholder.IsMergedPart {
		t.Errorf("unexpected B1: %+v", placeholder)
	}
	if placeholder.Value != nil || placeholder.Style != nil {
		t.Errorf("placeholder should have nil value and style: %+v", placeholder)
	}
	if s.Data[1][1].Value != int64(1500) {
		t.Errorf("expected B2 = int64(1500), got %T(%v)", s.Data[1][1].Value, s.Data[1][1].Value)
	}
	if s.Data[2][1].Value != true {
		t.Errorf("expected B3 = true, got %T(%v)", s.Data[2][1].Value, s.Data[2][1].Value)
	}
	styled := s.Data[1][0]
	if styled.Style == nil || styled.Style.Font == nil {
		t.Fatalf("expected font info on A2: %+v", styled)
	}
	if !styled.Style.Font.Bold || styled.Style.Font.Name != "Arial" {
		t.Errorf("unexpected A2 font: %+v", styled.Style.Font)
	}

	if len(s.ConditionalFormats) != 1 {
		t.Fatalf("expected 1 conditional format, got %d", len(s.ConditionalFormats))
	}
	rule := s.ConditionalFormats[0]
	if rule.Range != "B2:B10" || rule.Type == nil || *rule.Type != "colorScale" || rule.Priority != 1 {
		t.Errorf("unexpected rule: %+v", rule)
	}
	if rule.ColorScale == nil {
		t.Fatal("expected color scale payload")
	}
	if len(rule.ColorScale.Colors) != 3 || len(rule.ColorScale.Values) != 3 {
		t.Fatalf("expected 3 colors and 3 values, got %d/%d",
			len(rule.ColorScale.Colors), len(rule.ColorScale.Values))
	}
	if !strings.EqualFold(rule.ColorScale.Colors[0], "FFF8696B") {
		t.Errorf("unexpected first color %q", rule.ColorScale.Colors[0])
	}
	if rule.ColorScale.Values[0] != nil || rule.ColorScale.Values[1] != 50.0 {
		t.Errorf("unexpected threshold values: %v", rule.ColorScale.Values)
	}

	if len(s.Charts) != 1 {
		t.Fatalf("expected 1 chart, got %d", len(s.Charts))
	}
	chart := s.Charts[0]
	if chart.Type != "Bar" {
		t.Errorf("unexpected chart type %q", chart.Type)
	}
	if chart.Title == nil || *chart.Title != "Ventas" {
		t.Errorf("unexpected chart title: %v", chart.Title)
	}
	if !strings.HasPrefix(chart.Anchor, "E1:") {
		t.Errorf("expected anchor starting at E1, got %q", chart.Anchor)
	}
	if len(chart.Series) != 1 {
		t.Fatalf("expected 1 series, got %d", len(chart.Series))
	}
	series := chart.Series[0]
	// Series names written as references carry no cached text.
	if series.Header != nil {
		t.Errorf("expected nil header, got %q", *series.Header)
	}
	if series.Values == nil || *series.Values != "Sheet1!$B$2:$B$3" {
		t.Errorf("unexpected series values: %v", series.Values)
	}
	if series.Categories == nil || *series.Categories != "Sheet1!$A$2:$A$3" {
		t.Errorf("unexpected series categories: %v", series.Categories)
	}

	// The plain sheet keeps empty, non-nil collections.
	plain := wb.Sheets[1]
	if plain.MergedCells == nil || len(plain.MergedCells) != 0 {
		t.Errorf("unexpected merged cells: %v", plain.MergedCells)
	}
	if plain.ConditionalFormats == nil || len(plain.ConditionalFormats) != 0 {
		t.Errorf("unexpected conditional formats: %v", plain.ConditionalFormats)
	}
	if plain.Charts == nil || len(plain.Charts) != 0 {
		t.Errorf("unexpected charts: %v", plain.Charts)
	}
	if len(plain.Data) != 1 || plain.Data[0][0].Value != "solo texto" {
		t.Errorf("unexpected plain sheet data: %+v", plain.Data)
	}
}

func TestParseDeterministic(t *testing.T) {
	data := buildTestWorkbook(t)

	first, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	second, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	b1, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	b2, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !bytes.Equal(b1, b2) {
		t.Error("repeated parses of the same bytes should marshal identically")
	}
}

func TestParseInvalidInput(t *testing.T) {
	_, err := Parse([]byte("esto no es un xlsx"))
	if err == nil {
		t.Fatal("expected error for invalid input")
	}
	if !errors.Is(err, ErrInvalidWorkbook) {
		t.Errorf("expected ErrInvalidWorkbook, got %v", err)
	}

	if _, err := Parse(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestParseEmptyWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	wb, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(wb.Sheets) != 1 {
		t.Fatalf("expected 1 sheet, got %d", len(wb.Sheets))
	}
	s := wb.Sheets[0]
	if s.Data == nil || len(s.Data) != 0 {
		t.Errorf("expected empty data grid, got %v", s.Data)
	}
	if s.MergedCells == nil || s.ConditionalFormats == nil || s.Charts == nil {
		t.Error("collections should be non-nil even when empty")
	}
}

func TestParseStyledEmptyCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "x")
	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle(sheet, "B1", "B1", styleID); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	wb, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// A cell holding only a style still belongs to the used range.
	if len(wb.Sheets) != 1 || len(wb.Sheets[0].Data) != 1 {
		t.Fatalf("unexpected sheet shape: %+v", wb.Sheets)
	}
	row := wb.Sheets[0].Data[0]
	if len(row) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(row))
	}
	styled := row[1]
	if styled.Address != "B1" || styled.Value != nil || styled.IsMergedPart {
		t.Errorf("unexpected B1: %+v", styled)
	}
	if styled.Style == nil || styled.Style.Font == nil || !styled.Style.Font.Bold {
		t.Errorf("expected bold font on B1, got %+v", styled.Style)
	}
}

func TestParseJSONShape(t *testing.T) {
	wb, err := Parse(buildTestWorkbook(t))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out, err := json.Marshal(wb)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	s := string(out)

	// Merged placeholders keep the value key, drop the style key, and flag
	// themselves.
	if !strings.Contains(s, `{"address":"B1","value":null,"is_merged_part":true}`) {
		t.Error("missing merged placeholder shape")
	}
	if !strings.Contains(s, `"merged_cells":["A1:B1"]`) {
		t.Error("missing merged_cells entry")
	}
	// Unresolvable series names marshal as explicit nulls.
	if !strings.Contains(s, `"header":null`) {
		t.Error("missing explicit null series header")
	}
	// Empty collections marshal as [], never null.
	for _, key := range []string{"merged_cells", "data", "conditional_formats", "charts"} {
		if strings.Contains(s, `"`+key+`":null`) {
			t.Errorf("%s must not marshal as null", key)
		}
	}
	if !strings.Contains(s, `"conditional_formats":[],"charts":[]`) {
		t.Error("missing empty collection shape for plain sheet")
	}
	if !strings.Contains(s, `"value":true`) {
		t.Error("missing boolean cell value")
	}
}
