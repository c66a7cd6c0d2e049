package parser

import (
	"github.com/elvenok1/excel-phyton-analize/pkg/excelparse/models"
	"github.com/xuri/excelize/v2"
)

// borderStyleNames maps excelize border style indices to OOXML style names.
var borderStyleNames = []string{
	"none",
	"thin",
	"medium",
	"dashed",
	"dotted",
	"thick",
	"double",
	"hair",
	"mediumDashed",
	"dashDot",
	"mediumDashDot",
	"dashDotDot",
	"mediumDashDotDot",
	"slantDashDot",
}

// fillPatternNames maps excelize fill pattern indices to OOXML pattern names.
var fillPatternNames = []string{
	"none",
	"solid",
	"mediumGray",
	"darkGray",
	"lightGray",
	"darkHorizontal",
	"darkVertical",
	"darkDown",
	"darkUp",
	"darkGrid",
	"darkTrellis",
	"lightHorizontal",
	"lightVertical",
	"lightDown",
	"lightUp",
	"lightGrid",
	"lightTrellis",
	"gray125",
	"gray0625",
}

// NormalizeStyle reduces a cell's effective style to the minimal record of
// non-default attributes. Cells without an explicit style index yield an
// empty record immediately. Lookup failures degrade to an empty record
// rather than an error.
func NormalizeStyle(f *excelize.File, sheetName, cell string) *models.StyleRecord {
	rec := &models.StyleRecord{}

	styleID, err := f.GetCellStyle(sheetName, cell)
	if err != nil || styleID == 0 {
		return rec
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return rec
	}

	rec.Font = normalizeFont(style.Font)
	rec.Fill = normalizeFill(style.Fill)
	rec.Border = normalizeBorder(style.Border)
	rec.Alignment = normalizeAlignment(style.Alignment)
	rec.NumFmt = numFmtCode(style.NumFmt, style.CustomNumFmt)
	return rec
}

func normalizeFont(font *excelize.Font) *models.FontInfo {
	if font == nil {
		return nil
	}
	info := &models.FontInfo{
		Name:   font.Family,
		Bold:   font.Bold,
		Italic: font.Italic,
		Color:  fontColorRef(font),
	}
	if font.Size > 0 {
		info.Sz = font.Size
	}
	if *info == (models.FontInfo{}) {
		return nil
	}
	return info
}

// fontColorRef resolves the font color through the shared color policy.
// ColorIndexed zero is indistinguishable from unset and treated as unset.
func fontColorRef(font *excelize.Font) string {
	var indexed *int
	if font.ColorIndexed > 0 {
		indexed = &font.ColorIndexed
	}
	return colorRef(font.Color, font.ColorTheme, font.ColorTint, indexed)
}

func normalizeFill(fill excelize.Fill) *models.FillInfo {
	if fill.Pattern <= 0 || fill.Pattern >= len(fillPatternNames) {
		return nil
	}
	info := &models.FillInfo{Pattern: fillPatternNames[fill.Pattern]}
	if len(fill.Color) > 0 {
		info.StartColor = fill.Color[0]
	}
	if len(fill.Color) > 1 {
		info.EndColor = fill.Color[1]
	}
	return info
}

func normalizeBorder(borders []excelize.Border) *models.BorderInfo {
	info := &models.BorderInfo{}
	found := false
	for _, b := range borders {
		if b.Style <= 0 || b.Style >= len(borderStyleNames) {
			continue
		}
		side := &models.BorderSide{
			Style: borderStyleNames[b.Style],
			Color: colorRef(b.Color, nil, 0, nil),
		}
		switch b.Type {
		case "left":
			info.Left = side
		case "right":
			info.Right = side
		case "top":
			info.Top = side
		case "bottom":
			info.Bottom = side
		default:
			continue
		}
		found = true
	}
	if !found {
		return nil
	}
	return info
}

func normalizeAlignment(a *excelize.Alignment) *models.AlignmentInfo {
	if a == nil {
		return nil
	}
	info := &models.AlignmentInfo{
		Horizontal: a.Horizontal,
		Vertical:   a.Vertical,
		WrapText:   a.WrapText,
	}
	if *info == (models.AlignmentInfo{}) {
		return nil
	}
	return info
}
