package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/elvenok1/excel-phyton-analize/pkg/excelparse/models"
)

// xmlConditionalFormatting mirrors one conditionalFormatting element of a
// worksheet part.
type xmlConditionalFormatting struct {
	SQRef string      `xml:"sqref,attr"`
	Rules []xmlCfRule `xml:"cfRule"`
}

type xmlCfRule struct {
	Type       *string        `xml:"type,attr"`
	Priority   int            `xml:"priority,attr"`
	ColorScale *xmlColorScale `xml:"colorScale"`
	DataBar    *xmlDataBar    `xml:"dataBar"`
	Formulas   []string       `xml:"formula"`
}

type xmlColorScale struct {
	Values []xmlCfvo  `xml:"cfvo"`
	Colors []xmlColor `xml:"color"`
}

type xmlDataBar struct {
	MinLength *int       `xml:"minLength,attr"`
	MaxLength *int       `xml:"maxLength,attr"`
	Values    []xmlCfvo  `xml:"cfvo"`
	Colors    []xmlColor `xml:"color"`
}

type xmlCfvo struct {
	Type string  `xml:"type,attr"`
	Val  *string `xml:"val,attr"`
}

type xmlColor struct {
	RGB     string  `xml:"rgb,attr"`
	Theme   *int    `xml:"theme,attr"`
	Tint    float64 `xml:"tint,attr"`
	Indexed *int    `xml:"indexed,attr"`
}

// ExtractConditionalFormats returns the conditional formatting rules of the
// worksheet part at sheetPath in stored order. Sheets without the part yield
// an empty slice; a part that fails to decode is an error.
func ExtractConditionalFormats(r *zip.Reader, sheetPath string) ([]models.ConditionalFormatRule, error) {
	rules := []models.ConditionalFormatRule{}
	if sheetPath == "" {
		return rules, nil
	}

	data, err := readZipFile(r, sheetPath)
	if err != nil || data == nil {
		return rules, nil
	}

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		// extLst carries x14 mirrors of rules already present in the main
		// stream; skip the subtree so mirrored rules are not counted twice.
		if se.Name.Local == "extLst" {
			if err := decoder.Skip(); err != nil {
				return nil, err
			}
			continue
		}
		if se.Name.Local != "conditionalFormatting" {
			continue
		}

		var cf xmlConditionalFormatting
		if err := decoder.DecodeElement(&cf, &se); err != nil {
			return nil, err
		}
		for _, rule := range cf.Rules {
			rules = append(rules, convertCfRule(cf.SQRef, rule))
		}
	}
	return rules, nil
}

// convertCfRule maps a decoded rule to its wire form. The base triple is
// always present; the detail payload follows what the rule carries, and
// rules with none keep the base triple only.
func convertCfRule(sqref string, rule xmlCfRule) models.ConditionalFormatRule {
	out := models.ConditionalFormatRule{
		Range:    sqref,
		Type:     rule.Type,
		Priority: rule.Priority,
	}
	switch {
	case rule.ColorScale != nil:
		out.ColorScale = convertColorScale(rule.ColorScale)
	case rule.DataBar != nil:
		out.DataBar = convertDataBar(rule.DataBar)
	case len(rule.Formulas) > 0:
		out.Formula = rule.Formulas[0]
	}
	return out
}

func convertColorScale(cs *xmlColorScale) *models.ColorScale {
	out := &models.ColorScale{
		Colors: make([]string, 0, len(cs.Colors)),
		Values: make([]interface{}, 0, len(cs.Values)),
	}
	for _, c := range cs.Colors {
		out.Colors = append(out.Colors, colorRef(c.RGB, c.Theme, c.Tint, c.Indexed))
	}
	for _, v := range cs.Values {
		out.Values = append(out.Values, cfvoValue(v))
	}
	return out
}

func convertDataBar(db *xmlDataBar) *models.DataBar {
	// minLength and maxLength default to 10 and 90 when the attributes are
	// absent.
	out := &models.DataBar{MinLength: 10, MaxLength: 90}
	if db.MinLength != nil {
		out.MinLength = *db.MinLength
	}
	if db.MaxLength != nil {
		out.MaxLength = *db.MaxLength
	}
	if len(db.Colors) > 0 {
		c := db.Colors[0]
		out.Color = colorRef(c.RGB, c.Theme, c.Tint, c.Indexed)
	}
	return out
}

// cfvoValue types a threshold value: numeric strings become numbers,
// formula thresholds stay strings, absent values stay nil.
func cfvoValue(v xmlCfvo) interface{} {
	if v.Val == nil {
		return nil
	}
	if f, err := strconv.ParseFloat(*v.Val, 64); err == nil {
		return f
	}
	return *v.Val
}
