package parser

import (
	"archive/zip"
	"encoding/xml"
	"path"
	"strings"

	"github.com/elvenok1/excel-phyton-analize/pkg/excelparse/models"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

// ExtractCharts returns the charts anchored to the worksheet part at
// sheetPath, in drawing order. Sheets without a drawing, and anchors whose
// relationship cannot be resolved, yield no entries rather than errors.
func ExtractCharts(r *zip.Reader, sheetPath string) ([]models.Chart, error) {
	charts := []models.Chart{}
	if sheetPath == "" {
		return charts, nil
	}

	drawingPath := sheetDrawingPath(r, sheetPath)
	if drawingPath == "" {
		return charts, nil
	}
	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return charts, nil
	}

	anchors := parseDrawingCharts(drawingXML)
	if len(anchors) == 0 {
		return charts, nil
	}

	relsXML, err := readZipFile(r, relsPath(drawingPath))
	if err != nil || relsXML == nil {
		return charts, nil
	}
	chartTargets := make(map[string]string)
	for _, rel := range parseRelationships(relsXML) {
		if strings.Contains(strings.ToLower(rel.relType), "chart") {
			chartTargets[rel.id] = resolvePartPath(rel.target, path.Dir(drawingPath))
		}
	}

	for _, ca := range anchors {
		target, ok := chartTargets[ca.relID]
		if !ok {
			continue
		}
		chartXML, err := readZipFile(r, target)
		if err != nil || chartXML == nil {
			continue
		}
		chart := parseChartXML(chartXML)
		chart.Anchor = ca.anchor
		charts = append(charts, chart)
	}
	return charts, nil
}

// parseChartXML parses a chart part. The walk keeps the chart-level title
// separate from axis titles nested under plotArea.
func parseChartXML(data []byte) models.Chart {
	chart := models.Chart{Series: []models.ChartSeries{}}
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, &chart)
		}
	}

	if chart.Type == "" {
		chart.Type = "unknown"
	}
	return chart
}

// parseChartElement parses the c:chart element.
func parseChartElement(decoder *xml.Decoder, chart *models.Chart) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				if txt := parseChartTitle(decoder); txt != "" && chart.Title == nil {
					chart.Title = &txt
				}
				depth--
			case "plotArea":
				parsePlotArea(decoder, chart)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartTitle returns the first non-empty text of a title subtree,
// "" when the nested text path is absent.
func parseChartTitle(decoder *xml.Decoder) string {
	var title string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "t", "v":
				if txt, err := readElementText(decoder); err == nil && title == "" {
					title = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return title
}

// parsePlotArea collects the chart type and series. The first recognized
// plot element fixes the type; series accumulate across plot elements in
// document order.
func parsePlotArea(decoder *xml.Decoder, chart *models.Chart) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if name, ok := ChartTypeMap[t.Name.Local]; ok {
				if chart.Type == "" {
					chart.Type = name
				}
				chart.Series = append(chart.Series, parseChartSeries(decoder)...)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartSeries parses the ser elements within a plot element.
func parseChartSeries(decoder *xml.Decoder) []models.ChartSeries {
	var series []models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ser" {
				series = append(series, parseSingleSeries(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return series
}

// parseSingleSeries parses one ser element. Fields the part does not carry
// stay nil.
func parseSingleSeries(decoder *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				if header := parseSeriesHeader(decoder); header != "" {
					s.Header = &header
				}
				depth--
			case "cat":
				if ref := parseSeriesRange(decoder); ref != "" {
					s.Categories = &ref
				}
				depth--
			case "val":
				if ref := parseSeriesRange(decoder); ref != "" {
					s.Values = &ref
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return s
}

// parseSeriesHeader returns the cached or literal series name from a tx
// element, "" when only an unresolved reference is present.
func parseSeriesHeader(decoder *xml.Decoder) string {
	var header string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "v" {
				if txt, err := readElementText(decoder); err == nil && header == "" {
					header = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return header
}

// parseSeriesRange returns the range reference of a cat or val element.
func parseSeriesRange(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" {
				if txt, err := readElementText(decoder); err == nil && ref == "" {
					ref = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return ref
}
