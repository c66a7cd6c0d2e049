package parser

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// chartAnchor is one chart reference found in a drawing part, paired with
// the rendered anchor of its enclosing anchor element.
type chartAnchor struct {
	relID  string
	anchor string
}

// anchorMarker is a from/to cell marker of a drawing anchor. Col and row are
// 0-based as stored.
type anchorMarker struct {
	col int
	row int
	set bool
}

// parseDrawingCharts walks a drawing part and returns its chart references
// in document order. Anchors holding pictures or shapes are skipped.
func parseDrawingCharts(data []byte) []chartAnchor {
	var result []chartAnchor
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
			if ca, ok := parseAnchorElement(decoder, se.Name.Local); ok {
				result = append(result, ca)
			}
		}
	}
	return result
}

// parseAnchorElement consumes one anchor element. It reports a chartAnchor
// only when the anchor holds a graphicFrame referencing a chart part.
func parseAnchorElement(decoder *xml.Decoder, kind string) (chartAnchor, bool) {
	var from, to anchorMarker
	var extW, extH, posX, posY int64
	var relID string
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
			case "from":
				from = parseAnchorMarker(decoder)
				depth--
			case "to":
				to = parseAnchorMarker(decoder)
				depth--
			case "ext":
				extW, extH = parseEMUPair(t, "cx", "cy")
			case "pos":
				posX, posY = parseEMUPair(t, "x", "y")
			case "graphicFrame":
				relID = parseGraphicFrameChart(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	if relID == "" {
		return chartAnchor{}, false
	}
	return chartAnchor{
		relID:  relID,
		anchor: renderAnchor(kind, from, to, extW, extH, posX, posY),
	}, true
}

// renderAnchor renders an anchor as a string. Two-cell anchors become a cell
// range; anchors without a to-marker degrade to a deterministic description
// rather than failing.
func renderAnchor(kind string, from, to anchorMarker, extW, extH, posX, posY int64) string {
	switch kind {
	case "twoCellAnchor":
		if from.set && to.set {
			return markerCell(from) + ":" + markerCell(to)
		}
		if from.set {
			return markerCell(from)
		}
	case "oneCellAnchor":
		if from.set {
			return fmt.Sprintf("%s %dx%dpx", markerCell(from), EMUToPixels(extW), EMUToPixels(extH))
		}
	case "absoluteAnchor":
		return fmt.Sprintf("absolute %d,%d %dx%dpx",
			EMUToPixels(posX), EMUToPixels(posY), EMUToPixels(extW), EMUToPixels(extH))
	}
	return ""
}

// markerCell converts a 0-based anchor marker to an A1 cell reference.
func markerCell(m anchorMarker) string {
	cell, err := excelize.CoordinatesToCellName(m.col+1, m.row+1)
	if err != nil {
		return ""
	}
	return cell
}

// parseAnchorMarker reads the col/row children of a from/to element.
func parseAnchorMarker(decoder *xml.Decoder) anchorMarker {
	m := anchorMarker{col: -1, row: -1}
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
			case "col":
				if txt, err := readElementText(decoder); err == nil {
					if n, err := strconv.Atoi(strings.TrimSpace(txt)); err == nil {
						m.col = n
					}
				}
				depth--
			case "row":
				if txt, err := readElementText(decoder); err == nil {
					if n, err := strconv.Atoi(strings.TrimSpace(txt)); err == nil {
						m.row = n
					}
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	m.set = m.col >= 0 && m.row >= 0
	return m
}

// parseEMUPair reads two EMU attributes from an element.
func parseEMUPair(se xml.StartElement, first, second string) (int64, int64) {
	var a, b int64
	for _, attr := range se.Attr {
		switch attr.Name.Local {
		case first:
			if v, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
				a = v
			}
		case second:
			if v, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
				b = v
			}
		}
	}
	return a, b
}

// parseGraphicFrameChart returns the relationship ID of the chart element
// inside a graphicFrame, "" when the frame holds no chart.
func parseGraphicFrameChart(decoder *xml.Decoder) string {
	var relID string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "chart" {
				for _, attr := range t.Attr {
					if attr.Name.Local == "id" {
						relID = attr.Value
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return relID
}
