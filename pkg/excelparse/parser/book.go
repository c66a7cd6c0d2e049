package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WorkbookParts resolves sheet names to worksheet part paths inside the
// package zip.
type WorkbookParts struct {
	paths map[string]string
}

// LoadWorkbookParts reads xl/workbook.xml and its rels to map sheet names to
// their worksheet parts. Workbooks missing either part yield an empty
// mapping, which downstream extractors treat as "no raw parts available".
func LoadWorkbookParts(r *zip.Reader) *WorkbookParts {
	parts := &WorkbookParts{paths: make(map[string]string)}

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return parts
	}
	sheetIDs := parseWorkbookSheets(workbookXML)
	if len(sheetIDs) == 0 {
		return parts
	}

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return parts
	}
	for _, rel := range parseRelationships(wbRelsXML) {
		name, ok := sheetIDs[rel.id]
		if !ok || !strings.Contains(strings.ToLower(rel.relType), "worksheet") {
			continue
		}
		parts.paths[name] = resolvePartPath(rel.target, "xl")
	}
	return parts
}

// SheetPath returns the worksheet part path for a sheet name, "" when the
// sheet has none (chart sheets, unknown names).
func (p *WorkbookParts) SheetPath(name string) string {
	return p.paths[name]
}

// SheetExtent scans the worksheet part at sheetPath for the bounding box of
// its stored cell records. Cells that carry only a style count, which the
// cached-value API does not report. Missing parts yield the zero Extent.
func SheetExtent(r *zip.Reader, sheetPath string) Extent {
	var ext Extent
	if sheetPath == "" {
		return ext
	}
	data, err := readZipFile(r, sheetPath)
	if err != nil || data == nil {
		return ext
	}

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "c" {
			continue
		}
		for _, attr := range se.Attr {
			if attr.Name.Local != "r" {
				continue
			}
			if col, row, err := excelize.CellNameToCoordinates(attr.Value); err == nil {
				ext = ext.expand(col, row)
			}
		}
	}
	return ext
}

// sheetDrawingPath returns the drawing part referenced by a worksheet part,
// "" when the sheet has no drawing relationship.
func sheetDrawingPath(r *zip.Reader, sheetPath string) string {
	relsXML, err := readZipFile(r, relsPath(sheetPath))
	if err != nil || relsXML == nil {
		return ""
	}
	for _, rel := range parseRelationships(relsXML) {
		if strings.Contains(strings.ToLower(rel.relType), "drawing") {
			return resolvePartPath(rel.target, path.Dir(sheetPath))
		}
	}
	return ""
}

// relationship is one entry of a rels part.
type relationship struct {
	id      string
	relType string
	target  string
}

// parseRelationships lists the Relationship entries of a rels part in stored
// order.
func parseRelationships(data []byte) []relationship {
	var rels []relationship
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		var rel relationship
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "Id":
				rel.id = attr.Value
			case "Type":
				rel.relType = attr.Value
			case "Target":
				rel.target = attr.Value
			}
		}
		rels = append(rels, rel)
	}
	return rels
}

// parseWorkbookSheets maps relationship IDs to sheet names from workbook.xml.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "sheet" {
			continue
		}
		var name, rID string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "name":
				name = attr.Value
			case "id":
				rID = attr.Value
			}
		}
		if name != "" && rID != "" {
			result[rID] = name
		}
	}
	return result
}

// relsPath returns the rels part path for a given part path
// (xl/worksheets/sheet1.xml -> xl/worksheets/_rels/sheet1.xml.rels).
func relsPath(partPath string) string {
	dir, file := path.Split(partPath)
	return dir + "_rels/" + file + ".rels"
}

// resolvePartPath resolves a relationship target against the directory of
// the referencing part. Targets starting with "/" are package-absolute.
func resolvePartPath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(strings.TrimPrefix(target, "/"))
	}
	return path.Clean(path.Join(baseDir, target))
}

// readZipFile returns the contents of the named archive entry, or nil when
// the entry does not exist.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// readElementText collects the character data of the current element,
// consuming tokens through its end tag.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}
