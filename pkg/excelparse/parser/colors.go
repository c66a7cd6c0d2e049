package parser

import "fmt"

// colorRef normalizes a stored color reference to a string. Explicit RGB hex
// is passed through as stored; theme and indexed references degrade to
// descriptive placeholders rather than failing. Returns "" when the element
// carries no color, so callers can omit the field.
func colorRef(rgb string, theme *int, tint float64, indexed *int) string {
	if rgb != "" {
		return rgb
	}
	if theme != nil {
		if tint != 0 {
			return fmt.Sprintf("theme:%d tint:%g", *theme, tint)
		}
		return fmt.Sprintf("theme:%d", *theme)
	}
	if indexed != nil {
		return fmt.Sprintf("indexed:%d", *indexed)
	}
	return ""
}
