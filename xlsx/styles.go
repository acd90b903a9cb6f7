package xlsx

import (
	"strings"

	"github.com/unidoc/unioffice/spreadsheet"
)

// GetNumberFormat returns the number format id and, for custom formats, the
// format code referenced by a style ID.
func GetNumberFormat(ss spreadsheet.StyleSheet, styleID uint32) (uint32, string) {
	if ss.X().CellXfs == nil || int(styleID) >= len(ss.X().CellXfs.Xf) {
		return 0, ""
	}
	xf := ss.X().CellXfs.Xf[styleID]
	if xf == nil || xf.NumFmtIdAttr == nil {
		return 0, ""
	}
	id := *xf.NumFmtIdAttr
	if ss.X().NumFmts == nil {
		return id, ""
	}
	for _, nf := range ss.X().NumFmts.NumFmt {
		if nf != nil && nf.NumFmtIdAttr == id {
			return id, nf.FormatCodeAttr
		}
	}
	return id, ""
}

// isDateFormat reports whether a number format renders a calendar date.
// Built-in ids cover the locale date formats; custom codes are inspected
// for date tokens outside of quoted text and bracketed sections.
func isDateFormat(id uint32, code string) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	if code == "" {
		return false
	}

	var b strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case c == '"':
			inQuote = !inQuote
		case inQuote:
		case c == '[':
			inBracket = true
		case c == ']':
			inBracket = false
		case inBracket:
		case c == '\\' || c == '_' || c == '*':
			i++ // escaped or padding character
		default:
			b.WriteByte(c)
		}
	}
	tokens := strings.ToLower(b.String())
	if strings.ContainsAny(tokens, "yd") {
		return true
	}
	// A bare "m" is minutes when it sits next to hours or seconds.
	return strings.Contains(tokens, "m") && !strings.ContainsAny(tokens, "hs")
}

// isDateCell reports whether a numeric cell is styled as a date.
func isDateCell(ss spreadsheet.StyleSheet, cell spreadsheet.Cell) bool {
	if cell.X().SAttr == nil {
		return false
	}
	return isDateFormat(GetNumberFormat(ss, *cell.X().SAttr))
}
