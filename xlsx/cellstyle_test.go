package xlsx

import (
	"strings"

	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
)

// cellColors are the resolved "RRGGBB" colors of a cell. Empty means unset.
type cellColors struct {
	Font   string
	Fill   string
	Border string // right edge, the one the visualization grid draws
}

// readCellColors resolves the font, fill and border colors applied to cell,
// so tests can check what the exporter wrote. Theme colors are looked up in
// the workbook's first theme.
func readCellColors(wb *spreadsheet.Workbook, cell spreadsheet.Cell) cellColors {
	var cc cellColors
	if cell.X().SAttr == nil {
		return cc
	}
	styleID := *cell.X().SAttr

	if font := fontProps(wb.StyleSheet, styleID); font != nil && len(font.Color) > 0 {
		cc.Font = resolveColor(wb, font.Color[0])
	}
	if fill := fillProps(wb.StyleSheet, styleID); fill != nil && fill.PatternFill != nil {
		cc.Fill = resolveColor(wb, fill.PatternFill.FgColor)
	}
	if border := borderProps(wb.StyleSheet, styleID); border != nil && border.Right != nil {
		cc.Border = resolveColor(wb, border.Right.Color)
	}
	return cc
}

// fontProps returns the font XML referenced by a style ID.
func fontProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Font {
	xf := cellXf(ss, styleID)
	if xf == nil || xf.FontIdAttr == nil || ss.X().Fonts == nil {
		return nil
	}
	idx := int(*xf.FontIdAttr)
	if idx >= len(ss.X().Fonts.Font) {
		return nil
	}
	return ss.X().Fonts.Font[idx]
}

// fillProps returns the fill XML referenced by a style ID.
func fillProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Fill {
	xf := cellXf(ss, styleID)
	if xf == nil || xf.FillIdAttr == nil || ss.X().Fills == nil {
		return nil
	}
	idx := int(*xf.FillIdAttr)
	if idx >= len(ss.X().Fills.Fill) {
		return nil
	}
	return ss.X().Fills.Fill[idx]
}

// borderProps returns the border XML referenced by a style ID.
func borderProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Border {
	xf := cellXf(ss, styleID)
	if xf == nil || xf.BorderIdAttr == nil || ss.X().Borders == nil {
		return nil
	}
	idx := int(*xf.BorderIdAttr)
	if idx >= len(ss.X().Borders.Border) {
		return nil
	}
	return ss.X().Borders.Border[idx]
}

func cellXf(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Xf {
	if ss.X().CellXfs == nil || int(styleID) >= len(ss.X().CellXfs.Xf) {
		return nil
	}
	return ss.X().CellXfs.Xf[styleID]
}

func resolveColor(wb *spreadsheet.Workbook, c *sml.CT_Color) string {
	switch {
	case c == nil:
		return ""
	case c.RgbAttr != nil && *c.RgbAttr != "":
		return normalizeColor(*c.RgbAttr)
	case c.ThemeAttr != nil:
		hex, _ := themeColor(wb, int(*c.ThemeAttr))
		return hex
	}
	return ""
}

// normalizeColor drops a leading '#' and the alpha byte of "AARRGGBB".
func normalizeColor(hex string) string {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(hex) == 8 {
		return hex[2:]
	}
	return hex
}

// themeColor resolves a 0-based theme color index without applying tint.
func themeColor(wb *spreadsheet.Workbook, idx int) (string, bool) {
	themes := wb.Themes()
	if len(themes) == 0 || themes[0] == nil || themes[0].ThemeElements == nil {
		return "", false
	}
	scheme := themes[0].ThemeElements.ClrScheme
	if scheme == nil {
		return "", false
	}

	var clr *dml.CT_Color
	switch idx {
	case 0:
		clr = scheme.Dk1
	case 1:
		clr = scheme.Lt1
	case 2:
		clr = scheme.Dk2
	case 3:
		clr = scheme.Lt2
	case 4:
		clr = scheme.Accent1
	case 5:
		clr = scheme.Accent2
	case 6:
		clr = scheme.Accent3
	case 7:
		clr = scheme.Accent4
	case 8:
		clr = scheme.Accent5
	case 9:
		clr = scheme.Accent6
	case 10:
		clr = scheme.Hlink
	case 11:
		clr = scheme.FolHlink
	default:
		return "", false
	}
	if clr == nil {
		return "", false
	}
	if clr.SrgbClr != nil && clr.SrgbClr.ValAttr != "" {
		return normalizeColor(clr.SrgbClr.ValAttr), true
	}
	if clr.SysClr != nil && clr.SysClr.LastClrAttr != nil {
		return normalizeColor(*clr.SysClr.LastClrAttr), true
	}
	return "", false
}
