package xlsx

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aerissecure/roadmap"
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
)

// VisualizationSheetName is the sheet appended by WriteVisualization.
const VisualizationSheetName = "Roadmap Visualization"

// Grid colors, "RRGGBB".
const (
	gridBorder     = "E5E7EB"
	headerDark     = "1F2937"
	headerDarker   = "111827"
	quarterEven    = "374151"
	quarterOdd     = "4B5563"
	quarterBorder  = "6B7280"
	monthText      = "9CA3AF"
	separatorFill  = "F3F4F6"
	separatorText  = "6B7280"
	white          = "FFFFFF"
	lastMonthCol   = 13 // column M
	nameColWidth   = 30
	monthColWidth  = 8
	itemRowHeight  = 18
)

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// VisualizationFilename is the suggested download name for an export.
func VisualizationFilename(year int) string {
	return fmt.Sprintf("roadmap_with_visualization_%d.xlsx", year)
}

// WriteVisualization re-opens the original workbook, appends a month grid
// of data for year and writes the result to w. Any earlier visualization
// sheet is replaced.
func WriteVisualization(w io.Writer, original io.ReaderAt, size int64, data *roadmap.Data, year int) error {
	wb, err := spreadsheet.Read(original, size)
	if err != nil {
		return &ParseError{Err: err}
	}
	if err := AddVisualizationSheet(wb, data, year); err != nil {
		return err
	}
	if err := wb.Save(w); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// AddVisualizationSheet appends the visualization sheet to wb.
func AddVisualizationSheet(wb *spreadsheet.Workbook, data *roadmap.Data, year int) error {
	for _, s := range wb.Sheets() {
		if s.Name() == VisualizationSheetName {
			if err := wb.RemoveSheetByName(VisualizationSheetName); err != nil {
				return fmt.Errorf("removing previous visualization: %w", err)
			}
			break
		}
	}

	sheet := wb.AddSheet()
	sheet.SetName(VisualizationSheetName)
	v := &vizWriter{
		wb:     wb,
		sheet:  sheet,
		styles: make(map[vizStyle]spreadsheet.CellStyle),
	}
	v.render(roadmap.Normalized(data), year)
	return nil
}

// vizStyle is the subset of cell styling the grid uses. It doubles as the
// cache key so each distinct style is added to the stylesheet once.
type vizStyle struct {
	Fill        string
	FontColor   string
	FontSizePt  float64
	Bold        bool
	Center      bool
	BorderColor string
}

type vizWriter struct {
	wb     *spreadsheet.Workbook
	sheet  spreadsheet.Sheet
	styles map[vizStyle]spreadsheet.CellStyle
	row    uint32
}

func (v *vizWriter) render(data *roadmap.Data, year int) {
	v.sheet.Column(1).SetWidth(nameColWidth * measurement.Character)
	for c := uint32(2); c <= lastMonthCol; c++ {
		v.sheet.Column(c).SetWidth(monthColWidth * measurement.Character)
	}

	// ---- title ----
	v.row = 1
	v.height(25)
	v.set(1, fmt.Sprintf("Roadmap Visualization - %d", year), vizStyle{Bold: true, FontSizePt: 14})
	v.sheet.AddMergedCells(ref(1, 1), ref(lastMonthCol, 1))

	// ---- quarters ----
	v.row = 2
	v.height(20)
	v.set(1, "Roadmap Items", vizStyle{Bold: true, FontColor: white, Fill: headerDark, Center: true})
	for q := 0; q < 4; q++ {
		from := uint32(2 + q*3)
		fill := quarterEven
		if q%2 == 1 {
			fill = quarterOdd
		}
		st := vizStyle{Bold: true, FontColor: white, Fill: fill, Center: true, BorderColor: quarterBorder}
		v.set(from, fmt.Sprintf("Q%d", q+1), st)
		v.set(from+1, "", st)
		v.set(from+2, "", st)
		v.sheet.AddMergedCells(ref(from, 2), ref(from+2, 2))
	}

	// ---- months ----
	v.row = 3
	v.height(itemRowHeight)
	v.set(1, "", vizStyle{Fill: headerDarker})
	for m, name := range monthNames {
		v.set(uint32(m+2), name, vizStyle{FontSizePt: 10, FontColor: monthText, Fill: headerDark, Center: true, BorderColor: quarterBorder})
	}

	// ---- goals ----
	v.row = 4
	for gi, goal := range data.Goals {
		hex := roadmap.GoalColor(gi).Hex
		v.height(22)
		v.set(1, goal.Name, vizStyle{Bold: true, FontSizePt: 11, FontColor: white, Fill: hex, BorderColor: gridBorder})
		for c := uint32(2); c <= lastMonthCol; c++ {
			v.set(c, "", vizStyle{Fill: hex, BorderColor: gridBorder})
		}
		v.row++

		for _, item := range goal.Items {
			v.itemRow(item, year, hex)
		}
		if gi < len(data.Goals)-1 {
			v.row++
		}
	}

	// ---- ungrouped ----
	if len(data.UngroupedItems) == 0 {
		return
	}
	if len(data.Goals) > 0 {
		v.row++
		v.height(20)
		st := vizStyle{Bold: true, FontSizePt: 10, FontColor: separatorText, Fill: separatorFill, BorderColor: gridBorder}
		v.set(1, "Other Items", st)
		for c := uint32(2); c <= lastMonthCol; c++ {
			v.set(c, "", vizStyle{Fill: separatorFill, BorderColor: gridBorder})
		}
		v.row++
	}
	for i, item := range data.UngroupedItems {
		v.itemRow(item, year, data.UngroupedColor(i).Hex)
	}
}

func (v *vizWriter) itemRow(item roadmap.Item, year int, hex string) {
	v.height(itemRowHeight)
	v.set(1, item.Name, vizStyle{FontSizePt: 10, Fill: white, BorderColor: gridBorder})
	for m, on := range roadmap.MonthSpan(item, year) {
		fill := white
		if on {
			fill = hex
		}
		v.set(uint32(m+2), "", vizStyle{Fill: fill, BorderColor: gridBorder})
	}
	v.row++
}

func (v *vizWriter) height(pt float64) {
	v.sheet.Row(v.row).SetHeight(measurement.Distance(pt) * measurement.Point)
}

func (v *vizWriter) set(col uint32, value string, st vizStyle) {
	cell := v.sheet.Cell(ref(col, v.row))
	if value != "" {
		cell.SetString(value)
	}
	cell.SetStyle(v.style(st))
}

func (v *vizWriter) style(st vizStyle) spreadsheet.CellStyle {
	if cs, ok := v.styles[st]; ok {
		return cs
	}
	ss := v.wb.StyleSheet
	cs := ss.AddCellStyle()

	if st.Bold || st.FontSizePt > 0 || st.FontColor != "" {
		font := ss.AddFont()
		if st.Bold {
			font.SetBold(true)
		}
		if st.FontSizePt > 0 {
			font.SetSize(st.FontSizePt)
		}
		if st.FontColor != "" {
			font.SetColor(hexColor(st.FontColor))
		}
		cs.SetFont(font)
	}
	if st.Fill != "" {
		fill := ss.Fills().AddFill()
		pf := fill.SetPatternFill()
		pf.SetPattern(sml.ST_PatternTypeSolid)
		pf.SetFgColor(hexColor(st.Fill))
		cs.SetFill(fill)
	}
	if st.BorderColor != "" {
		border := ss.AddBorder()
		border.SetRight(sml.ST_BorderStyleThin, hexColor(st.BorderColor))
		border.SetBottom(sml.ST_BorderStyleThin, hexColor(st.BorderColor))
		cs.SetBorder(border)
	}
	if st.Center {
		cs.SetHorizontalAlignment(sml.ST_HorizontalAlignmentCenter)
	} else {
		cs.SetHorizontalAlignment(sml.ST_HorizontalAlignmentLeft)
	}
	cs.SetVerticalAlignment(sml.ST_VerticalAlignmentCenter)

	v.styles[st] = cs
	return cs
}

// ref builds an A1 reference from a 1-based column and row.
func ref(col, row uint32) string {
	return fmt.Sprintf("%c%d", 'A'+rune(col-1), row)
}

// hexColor parses "RRGGBB". Malformed input yields black.
func hexColor(hex string) color.Color {
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return color.RGB(0, 0, 0)
	}
	return color.RGB(uint8(n>>16), uint8(n>>8), uint8(n))
}
