package xlsx

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

var (
	// ErrNoSheets is returned for a workbook that contains no worksheets.
	ErrNoSheets = errors.New("workbook has no sheets")
)

// ParseError reports a workbook that could not be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("reading workbook: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseWorkbookModel reads an XLSX from r/size and returns the intermediate representation.
func ParseWorkbookModel(r io.ReaderAt, size int64) (WorkbookModel, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return WorkbookModel{}, err
	}
	return buildWorkbookModel(wb), nil
}

func buildWorkbookModel(wb *spreadsheet.Workbook) WorkbookModel {
	var model WorkbookModel
	epoch := wb.Epoch()

	for _, sheet := range wb.Sheets() {
		s := Sheet{Name: sheet.Name()}
		rows := sheet.Rows()
		if len(rows) == 0 {
			model.Sheets = append(model.Sheets, s)
			continue
		}

		// ---- find last used column ----
		maxCol := -1
		for _, row := range rows {
			for _, cell := range row.Cells() {
				if idx, ok := columnIndex(cell); ok && idx > maxCol {
					maxCol = idx
				}
			}
		}

		// ---- header row ----
		headerText := make(map[int]string)
		for _, cell := range rows[0].Cells() {
			if idx, ok := columnIndex(cell); ok {
				headerText[idx] = cell.GetFormattedValue()
			}
		}
		keys := make(map[int]string, maxCol+1)
		counts := make(map[string]int)
		for c := 0; c <= maxCol; c++ {
			name := headerText[c]
			if name == "" {
				name = "__EMPTY"
			}
			key := name
			if n := counts[name]; n > 0 {
				key = fmt.Sprintf("%s_%d", name, n)
			}
			counts[name]++
			keys[c] = key
			s.Headers = append(s.Headers, key)
		}

		// ---- data rows ----
		for _, row := range rows[1:] {
			rec := make(Record)
			for _, cell := range row.Cells() {
				idx, ok := columnIndex(cell)
				if !ok {
					continue
				}
				v, ok := cellValue(wb.StyleSheet, epoch, cell)
				if !ok {
					continue
				}
				rec[keys[idx]] = v
			}
			if len(rec) > 0 {
				s.Records = append(s.Records, rec)
			}
		}

		model.Sheets = append(model.Sheets, s)
	}

	return model
}

func columnIndex(cell spreadsheet.Cell) (int, bool) {
	colName, err := cell.Column()
	if err != nil {
		return 0, false
	}
	return int(reference.ColumnToIndex(colName)), true
}

// cellValue returns the typed value of a cell, or false for blanks.
func cellValue(ss spreadsheet.StyleSheet, epoch time.Time, cell spreadsheet.Cell) (any, bool) {
	if cell.IsEmpty() {
		return nil, false
	}
	switch {
	case cell.IsBool():
		b, err := cell.GetValueAsBool()
		if err != nil {
			return nil, false
		}
		return b, true
	case cell.IsNumber():
		f, err := cell.GetValueAsNumber()
		if err != nil {
			return nil, false
		}
		if isDateCell(ss, cell) {
			return serialToTime(epoch, f), true
		}
		return f, true
	}
	s := cell.GetString()
	if s == "" {
		return nil, false
	}
	return s, true
}

// serialToTime converts a spreadsheet serial day number into a time,
// rounded to the second.
func serialToTime(epoch time.Time, serial float64) time.Time {
	secs := math.Round(serial * 24 * 60 * 60)
	return epoch.Add(time.Duration(secs) * time.Second)
}
