package xlsx

import "fmt"

// Intermediate representation for XLSX.

// Record is one data row keyed by the header text of its column. Values are
// string, float64, bool or time.Time. Empty cells have no key.
type Record map[string]any

// Has reports whether the record carries a value for key.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Sheet is the intermediate representation of a worksheet.
type Sheet struct {
	Name    string
	Headers []string // keys in column order
	Records []Record // data rows in order, blank rows skipped
}

func (s Sheet) String() string {
	return fmt.Sprintf("Name: %s, Headers: %v, Records: %d", s.Name, s.Headers, len(s.Records))
}

// WorkbookModel is the top-level IR containing all sheets.
type WorkbookModel struct {
	Sheets []Sheet
}
