package xlsx

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/aerissecure/roadmap"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice/spreadsheet"
)

type testSheet struct {
	name string
	rows [][]any
}

// buildWorkbook writes sheets to an in-memory XLSX. nil values leave the
// cell blank.
func buildWorkbook(t *testing.T, sheets ...testSheet) []byte {
	t.Helper()
	wb := spreadsheet.New()
	for _, ts := range sheets {
		sheet := wb.AddSheet()
		sheet.SetName(ts.name)
		for _, r := range ts.rows {
			row := sheet.AddRow()
			for _, v := range r {
				cell := row.AddCell()
				switch x := v.(type) {
				case string:
					cell.SetString(x)
				case int:
					cell.SetNumber(float64(x))
				case float64:
					cell.SetNumber(x)
				case bool:
					cell.SetBool(x)
				case time.Time:
					cell.SetDateWithStyle(x)
				}
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, wb.Save(&buf))
	return buf.Bytes()
}

func seededIDs() roadmap.IDSource {
	return roadmap.NewIDGenerator(rand.New(rand.NewSource(7)))
}

var (
	ungroupedHeader = []any{"ID", "Name", "Description", "Acceptance Criteria", "Start", "End", "PD", "Cost"}
	groupedHeader   = []any{"ID", "Name", "Goal", "Description", "Acceptance Criteria", "Start", "End", "PD", "Cost"}
)
