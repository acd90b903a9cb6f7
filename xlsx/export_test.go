package xlsx

import (
	"bytes"
	"testing"
	"time"

	"github.com/aerissecure/roadmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice/spreadsheet"
)

func exportFixture(t *testing.T) ([]byte, *roadmap.Data) {
	t.Helper()
	file := buildWorkbook(t, testSheet{name: "Plan", rows: [][]any{
		groupedHeader,
		{"1", "Discovery", "Research", nil, nil, "06.01.2025", "14.02.2025"},
		{"2", "Launch", "Go to market", nil, nil, "01.09.2025", "31.12.2025"},
		{"3", "Cleanup", nil, nil, nil, "01.11.2024", "31.01.2025"},
	}})
	data, err := ParseBytes(file, WithIDSource(seededIDs()))
	require.NoError(t, err)
	return file, data
}

func readSheet(t *testing.T, b []byte, name string) spreadsheet.Sheet {
	t.Helper()
	wb, err := spreadsheet.Read(bytes.NewReader(b), int64(len(b)))
	require.NoError(t, err)
	for _, s := range wb.Sheets() {
		if s.Name() == name {
			return s
		}
	}
	t.Fatalf("sheet %q not found", name)
	return spreadsheet.Sheet{}
}

func TestWriteVisualization(t *testing.T) {
	file, data := exportFixture(t)

	var out bytes.Buffer
	err := WriteVisualization(&out, bytes.NewReader(file), int64(len(file)), data, 2025)
	require.NoError(t, err)

	model, err := ParseWorkbookModel(bytes.NewReader(out.Bytes()), int64(out.Len()))
	require.NoError(t, err)
	require.Len(t, model.Sheets, 2)
	assert.Equal(t, "Plan", model.Sheets[0].Name)
	assert.Equal(t, VisualizationSheetName, model.Sheets[1].Name)

	viz := readSheet(t, out.Bytes(), VisualizationSheetName)
	assert.Equal(t, "Roadmap Visualization - 2025", viz.Cell("A1").GetString())
	assert.Equal(t, "Roadmap Items", viz.Cell("A2").GetString())
	assert.Equal(t, "Q1", viz.Cell("B2").GetString())
	assert.Equal(t, "Q4", viz.Cell("K2").GetString())
	assert.Equal(t, "Jan", viz.Cell("B3").GetString())
	assert.Equal(t, "Dec", viz.Cell("M3").GetString())

	// Research goal, its item, spacer, Go to market goal, its item,
	// spacer, separator, ungrouped item.
	assert.Equal(t, "Research", viz.Cell("A4").GetString())
	assert.Equal(t, "Discovery", viz.Cell("A5").GetString())
	assert.Equal(t, "Go to market", viz.Cell("A7").GetString())
	assert.Equal(t, "Launch", viz.Cell("A8").GetString())
	assert.Equal(t, "Other Items", viz.Cell("A10").GetString())
	assert.Equal(t, "Cleanup", viz.Cell("A11").GetString())
}

func TestWriteVisualization_DataSheetStillParses(t *testing.T) {
	file, data := exportFixture(t)

	var out bytes.Buffer
	require.NoError(t, WriteVisualization(&out, bytes.NewReader(file), int64(len(file)), data, 2025))

	again, err := ParseBytes(out.Bytes(), WithIDSource(seededIDs()))
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestWriteVisualization_ReplacesPreviousSheet(t *testing.T) {
	file, data := exportFixture(t)

	var first bytes.Buffer
	require.NoError(t, WriteVisualization(&first, bytes.NewReader(file), int64(len(file)), data, 2024))
	var second bytes.Buffer
	require.NoError(t, WriteVisualization(&second, bytes.NewReader(first.Bytes()), int64(first.Len()), data, 2025))

	model, err := ParseWorkbookModel(bytes.NewReader(second.Bytes()), int64(second.Len()))
	require.NoError(t, err)
	require.Len(t, model.Sheets, 2)
	viz := readSheet(t, second.Bytes(), VisualizationSheetName)
	assert.Equal(t, "Roadmap Visualization - 2025", viz.Cell("A1").GetString())
}

func TestWriteVisualization_CorruptOriginal(t *testing.T) {
	bad := []byte("nope")
	var out bytes.Buffer
	err := WriteVisualization(&out, bytes.NewReader(bad), int64(len(bad)), roadmap.Empty(), 2025)
	require.Error(t, err)
	assert.Zero(t, out.Len())
}

func TestVisualizationFilename(t *testing.T) {
	assert.Equal(t, "roadmap_with_visualization_2025.xlsx", VisualizationFilename(2025))
}

func TestRef(t *testing.T) {
	assert.Equal(t, "A1", ref(1, 1))
	assert.Equal(t, "M3", ref(13, 3))
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, hexColor("000000"), hexColor("zzzzzz"))
	assert.NotEqual(t, hexColor("FFFFFF"), hexColor("000000"))
}

func TestIsDateFormat(t *testing.T) {
	assert.True(t, isDateFormat(14, ""))
	assert.True(t, isDateFormat(164, "dd.mm.yyyy"))
	assert.True(t, isDateFormat(165, `[$-409]mmmm d, yyyy;@`))
	assert.False(t, isDateFormat(0, ""))
	assert.False(t, isDateFormat(166, "0.00"))
	assert.False(t, isDateFormat(167, `#,##0 "days"`))
	assert.False(t, isDateFormat(168, "mm:ss"))
	assert.False(t, isDateFormat(169, "General"))
}

func TestSerialToTime(t *testing.T) {
	epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, roadmap.Date(2024, time.March, 15), serialToTime(epoch, 45366))
	assert.Equal(t, time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC), serialToTime(epoch, 45366.5))
}

func TestWriteVisualization_Colors(t *testing.T) {
	file, data := exportFixture(t)

	var out bytes.Buffer
	require.NoError(t, WriteVisualization(&out, bytes.NewReader(file), int64(len(file)), data, 2025))

	wb, err := spreadsheet.Read(bytes.NewReader(out.Bytes()), int64(out.Len()))
	require.NoError(t, err)
	var viz spreadsheet.Sheet
	for _, s := range wb.Sheets() {
		if s.Name() == VisualizationSheetName {
			viz = s
		}
	}
	colors := func(ref string) cellColors { return readCellColors(wb, viz.Cell(ref)) }

	assert.Equal(t, cellColors{Font: white, Fill: quarterEven, Border: quarterBorder}, colors("B2"))
	assert.Equal(t, quarterOdd, colors("E2").Fill)

	research := roadmap.GoalColor(0).Hex
	assert.Equal(t, research, colors("A4").Fill)
	assert.Equal(t, research, colors("B5").Fill, "Discovery covers January")
	assert.Equal(t, research, colors("C5").Fill, "Discovery covers February")
	assert.Equal(t, white, colors("D5").Fill)
	assert.Equal(t, gridBorder, colors("D5").Border)

	cleanup := data.UngroupedColor(0).Hex
	assert.Equal(t, separatorFill, colors("A10").Fill)
	assert.Equal(t, cleanup, colors("B11").Fill, "Cleanup ends in January")
	assert.Equal(t, white, colors("C11").Fill)
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, "4F46E5", normalizeColor("FF4F46E5"))
	assert.Equal(t, "ABCDEF", normalizeColor("#abcdef"))
}

func TestReadCellColors_Unstyled(t *testing.T) {
	wb := spreadsheet.New()
	sheet := wb.AddSheet()
	cell := sheet.Cell("A1")
	cell.SetString("plain")
	assert.Equal(t, cellColors{}, readCellColors(wb, cell))
}
