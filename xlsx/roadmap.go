package xlsx

import (
	"bytes"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/aerissecure/roadmap"
	"github.com/charmbracelet/log"
)

// Column headers recognized in a roadmap sheet. Matching is exact and
// case-sensitive.
const (
	ColumnID                 = "ID"
	ColumnName               = "Name"
	ColumnGoal               = "Goal"
	ColumnDescription        = "Description"
	ColumnAcceptanceCriteria = "Acceptance Criteria"
	ColumnStart              = "Start"
	ColumnEnd                = "End"
	ColumnPD                 = "PD"
	ColumnCost               = "Cost"
)

// Variant is the sheet schema, decided once per document.
type Variant int

const (
	// Ungrouped sheets have no Goal column; every item is ungrouped.
	Ungrouped Variant = iota
	// Grouped sheets carry a Goal column naming each item's goal.
	Grouped
)

func (v Variant) String() string {
	if v == Grouped {
		return "grouped"
	}
	return "ungrouped"
}

// DetectVariant inspects the first record of a sheet.
func DetectVariant(first Record) Variant {
	if first.Has(ColumnGoal) {
		return Grouped
	}
	return Ungrouped
}

// SelectSheet returns the first sheet whose first record has a Name, falling
// back to the first sheet. It returns false only for a workbook with no sheets.
func SelectSheet(m WorkbookModel) (Sheet, bool) {
	for _, s := range m.Sheets {
		if len(s.Records) > 0 && s.Records[0].Has(ColumnName) {
			return s, true
		}
	}
	if len(m.Sheets) == 0 {
		return Sheet{}, false
	}
	return m.Sheets[0], true
}

type options struct {
	ids roadmap.IDSource
}

// Option configures Parse.
type Option func(*options)

// WithIDSource sets the source of ids for rows without an ID.
func WithIDSource(ids roadmap.IDSource) Option {
	return func(o *options) {
		o.ids = ids
	}
}

// Parse decodes an XLSX roadmap. Only an unreadable workbook is an error;
// rows without a Name are dropped and unparseable dates become absent.
func Parse(r io.ReaderAt, size int64, opts ...Option) (*roadmap.Data, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ids == nil {
		o.ids = roadmap.NewIDGenerator(nil)
	}

	m, err := ParseWorkbookModel(r, size)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if len(m.Sheets) == 0 {
		return nil, &ParseError{Err: ErrNoSheets}
	}
	return Build(m, o.ids), nil
}

// ParseBytes is Parse over an in-memory file.
func ParseBytes(b []byte, opts ...Option) (*roadmap.Data, error) {
	return Parse(bytes.NewReader(b), int64(len(b)), opts...)
}

// ParseFile is Parse over a file on disk.
func ParseFile(path string, opts ...Option) (*roadmap.Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(b, opts...)
}

// Build maps the workbook IR onto the canonical model.
func Build(m WorkbookModel, ids roadmap.IDSource) *roadmap.Data {
	sheet, ok := SelectSheet(m)
	if !ok || len(sheet.Records) == 0 {
		return roadmap.Empty()
	}

	variant := DetectVariant(sheet.Records[0])
	items := make([]roadmap.Item, 0, len(sheet.Records))
	for _, rec := range sheet.Records {
		if item, ok := itemFromRecord(rec, variant, ids); ok {
			items = append(items, item)
		}
	}
	log.Debug("parsed roadmap sheet", "sheet", sheet.Name, "variant", variant,
		"rows", len(sheet.Records), "items", len(items))

	if variant == Ungrouped {
		return &roadmap.Data{Goals: []roadmap.Goal{}, UngroupedItems: items}
	}
	return groupItems(items)
}

func itemFromRecord(rec Record, variant Variant, ids roadmap.IDSource) (roadmap.Item, bool) {
	if !truthy(rec[ColumnName]) {
		return roadmap.Item{}, false
	}

	item := roadmap.Item{
		Name:               text(rec[ColumnName]),
		Description:        text(rec[ColumnDescription]),
		AcceptanceCriteria: text(rec[ColumnAcceptanceCriteria]),
		Start:              roadmap.CoerceDate(rec[ColumnStart]),
		End:                roadmap.CoerceDate(rec[ColumnEnd]),
	}
	if truthy(rec[ColumnID]) {
		item.ID = text(rec[ColumnID])
	} else {
		item.ID = ids.NewID()
	}
	if truthy(rec[ColumnPD]) {
		item.PD = text(rec[ColumnPD])
	}
	if truthy(rec[ColumnCost]) {
		item.Cost = text(rec[ColumnCost])
	}
	if variant == Grouped && truthy(rec[ColumnGoal]) {
		item.GoalID = text(rec[ColumnGoal])
	}
	return item, true
}

// groupItems buckets items by goal key in first-appearance order.
func groupItems(items []roadmap.Item) *roadmap.Data {
	data := roadmap.Empty()
	index := make(map[string]int)
	for _, item := range items {
		if item.GoalID == "" {
			data.UngroupedItems = append(data.UngroupedItems, item)
			continue
		}
		i, ok := index[item.GoalID]
		if !ok {
			i = len(data.Goals)
			index[item.GoalID] = i
			data.Goals = append(data.Goals, roadmap.Goal{
				ID:    item.GoalID,
				Name:  item.GoalID,
				Items: []roadmap.Item{},
			})
		}
		data.Goals[i].Items = append(data.Goals[i].Items, item)
	}
	return data
}

// truthy treats blanks, zero, NaN and false as absent.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case bool:
		return x
	case time.Time:
		return !x.IsZero()
	}
	return true
}

// text stringifies a cell value. Numbers use their shortest decimal form.
func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.DateOnly)
	}
	return ""
}
