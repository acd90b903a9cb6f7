package roadmap

import "time"

// Canonical representation of a roadmap document.

// Optional string fields use "" for absent; optional dates use nil.

// Item is a single unit of work on the roadmap.
type Item struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description,omitempty"`
	AcceptanceCriteria string     `json:"acceptanceCriteria,omitempty"`
	Start              *time.Time `json:"start,omitempty"`
	End                *time.Time `json:"end,omitempty"`
	PD                 string     `json:"pd,omitempty"`   // person-days, kept as text
	Cost               string     `json:"cost,omitempty"` // kept as text
	GoalID             string     `json:"goalId,omitempty"`
}

// Schedulable reports whether the item has both a start and an end date.
// Items with only one of the two are treated as dateless.
func (i Item) Schedulable() bool {
	return i.Start != nil && i.End != nil
}

// Goal groups items under a name. ID and Name are both the goal key.
type Goal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Data is the top-level document. Every item lives either in exactly one
// goal or in UngroupedItems.
type Data struct {
	Goals          []Goal `json:"goals"`
	UngroupedItems []Item `json:"ungroupedItems"`
}

// Empty returns a document with no goals and no items.
func Empty() *Data {
	return &Data{Goals: []Goal{}, UngroupedItems: []Item{}}
}

// Items returns every item in display order: goal items first, then
// ungrouped items.
func (d *Data) Items() []Item {
	if d == nil {
		return nil
	}
	items := make([]Item, 0, d.Len())
	for _, g := range d.Goals {
		items = append(items, g.Items...)
	}
	return append(items, d.UngroupedItems...)
}

// Len returns the total number of items in the document.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	n := len(d.UngroupedItems)
	for _, g := range d.Goals {
		n += len(g.Items)
	}
	return n
}

// normalize replaces nil slices so the JSON form always carries arrays.
func (d *Data) normalize() {
	if d.Goals == nil {
		d.Goals = []Goal{}
	}
	if d.UngroupedItems == nil {
		d.UngroupedItems = []Item{}
	}
	for i := range d.Goals {
		if d.Goals[i].Items == nil {
			d.Goals[i].Items = []Item{}
		}
	}
}

// Normalized returns a copy of d with all nil slices replaced by empty
// ones; d itself is not modified. A nil document becomes Empty().
func Normalized(d *Data) *Data {
	if d == nil {
		return Empty()
	}
	out := *d
	if out.Goals != nil {
		out.Goals = append([]Goal(nil), d.Goals...)
	}
	out.normalize()
	return &out
}
