package share

import (
	"fmt"
	"time"

	"github.com/aerissecure/roadmap"
)

// TimestampLayout matches JavaScript's Date.prototype.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// CompactItem is roadmap.Item with shortened keys.
type CompactItem struct {
	ID                 string `json:"i"`
	Name               string `json:"n"`
	Description        string `json:"d,omitempty"`
	AcceptanceCriteria string `json:"a,omitempty"`
	Start              string `json:"s,omitempty"`
	End                string `json:"e,omitempty"`
	PD                 string `json:"p,omitempty"`
	Cost               string `json:"c,omitempty"`
	GoalID             string `json:"g,omitempty"`
}

// CompactGoal is roadmap.Goal with shortened keys.
type CompactGoal struct {
	ID    string        `json:"i"`
	Name  string        `json:"n"`
	Items []CompactItem `json:"it"`
}

// CompactData is roadmap.Data with shortened keys.
type CompactData struct {
	Goals          []CompactGoal `json:"gs"`
	UngroupedItems []CompactItem `json:"ui"`
}

// Compact converts a document to its compact form.
func Compact(d *roadmap.Data) CompactData {
	d = roadmap.Normalized(d)
	c := CompactData{
		Goals:          make([]CompactGoal, 0, len(d.Goals)),
		UngroupedItems: compactItems(d.UngroupedItems),
	}
	for _, g := range d.Goals {
		c.Goals = append(c.Goals, CompactGoal{
			ID:    g.ID,
			Name:  g.Name,
			Items: compactItems(g.Items),
		})
	}
	return c
}

func compactItems(items []roadmap.Item) []CompactItem {
	out := make([]CompactItem, 0, len(items))
	for _, it := range items {
		out = append(out, CompactItem{
			ID:                 it.ID,
			Name:               it.Name,
			Description:        it.Description,
			AcceptanceCriteria: it.AcceptanceCriteria,
			Start:              formatTimestamp(it.Start),
			End:                formatTimestamp(it.End),
			PD:                 it.PD,
			Cost:               it.Cost,
			GoalID:             it.GoalID,
		})
	}
	return out
}

// Expand converts a compact form back into a document. A timestamp that
// does not parse is an error.
func Expand(c CompactData) (*roadmap.Data, error) {
	d := &roadmap.Data{
		Goals: make([]roadmap.Goal, 0, len(c.Goals)),
	}
	for gi, g := range c.Goals {
		items, err := expandItems(g.Items)
		if err != nil {
			return nil, fmt.Errorf("goal %d: %w", gi, err)
		}
		d.Goals = append(d.Goals, roadmap.Goal{ID: g.ID, Name: g.Name, Items: items})
	}
	items, err := expandItems(c.UngroupedItems)
	if err != nil {
		return nil, fmt.Errorf("ungrouped: %w", err)
	}
	d.UngroupedItems = items
	return d, nil
}

func expandItems(items []CompactItem) ([]roadmap.Item, error) {
	out := make([]roadmap.Item, 0, len(items))
	for i, it := range items {
		start, err := parseTimestamp(it.Start)
		if err != nil {
			return nil, fmt.Errorf("item %d start: %w", i, err)
		}
		end, err := parseTimestamp(it.End)
		if err != nil {
			return nil, fmt.Errorf("item %d end: %w", i, err)
		}
		out = append(out, roadmap.Item{
			ID:                 it.ID,
			Name:               it.Name,
			Description:        it.Description,
			AcceptanceCriteria: it.AcceptanceCriteria,
			Start:              start,
			End:                end,
			PD:                 it.PD,
			Cost:               it.Cost,
			GoalID:             it.GoalID,
		})
	}
	return out, nil
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}

func parseTimestamp(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
