package render

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/aerissecure/roadmap"
)

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// OtherItemsLabel heads the ungrouped section when goals are present.
const OtherItemsLabel = "Other Items"

// HTML renders data as a self-contained timeline page for year.
func HTML(data *roadmap.Data, year int) string {
	data = roadmap.Normalized(data)
	var builder strings.Builder

	// 1. Assign one class per palette entry, in order of first use.
	colorClass := make(map[roadmap.Color]string)
	colorList := make([]roadmap.Color, 0)
	classFor := func(c roadmap.Color) string {
		if name, ok := colorClass[c]; ok {
			return name
		}
		name := fmt.Sprintf("bar%d", len(colorList)+1)
		colorClass[c] = name
		colorList = append(colorList, c)
		return name
	}
	goalClasses := make([]string, len(data.Goals))
	for i := range data.Goals {
		goalClasses[i] = classFor(roadmap.GoalColor(i))
	}
	ungroupedClasses := make([]string, len(data.UngroupedItems))
	for i := range data.UngroupedItems {
		ungroupedClasses[i] = classFor(data.UngroupedColor(i))
	}

	// 2. Page head and CSS
	builder.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	builder.WriteString(fmt.Sprintf("<title>Roadmap %d</title>\n", year))
	builder.WriteString(baseCSS)
	builder.WriteString("<style>\n")
	for i, c := range colorList {
		builder.WriteString(fmt.Sprintf(".bar%d { background-color:#%s; }\n", i+1, c.Hex))
	}
	builder.WriteString("</style>\n</head>\n<body>\n")
	builder.WriteString(fmt.Sprintf("<div class=\"roadmap\" data-year=\"%d\">\n", year))

	// 3. Quarter and month header
	builder.WriteString("<div class=\"header\">\n  <div class=\"label\">Roadmap Items</div>\n  <div class=\"track\">\n")
	builder.WriteString("    <div class=\"quarters\">")
	for q := 1; q <= 4; q++ {
		builder.WriteString(fmt.Sprintf("<div class=\"quarter\">Q%d</div>", q))
	}
	builder.WriteString("</div>\n    <div class=\"months\">")
	for _, name := range monthNames {
		builder.WriteString(fmt.Sprintf("<div class=\"month\">%s</div>", name))
	}
	builder.WriteString("</div>\n  </div>\n</div>\n")

	// 4. Sections
	for gi, goal := range data.Goals {
		builder.WriteString(fmt.Sprintf("<section class=\"goal\" data-goal=\"%s\">\n", html.EscapeString(goal.ID)))
		builder.WriteString(fmt.Sprintf("  <h2 class=\"goal-name %s\">%s</h2>\n", goalClasses[gi], html.EscapeString(goal.Name)))
		for _, item := range goal.Items {
			writeItemRow(&builder, item, year, goalClasses[gi])
		}
		builder.WriteString("</section>\n")
	}
	if len(data.UngroupedItems) > 0 {
		builder.WriteString("<section class=\"ungrouped\">\n")
		if len(data.Goals) > 0 {
			builder.WriteString(fmt.Sprintf("  <h2 class=\"separator\">%s</h2>\n", OtherItemsLabel))
		}
		for i, item := range data.UngroupedItems {
			writeItemRow(&builder, item, year, ungroupedClasses[i])
		}
		builder.WriteString("</section>\n")
	}
	if data.Len() == 0 {
		builder.WriteString("<p class=\"empty\">No roadmap items.</p>\n")
	}

	builder.WriteString("</div>\n</body>\n</html>\n")
	return builder.String()
}

func writeItemRow(b *strings.Builder, item roadmap.Item, year int, class string) {
	b.WriteString(fmt.Sprintf("  <div class=\"row\" data-item=\"%s\">\n", html.EscapeString(item.ID)))
	b.WriteString("    <div class=\"label\">")
	b.WriteString(fmt.Sprintf("<div class=\"name\">%s</div>", html.EscapeString(item.Name)))
	if item.Description != "" {
		b.WriteString(fmt.Sprintf("<div class=\"desc\">%s</div>", multiline(item.Description)))
	}
	if item.AcceptanceCriteria != "" {
		b.WriteString(fmt.Sprintf("<div class=\"criteria\"><span>Acceptance criteria:</span> %s</div>", multiline(item.AcceptanceCriteria)))
	}
	if meta := itemMeta(item); meta != "" {
		b.WriteString(fmt.Sprintf("<div class=\"meta\">%s</div>", html.EscapeString(meta)))
	}
	b.WriteString("</div>\n")

	b.WriteString("    <div class=\"track\">")
	if g := roadmap.ComputeBarGeometry(item, year); g.Visible {
		b.WriteString(fmt.Sprintf("<div class=\"bar %s\" style=\"left:%s%%;width:%s%%;\" title=\"%s\"></div>",
			class, percent(g.LeftPercent), percent(g.WidthPercent), html.EscapeString(dateRange(item))))
	}
	b.WriteString("</div>\n  </div>\n")
}

func itemMeta(item roadmap.Item) string {
	var parts []string
	if item.PD != "" {
		parts = append(parts, "PD: "+item.PD)
	}
	if item.Cost != "" {
		parts = append(parts, "Cost: "+item.Cost)
	}
	return strings.Join(parts, " · ")
}

func dateRange(item roadmap.Item) string {
	if !item.Schedulable() {
		return ""
	}
	return item.Start.Format(time.DateOnly) + " – " + item.End.Format(time.DateOnly)
}

// Excel stores explicit line breaks as \n; preserve them in HTML.
func multiline(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}

// percent formats p with at most four decimals.
func percent(p float64) string {
	return strconv.FormatFloat(math.Round(p*1e4)/1e4, 'f', -1, 64)
}

const baseCSS = `<style>
body { font-family: system-ui, sans-serif; margin: 2em; color: #111827; }
.roadmap { min-width: 900px; }
.header, .row { display: flex; }
.header { background: #1F2937; color: #FFFFFF; font-weight: bold; }
.label { width: 280px; flex: none; padding: 4px 8px; box-sizing: border-box; }
.track { position: relative; flex: auto; border-left: 1px solid #E5E7EB; min-height: 28px; }
.quarters, .months { display: flex; }
.quarter { flex: 1; text-align: center; border-right: 1px solid #6B7280; }
.month { flex: 1; text-align: center; font-size: 0.8em; color: #9CA3AF; border-right: 1px solid #374151; }
.goal-name { color: #FFFFFF; font-size: 1em; margin: 1em 0 0; padding: 4px 8px; }
.separator { background: #F3F4F6; color: #6B7280; font-size: 0.9em; margin: 1em 0 0; padding: 4px 8px; }
.row { border-bottom: 1px solid #E5E7EB; }
.name { font-weight: 600; }
.desc, .meta, .criteria { font-size: 0.8em; color: #4B5563; }
.criteria span { font-weight: 600; }
.bar { position: absolute; top: 6px; bottom: 6px; min-width: 2px; border-radius: 3px; }
.empty { color: #6B7280; }
</style>
`
