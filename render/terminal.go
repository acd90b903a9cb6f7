package render

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aerissecure/roadmap"
	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultTrackWidth is the number of columns for the year when none is given.
	DefaultTrackWidth = 72
	minTrackWidth     = 12
	labelWidth        = 28
	barRune           = "█"
	trackEdge         = "│"
)

// TerminalOptions controls Terminal output.
type TerminalOptions struct {
	Width    int                // columns for the year track
	Color    bool               // style goal names and bars
	Renderer *lipgloss.Renderer // nil uses lipgloss's default renderer
}

// Terminal renders data as a text timeline for year with colored bars.
// width is the number of columns given to the year.
func Terminal(data *roadmap.Data, year int, width int) string {
	return TerminalWithOptions(data, year, TerminalOptions{Width: width, Color: true})
}

// TerminalWithOptions is Terminal with explicit styling control.
func TerminalWithOptions(data *roadmap.Data, year int, opts TerminalOptions) string {
	data = roadmap.Normalized(data)
	t := newTextTimeline(year, opts)

	t.line(t.bold(fmt.Sprintf("Roadmap %d", year)), "")
	t.line("", t.quarterHeader())
	t.line("", t.monthHeader())

	for gi, goal := range data.Goals {
		c := roadmap.GoalColor(gi)
		t.line(t.colored(c, true, truncate(goal.Name, labelWidth+t.width)), "")
		for _, item := range goal.Items {
			t.item(item, c)
		}
	}
	if len(data.UngroupedItems) > 0 && len(data.Goals) > 0 {
		t.line(t.bold(OtherItemsLabel), "")
	}
	for i, item := range data.UngroupedItems {
		t.item(item, data.UngroupedColor(i))
	}
	if data.Len() == 0 {
		t.line("No roadmap items.", "")
	}
	return t.b.String()
}

type textTimeline struct {
	b     strings.Builder
	year  int
	width int
	color bool
	r     *lipgloss.Renderer
}

func newTextTimeline(year int, opts TerminalOptions) *textTimeline {
	width := opts.Width
	if width <= 0 {
		width = DefaultTrackWidth
	}
	if width < minTrackWidth {
		width = minTrackWidth
	}
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &textTimeline{year: year, width: width, color: opts.Color, r: r}
}

// line writes a label column and, when track is non-empty, the track.
func (t *textTimeline) line(label, track string) {
	t.b.WriteString(label)
	if track != "" {
		t.b.WriteString(strings.Repeat(" ", max(0, labelWidth-lipgloss.Width(label))))
		t.b.WriteString(trackEdge)
		t.b.WriteString(track)
		t.b.WriteString(trackEdge)
	}
	t.b.WriteString("\n")
}

func (t *textTimeline) item(item roadmap.Item, c roadmap.Color) {
	label := "  " + truncate(item.Name, labelWidth-3)
	g := roadmap.ComputeBarGeometry(item, t.year)
	if !g.Visible {
		t.line(label, strings.Repeat(" ", t.width))
		return
	}
	start, length := BarColumns(g, t.width)
	track := strings.Repeat(" ", start) +
		t.colored(c, false, strings.Repeat(barRune, length)) +
		strings.Repeat(" ", t.width-start-length)
	t.line(label, track)
}

// BarColumns converts geometry into a start column and a length within a
// track of width columns. Visible bars always get at least one column.
func BarColumns(g roadmap.BarGeometry, width int) (start, length int) {
	start = int(math.Round(g.LeftPercent / 100 * float64(width)))
	length = max(1, int(math.Round(g.WidthPercent/100*float64(width))))
	if start > width-1 {
		start = width - 1
	}
	if start+length > width {
		length = width - start
	}
	return start, length
}

func (t *textTimeline) quarterHeader() string {
	cols := t.monthColumns()
	track := []rune(strings.Repeat(" ", t.width))
	for q := 0; q < 4; q++ {
		place(track, cols[q*3], fmt.Sprintf("Q%d", q+1))
	}
	return string(track)
}

func (t *textTimeline) monthHeader() string {
	cols := t.monthColumns()
	track := []rune(strings.Repeat(" ", t.width))
	for m, name := range monthNames {
		next := t.width
		if m < 11 {
			next = cols[m+1]
		}
		room := next - cols[m] - 1
		if room <= 0 {
			continue
		}
		place(track, cols[m], truncateRunes(name, room))
	}
	return string(track)
}

// monthColumns returns the track column where each month begins.
func (t *textTimeline) monthColumns() [12]int {
	var cols [12]int
	total := float64(roadmap.DaysInYear(t.year))
	for m := range cols {
		day := roadmap.Date(t.year, time.Month(m+1), 1).YearDay() - 1
		cols[m] = int(math.Round(float64(day) / total * float64(t.width)))
	}
	return cols
}

func (t *textTimeline) bold(s string) string {
	if !t.color {
		return s
	}
	return t.r.NewStyle().Bold(true).Render(s)
}

func (t *textTimeline) colored(c roadmap.Color, bold bool, s string) string {
	if !t.color {
		return s
	}
	return t.r.NewStyle().Bold(bold).Foreground(lipgloss.Color("#" + c.Hex)).Render(s)
}

func place(track []rune, at int, s string) {
	for i, r := range []rune(s) {
		if at+i >= len(track) {
			return
		}
		track[at+i] = r
	}
}

// truncate shortens s to n columns, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return truncateRunes(s, n-1) + "…"
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
