package roadmap

// Color is a palette entry used for goal bars and export fills.
type Color struct {
	Name string
	Hex  string // "RRGGBB"
}

// GoalColors is cycled through by goal index.
var GoalColors = []Color{
	{Name: "blue", Hex: "4F46E5"},
	{Name: "emerald", Hex: "059669"},
	{Name: "purple", Hex: "9333EA"},
	{Name: "amber", Hex: "D97706"},
	{Name: "rose", Hex: "E11D48"},
	{Name: "cyan", Hex: "0891B2"},
	{Name: "lime", Hex: "65A30D"},
	{Name: "violet", Hex: "7C3AED"},
}

// DefaultColor is used where no palette entry applies.
var DefaultColor = Color{Name: "gray", Hex: "6B7280"}

// GoalColor returns the palette entry for index i. Negative indexes get
// DefaultColor.
func GoalColor(i int) Color {
	if i < 0 {
		return DefaultColor
	}
	return GoalColors[i%len(GoalColors)]
}

// UngroupedColor returns the color for the i-th ungrouped item, which
// continues the palette after the goals.
func (d *Data) UngroupedColor(i int) Color {
	return GoalColor(i + len(d.Goals))
}
