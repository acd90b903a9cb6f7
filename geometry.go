package roadmap

import "time"

const hoursPerDay = 24

// BarGeometry is the horizontal placement of an item's bar inside a
// one-year track, in percent of the track width.
type BarGeometry struct {
	LeftPercent  float64
	WidthPercent float64
	Visible      bool
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	return Date(year, time.December, 31).YearDay()
}

// daysBetween counts whole days from a to b. Both must be calendar days.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / hoursPerDay)
}

// ComputeBarGeometry places item on the timeline of year. The view window
// is Jan 1 to Dec 31 inclusive; dates outside it are clamped. Items without
// both dates, or that do not touch year at all, are not visible.
func ComputeBarGeometry(item Item, year int) BarGeometry {
	if !item.Schedulable() {
		return BarGeometry{}
	}
	start := calendarDay(*item.Start)
	end := calendarDay(*item.End)
	if start.Year() > year || end.Year() < year {
		return BarGeometry{}
	}

	windowStart := Date(year, time.January, 1)
	windowEnd := Date(year, time.December, 31)
	total := float64(daysBetween(windowStart, windowEnd) + 1)

	if start.Before(windowStart) {
		start = windowStart
	}
	if end.After(windowEnd) {
		end = windowEnd
	}
	if end.Before(start) {
		return BarGeometry{}
	}

	offset := daysBetween(windowStart, start)
	duration := daysBetween(start, end) + 1
	return BarGeometry{
		LeftPercent:  float64(offset) / total * 100,
		WidthPercent: float64(duration) / total * 100,
		Visible:      true,
	}
}

// MonthSpan marks the months of year that item overlaps.
func MonthSpan(item Item, year int) [12]bool {
	var months [12]bool
	if !item.Schedulable() {
		return months
	}
	start := calendarDay(*item.Start)
	end := calendarDay(*item.End)
	windowStart := Date(year, time.January, 1)
	windowEnd := Date(year, time.December, 31)
	if start.After(windowEnd) || end.Before(windowStart) || end.Before(start) {
		return months
	}
	if start.Before(windowStart) {
		start = windowStart
	}
	if end.After(windowEnd) {
		end = windowEnd
	}
	for m := start.Month(); m <= end.Month(); m++ {
		months[m-1] = true
	}
	return months
}
