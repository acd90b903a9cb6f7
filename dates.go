package roadmap

import (
	"time"

	"github.com/araddon/dateparse"
)

// DayMonthYearLayout is the strict DD.MM.YYYY form tried before free-form parsing.
const DayMonthYearLayout = "02.01.2006"

// CoerceDate converts a raw spreadsheet or payload value into a date.
// Native times pass through, text is tried as DD.MM.YYYY and then as any
// recognizable date. Anything else, or text that is not a valid date,
// yields nil.
func CoerceDate(v any) *time.Time {
	switch val := v.(type) {
	case time.Time:
		if val.IsZero() {
			return nil
		}
		return &val
	case *time.Time:
		if val == nil || val.IsZero() {
			return nil
		}
		t := *val
		return &t
	case string:
		return parseDateText(val)
	}
	return nil
}

func parseDateText(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(DayMonthYearLayout, s); err == nil {
		return &t
	}
	// Text without a year ("3/4", "1.5") comes back as year 0.
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil || t.Year() < 1 {
		return nil
	}
	return &t
}

// Date returns midnight UTC on the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DatePtr is Date returning a pointer, for building items in code.
func DatePtr(year int, month time.Month, day int) *time.Time {
	t := Date(year, month, day)
	return &t
}

// calendarDay drops the time of day, keeping the day as seen in t's own location.
func calendarDay(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}
