package period

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWindow is returned when neither an explicit date range nor a
// recognized granularity is supplied, or when the range is inverted.
var ErrInvalidWindow = errors.New("invalid period window")

// Granularity selects the calendar-aligned default window when no explicit
// dates are given.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

var granularityValues = map[Granularity]bool{
	GranularityDay:   true,
	GranularityWeek:  true,
	GranularityMonth: true,
	GranularityYear:  true,
}

const dateLayout = "2006-01-02"

// Window is an inclusive civil date range. Start and End are midnights in
// the configured timezone.
type Window struct {
	Start       time.Time
	End         time.Time
	Granularity Granularity
}

// Build normalizes a requested (start, end, granularity) into a canonical
// inclusive window. Explicit dates take precedence; granularity then only
// annotates the result. Without explicit dates the granularity expands to
// the calendar window containing now, with weeks starting on weekStartsOn.
func Build(startDate, endDate, granularity string, now time.Time, weekStartsOn time.Weekday) (Window, error) {
	g := Granularity(granularity)

	if startDate != "" || endDate != "" {
		if startDate == "" || endDate == "" {
			return Window{}, fmt.Errorf("%w: start_date and end_date must be provided together", ErrInvalidWindow)
		}
		start, err := time.ParseInLocation(dateLayout, startDate, now.Location())
		if err != nil {
			return Window{}, fmt.Errorf("%w: invalid start_date %q", ErrInvalidWindow, startDate)
		}
		end, err := time.ParseInLocation(dateLayout, endDate, now.Location())
		if err != nil {
			return Window{}, fmt.Errorf("%w: invalid end_date %q", ErrInvalidWindow, endDate)
		}
		if start.After(end) {
			return Window{}, fmt.Errorf("%w: start_date is after end_date", ErrInvalidWindow)
		}
		return Window{Start: start, End: end, Granularity: g}, nil
	}

	if !granularityValues[g] {
		return Window{}, fmt.Errorf("%w: unknown granularity %q, use day, week, month or year", ErrInvalidWindow, granularity)
	}

	today := Midnight(now)
	switch g {
	case GranularityDay:
		return Window{Start: today, End: today, Granularity: g}, nil
	case GranularityWeek:
		start := startOfWeek(today, weekStartsOn)
		return Window{Start: start, End: start.AddDate(0, 0, 6), Granularity: g}, nil
	case GranularityMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return Window{Start: start, End: start.AddDate(0, 1, -1), Granularity: g}, nil
	default: // GranularityYear
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return Window{Start: start, End: time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location()), Granularity: g}, nil
	}
}

// Midnight truncates t to the start of its civil day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfWeek(day time.Time, weekStartsOn time.Weekday) time.Time {
	offset := (int(day.Weekday()) - int(weekStartsOn) + 7) % 7
	return day.AddDate(0, 0, -offset)
}
