package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WorkSchedule is an employee's weekly schedule: at most one entry per
// weekday, keyed by weekday.
type WorkSchedule struct {
	ID         string
	EmployeeID string
	Days       []DaySchedule
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DaySchedule configures one weekday. StartTime and EndTime are civil
// times of day in "HH:MM"; they are meaningless when IsDayOff is set.
type DaySchedule struct {
	Weekday           time.Weekday
	StartTime         string
	EndTime           string
	HasLunch          bool
	LunchBreakMinutes int
	IsDayOff          bool
}

// ForWeekday returns the entry for wd, if the schedule has one.
func (s WorkSchedule) ForWeekday(wd time.Weekday) (DaySchedule, bool) {
	for _, d := range s.Days {
		if d.Weekday == wd {
			return d, true
		}
	}
	return DaySchedule{}, false
}

// WorkSeconds returns the scheduled working seconds for the day, net of the
// lunch break. Day-off entries are zero. A malformed entry (bad time string,
// end not after start, lunch longer than the day) is ErrMalformedSchedule.
func (d DaySchedule) WorkSeconds() (int64, error) {
	if d.IsDayOff {
		return 0, nil
	}

	start, err := parseTimeOfDay(d.StartTime)
	if err != nil {
		return 0, fmt.Errorf("%w: start %q", ErrMalformedSchedule, d.StartTime)
	}
	end, err := parseTimeOfDay(d.EndTime)
	if err != nil {
		return 0, fmt.Errorf("%w: end %q", ErrMalformedSchedule, d.EndTime)
	}
	if end <= start {
		return 0, fmt.Errorf("%w: end %q is not after start %q", ErrMalformedSchedule, d.EndTime, d.StartTime)
	}

	seconds := end - start
	if d.HasLunch {
		lunch := int64(d.LunchBreakMinutes) * 60
		if lunch < 0 || lunch > seconds {
			return 0, fmt.Errorf("%w: lunch break of %d minutes does not fit the day", ErrMalformedSchedule, d.LunchBreakMinutes)
		}
		seconds -= lunch
	}
	return seconds, nil
}

// StartOn anchors the entry's start time to the given civil date.
func (d DaySchedule) StartOn(date time.Time) (time.Time, error) {
	secs, err := parseTimeOfDay(d.StartTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start %q", ErrMalformedSchedule, d.StartTime)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).
		Add(time.Duration(secs) * time.Second), nil
}

// parseTimeOfDay converts "HH:MM" to seconds since midnight.
func parseTimeOfDay(s string) (int64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time of day %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("malformed time of day %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("malformed time of day %q", s)
	}
	return int64(hours)*3600 + int64(minutes)*60, nil
}
