package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday converts a lowercase English weekday name to time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	wd, ok := weekdayNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
	return wd, nil
}

// WeekdayName returns the lowercase English name used on the wire.
func WeekdayName(wd time.Weekday) string {
	return strings.ToLower(wd.String())
}

type DayScheduleRequest struct {
	Weekday           string `json:"weekday"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	HasLunch          bool   `json:"has_lunch"`
	LunchBreakMinutes int    `json:"lunch_break_minutes"`
	IsDayOff          bool   `json:"is_day_off"`
}

type SetScheduleRequest struct {
	EmployeeID string               `json:"employee_id"`
	Days       []DayScheduleRequest `json:"days"`
}

func (r *SetScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(r.Days) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "at least one day entry is required",
		})
	}

	seen := make(map[time.Weekday]bool)
	for i, day := range r.Days {
		field := fmt.Sprintf("days[%d]", i)

		wd, err := ParseWeekday(day.Weekday)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".weekday",
				Message: "weekday must be one of sunday..saturday",
			})
			continue
		}
		if seen[wd] {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".weekday",
				Message: "duplicate entry for " + day.Weekday,
			})
		}
		seen[wd] = true

		if day.IsDayOff {
			continue
		}

		if !validator.IsValidTimeOfDay(day.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".start_time",
				Message: "start_time must be HH:MM",
			})
		}
		if !validator.IsValidTimeOfDay(day.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".end_time",
				Message: "end_time must be HH:MM",
			})
		}
		if validator.IsValidTimeOfDay(day.StartTime) && validator.IsValidTimeOfDay(day.EndTime) && day.EndTime <= day.StartTime {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".end_time",
				Message: "end_time must be after start_time",
			})
		}
		if day.LunchBreakMinutes < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".lunch_break_minutes",
				Message: "lunch_break_minutes must not be negative",
			})
		}
		if day.HasLunch {
			entry := DaySchedule{
				Weekday:           wd,
				StartTime:         day.StartTime,
				EndTime:           day.EndTime,
				HasLunch:          true,
				LunchBreakMinutes: day.LunchBreakMinutes,
			}
			if _, err := entry.WorkSeconds(); err != nil {
				errs = append(errs, validator.ValidationError{
					Field:   field + ".lunch_break_minutes",
					Message: "lunch break must fit between start_time and end_time",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity converts the validated request into the domain model.
func (r *SetScheduleRequest) ToEntity() WorkSchedule {
	ws := WorkSchedule{EmployeeID: r.EmployeeID}
	for _, day := range r.Days {
		wd, _ := ParseWeekday(day.Weekday)
		ws.Days = append(ws.Days, DaySchedule{
			Weekday:           wd,
			StartTime:         day.StartTime,
			EndTime:           day.EndTime,
			HasLunch:          day.HasLunch,
			LunchBreakMinutes: day.LunchBreakMinutes,
			IsDayOff:          day.IsDayOff,
		})
	}
	return ws
}

type DayScheduleResponse struct {
	Weekday           string `json:"weekday"`
	StartTime         string `json:"start_time,omitempty"`
	EndTime           string `json:"end_time,omitempty"`
	HasLunch          bool   `json:"has_lunch"`
	LunchBreakMinutes int    `json:"lunch_break_minutes,omitempty"`
	IsDayOff          bool   `json:"is_day_off"`
	ExpectedWorkTime  string `json:"expected_work_time"`
}

type ScheduleResponse struct {
	ID         string                `json:"id"`
	EmployeeID string                `json:"employee_id"`
	Days       []DayScheduleResponse `json:"days"`
	CreatedAt  string                `json:"created_at,omitempty"`
	UpdatedAt  string                `json:"updated_at,omitempty"`
}
