package schedule

import "errors"

var (
	ErrScheduleNotFound  = errors.New("work schedule not found for this employee")
	ErrMalformedSchedule = errors.New("malformed work schedule")
)
