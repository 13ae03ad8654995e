package timerecord

import "errors"

// Punch lifecycle errors
var (
	// Clock-in errors
	ErrAlreadyClockedIn    = errors.New("shift already started today")
	ErrDayOff              = errors.New("today is a day off or has no schedule entry")
	ErrBeforeScheduleStart = errors.New("clocking in before the scheduled shift start is not allowed")

	// Lunch and clock-out errors
	ErrNotClockedIn        = errors.New("you have not clocked in today")
	ErrLunchAlreadyStarted = errors.New("lunch break already started today")
	ErrLunchNotStarted     = errors.New("lunch break has not been started")
	ErrLunchAlreadyEnded   = errors.New("lunch break already ended today")
	ErrLunchNotEnded       = errors.New("lunch break must be ended before clocking out")
	ErrLunchTooShort       = errors.New("lunch break is shorter than the configured minimum")
	ErrAlreadyClockedOut   = errors.New("shift already finished today")

	// General errors
	ErrRecordNotFound = errors.New("time record not found")
)
