package absence

import "errors"

var (
	ErrAbsenceNotFound       = errors.New("absence record not found")
	ErrAbsenceNotInPast      = errors.New("absences can only be recorded for past dates")
	ErrAbsenceBeforeHireDate = errors.New("absence date is before the employee's hire date")
	ErrDayAlreadyComplete    = errors.New("the day already has a complete punch record")
)
