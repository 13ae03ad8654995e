package absence

import "time"

// AbsenceType classifies why an employee did not (or was not expected to)
// work on a scheduled day. Every type except Unjustified is excused: it
// neither credits nor penalizes the hour balance.
type AbsenceType string

const (
	TypeVacation    AbsenceType = "vacation"
	TypeSickLeave   AbsenceType = "sick_leave"
	TypeJustified   AbsenceType = "justified"
	TypeUnjustified AbsenceType = "unjustified"
	TypeHoliday     AbsenceType = "holiday"
	TypeDayOff      AbsenceType = "day_off"
)

var TypeValues = []string{
	string(TypeVacation),
	string(TypeSickLeave),
	string(TypeJustified),
	string(TypeUnjustified),
	string(TypeHoliday),
	string(TypeDayOff),
}

// Absence is an administrative record for one employee and one civil date.
// At most one per (employee, date); recording again replaces the type.
type Absence struct {
	ID          string
	EmployeeID  string
	Date        string
	Type        AbsenceType
	Description *string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
