package absence

import "context"

// AbsenceRepository defines data access for absence records.
type AbsenceRepository interface {
	// Upsert creates or replaces the absence for (employee, date).
	Upsert(ctx context.Context, a Absence) (Absence, error)

	// GetByEmployeeAndDate returns nil when the date has no absence.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Absence, error)

	// ListByEmployeeAndRange returns absences with date in [startDate,
	// endDate], ordered by date ascending.
	ListByEmployeeAndRange(ctx context.Context, employeeID, startDate, endDate string) ([]Absence, error)

	Delete(ctx context.Context, id string) error
}
