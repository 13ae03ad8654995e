package absence

import "context"

// AbsenceService defines business logic for absence management.
type AbsenceService interface {
	// RecordAbsence creates or updates an absence for a past date.
	RecordAbsence(ctx context.Context, req RecordAbsenceRequest) (AbsenceResponse, error)

	// ListAbsences retrieves an employee's absences within a date range.
	ListAbsences(ctx context.Context, req ListAbsencesRequest) ([]AbsenceResponse, error)

	DeleteAbsence(ctx context.Context, id string) error
}
