package schedule

import "context"

// WorkScheduleRepository defines data access for weekly schedules. An
// employee has at most one schedule; setting it again replaces all entries.
type WorkScheduleRepository interface {
	Upsert(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)

	// GetByEmployeeID returns ErrScheduleNotFound when the employee has no
	// schedule configured.
	GetByEmployeeID(ctx context.Context, employeeID string) (WorkSchedule, error)

	List(ctx context.Context) ([]WorkSchedule, error)
}
