package schedule

import "context"

// WorkScheduleService defines business logic for schedule management.
type WorkScheduleService interface {
	// SetSchedule creates or replaces an employee's weekly schedule.
	SetSchedule(ctx context.Context, req SetScheduleRequest) (ScheduleResponse, error)

	// GetSchedule retrieves an employee's schedule.
	GetSchedule(ctx context.Context, employeeID string) (ScheduleResponse, error)

	// ListSchedules retrieves all configured schedules.
	ListSchedules(ctx context.Context) ([]ScheduleResponse, error)
}
