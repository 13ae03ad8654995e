package timerecord

import "context"

// TimeRecordService defines business logic for the punch lifecycle.
type TimeRecordService interface {
	// ClockIn starts the employee's working day. At most one shift may be
	// opened per employee per day, even under concurrent requests.
	ClockIn(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// StartLunch records the lunch break start.
	StartLunch(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// EndLunch records the lunch break end, enforcing the schedule's
	// minimum break duration.
	EndLunch(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// ClockOut finishes the working day.
	ClockOut(ctx context.Context, req PunchRequest) (PunchResponse, error)
}
