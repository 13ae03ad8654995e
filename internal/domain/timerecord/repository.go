package timerecord

import "context"

// TimeRecordRepository defines data access for punch records.
type TimeRecordRepository interface {
	// InsertClockIn atomically creates the day's record. The storage layer
	// must enforce uniqueness on (employee_id, date) and reject a second
	// insert with ErrAlreadyClockedIn; a read-then-write check is not an
	// acceptable implementation because two concurrent clock-ins would both
	// pass it.
	InsertClockIn(ctx context.Context, rec PunchRecord) (PunchRecord, error)

	// GetByEmployeeAndDate returns the record for one employee and civil
	// date, or nil when the day has no punches.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*PunchRecord, error)

	// Update persists punch mutations (lunch start/end, clock-out).
	Update(ctx context.Context, rec PunchRecord) error

	// ListByEmployeeAndRange returns all records with date in [startDate,
	// endDate], ordered by date ascending.
	ListByEmployeeAndRange(ctx context.Context, employeeID, startDate, endDate string) ([]PunchRecord, error)
}
