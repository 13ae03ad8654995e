package timerecord

import "time"

// PunchRecord holds all punches of one employee on one civil date. Date is
// the "working day" in the configured timezone ("YYYY-MM-DD"); the punch
// timestamps themselves are stored in UTC. There is at most one record per
// (employee, date): it is created by the first clock-in and mutated by the
// later punch events of the same day.
type PunchRecord struct {
	ID         string
	EmployeeID string
	Date       string
	ClockIn    *time.Time
	LunchStart *time.Time
	LunchEnd   *time.Time
	ClockOut   *time.Time
	Latitude   *float64
	Longitude  *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsComplete reports whether all four punches of the day were recorded.
func (p PunchRecord) IsComplete() bool {
	return p.ClockIn != nil && p.LunchStart != nil && p.LunchEnd != nil && p.ClockOut != nil
}
