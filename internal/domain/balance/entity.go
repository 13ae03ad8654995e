package balance

import "time"

// DayCategory is the classification of one calendar day. The five values
// are mutually exclusive; classification picks the first that applies, in
// this order: day off, absence, complete, partial, no record.
type DayCategory string

const (
	CategoryDayOff   DayCategory = "day_off"
	CategoryAbsence  DayCategory = "absence"
	CategoryComplete DayCategory = "complete"
	CategoryPartial  DayCategory = "partial"
	CategoryNoRecord DayCategory = "no_record"
)

// Status labels for complete days.
const (
	StatusOvertime  = "overtime"
	StatusShortfall = "shortfall"
	StatusExact     = "exact"
)

// Status labels for the remaining categories. Absence days carry the
// absence type as their status instead.
const (
	StatusDayOff     = "day_off"
	StatusIncomplete = "incomplete"
	StatusNoRecord   = "no_record"
)

// DayResult is the reconciliation of one calendar day: what was worked
// against what the schedule expected. It is derived on every query and
// never persisted.
type DayResult struct {
	Date            string
	Category        DayCategory
	Status          string
	WorkedSeconds   int64
	ExpectedSeconds int64
	BalanceSeconds  int64

	// Punches of the day, when any exist (UTC).
	ClockIn    *time.Time
	LunchStart *time.Time
	LunchEnd   *time.Time
	ClockOut   *time.Time
}

// PeriodSummary aggregates the day results of an inclusive date window.
// Days is ordered by date ascending; callers rely on that ordering.
// FinalBalanceSeconds is always TotalPositiveSeconds - TotalNegativeSeconds.
type PeriodSummary struct {
	StartDate   string
	EndDate     string
	Granularity string

	Days []DayResult

	TotalPositiveSeconds int64
	TotalNegativeSeconds int64
	FinalBalanceSeconds  int64
}
