package balance

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/absence"
	"github.com/pontolabs/ponto-backend-go/internal/domain/balance"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/period"
)

// AggregateInput carries the already-fetched data for one employee and one
// window. Aggregation itself is pure: it performs no I/O and holds no state
// between calls, so concurrent aggregations need no coordination.
type AggregateInput struct {
	Window          period.Window
	Schedule        schedule.WorkSchedule
	Punches         []timerecord.PunchRecord
	Absences        []absence.Absence
	EmploymentStart time.Time
	Now             time.Time
}

// Aggregate classifies every calendar date of the window, clipped to the
// employment start and to today, and accumulates the signed balances. Dates
// after today are excluded before classification, never classified. A
// window that clips to nothing yields an empty summary with zero totals.
func Aggregate(in AggregateInput) (balance.PeriodSummary, error) {
	summary := balance.PeriodSummary{
		StartDate:   in.Window.Start.Format(dateLayout),
		EndDate:     in.Window.End.Format(dateLayout),
		Granularity: string(in.Window.Granularity),
		Days:        []balance.DayResult{},
	}

	punchesByDate := make(map[string]timerecord.PunchRecord, len(in.Punches))
	for _, p := range in.Punches {
		punchesByDate[p.Date] = p
	}
	absencesByDate := make(map[string]absence.Absence, len(in.Absences))
	for _, a := range in.Absences {
		absencesByDate[a.Date] = a
	}

	loc := in.Window.Start.Location()
	start := in.Window.Start
	if hired := period.Midnight(in.EmploymentStart.In(loc)); hired.After(start) {
		start = hired
	}
	end := in.Window.End
	if today := period.Midnight(in.Now.In(loc)); today.Before(end) {
		end = today
	}

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		key := date.Format(dateLayout)
		input := DayInput{Date: date, Now: in.Now.In(loc)}

		if entry, ok := in.Schedule.ForWeekday(date.Weekday()); ok {
			input.Schedule = &entry
		}
		if punch, ok := punchesByDate[key]; ok {
			input.Punch = &punch
		}
		if abs, ok := absencesByDate[key]; ok {
			input.Absence = &abs
		}

		result, err := Classify(input)
		if err != nil {
			return balance.PeriodSummary{}, err
		}

		summary.Days = append(summary.Days, result)
		if result.BalanceSeconds > 0 {
			summary.TotalPositiveSeconds += result.BalanceSeconds
		} else {
			summary.TotalNegativeSeconds += -result.BalanceSeconds
		}
	}

	summary.FinalBalanceSeconds = summary.TotalPositiveSeconds - summary.TotalNegativeSeconds
	return summary, nil
}
