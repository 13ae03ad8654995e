package balance

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/absence"
	"github.com/pontolabs/ponto-backend-go/internal/domain/balance"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
)

const dateLayout = "2006-01-02"

// DayInput is everything needed to classify a single calendar day. Date is
// midnight of the day in the civil timezone; Now is the current time in the
// same timezone and only matters for in-progress days.
type DayInput struct {
	Date     time.Time
	Schedule *schedule.DaySchedule
	Punch    *timerecord.PunchRecord
	Absence  *absence.Absence
	Now      time.Time
}

// Classify decides a day's category and its worked/expected/balance
// seconds. The five categories are checked in fixed priority order; the
// first match wins, so an absence always outranks whatever punches exist on
// the same day, and a day off outranks both.
func Classify(in DayInput) (balance.DayResult, error) {
	res := balance.DayResult{Date: in.Date.Format(dateLayout)}

	// 1. Non-working day: no schedule entry or explicit day off.
	if in.Schedule == nil || in.Schedule.IsDayOff {
		res.Category = balance.CategoryDayOff
		res.Status = balance.StatusDayOff
		return res, nil
	}

	expected, err := in.Schedule.WorkSeconds()
	if err != nil {
		return balance.DayResult{}, err
	}
	res.ExpectedSeconds = expected

	if in.Punch != nil {
		res.ClockIn = in.Punch.ClockIn
		res.LunchStart = in.Punch.LunchStart
		res.LunchEnd = in.Punch.LunchEnd
		res.ClockOut = in.Punch.ClockOut
	}

	// 2. Recorded absence. Unjustified absences count as a full-day
	// deficit; every other type is neutral, crediting the expected hours
	// so the balance stays at zero.
	if in.Absence != nil {
		res.Category = balance.CategoryAbsence
		res.Status = string(in.Absence.Type)
		if in.Absence.Type == absence.TypeUnjustified {
			res.WorkedSeconds = 0
			res.BalanceSeconds = -expected
		} else {
			res.WorkedSeconds = expected
			res.BalanceSeconds = 0
		}
		return res, nil
	}

	// 3. Complete punch record: all four punches present.
	if in.Punch != nil && in.Punch.IsComplete() {
		worked := wholeSeconds(in.Punch.ClockOut.Sub(*in.Punch.ClockIn)) -
			wholeSeconds(in.Punch.LunchEnd.Sub(*in.Punch.LunchStart))
		if worked < 0 {
			worked = 0
		}
		res.Category = balance.CategoryComplete
		res.WorkedSeconds = worked
		res.BalanceSeconds = worked - expected
		switch {
		case res.BalanceSeconds > 0:
			res.Status = balance.StatusOvertime
		case res.BalanceSeconds < 0:
			res.Status = balance.StatusShortfall
		default:
			res.Status = balance.StatusExact
		}
		return res, nil
	}

	// 4. Partial punch record: an in-progress or abandoned shift.
	if in.Punch != nil {
		isToday := in.Date.Format(dateLayout) == in.Now.Format(dateLayout)
		worked := partialWorkedSeconds(*in.Punch, in.Now, isToday)
		res.Category = balance.CategoryPartial
		res.Status = balance.StatusIncomplete
		res.WorkedSeconds = worked
		res.BalanceSeconds = worked - expected
		return res, nil
	}

	// 5. Working day with neither punches nor an absence.
	res.Category = balance.CategoryNoRecord
	res.Status = balance.StatusNoRecord
	res.BalanceSeconds = -expected
	return res, nil
}

// partialWorkedSeconds computes the best-effort worked time of an
// incomplete day from whatever punch pairs exist. An open segment is closed
// by "now" only when the day is today; on past days an abandoned open
// segment contributes nothing.
func partialWorkedSeconds(p timerecord.PunchRecord, now time.Time, isToday bool) int64 {
	var total int64

	if p.ClockIn != nil {
		switch {
		case p.LunchStart != nil:
			total += wholeSeconds(p.LunchStart.Sub(*p.ClockIn))
		case p.ClockOut != nil:
			// Lunch punches were skipped entirely.
			total += wholeSeconds(p.ClockOut.Sub(*p.ClockIn))
		case isToday:
			total += wholeSeconds(now.Sub(*p.ClockIn))
		}
	}

	if p.LunchEnd != nil {
		switch {
		case p.ClockOut != nil:
			total += wholeSeconds(p.ClockOut.Sub(*p.LunchEnd))
		case isToday:
			total += wholeSeconds(now.Sub(*p.LunchEnd))
		}
	}

	if total < 0 {
		total = 0
	}
	return total
}

func wholeSeconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
