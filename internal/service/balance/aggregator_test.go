package balance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend-go/internal/domain/absence"
	"github.com/pontolabs/ponto-backend-go/internal/domain/balance"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/period"
)

// Weekly schedule used across the aggregation tests: Monday through Friday
// 08:00-17:00 with a one hour lunch (8h net), weekend off.
func weeklySchedule() schedule.WorkSchedule {
	days := []schedule.DaySchedule{
		{Weekday: time.Sunday, IsDayOff: true},
		{Weekday: time.Saturday, IsDayOff: true},
	}
	for wd := time.Monday; wd <= time.Friday; wd++ {
		days = append(days, *workday(wd))
	}
	return schedule.WorkSchedule{EmployeeID: "emp-1", Days: days}
}

func window(t *testing.T, start, end string) period.Window {
	t.Helper()
	return period.Window{
		Start:       midnight(t, start),
		End:         midnight(t, end),
		Granularity: period.GranularityWeek,
	}
}

func completePunch(t *testing.T, date, out string) timerecord.PunchRecord {
	t.Helper()
	return timerecord.PunchRecord{
		EmployeeID: "emp-1",
		Date:       date,
		ClockIn:    ts(t, date, "08:00:00"),
		LunchStart: ts(t, date, "12:00:00"),
		LunchEnd:   ts(t, date, "13:00:00"),
		ClockOut:   ts(t, date, out),
	}
}

func TestAggregate_WeekOfOvertime(t *testing.T) {
	// Mon-Fri 2025-06-16..20 worked one extra hour each day.
	var punches []timerecord.PunchRecord
	for _, d := range []string{"2025-06-16", "2025-06-17", "2025-06-18", "2025-06-19", "2025-06-20"} {
		punches = append(punches, completePunch(t, d, "18:00:00"))
	}

	summary, err := Aggregate(AggregateInput{
		Window:          window(t, "2025-06-15", "2025-06-21"),
		Schedule:        weeklySchedule(),
		Punches:         punches,
		EmploymentStart: midnight(t, "2024-01-01"),
		Now:             *ts(t, "2025-06-22", "12:00:00"),
	})

	require.NoError(t, err)
	require.Len(t, summary.Days, 7)
	assert.Equal(t, "2025-06-15", summary.StartDate)
	assert.Equal(t, "2025-06-21", summary.EndDate)
	assert.Equal(t, int64(5*3600), summary.TotalPositiveSeconds)
	assert.Equal(t, int64(0), summary.TotalNegativeSeconds)
	assert.Equal(t, int64(5*3600), summary.FinalBalanceSeconds)

	assert.Equal(t, balance.CategoryDayOff, summary.Days[0].Category)
	assert.Equal(t, balance.CategoryDayOff, summary.Days[6].Category)
	for i := 1; i <= 5; i++ {
		assert.Equal(t, balance.CategoryComplete, summary.Days[i].Category)
		assert.Equal(t, int64(3600), summary.Days[i].BalanceSeconds)
	}
}

func TestAggregate_MixedWeek(t *testing.T) {
	// Monday exact, Tuesday 1h short, Wednesday 2h over, Thursday
	// vacation, Friday no record.
	punches := []timerecord.PunchRecord{
		completePunch(t, "2025-06-16", "17:00:00"),
		completePunch(t, "2025-06-17", "16:00:00"),
		completePunch(t, "2025-06-18", "19:00:00"),
	}
	absences := []absence.Absence{
		{EmployeeID: "emp-1", Date: "2025-06-19", Type: absence.TypeVacation},
	}

	summary, err := Aggregate(AggregateInput{
		Window:          window(t, "2025-06-16", "2025-06-20"),
		Schedule:        weeklySchedule(),
		Punches:         punches,
		Absences:        absences,
		EmploymentStart: midnight(t, "2024-01-01"),
		Now:             *ts(t, "2025-06-22", "12:00:00"),
	})

	require.NoError(t, err)
	require.Len(t, summary.Days, 5)
	assert.Equal(t, int64(2*3600), summary.TotalPositiveSeconds)
	assert.Equal(t, int64(9*3600), summary.TotalNegativeSeconds)
	assert.Equal(t, int64(-7*3600), summary.FinalBalanceSeconds)

	assert.Equal(t, balance.CategoryAbsence, summary.Days[3].Category)
	assert.Equal(t, int64(0), summary.Days[3].BalanceSeconds)
	assert.Equal(t, balance.CategoryNoRecord, summary.Days[4].Category)
}

func TestAggregate_ClipsFutureDates(t *testing.T) {
	// Window runs through Saturday but today is Wednesday: Thursday
	// onward is excluded, not classified as missing.
	summary, err := Aggregate(AggregateInput{
		Window:          window(t, "2025-06-16", "2025-06-21"),
		Schedule:        weeklySchedule(),
		Punches:         []timerecord.PunchRecord{completePunch(t, "2025-06-16", "17:00:00")},
		EmploymentStart: midnight(t, "2024-01-01"),
		Now:             *ts(t, "2025-06-18", "10:00:00"),
	})

	require.NoError(t, err)
	require.Len(t, summary.Days, 3)
	assert.Equal(t, "2025-06-16", summary.Days[0].Date)
	assert.Equal(t, "2025-06-18", summary.Days[2].Date)
}

func TestAggregate_ClipsBeforeEmploymentStart(t *testing.T) {
	// Hired mid-window on Wednesday: Monday and Tuesday never existed
	// for this employee and must not count as deficit.
	summary, err := Aggregate(AggregateInput{
		Window:          window(t, "2025-06-16", "2025-06-20"),
		Schedule:        weeklySchedule(),
		EmploymentStart: *ts(t, "2025-06-18", "09:30:00"),
		Now:             *ts(t, "2025-06-22", "12:00:00"),
	})

	require.NoError(t, err)
	require.Len(t, summary.Days, 3)
	assert.Equal(t, "2025-06-18", summary.Days[0].Date)
	assert.Equal(t, int64(-3*8*3600), summary.FinalBalanceSeconds)
}

func TestAggregate_WindowEntirelyInFuture(t *testing.T) {
	summary, err := Aggregate(AggregateInput{
		Window:          window(t, "2025-07-01", "2025-07-31"),
		Schedule:        weeklySchedule(),
		EmploymentStart: midnight(t, "2024-01-01"),
		Now:             *ts(t, "2025-06-18", "10:00:00"),
	})

	require.NoError(t, err)
	assert.Empty(t, summary.Days)
	assert.Zero(t, summary.TotalPositiveSeconds)
	assert.Zero(t, summary.TotalNegativeSeconds)
	assert.Zero(t, summary.FinalBalanceSeconds)
}

func TestAggregate_WindowBeforeEmployment(t *testing.T) {
	summary, err := Aggregate(AggregateInput{
		Window:          window(t, "2025-01-01", "2025-01-31"),
		Schedule:        weeklySchedule(),
		EmploymentStart: midnight(t, "2025-03-01"),
		Now:             *ts(t, "2025-06-18", "10:00:00"),
	})

	require.NoError(t, err)
	assert.Empty(t, summary.Days)
	assert.Zero(t, summary.FinalBalanceSeconds)
}

func TestAggregate_DaysAscendingAndTotalsConsistent(t *testing.T) {
	punches := []timerecord.PunchRecord{
		completePunch(t, "2025-06-17", "18:00:00"),
		completePunch(t, "2025-06-16", "15:00:00"),
	}

	summary, err := Aggregate(AggregateInput{
		Window:          window(t, "2025-06-16", "2025-06-20"),
		Schedule:        weeklySchedule(),
		Punches:         punches,
		EmploymentStart: midnight(t, "2024-01-01"),
		Now:             *ts(t, "2025-06-22", "12:00:00"),
	})

	require.NoError(t, err)
	for i := 1; i < len(summary.Days); i++ {
		assert.Less(t, summary.Days[i-1].Date, summary.Days[i].Date)
	}

	var pos, neg int64
	for _, d := range summary.Days {
		if d.BalanceSeconds > 0 {
			pos += d.BalanceSeconds
		} else {
			neg += -d.BalanceSeconds
		}
	}
	assert.Equal(t, pos, summary.TotalPositiveSeconds)
	assert.Equal(t, neg, summary.TotalNegativeSeconds)
	assert.Equal(t, pos-neg, summary.FinalBalanceSeconds)
}

func TestAggregate_MalformedScheduleFailsAggregation(t *testing.T) {
	bad := schedule.WorkSchedule{
		EmployeeID: "emp-1",
		Days: []schedule.DaySchedule{
			{Weekday: time.Monday, StartTime: "nope", EndTime: "17:00"},
		},
	}

	_, err := Aggregate(AggregateInput{
		Window:          window(t, "2025-06-16", "2025-06-16"),
		Schedule:        bad,
		EmploymentStart: midnight(t, "2024-01-01"),
		Now:             *ts(t, "2025-06-22", "12:00:00"),
	})

	assert.ErrorIs(t, err, schedule.ErrMalformedSchedule)
}
