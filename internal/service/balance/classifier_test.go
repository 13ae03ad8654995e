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
)

var testLoc = func() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		panic(err)
	}
	return loc
}()

func ts(t *testing.T, date, clock string) *time.Time {
	t.Helper()
	v, err := time.ParseInLocation("2006-01-02 15:04:05", date+" "+clock, testLoc)
	require.NoError(t, err)
	return &v
}

func midnight(t *testing.T, date string) time.Time {
	t.Helper()
	v, err := time.ParseInLocation("2006-01-02", date, testLoc)
	require.NoError(t, err)
	return v
}

// Weekday entry worth 8h net: 08:00-17:00 with a one hour lunch.
func workday(wd time.Weekday) *schedule.DaySchedule {
	return &schedule.DaySchedule{
		Weekday:           wd,
		StartTime:         "08:00",
		EndTime:           "17:00",
		HasLunch:          true,
		LunchBreakMinutes: 60,
	}
}

func TestClassify_CompleteExactDay(t *testing.T) {
	// Monday 2025-06-16, punched exactly on schedule.
	date := midnight(t, "2025-06-16")
	punch := &timerecord.PunchRecord{
		Date:       "2025-06-16",
		ClockIn:    ts(t, "2025-06-16", "08:00:00"),
		LunchStart: ts(t, "2025-06-16", "12:00:00"),
		LunchEnd:   ts(t, "2025-06-16", "13:00:00"),
		ClockOut:   ts(t, "2025-06-16", "17:00:00"),
	}

	res, err := Classify(DayInput{
		Date:     date,
		Schedule: workday(time.Monday),
		Punch:    punch,
		Now:      midnight(t, "2025-06-20"),
	})

	require.NoError(t, err)
	assert.Equal(t, balance.CategoryComplete, res.Category)
	assert.Equal(t, balance.StatusExact, res.Status)
	assert.Equal(t, int64(8*3600), res.WorkedSeconds)
	assert.Equal(t, int64(8*3600), res.ExpectedSeconds)
	assert.Equal(t, int64(0), res.BalanceSeconds)
}

func TestClassify_CompleteOvertime(t *testing.T) {
	punch := &timerecord.PunchRecord{
		Date:       "2025-06-16",
		ClockIn:    ts(t, "2025-06-16", "08:00:00"),
		LunchStart: ts(t, "2025-06-16", "12:00:00"),
		LunchEnd:   ts(t, "2025-06-16", "13:00:00"),
		ClockOut:   ts(t, "2025-06-16", "18:30:00"),
	}

	res, err := Classify(DayInput{
		Date:     midnight(t, "2025-06-16"),
		Schedule: workday(time.Monday),
		Punch:    punch,
		Now:      midnight(t, "2025-06-20"),
	})

	require.NoError(t, err)
	assert.Equal(t, balance.CategoryComplete, res.Category)
	assert.Equal(t, balance.StatusOvertime, res.Status)
	assert.Equal(t, int64(9*3600+1800), res.WorkedSeconds)
	assert.Equal(t, int64(5400), res.BalanceSeconds)
}

func TestClassify_CompleteShortfall(t *testing.T) {
	punch := &timerecord.PunchRecord{
		Date:       "2025-06-16",
		ClockIn:    ts(t, "2025-06-16", "09:00:00"),
		LunchStart: ts(t, "2025-06-16", "12:00:00"),
		LunchEnd:   ts(t, "2025-06-16", "13:00:00"),
		ClockOut:   ts(t, "2025-06-16", "17:00:00"),
	}

	res, err := Classify(DayInput{
		Date:     midnight(t, "2025-06-16"),
		Schedule: workday(time.Monday),
		Punch:    punch,
		Now:      midnight(t, "2025-06-20"),
	})

	require.NoError(t, err)
	assert.Equal(t, balance.StatusShortfall, res.Status)
	assert.Equal(t, int64(7*3600), res.WorkedSeconds)
	assert.Equal(t, int64(-3600), res.BalanceSeconds)
}

func TestClassify_DayOffOutranksEverything(t *testing.T) {
	// Even with punches and an absence on file, a day-off entry wins.
	dayOff := &schedule.DaySchedule{Weekday: time.Sunday, IsDayOff: true}
	punch := &timerecord.PunchRecord{
		Date:    "2025-06-15",
		ClockIn: ts(t, "2025-06-15", "10:00:00"),
	}
	abs := &absence.Absence{Date: "2025-06-15", Type: absence.TypeVacation}

	res, err := Classify(DayInput{
		Date:     midnight(t, "2025-06-15"),
		Schedule: dayOff,
		Punch:    punch,
		Absence:  abs,
		Now:      midnight(t, "2025-06-20"),
	})

	require.NoError(t, err)
	assert.Equal(t, balance.CategoryDayOff, res.Category)
	assert.Equal(t, balance.StatusDayOff, res.Status)
	assert.Zero(t, res.WorkedSeconds)
	assert.Zero(t, res.ExpectedSeconds)
	assert.Zero(t, res.BalanceSeconds)
}

func TestClassify_MissingScheduleEntryIsDayOff(t *testing.T) {
	res, err := Classify(DayInput{
		Date: midnight(t, "2025-06-15"),
		Now:  midnight(t, "2025-06-20"),
	})

	require.NoError(t, err)
	assert.Equal(t, balance.CategoryDayOff, res.Category)
	assert.Zero(t, res.BalanceSeconds)
}

func TestClassify_ExcusedAbsenceIsNeutral(t *testing.T) {
	abs := &absence.Absence{Date: "2025-06-16", Type: absence.TypeSickLeave}

	res, err := Classify(DayInput{
		Date:     midnight(t, "2025-06-16"),
		Schedule: workday(time.Monday),
		Absence:  abs,
		Now:      midnight(t, "2025-06-20"),
	})

	require.NoError(t, err)
	assert.Equal(t, balance.CategoryAbsence, res.Category)
	assert.Equal(t, string(absence.TypeSickLeave), res.Status)
	assert.Equal(t, int64(8*3600), res.WorkedSeconds)
	assert.Equal(t, int64(0), res.BalanceSeconds)
}

func TestClassify_UnjustifiedAbsenceIsFullDeficit(t *testing.T) {
	abs := &absence.Absence{Date: "2025-06-16", Type: absence.TypeUnjustified}

	res, err := Classify(DayInput{
		Date:     midnight(t, "2025-06-16"),
		Schedule: workday(time.Monday),
		Absence:  abs,
		Now:      midnight(t, "2025-06-20"),
	})

	require.NoError(t, err)
	assert.Equal(t, balance.CategoryAbsence, res.Category)
	assert.Equal(t, string(absence.TypeUnjustified), res.Status)
	assert.Zero(t, res.WorkedSeconds)
	assert.Equal(t, int64(-8*3600), res.BalanceSeconds)
}

func TestClassify_AbsenceOutranksPunches(t *testing.T) {
	// A vacation recorded over a day that also has punches stays neutral.
	punch := &timerecord.PunchRecord{
		Date:       "2025-06-16",
		ClockIn:    ts(t, "2025-06-16", "08:00:00"),
		LunchStart: ts(t, "2025-06-16", "12:00:00"),
		LunchEnd:   ts(t, "2025-06-16", "13:00:00"),
		ClockOut:   ts(t, "2025-06-16", "17:00:00"),
	}
	abs := &absence.Absence{Date: "2025-06-16", Type: absence.TypeVacation}

	res, err := Classify(DayInput{
		Date:     midnight(t, "2025-06-16"),
		Schedule: workday(time.Monday),
		Punch:    punch,
		Absence:  abs,
		Now:      midnight(t, "2025-06-20"),
	})

	require.NoError(t, err)
	assert.Equal(t, balance.CategoryAbsence, res.Category)
	assert.Equal(t, int64(0), res.BalanceSeconds)
}

func TestClassify_NoRecordIsFullDeficit(t *testing.T) {
	res, err := Classify(DayInput{
		Date:     midnight(t, "2025-06-16"),
		Schedule: workday(time.Monday),
		Now:      midnight(t, "2025-06-20"),
	})

	require.NoError(t, err)
	assert.Equal(t, balance.CategoryNoRecord, res.Category)
	assert.Equal(t, balance.StatusNoRecord, res.Status)
	assert.Zero(t, res.WorkedSeconds)
	assert.Equal(t, int64(-8*3600), res.BalanceSeconds)
}

func TestClassify_PartialTodayRunsToNow(t *testing.T) {
	// Clocked in at 08:00 today, now 10:30; the open segment counts up to
	// now.
	punch := &timerecord.PunchRecord{
		Date:    "2025-06-16",
		ClockIn: ts(t, "2025-06-16", "08:00:00"),
	}

	res, err := Classify(DayInput{
		Date:     midnight(t, "2025-06-16"),
		Schedule: workday(time.Monday),
		Punch:    punch,
		Now:      *ts(t, "2025-06-16", "10:30:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, balance.CategoryPartial, res.Category)
	assert.Equal(t, balance.StatusIncomplete, res.Status)
	assert.Equal(t, int64(2*3600+1800), res.WorkedSeconds)
	assert.Equal(t, int64(2*3600+1800-8*3600), res.BalanceSeconds)
}

func TestClassify_PartialTodayDuringLunch(t *testing.T) {
	// On lunch break right now: only the morning segment has elapsed.
	punch := &timerecord.PunchRecord{
		Date:       "2025-06-16",
		ClockIn:    ts(t, "2025-06-16", "08:00:00"),
		LunchStart: ts(t, "2025-06-16", "12:00:00"),
	}

	res, err := Classify(DayInput{
		Date:     midnight(t, "2025-06-16"),
		Schedule: workday(time.Monday),
		Punch:    punch,
		Now:      *ts(t, "2025-06-16", "12:40:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, balance.CategoryPartial, res.Category)
	assert.Equal(t, int64(4*3600), res.WorkedSeconds)
}

func TestClassify_PartialTodayAfterLunch(t *testing.T) {
	punch := &timerecord.PunchRecord{
		Date:       "2025-06-16",
		ClockIn:    ts(t, "2025-06-16", "08:00:00"),
		LunchStart: ts(t, "2025-06-16", "12:00:00"),
		LunchEnd:   ts(t, "2025-06-16", "13:00:00"),
	}

	res, err := Classify(DayInput{
		Date:     midnight(t, "2025-06-16"),
		Schedule: workday(time.Monday),
		Punch:    punch,
		Now:      *ts(t, "2025-06-16", "15:00:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, balance.CategoryPartial, res.Category)
	assert.Equal(t, int64(6*3600), res.WorkedSeconds)
}

func TestClassify_PartialPastDayOpenSegmentIgnored(t *testing.T) {
	// Abandoned shift on a past day: only closed segments count.
	punch := &timerecord.PunchRecord{
		Date:       "2025-06-16",
		ClockIn:    ts(t, "2025-06-16", "08:00:00"),
		LunchStart: ts(t, "2025-06-16", "12:00:00"),
		LunchEnd:   ts(t, "2025-06-16", "13:00:00"),
	}

	res, err := Classify(DayInput{
		Date:     midnight(t, "2025-06-16"),
		Schedule: workday(time.Monday),
		Punch:    punch,
		Now:      *ts(t, "2025-06-18", "09:00:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, balance.CategoryPartial, res.Category)
	assert.Equal(t, int64(4*3600), res.WorkedSeconds)
	assert.Equal(t, int64(-4*3600), res.BalanceSeconds)
}

func TestClassify_SkippedLunchCountsFullSpan(t *testing.T) {
	// Clock-in and clock-out only: the record is partial (lunch punches
	// missing), but the closed span still counts in full.
	punch := &timerecord.PunchRecord{
		Date:     "2025-06-16",
		ClockIn:  ts(t, "2025-06-16", "08:00:00"),
		ClockOut: ts(t, "2025-06-16", "16:00:00"),
	}

	res, err := Classify(DayInput{
		Date:     midnight(t, "2025-06-16"),
		Schedule: workday(time.Monday),
		Punch:    punch,
		Now:      *ts(t, "2025-06-18", "09:00:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, balance.CategoryPartial, res.Category)
	assert.Equal(t, int64(8*3600), res.WorkedSeconds)
	assert.Equal(t, int64(0), res.BalanceSeconds)
}

func TestClassify_MalformedScheduleSurfaces(t *testing.T) {
	bad := &schedule.DaySchedule{
		Weekday:   time.Monday,
		StartTime: "17:00",
		EndTime:   "08:00",
	}

	_, err := Classify(DayInput{
		Date:     midnight(t, "2025-06-16"),
		Schedule: bad,
		Now:      midnight(t, "2025-06-20"),
	})

	assert.ErrorIs(t, err, schedule.ErrMalformedSchedule)
}

func TestClassify_PunchTimestampsCarriedThrough(t *testing.T) {
	punch := &timerecord.PunchRecord{
		Date:       "2025-06-16",
		ClockIn:    ts(t, "2025-06-16", "08:00:00"),
		LunchStart: ts(t, "2025-06-16", "12:00:00"),
		LunchEnd:   ts(t, "2025-06-16", "13:00:00"),
		ClockOut:   ts(t, "2025-06-16", "17:00:00"),
	}

	res, err := Classify(DayInput{
		Date:     midnight(t, "2025-06-16"),
		Schedule: workday(time.Monday),
		Punch:    punch,
		Now:      midnight(t, "2025-06-20"),
	})

	require.NoError(t, err)
	assert.Equal(t, punch.ClockIn, res.ClockIn)
	assert.Equal(t, punch.LunchStart, res.LunchStart)
	assert.Equal(t, punch.LunchEnd, res.LunchEnd)
	assert.Equal(t, punch.ClockOut, res.ClockOut)
}
