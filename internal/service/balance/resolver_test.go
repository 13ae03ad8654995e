package balance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
)

func TestExpectedSeconds_Workday(t *testing.T) {
	secs, err := ExpectedSeconds(weeklySchedule(), time.Tuesday)
	require.NoError(t, err)
	assert.Equal(t, int64(8*3600), secs)
}

func TestExpectedSeconds_NoLunch(t *testing.T) {
	ws := schedule.WorkSchedule{
		Days: []schedule.DaySchedule{
			{Weekday: time.Monday, StartTime: "09:00", EndTime: "15:00"},
		},
	}
	secs, err := ExpectedSeconds(ws, time.Monday)
	require.NoError(t, err)
	assert.Equal(t, int64(6*3600), secs)
}

func TestExpectedSeconds_DayOff(t *testing.T) {
	secs, err := ExpectedSeconds(weeklySchedule(), time.Sunday)
	require.NoError(t, err)
	assert.Zero(t, secs)
}

func TestExpectedSeconds_MissingEntry(t *testing.T) {
	ws := schedule.WorkSchedule{
		Days: []schedule.DaySchedule{*workday(time.Monday)},
	}
	secs, err := ExpectedSeconds(ws, time.Friday)
	require.NoError(t, err)
	assert.Zero(t, secs)
}

func TestExpectedSeconds_Malformed(t *testing.T) {
	ws := schedule.WorkSchedule{
		Days: []schedule.DaySchedule{
			{Weekday: time.Monday, StartTime: "08:00", EndTime: "09:00", HasLunch: true, LunchBreakMinutes: 120},
		},
	}
	_, err := ExpectedSeconds(ws, time.Monday)
	assert.ErrorIs(t, err, schedule.ErrMalformedSchedule)
}
