package balance

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
)

// ExpectedSeconds resolves the scheduled net working seconds for a weekday.
// A weekday without a schedule entry, or marked as a day off, resolves to
// zero. Malformed entries surface schedule.ErrMalformedSchedule.
func ExpectedSeconds(ws schedule.WorkSchedule, wd time.Weekday) (int64, error) {
	day, ok := ws.ForWeekday(wd)
	if !ok || day.IsDayOff {
		return 0, nil
	}
	return day.WorkSeconds()
}
