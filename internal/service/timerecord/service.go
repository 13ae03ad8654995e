package timerecord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/period"
)

const dateLayout = "2006-01-02"

type TimeRecordServiceImpl struct {
	timeRecordRepo timerecord.TimeRecordRepository
	scheduleRepo   schedule.WorkScheduleRepository
	employeeRepo   employee.EmployeeRepository

	loc *time.Location
	now func() time.Time
}

// ClockIn implements timerecord.TimeRecordService. The uniqueness of the
// day's record is delegated to the repository insert, so two concurrent
// clock-ins race at the storage layer and exactly one wins.
func (s *TimeRecordServiceImpl) ClockIn(ctx context.Context, req timerecord.PunchRequest) (timerecord.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.PunchResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timerecord.PunchResponse{}, err
	}
	if !emp.IsActive {
		return timerecord.PunchResponse{}, employee.ErrEmployeeInactive
	}

	ws, err := s.scheduleRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return timerecord.PunchResponse{}, err
	}

	now := s.now().In(s.loc)
	entry, ok := ws.ForWeekday(now.Weekday())
	if !ok || entry.IsDayOff {
		return timerecord.PunchResponse{}, timerecord.ErrDayOff
	}

	shiftStart, err := entry.StartOn(period.Midnight(now))
	if err != nil {
		return timerecord.PunchResponse{}, err
	}
	if now.Before(shiftStart) {
		return timerecord.PunchResponse{}, timerecord.ErrBeforeScheduleStart
	}

	clockIn := now.UTC()
	rec := timerecord.PunchRecord{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       now.Format(dateLayout),
		ClockIn:    &clockIn,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}

	created, err := s.timeRecordRepo.InsertClockIn(ctx, rec)
	if err != nil {
		if errors.Is(err, timerecord.ErrAlreadyClockedIn) {
			return timerecord.PunchResponse{}, err
		}
		return timerecord.PunchResponse{}, fmt.Errorf("failed to insert clock-in: %w", err)
	}

	return created.ToResponse(s.loc), nil
}

// StartLunch implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) StartLunch(ctx context.Context, req timerecord.PunchRequest) (timerecord.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.PunchResponse{}, err
	}

	now := s.now().In(s.loc)
	rec, err := s.todayRecord(ctx, req.EmployeeID, now)
	if err != nil {
		return timerecord.PunchResponse{}, err
	}
	if rec.ClockOut != nil {
		return timerecord.PunchResponse{}, timerecord.ErrAlreadyClockedOut
	}
	if rec.LunchStart != nil {
		return timerecord.PunchResponse{}, timerecord.ErrLunchAlreadyStarted
	}

	ts := now.UTC()
	rec.LunchStart = &ts
	if err := s.timeRecordRepo.Update(ctx, *rec); err != nil {
		return timerecord.PunchResponse{}, fmt.Errorf("failed to update time record: %w", err)
	}
	return rec.ToResponse(s.loc), nil
}

// EndLunch implements timerecord.TimeRecordService. The break must have
// lasted at least the schedule's configured minimum.
func (s *TimeRecordServiceImpl) EndLunch(ctx context.Context, req timerecord.PunchRequest) (timerecord.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.PunchResponse{}, err
	}

	now := s.now().In(s.loc)
	rec, err := s.todayRecord(ctx, req.EmployeeID, now)
	if err != nil {
		return timerecord.PunchResponse{}, err
	}
	if rec.ClockOut != nil {
		return timerecord.PunchResponse{}, timerecord.ErrAlreadyClockedOut
	}
	if rec.LunchStart == nil {
		return timerecord.PunchResponse{}, timerecord.ErrLunchNotStarted
	}
	if rec.LunchEnd != nil {
		return timerecord.PunchResponse{}, timerecord.ErrLunchAlreadyEnded
	}

	if minSecs := s.minimumLunchSeconds(ctx, req.EmployeeID, now.Weekday()); minSecs > 0 {
		elapsed := int64(now.UTC().Sub(*rec.LunchStart) / time.Second)
		if elapsed < minSecs {
			return timerecord.PunchResponse{}, timerecord.ErrLunchTooShort
		}
	}

	ts := now.UTC()
	rec.LunchEnd = &ts
	if err := s.timeRecordRepo.Update(ctx, *rec); err != nil {
		return timerecord.PunchResponse{}, fmt.Errorf("failed to update time record: %w", err)
	}
	return rec.ToResponse(s.loc), nil
}

// ClockOut implements timerecord.TimeRecordService. Skipping the lunch
// punches entirely is allowed; the day then counts the full span.
func (s *TimeRecordServiceImpl) ClockOut(ctx context.Context, req timerecord.PunchRequest) (timerecord.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.PunchResponse{}, err
	}

	now := s.now().In(s.loc)
	rec, err := s.todayRecord(ctx, req.EmployeeID, now)
	if err != nil {
		return timerecord.PunchResponse{}, err
	}
	if rec.ClockOut != nil {
		return timerecord.PunchResponse{}, timerecord.ErrAlreadyClockedOut
	}
	if rec.LunchStart != nil && rec.LunchEnd == nil {
		return timerecord.PunchResponse{}, timerecord.ErrLunchNotEnded
	}

	ts := now.UTC()
	rec.ClockOut = &ts
	if err := s.timeRecordRepo.Update(ctx, *rec); err != nil {
		return timerecord.PunchResponse{}, fmt.Errorf("failed to update time record: %w", err)
	}
	return rec.ToResponse(s.loc), nil
}

// todayRecord fetches the employee's record for the current civil date.
func (s *TimeRecordServiceImpl) todayRecord(ctx context.Context, employeeID string, now time.Time) (*timerecord.PunchRecord, error) {
	rec, err := s.timeRecordRepo.GetByEmployeeAndDate(ctx, employeeID, now.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to get time record: %w", err)
	}
	if rec == nil {
		return nil, timerecord.ErrNotClockedIn
	}
	return rec, nil
}

// minimumLunchSeconds reads today's configured lunch break. A missing
// schedule is treated as no minimum; clock-in already required one, so this
// only happens when the schedule was removed mid-day.
func (s *TimeRecordServiceImpl) minimumLunchSeconds(ctx context.Context, employeeID string, wd time.Weekday) int64 {
	ws, err := s.scheduleRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return 0
	}
	entry, ok := ws.ForWeekday(wd)
	if !ok || !entry.HasLunch {
		return 0
	}
	return int64(entry.LunchBreakMinutes) * 60
}

func NewTimeRecordService(
	timeRecordRepo timerecord.TimeRecordRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) timerecord.TimeRecordService {
	return &TimeRecordServiceImpl{
		timeRecordRepo: timeRecordRepo,
		scheduleRepo:   scheduleRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
		now:            time.Now,
	}
}
