package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/timefmt"
)

type WorkScheduleServiceImpl struct {
	scheduleRepo schedule.WorkScheduleRepository
	employeeRepo employee.EmployeeRepository
}

// SetSchedule implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) SetSchedule(ctx context.Context, req schedule.SetScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	saved, err := s.scheduleRepo.Upsert(ctx, req.ToEntity())
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to upsert schedule: %w", err)
	}

	return toResponse(saved)
}

// GetSchedule implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) GetSchedule(ctx context.Context, employeeID string) (schedule.ScheduleResponse, error) {
	ws, err := s.scheduleRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return toResponse(ws)
}

// ListSchedules implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) ListSchedules(ctx context.Context) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		resp, err := toResponse(ws)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// toResponse renders the schedule with entries ordered Sunday..Saturday and
// each entry's net expected work time.
func toResponse(ws schedule.WorkSchedule) (schedule.ScheduleResponse, error) {
	resp := schedule.ScheduleResponse{
		ID:         ws.ID,
		EmployeeID: ws.EmployeeID,
	}
	if !ws.CreatedAt.IsZero() {
		resp.CreatedAt = ws.CreatedAt.Format(time.RFC3339)
	}
	if !ws.UpdatedAt.IsZero() {
		resp.UpdatedAt = ws.UpdatedAt.Format(time.RFC3339)
	}

	days := make([]schedule.DaySchedule, len(ws.Days))
	copy(days, ws.Days)
	sort.Slice(days, func(i, j int) bool { return days[i].Weekday < days[j].Weekday })

	for _, day := range days {
		secs, err := day.WorkSeconds()
		if err != nil {
			return schedule.ScheduleResponse{}, err
		}
		entry := schedule.DayScheduleResponse{
			Weekday:          schedule.WeekdayName(day.Weekday),
			HasLunch:         day.HasLunch,
			IsDayOff:         day.IsDayOff,
			ExpectedWorkTime: timefmt.Format(secs),
		}
		if !day.IsDayOff {
			entry.StartTime = day.StartTime
			entry.EndTime = day.EndTime
			entry.LunchBreakMinutes = day.LunchBreakMinutes
		}
		resp.Days = append(resp.Days, entry)
	}
	return resp, nil
}

func NewWorkScheduleService(
	scheduleRepo schedule.WorkScheduleRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.WorkScheduleService {
	return &WorkScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}
