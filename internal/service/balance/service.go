package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/absence"
	"github.com/pontolabs/ponto-backend-go/internal/domain/balance"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/period"
)

type BalanceServiceImpl struct {
	scheduleRepo   schedule.WorkScheduleRepository
	timeRecordRepo timerecord.TimeRecordRepository
	absenceRepo    absence.AbsenceRepository
	employeeRepo   employee.EmployeeRepository

	loc          *time.Location
	weekStartsOn time.Weekday
	now          func() time.Time
}

// GetSummary implements balance.BalanceService.
func (s *BalanceServiceImpl) GetSummary(ctx context.Context, req balance.SummaryRequest) (balance.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return balance.SummaryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return balance.SummaryResponse{}, err
	}

	now := s.now().In(s.loc)
	window, err := period.Build(req.StartDate, req.EndDate, req.Granularity, now, s.weekStartsOn)
	if err != nil {
		return balance.SummaryResponse{}, err
	}

	ws, err := s.scheduleRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return balance.SummaryResponse{}, err
	}

	startStr := window.Start.Format(dateLayout)
	endStr := window.End.Format(dateLayout)

	punches, err := s.timeRecordRepo.ListByEmployeeAndRange(ctx, req.EmployeeID, startStr, endStr)
	if err != nil {
		return balance.SummaryResponse{}, fmt.Errorf("failed to list time records: %w", err)
	}
	absences, err := s.absenceRepo.ListByEmployeeAndRange(ctx, req.EmployeeID, startStr, endStr)
	if err != nil {
		return balance.SummaryResponse{}, fmt.Errorf("failed to list absences: %w", err)
	}

	summary, err := Aggregate(AggregateInput{
		Window:          window,
		Schedule:        ws,
		Punches:         punches,
		Absences:        absences,
		EmploymentStart: emp.HiredAt,
		Now:             now,
	})
	if err != nil {
		return balance.SummaryResponse{}, err
	}

	return summary.ToResponse(req.EmployeeID, s.loc), nil
}

func NewBalanceService(
	scheduleRepo schedule.WorkScheduleRepository,
	timeRecordRepo timerecord.TimeRecordRepository,
	absenceRepo absence.AbsenceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
	weekStartsOn time.Weekday,
) balance.BalanceService {
	return &BalanceServiceImpl{
		scheduleRepo:   scheduleRepo,
		timeRecordRepo: timeRecordRepo,
		absenceRepo:    absenceRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
		weekStartsOn:   weekStartsOn,
		now:            time.Now,
	}
}
