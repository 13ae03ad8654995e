package absence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pontolabs/ponto-backend-go/internal/domain/absence"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
)

const dateLayout = "2006-01-02"

type AbsenceServiceImpl struct {
	absenceRepo    absence.AbsenceRepository
	timeRecordRepo timerecord.TimeRecordRepository
	employeeRepo   employee.EmployeeRepository

	loc *time.Location
	now func() time.Time
}

// RecordAbsence implements absence.AbsenceService. Absences are backfill
// records: they can only be written for dates strictly before today, on or
// after the employee's hire date, and never over a day whose punch record
// is already complete.
func (s *AbsenceServiceImpl) RecordAbsence(ctx context.Context, req absence.RecordAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	today := s.now().In(s.loc).Format(dateLayout)
	if req.Date >= today {
		return absence.AbsenceResponse{}, absence.ErrAbsenceNotInPast
	}
	if req.Date < emp.HiredAt.In(s.loc).Format(dateLayout) {
		return absence.AbsenceResponse{}, absence.ErrAbsenceBeforeHireDate
	}

	rec, err := s.timeRecordRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to get time record: %w", err)
	}
	if rec != nil && rec.IsComplete() {
		return absence.AbsenceResponse{}, absence.ErrDayAlreadyComplete
	}

	saved, err := s.absenceRepo.Upsert(ctx, absence.Absence{
		ID:          uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		Date:        req.Date,
		Type:        absence.AbsenceType(req.Type),
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to upsert absence: %w", err)
	}
	return saved.ToResponse(), nil
}

// ListAbsences implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListAbsences(ctx context.Context, req absence.ListAbsencesRequest) ([]absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	absences, err := s.absenceRepo.ListByEmployeeAndRange(ctx, req.EmployeeID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}

	responses := make([]absence.AbsenceResponse, 0, len(absences))
	for _, a := range absences {
		responses = append(responses, a.ToResponse())
	}
	return responses, nil
}

// DeleteAbsence implements absence.AbsenceService.
func (s *AbsenceServiceImpl) DeleteAbsence(ctx context.Context, id string) error {
	return s.absenceRepo.Delete(ctx, id)
}

func NewAbsenceService(
	absenceRepo absence.AbsenceRepository,
	timeRecordRepo timerecord.TimeRecordRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) absence.AbsenceService {
	return &AbsenceServiceImpl{
		absenceRepo:    absenceRepo,
		timeRecordRepo: timeRecordRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
		now:            time.Now,
	}
}
