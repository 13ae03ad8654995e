package absence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend-go/internal/domain/absence"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
)

var testLoc = func() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		panic(err)
	}
	return loc
}()

type fakeAbsenceRepo struct {
	absences map[string]absence.Absence // keyed employeeID|date
}

func (f *fakeAbsenceRepo) Upsert(_ context.Context, a absence.Absence) (absence.Absence, error) {
	key := a.EmployeeID + "|" + a.Date
	if existing, ok := f.absences[key]; ok {
		a.ID = existing.ID
	}
	f.absences[key] = a
	return a, nil
}

func (f *fakeAbsenceRepo) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*absence.Absence, error) {
	a, ok := f.absences[employeeID+"|"+date]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAbsenceRepo) ListByEmployeeAndRange(_ context.Context, employeeID, startDate, endDate string) ([]absence.Absence, error) {
	var out []absence.Absence
	for _, a := range f.absences {
		if a.EmployeeID == employeeID && a.Date >= startDate && a.Date <= endDate {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAbsenceRepo) Delete(_ context.Context, id string) error {
	for key, a := range f.absences {
		if a.ID == id {
			delete(f.absences, key)
			return nil
		}
	}
	return absence.ErrAbsenceNotFound
}

type fakeTimeRecordRepo struct {
	records map[string]timerecord.PunchRecord
}

func (f *fakeTimeRecordRepo) InsertClockIn(_ context.Context, rec timerecord.PunchRecord) (timerecord.PunchRecord, error) {
	f.records[rec.EmployeeID+"|"+rec.Date] = rec
	return rec, nil
}

func (f *fakeTimeRecordRepo) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*timerecord.PunchRecord, error) {
	rec, ok := f.records[employeeID+"|"+date]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeTimeRecordRepo) Update(_ context.Context, rec timerecord.PunchRecord) error {
	f.records[rec.EmployeeID+"|"+rec.Date] = rec
	return nil
}

func (f *fakeTimeRecordRepo) ListByEmployeeAndRange(_ context.Context, _, _, _ string) ([]timerecord.PunchRecord, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByCPF(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) { return nil, nil }

func (f *fakeEmployeeRepo) SetActive(_ context.Context, _ string, _ bool) error { return nil }

// Frozen at Friday 2025-06-20 10:00 with an employee hired 2025-01-15.
func newTestService(t *testing.T) (*AbsenceServiceImpl, *fakeTimeRecordRepo) {
	t.Helper()
	now, err := time.ParseInLocation("2006-01-02 15:04:05", "2025-06-20 10:00:00", testLoc)
	require.NoError(t, err)
	hired, err := time.ParseInLocation("2006-01-02", "2025-01-15", testLoc)
	require.NoError(t, err)

	recordRepo := &fakeTimeRecordRepo{records: make(map[string]timerecord.PunchRecord)}
	svc := &AbsenceServiceImpl{
		absenceRepo:    &fakeAbsenceRepo{absences: make(map[string]absence.Absence)},
		timeRecordRepo: recordRepo,
		employeeRepo: &fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", Name: "Ana", IsActive: true, HiredAt: hired},
		}},
		loc: testLoc,
		now: func() time.Time { return now },
	}
	return svc, recordRepo
}

func TestRecordAbsence_Success(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.RecordAbsence(context.Background(), absence.RecordAbsenceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-18",
		Type:       "sick_leave",
		CreatedBy:  "admin-1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "sick_leave", resp.Type)
	assert.Equal(t, "admin-1", resp.CreatedBy)
}

func TestRecordAbsence_TodayRejected(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RecordAbsence(context.Background(), absence.RecordAbsenceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-20",
		Type:       "vacation",
		CreatedBy:  "admin-1",
	})
	assert.ErrorIs(t, err, absence.ErrAbsenceNotInPast)
}

func TestRecordAbsence_FutureRejected(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RecordAbsence(context.Background(), absence.RecordAbsenceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-07-01",
		Type:       "vacation",
		CreatedBy:  "admin-1",
	})
	assert.ErrorIs(t, err, absence.ErrAbsenceNotInPast)
}

func TestRecordAbsence_BeforeHireDate(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RecordAbsence(context.Background(), absence.RecordAbsenceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-01-10",
		Type:       "justified",
		CreatedBy:  "admin-1",
	})
	assert.ErrorIs(t, err, absence.ErrAbsenceBeforeHireDate)
}

func TestRecordAbsence_DayAlreadyComplete(t *testing.T) {
	svc, recordRepo := newTestService(t)

	in := time.Date(2025, 6, 18, 11, 0, 0, 0, time.UTC)
	ls := in.Add(4 * time.Hour)
	le := ls.Add(time.Hour)
	out := le.Add(4 * time.Hour)
	recordRepo.records["emp-1|2025-06-18"] = timerecord.PunchRecord{
		ID:         "rec-1",
		EmployeeID: "emp-1",
		Date:       "2025-06-18",
		ClockIn:    &in,
		LunchStart: &ls,
		LunchEnd:   &le,
		ClockOut:   &out,
	}

	_, err := svc.RecordAbsence(context.Background(), absence.RecordAbsenceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-18",
		Type:       "vacation",
		CreatedBy:  "admin-1",
	})
	assert.ErrorIs(t, err, absence.ErrDayAlreadyComplete)
}

func TestRecordAbsence_OverPartialDayAllowed(t *testing.T) {
	svc, recordRepo := newTestService(t)

	in := time.Date(2025, 6, 18, 11, 0, 0, 0, time.UTC)
	recordRepo.records["emp-1|2025-06-18"] = timerecord.PunchRecord{
		ID:         "rec-1",
		EmployeeID: "emp-1",
		Date:       "2025-06-18",
		ClockIn:    &in,
	}

	_, err := svc.RecordAbsence(context.Background(), absence.RecordAbsenceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-18",
		Type:       "sick_leave",
		CreatedBy:  "admin-1",
	})
	assert.NoError(t, err)
}

func TestRecordAbsence_ReplacesType(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.RecordAbsence(ctx, absence.RecordAbsenceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-18",
		Type:       "unjustified",
		CreatedBy:  "admin-1",
	})
	require.NoError(t, err)

	second, err := svc.RecordAbsence(ctx, absence.RecordAbsenceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-18",
		Type:       "justified",
		CreatedBy:  "admin-2",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "justified", second.Type)

	list, err := svc.ListAbsences(ctx, absence.ListAbsencesRequest{
		EmployeeID: "emp-1",
		StartDate:  "2025-06-01",
		EndDate:    "2025-06-30",
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestRecordAbsence_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RecordAbsence(context.Background(), absence.RecordAbsenceRequest{
		EmployeeID: "ghost",
		Date:       "2025-06-18",
		Type:       "vacation",
		CreatedBy:  "admin-1",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRecordAbsence_InvalidType(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RecordAbsence(context.Background(), absence.RecordAbsenceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-18",
		Type:       "nap",
		CreatedBy:  "admin-1",
	})
	assert.Error(t, err)
}

func TestDeleteAbsence(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.RecordAbsence(ctx, absence.RecordAbsenceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-18",
		Type:       "holiday",
		CreatedBy:  "admin-1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAbsence(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteAbsence(ctx, created.ID), absence.ErrAbsenceNotFound)
}
