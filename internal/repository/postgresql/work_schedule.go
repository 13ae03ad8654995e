package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

// Upsert implements schedule.WorkScheduleRepository. The schedule row and
// its day entries are replaced atomically: a reader never observes a
// half-written week.
func (r *workScheduleRepositoryImpl) Upsert(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	var saved schedule.WorkSchedule

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		upsertQuery := `
			INSERT INTO work_schedules (id, employee_id, created_at, updated_at)
			VALUES ($1, $2, NOW(), NOW())
			ON CONFLICT (employee_id) DO UPDATE SET updated_at = NOW()
			RETURNING id, employee_id, created_at, updated_at
		`
		err := q.QueryRow(ctx, upsertQuery, uuid.NewString(), ws.EmployeeID).Scan(
			&saved.ID,
			&saved.EmployeeID,
			&saved.CreatedAt,
			&saved.UpdatedAt,
		)
		if err != nil {
			return err
		}

		if _, err := q.Exec(ctx, `DELETE FROM work_schedule_days WHERE schedule_id = $1`, saved.ID); err != nil {
			return err
		}

		insertDay := `
			INSERT INTO work_schedule_days
				(schedule_id, weekday, start_time, end_time, has_lunch, lunch_break_minutes, is_day_off)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		for _, day := range ws.Days {
			if _, err := q.Exec(ctx, insertDay,
				saved.ID,
				int(day.Weekday),
				day.StartTime,
				day.EndTime,
				day.HasLunch,
				day.LunchBreakMinutes,
				day.IsDayOff,
			); err != nil {
				return err
			}
		}
		saved.Days = ws.Days
		return nil
	})
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	return saved, nil
}

// GetByEmployeeID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, `
		SELECT id, employee_id, created_at, updated_at
		FROM work_schedules
		WHERE employee_id = $1
	`, employeeID).Scan(&ws.ID, &ws.EmployeeID, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, err
	}

	days, err := r.loadDays(ctx, q, ws.ID)
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	ws.Days = days
	return ws, nil
}

// List implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) List(ctx context.Context) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, created_at, updated_at
		FROM work_schedules
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		var ws schedule.WorkSchedule
		if err := rows.Scan(&ws.ID, &ws.EmployeeID, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
			return nil, err
		}
		schedules = append(schedules, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range schedules {
		days, err := r.loadDays(ctx, q, schedules[i].ID)
		if err != nil {
			return nil, err
		}
		schedules[i].Days = days
	}
	return schedules, nil
}

func (r *workScheduleRepositoryImpl) loadDays(ctx context.Context, q database.Querier, scheduleID string) ([]schedule.DaySchedule, error) {
	rows, err := q.Query(ctx, `
		SELECT weekday, start_time, end_time, has_lunch, lunch_break_minutes, is_day_off
		FROM work_schedule_days
		WHERE schedule_id = $1
		ORDER BY weekday
	`, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []schedule.DaySchedule
	for rows.Next() {
		var day schedule.DaySchedule
		var weekday int
		if err := rows.Scan(
			&weekday,
			&day.StartTime,
			&day.EndTime,
			&day.HasLunch,
			&day.LunchBreakMinutes,
			&day.IsDayOff,
		); err != nil {
			return nil, err
		}
		day.Weekday = time.Weekday(weekday)
		days = append(days, day)
	}
	return days, rows.Err()
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}
