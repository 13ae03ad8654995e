package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type timeRecordRepositoryImpl struct {
	db *database.DB
}

const timeRecordColumns = `id, employee_id, date, clock_in, lunch_start, lunch_end, clock_out, latitude, longitude, created_at, updated_at`

// InsertClockIn implements timerecord.TimeRecordRepository. The unique
// index on (employee_id, date) decides concurrent clock-in races: the
// losing insert affects no row and surfaces ErrAlreadyClockedIn.
func (r *timeRecordRepositoryImpl) InsertClockIn(ctx context.Context, rec timerecord.PunchRecord) (timerecord.PunchRecord, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO time_records (id, employee_id, date, clock_in, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING ` + timeRecordColumns

	created, err := scanTimeRecord(q.QueryRow(ctx, insertQuery,
		rec.ID,
		rec.EmployeeID,
		rec.Date,
		rec.ClockIn,
		rec.Latitude,
		rec.Longitude,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerecord.PunchRecord{}, timerecord.ErrAlreadyClockedIn
		}
		return timerecord.PunchRecord{}, err
	}
	return created, nil
}

// GetByEmployeeAndDate implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*timerecord.PunchRecord, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanTimeRecord(q.QueryRow(ctx, `
		SELECT `+timeRecordColumns+`
		FROM time_records
		WHERE employee_id = $1 AND date = $2
	`, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Update implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) Update(ctx context.Context, rec timerecord.PunchRecord) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE time_records
		SET lunch_start = $1, lunch_end = $2, clock_out = $3, updated_at = NOW()
		WHERE id = $4
	`, rec.LunchStart, rec.LunchEnd, rec.ClockOut, rec.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timerecord.ErrRecordNotFound
	}
	return nil
}

// ListByEmployeeAndRange implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID, startDate, endDate string) ([]timerecord.PunchRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+timeRecordColumns+`
		FROM time_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`, employeeID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []timerecord.PunchRecord
	for rows.Next() {
		rec, err := scanTimeRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanTimeRecord(row pgx.Row) (timerecord.PunchRecord, error) {
	var rec timerecord.PunchRecord
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.Date,
		&rec.ClockIn,
		&rec.LunchStart,
		&rec.LunchEnd,
		&rec.ClockOut,
		&rec.Latitude,
		&rec.Longitude,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}

func NewTimeRecordRepository(db *database.DB) timerecord.TimeRecordRepository {
	return &timeRecordRepositoryImpl{db: db}
}
