package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/absence"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

const absenceColumns = `id, employee_id, date, type, description, created_by, created_at, updated_at`

// Upsert implements absence.AbsenceRepository. Recording over an existing
// (employee, date) replaces the type and description in place.
func (r *absenceRepositoryImpl) Upsert(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	upsertQuery := `
		INSERT INTO absences (id, employee_id, date, type, description, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (employee_id, date) DO UPDATE
		SET type = EXCLUDED.type,
			description = EXCLUDED.description,
			created_by = EXCLUDED.created_by,
			updated_at = NOW()
		RETURNING ` + absenceColumns

	saved, err := scanAbsence(q.QueryRow(ctx, upsertQuery,
		a.ID,
		a.EmployeeID,
		a.Date,
		string(a.Type),
		a.Description,
		a.CreatedBy,
	))
	if err != nil {
		return absence.Absence{}, err
	}
	return saved, nil
}

// GetByEmployeeAndDate implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAbsence(q.QueryRow(ctx, `
		SELECT `+absenceColumns+`
		FROM absences
		WHERE employee_id = $1 AND date = $2
	`, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// ListByEmployeeAndRange implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID, startDate, endDate string) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+absenceColumns+`
		FROM absences
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`, employeeID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var absences []absence.Absence
	for rows.Next() {
		a, err := scanAbsence(rows)
		if err != nil {
			return nil, err
		}
		absences = append(absences, a)
	}
	return absences, rows.Err()
}

// Delete implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM absences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrAbsenceNotFound
	}
	return nil
}

func scanAbsence(row pgx.Row) (absence.Absence, error) {
	var a absence.Absence
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.Type,
		&a.Description,
		&a.CreatedBy,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}
