package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

const employeeColumns = `id, name, position, cpf, password_hash, role, is_active, hired_at, created_at, updated_at`

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO employees (id, name, position, cpf, password_hash, role, is_active, hired_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + employeeColumns

	var created employee.Employee
	err := q.QueryRow(ctx, insertQuery,
		emp.ID,
		emp.Name,
		emp.Position,
		emp.CPF,
		emp.PasswordHash,
		string(emp.Role),
		emp.IsActive,
		emp.HiredAt,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Position,
		&created.CPF,
		&created.PasswordHash,
		&created.Role,
		&created.IsActive,
		&created.HiredAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrCPFExists
		}
		return employee.Employee{}, err
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	return r.getOne(ctx, q, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

// GetByCPF implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByCPF(ctx context.Context, cpf string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	return r.getOne(ctx, q, `SELECT `+employeeColumns+` FROM employees WHERE cpf = $1`, cpf)
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID,
			&emp.Name,
			&emp.Position,
			&emp.CPF,
			&emp.PasswordHash,
			&emp.Role,
			&emp.IsActive,
			&emp.HiredAt,
			&emp.CreatedAt,
			&emp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// SetActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) getOne(ctx context.Context, q database.Querier, query string, arg any) (employee.Employee, error) {
	var emp employee.Employee
	err := q.QueryRow(ctx, query, arg).Scan(
		&emp.ID,
		&emp.Name,
		&emp.Position,
		&emp.CPF,
		&emp.PasswordHash,
		&emp.Role,
		&emp.IsActive,
		&emp.HiredAt,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}
