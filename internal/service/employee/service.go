package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	loc          *time.Location
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	hiredAt, err := time.ParseInLocation("2006-01-02", req.HiredAt, s.loc)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hired_at: %w", err)
	}

	role := employee.Role(req.Role)
	if req.Role == "" {
		role = employee.RoleEmployee
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Position:     req.Position,
		CPF:          validator.NormalizeCPF(req.CPF),
		PasswordHash: string(hashed),
		Role:         role,
		IsActive:     true,
		HiredAt:      hiredAt,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return created.ToResponse(), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return emp.ToResponse(), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, emp.ToResponse())
	}
	return responses, nil
}

// Deactivate implements employee.EmployeeService. Deactivation is soft:
// the employee keeps their history but can no longer punch or log in.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.SetActive(ctx, id, false)
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, loc *time.Location) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		loc:          loc,
	}
}
