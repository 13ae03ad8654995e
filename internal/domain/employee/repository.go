package employee

import "context"

// EmployeeRepository defines data access for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCPF(ctx context.Context, cpf string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	SetActive(ctx context.Context, id string, active bool) error
}
