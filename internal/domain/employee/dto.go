package employee

import (
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	CPF      string `json:"cpf"`
	Password string `json:"password"`
	Role     string `json:"role"`
	HiredAt  string `json:"hired_at"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if !validator.IsValidCPF(r.CPF) {
		errs = append(errs, validator.ValidationError{
			Field:   "cpf",
			Message: "cpf must be 11 digits",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Role != "" && !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or employee",
		})
	}

	if _, ok := validator.IsValidDate(r.HiredAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hired_at",
			Message: "hired_at must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	CPF      string `json:"cpf"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
	HiredAt  string `json:"hired_at"`
}

func (e Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Position: e.Position,
		CPF:      e.CPF,
		Role:     string(e.Role),
		IsActive: e.IsActive,
		HiredAt:  e.HiredAt.Format("2006-01-02"),
	}
}
