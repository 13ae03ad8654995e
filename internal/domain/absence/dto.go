package absence

import (
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type RecordAbsenceRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`

	// CreatedBy is the authenticated admin, filled by the handler.
	CreatedBy string `json:"-"`
}

func (r *RecordAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of vacation, sick_leave, justified, unjustified, holiday, day_off",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAbsencesRequest struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

func (r *ListAbsencesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}
	if r.StartDate > r.EndDate {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AbsenceResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
	CreatedBy   string  `json:"created_by"`
}

func (a Absence) ToResponse() AbsenceResponse {
	return AbsenceResponse{
		ID:          a.ID,
		EmployeeID:  a.EmployeeID,
		Date:        a.Date,
		Type:        string(a.Type),
		Description: a.Description,
		CreatedBy:   a.CreatedBy,
	}
}
