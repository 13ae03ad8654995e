package response

import (
	"errors"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/domain/absence"
	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/balance"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/period"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid CPF or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCPFExists):
		Conflict(w, "CPF already registered")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is deactivated")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not configured")
	case errors.Is(err, schedule.ErrMalformedSchedule):
		BadRequest(w, "Work schedule is malformed", nil)

	// Punch lifecycle errors
	case errors.Is(err, timerecord.ErrAlreadyClockedIn),
		errors.Is(err, timerecord.ErrLunchAlreadyStarted),
		errors.Is(err, timerecord.ErrLunchAlreadyEnded),
		errors.Is(err, timerecord.ErrAlreadyClockedOut):
		Conflict(w, err.Error())
	case errors.Is(err, timerecord.ErrDayOff),
		errors.Is(err, timerecord.ErrBeforeScheduleStart),
		errors.Is(err, timerecord.ErrNotClockedIn),
		errors.Is(err, timerecord.ErrLunchNotStarted),
		errors.Is(err, timerecord.ErrLunchNotEnded),
		errors.Is(err, timerecord.ErrLunchTooShort):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, timerecord.ErrRecordNotFound):
		NotFound(w, "Time record not found")

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence not found")
	case errors.Is(err, absence.ErrAbsenceNotInPast),
		errors.Is(err, absence.ErrAbsenceBeforeHireDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, absence.ErrDayAlreadyComplete):
		Conflict(w, err.Error())

	// Balance domain errors
	case errors.Is(err, balance.ErrNotAllowed):
		Forbidden(w, "You can only view your own summary")
	case errors.Is(err, period.ErrInvalidWindow):
		BadRequest(w, err.Error(), nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
