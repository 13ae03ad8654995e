package timerecord

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type PunchRequest struct {
	// EmployeeID is filled from the authenticated token by the handler,
	// never from the request body.
	EmployeeID string   `json:"-"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Date       string   `json:"date"`
	ClockIn    *string  `json:"clock_in,omitempty"`
	LunchStart *string  `json:"lunch_start,omitempty"`
	LunchEnd   *string  `json:"lunch_end,omitempty"`
	ClockOut   *string  `json:"clock_out,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// ToResponse renders the record with timestamps in the given civil timezone.
func (p PunchRecord) ToResponse(loc *time.Location) PunchResponse {
	format := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.In(loc).Format("2006-01-02 15:04:05")
		return &s
	}

	return PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Date:       p.Date,
		ClockIn:    format(p.ClockIn),
		LunchStart: format(p.LunchStart),
		LunchEnd:   format(p.LunchEnd),
		ClockOut:   format(p.ClockOut),
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
	}
}
