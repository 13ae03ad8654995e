package balance

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/timefmt"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type SummaryRequest struct {
	EmployeeID  string
	StartDate   string
	EndDate     string
	Granularity string
}

// Validate only checks field shapes; window semantics (precedence,
// granularity expansion, start<=end) belong to the period package.
func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be YYYY-MM-DD",
			})
		}
	}
	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DayResultResponse struct {
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	Worked      string  `json:"worked"`
	WorkedHours string  `json:"worked_hours"`
	Expected    string  `json:"expected"`
	Balance     string  `json:"balance"`
	ClockIn     *string `json:"clock_in,omitempty"`
	LunchStart  *string `json:"lunch_start,omitempty"`
	LunchEnd    *string `json:"lunch_end,omitempty"`
	ClockOut    *string `json:"clock_out,omitempty"`
}

type PeriodResponse struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Granularity string `json:"granularity,omitempty"`
}

type SummaryResponse struct {
	EmployeeID         string              `json:"employee_id"`
	Period             PeriodResponse      `json:"period"`
	Days               []DayResultResponse `json:"days"`
	TotalPositiveHours string              `json:"total_positive_hours"`
	TotalNegativeHours string              `json:"total_negative_hours"`
	FinalBalance       string              `json:"final_balance"`
}

// ToResponse renders the summary with durations formatted as HH:MM:SS and
// punch timestamps in the given civil timezone.
func (s PeriodSummary) ToResponse(employeeID string, loc *time.Location) SummaryResponse {
	formatTime := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		v := t.In(loc).Format("2006-01-02 15:04:05")
		return &v
	}

	days := make([]DayResultResponse, 0, len(s.Days))
	for _, day := range s.Days {
		days = append(days, DayResultResponse{
			Date:        day.Date,
			Category:    string(day.Category),
			Status:      day.Status,
			Worked:      timefmt.Format(day.WorkedSeconds),
			WorkedHours: timefmt.Hours(day.WorkedSeconds).String(),
			Expected:    timefmt.Format(day.ExpectedSeconds),
			Balance:     timefmt.Format(day.BalanceSeconds),
			ClockIn:     formatTime(day.ClockIn),
			LunchStart:  formatTime(day.LunchStart),
			LunchEnd:    formatTime(day.LunchEnd),
			ClockOut:    formatTime(day.ClockOut),
		})
	}

	return SummaryResponse{
		EmployeeID: employeeID,
		Period: PeriodResponse{
			StartDate:   s.StartDate,
			EndDate:     s.EndDate,
			Granularity: s.Granularity,
		},
		Days:               days,
		TotalPositiveHours: timefmt.Format(s.TotalPositiveSeconds),
		TotalNegativeHours: timefmt.Format(s.TotalNegativeSeconds),
		FinalBalance:       timefmt.Format(s.FinalBalanceSeconds),
	}
}
