package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type TimeRecordHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	StartLunch(w http.ResponseWriter, r *http.Request)
	EndLunch(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
}

type TimeRecordHandlerImpl struct {
	timeRecordService timerecord.TimeRecordService
}

// ClockIn implements TimeRecordHandler.
func (h *TimeRecordHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	h.punch(w, r, "ClockIn", h.timeRecordService.ClockIn)
}

// StartLunch implements TimeRecordHandler.
func (h *TimeRecordHandlerImpl) StartLunch(w http.ResponseWriter, r *http.Request) {
	h.punch(w, r, "StartLunch", h.timeRecordService.StartLunch)
}

// EndLunch implements TimeRecordHandler.
func (h *TimeRecordHandlerImpl) EndLunch(w http.ResponseWriter, r *http.Request) {
	h.punch(w, r, "EndLunch", h.timeRecordService.EndLunch)
}

// ClockOut implements TimeRecordHandler.
func (h *TimeRecordHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	h.punch(w, r, "ClockOut", h.timeRecordService.ClockOut)
}

// punch runs one lifecycle action. The body is optional; punches without
// geolocation send none.
func (h *TimeRecordHandlerImpl) punch(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	fn func(ctx context.Context, req timerecord.PunchRequest) (timerecord.PunchResponse, error),
) {
	var punchReq timerecord.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&punchReq); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	employeeID, _, err := currentEmployee(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	punchReq.EmployeeID = employeeID

	resp, err := fn(r.Context(), punchReq)
	if err != nil {
		slog.Error(action+" failed", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func NewTimeRecordHandler(timeRecordService timerecord.TimeRecordService) TimeRecordHandler {
	return &TimeRecordHandlerImpl{timeRecordService: timeRecordService}
}
