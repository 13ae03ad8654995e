package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Set(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByEmployee(w http.ResponseWriter, r *http.Request)
	GetMy(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.WorkScheduleService
}

// Set implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Set(w http.ResponseWriter, r *http.Request) {
	var setReq schedule.SetScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&setReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.scheduleService.SetSchedule(r.Context(), setReq)
	if err != nil {
		slog.Error("Set schedule failed", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Schedule saved", resp)
}

// List implements ScheduleHandler.
func (h *ScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.scheduleService.ListSchedules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, schedules)
}

// GetByEmployee implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetByEmployee(w http.ResponseWriter, r *http.Request) {
	resp, err := h.scheduleService.GetSchedule(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// GetMy implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	id, _, err := currentEmployee(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.scheduleService.GetSchedule(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func NewScheduleHandler(scheduleService schedule.WorkScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}
