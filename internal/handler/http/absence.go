package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/absence"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type AbsenceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

// Record implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var recordReq absence.RecordAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&recordReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	adminID, _, err := currentEmployee(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	recordReq.CreatedBy = adminID

	resp, err := h.absenceService.RecordAbsence(r.Context(), recordReq)
	if err != nil {
		slog.Error("Record absence failed", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Absence recorded", resp)
}

// List implements AbsenceHandler.
func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	listReq := absence.ListAbsencesRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	absences, err := h.absenceService.ListAbsences(r.Context(), listReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, absences)
}

// Delete implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.absenceService.DeleteAbsence(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete absence failed", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Absence deleted", nil)
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: absenceService}
}
