package http

import (
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/domain/balance"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type BalanceHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type BalanceHandlerImpl struct {
	balanceService balance.BalanceService
}

// GetSummary implements BalanceHandler. Employees see their own summary;
// admins may pass ?employee_id= to inspect someone else's.
func (h *BalanceHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	callerID, role, err := currentEmployee(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query()
	summaryReq := balance.SummaryRequest{
		EmployeeID:  callerID,
		StartDate:   query.Get("start_date"),
		EndDate:     query.Get("end_date"),
		Granularity: query.Get("granularity"),
	}

	if target := query.Get("employee_id"); target != "" && target != callerID {
		if role != employee.RoleAdmin {
			response.HandleError(w, balance.ErrNotAllowed)
			return
		}
		summaryReq.EmployeeID = target
	}

	resp, err := h.balanceService.GetSummary(r.Context(), summaryReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func NewBalanceHandler(balanceService balance.BalanceService) BalanceHandler {
	return &BalanceHandlerImpl{balanceService: balanceService}
}
