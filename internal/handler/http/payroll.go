package http

import (
	"net/http"
	"strconv"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/payroll"
	"github.com/acceso-labs/acceso-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Biweekly(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// Biweekly handles GET /payroll/biweekly. The period is selected either by
// year+month+half or by an explicit start+end range.
func (h *payrollHandlerImpl) Biweekly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := payroll.BiweeklyRequest{
		StartDate: r.URL.Query().Get("start"),
		EndDate:   r.URL.Query().Get("end"),
		Site:      queryPtr(r, "site"),
	}

	if !req.ByRange() {
		var err error
		if req.Year, err = strconv.Atoi(r.URL.Query().Get("year")); err != nil {
			response.BadRequest(w, "invalid year parameter", nil)
			return
		}
		if req.Month, err = strconv.Atoi(r.URL.Query().Get("month")); err != nil {
			response.BadRequest(w, "invalid month parameter", nil)
			return
		}
		if req.Half, err = strconv.Atoi(r.URL.Query().Get("half")); err != nil {
			response.BadRequest(w, "invalid half parameter", nil)
			return
		}
	}

	result, err := h.payrollService.Biweekly(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
