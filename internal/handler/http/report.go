package http

import (
	"net/http"
	"strconv"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/report"
	"github.com/acceso-labs/acceso-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	PendingExit(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Daily handles GET /reports/daily
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := report.DailyReportRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Date:       r.URL.Query().Get("date"),
	}

	result, err := h.reportService.Daily(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Weekly handles GET /reports/weekly
func (h *reportHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := report.WeeklyReportRequest{
		Date:       r.URL.Query().Get("date"),
		EmployeeID: queryPtr(r, "employee_id"),
		Site:       queryPtr(r, "site"),
	}

	result, err := h.reportService.Weekly(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Monthly handles GET /reports/monthly
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}

	req := report.MonthlyReportRequest{
		Year:       year,
		Month:      month,
		EmployeeID: queryPtr(r, "employee_id"),
		Site:       queryPtr(r, "site"),
	}

	result, err := h.reportService.Monthly(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PendingExit handles GET /reports/pending-exit
func (h *reportHandlerImpl) PendingExit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := report.PendingExitRequest{
		Date: r.URL.Query().Get("date"),
		Site: queryPtr(r, "site"),
	}

	result, err := h.reportService.PendingExit(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Stats handles GET /reports/stats
func (h *reportHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := report.StatsRequest{
		StartDate: r.URL.Query().Get("start"),
		EndDate:   r.URL.Query().Get("end"),
		Site:      queryPtr(r, "site"),
	}

	result, err := h.reportService.Stats(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
