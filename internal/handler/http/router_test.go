package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/employee"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/event"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/payroll"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/report"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/settings"
	"github.com/acceso-labs/acceso-backend-go/internal/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type stubEmployeeService struct{}

func (stubEmployeeService) List(context.Context, employee.ListRequest) (employee.ListResponse, error) {
	return employee.ListResponse{Total: 1, Employees: []employee.EmployeeResponse{{Code: "EMP-001"}}}, nil
}

func (stubEmployeeService) Search(_ context.Context, req employee.SearchRequest) (employee.SearchResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.SearchResponse{}, err
	}
	return employee.SearchResponse{}, employee.ErrEmployeeNotFound
}

func (stubEmployeeService) Get(context.Context, string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
}

type stubEventService struct{}

func (stubEventService) ByDate(context.Context, event.ByDateRequest) (event.ByDateResponse, error) {
	return event.ByDateResponse{Date: "2026-08-17"}, nil
}

func (stubEventService) ByRange(context.Context, event.ByRangeRequest) (event.ByRangeResponse, error) {
	return event.ByRangeResponse{}, nil
}

func (stubEventService) Last(context.Context, event.LastRequest) (event.LastResponse, error) {
	return event.LastResponse{}, event.ErrEventNotFound
}

type stubReportService struct{}

func (stubReportService) Daily(context.Context, report.DailyReportRequest) (report.DailyReportResponse, error) {
	return report.DailyReportResponse{EmployeeCode: "EMP-001"}, nil
}

func (stubReportService) Weekly(context.Context, report.WeeklyReportRequest) (report.WeeklyReportResponse, error) {
	return report.WeeklyReportResponse{}, nil
}

func (stubReportService) Monthly(context.Context, report.MonthlyReportRequest) (report.MonthlyReportResponse, error) {
	return report.MonthlyReportResponse{}, nil
}

func (stubReportService) PendingExit(context.Context, report.PendingExitRequest) (report.PendingExitResponse, error) {
	return report.PendingExitResponse{}, nil
}

func (stubReportService) Stats(context.Context, report.StatsRequest) (report.StatsResponse, error) {
	return report.StatsResponse{}, nil
}

type stubPayrollService struct{}

func (stubPayrollService) Biweekly(context.Context, payroll.BiweeklyRequest) (payroll.BiweeklyResponse, error) {
	return payroll.BiweeklyResponse{}, payroll.ErrPeriodMismatch
}

type stubSettingsService struct{}

func (stubSettingsService) Config(context.Context) (settings.ConfigResponse, error) {
	return settings.ConfigResponse{Engine: map[string]any{"timezone": "UTC"}}, nil
}

func newTestRouter() http.Handler {
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	return NewRouter(
		"test",
		[]string{"*"},
		registry,
		collector,
		NewEmployeeHandler(stubEmployeeService{}),
		NewEventHandler(stubEventService{}),
		NewReportHandler(stubReportService{}),
		NewPayrollHandler(stubPayrollService{}),
		NewSettingsHandler(stubSettingsService{}),
	)
}

func doRequest(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestRouterEmployeeList(t *testing.T) {
	rec, body := doRequest(t, newTestRouter(), "/api/v1/employees")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1), data["total"])
}

func TestRouterSearchValidationError(t *testing.T) {
	rec, body := doRequest(t, newTestRouter(), "/api/v1/employees/search?q=")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, false, body["success"])
	errDetail := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])
}

func TestRouterEmployeeNotFound(t *testing.T) {
	rec, body := doRequest(t, newTestRouter(), "/api/v1/employees/some-id")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	errDetail := body["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errDetail["code"])
}

func TestRouterDailyReport(t *testing.T) {
	rec, body := doRequest(t, newTestRouter(), "/api/v1/reports/daily?employee_id=x&date=2026-08-17")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "EMP-001", data["employee_code"])
}

func TestRouterMonthlyRejectsBadYear(t *testing.T) {
	rec, body := doRequest(t, newTestRouter(), "/api/v1/reports/monthly?year=abc&month=8")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errDetail := body["error"].(map[string]any)
	assert.Equal(t, "BAD_REQUEST", errDetail["code"])
}

func TestRouterPayrollPeriodMismatch(t *testing.T) {
	rec, _ := doRequest(t, newTestRouter(), "/api/v1/payroll/biweekly?start=2026-08-03&end=2026-08-16")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouterConfig(t *testing.T) {
	rec, body := doRequest(t, newTestRouter(), "/api/v1/config")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	engine := data["engine"].(map[string]any)
	assert.Equal(t, "UTC", engine["timezone"])
}

func TestRouterHealthAndMetrics(t *testing.T) {
	router := newTestRouter()

	rec, _ := doRequest(t, router, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doRequest(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
}
