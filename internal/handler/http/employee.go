package http

import (
	"net/http"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/employee"
	"github.com/acceso-labs/acceso-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// List handles GET /employees
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := employee.ListRequest{
		ActiveOnly: r.URL.Query().Get("active") == "true",
		Site:       queryPtr(r, "site"),
		Department: queryPtr(r, "department"),
	}

	result, err := h.employeeService.List(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Search handles GET /employees/search
func (h *employeeHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := employee.SearchRequest{
		Term: r.URL.Query().Get("q"),
	}

	result, err := h.employeeService.Search(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get handles GET /employees/{id}
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.employeeService.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
