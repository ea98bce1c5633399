package controllers

import (
	"log/slog"
	"net/http"

	"teamcalendar/internal/delivery/http/helpers"
	"teamcalendar/internal/domain"
)

// CreateEmployeeRequest is the request body for POST /employees.
type CreateEmployeeRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Validate implements Validator.
func (c CreateEmployeeRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Color == "" {
		errs = append(errs, "color is required")
	}
	return errs
}

// UpdateEmployeeRequest is the request body for PUT /employees. Every field is overwritten.
type UpdateEmployeeRequest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Disabled bool   `json:"disabled"`
}

// Validate implements Validator.
func (u UpdateEmployeeRequest) Validate() []string {
	errs := CreateEmployeeRequest{Name: u.Name, Color: u.Color}.Validate()
	if u.ID <= 0 {
		errs = append(errs, "id must be a positive integer")
	}
	return errs
}

// ListEmployeesResponse is the success envelope for GET /employees.
type ListEmployeesResponse struct {
	Data  []*domain.Employee `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type EmployeeController struct {
	Logger  *slog.Logger
	Service domain.EmployeeService
}

func NewEmployeeController(logger *slog.Logger, svc domain.EmployeeService) *EmployeeController {
	return &EmployeeController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEmployees godoc
// @Summary List employees
// @Description Active employees ordered by id. Pass include_disabled=true to also get disabled ones.
// @Tags employees
// @Produce json
// @Security SessionCookie
// @Param include_disabled query bool false "include disabled employees"
// @Success 200 {object} controllers.ListEmployeesResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /employees [get]
func (c *EmployeeController) ListEmployees(w http.ResponseWriter, r *http.Request) {
	includeDisabled, err := helpers.QueryBool(r, "include_disabled", false)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	employees, err := c.Service.ListEmployees(r.Context(), includeDisabled)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, employees)
}

// CreateEmployee godoc
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param employee body CreateEmployeeRequest true "name and #RRGGBB or #RRGGBBAA color"
// @Success 200 {object} controllers.IDResponse "data is the new employee id"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /employees [post]
func (c *EmployeeController) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	id, err := c.Service.CreateEmployee(r.Context(), domain.NewEmployee(req.Name, req.Color))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, id)
}

// UpdateEmployee godoc
// @Summary Update an employee
// @Description Overwrites name, color and disabled of the employee with the given id.
// @Tags employees
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param employee body UpdateEmployeeRequest true "the full employee"
// @Success 200 {object} controllers.EmptyResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error (also for an unknown id)"
// @Router /employees [put]
func (c *EmployeeController) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req UpdateEmployeeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	employee := &domain.Employee{ID: req.ID, Name: req.Name, Color: req.Color, Disabled: req.Disabled}
	if err := c.Service.UpdateEmployee(r.Context(), employee); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// DisableEmployee godoc
// @Summary Disable an employee
// @Description Soft delete. The employee stays attached to existing events.
// @Tags employees
// @Produce json
// @Security SessionCookie
// @Param id path int true "employee id"
// @Success 200 {object} controllers.EmptyResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error (also for an unknown id)"
// @Router /employees/{id} [delete]
func (c *EmployeeController) DisableEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	if err := c.Service.DisableEmployee(r.Context(), id); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
