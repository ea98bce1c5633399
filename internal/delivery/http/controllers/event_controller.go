package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"teamcalendar/internal/delivery/http/helpers"
	"teamcalendar/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Details     string    `json:"details"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	TeamID      *int64    `json:"teamId"`
	EmployeeIDs []int64   `json:"employeeIds"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.Start.IsZero() {
		errs = append(errs, "start is required")
	}
	if c.End.IsZero() {
		errs = append(errs, "end is required")
	}
	if !c.Start.IsZero() && !c.End.IsZero() && c.Start.After(c.End) {
		errs = append(errs, "start must not be after end")
	}
	return errs
}

func (c CreateEventRequest) input() *domain.EventInput {
	return domain.NewEventInput(c.Title, c.Details, c.Start, c.End, c.TeamID, c.EmployeeIDs)
}

// UpdateEventRequest is the request body for PUT /events. The employee list replaces the current one.
type UpdateEventRequest struct {
	ID int64 `json:"id"`
	CreateEventRequest
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	errs := u.CreateEventRequest.Validate()
	if u.ID <= 0 {
		errs = append(errs, "id must be a positive integer")
	}
	return errs
}

// ListEventsResponse is the success envelope for GET /events.
type ListEventsResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events in a time window
// @Description Events whose [start, end] intersects [start, end] of the query, bounds inclusive. A missing bound is open.
// @Tags events
// @Produce json
// @Security SessionCookie
// @Param start query string false "window start (RFC 3339)"
// @Param end query string false "window end (RFC 3339)"
// @Success 200 {object} controllers.ListEventsResponse "events with their team and employees"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	start, err := helpers.QueryTime(r, "start")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	end, err := helpers.QueryTime(r, "end")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	events, err := c.Service.ListEvents(r.Context(), domain.EventsQuery{Start: start, End: end})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates the event and links its employees in one transaction.
// @Tags events
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param event body CreateEventRequest true "event data"
// @Success 200 {object} controllers.IDResponse "data is the new event id"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (also for an unknown team or employee)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	id, err := c.Service.CreateEvent(r.Context(), req.input())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, id)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Overwrites every field and replaces the employee set in one transaction.
// @Tags events
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param event body UpdateEventRequest true "the full event"
// @Success 200 {object} controllers.EmptyResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (also for an unknown team or employee)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error (also for an unknown id)"
// @Router /events [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	in := req.input()
	in.ID = req.ID
	if err := c.Service.UpdateEvent(r.Context(), in); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security SessionCookie
// @Param id path int true "event id"
// @Success 200 {object} controllers.EmptyResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error (also for an unknown id)"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
