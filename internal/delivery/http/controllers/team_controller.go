package controllers

import (
	"log/slog"
	"net/http"

	"teamcalendar/internal/delivery/http/helpers"
	"teamcalendar/internal/domain"
)

// CreateTeamRequest is the request body for POST /teams.
type CreateTeamRequest struct {
	Name           string `json:"name"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

// Validate implements Validator.
func (c CreateTeamRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.PrimaryColor == "" {
		errs = append(errs, "primaryColor is required")
	}
	if c.SecondaryColor == "" {
		errs = append(errs, "secondaryColor is required")
	}
	return errs
}

// UpdateTeamRequest is the request body for PUT /teams.
type UpdateTeamRequest struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	Disabled       bool   `json:"disabled"`
}

// Validate implements Validator.
func (u UpdateTeamRequest) Validate() []string {
	errs := CreateTeamRequest{Name: u.Name, PrimaryColor: u.PrimaryColor, SecondaryColor: u.SecondaryColor}.Validate()
	if u.ID <= 0 {
		errs = append(errs, "id must be a positive integer")
	}
	return errs
}

// ListTeamsResponse is the success envelope for GET /teams.
type ListTeamsResponse struct {
	Data  []*domain.Team    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type TeamController struct {
	Logger  *slog.Logger
	Service domain.TeamService
}

func NewTeamController(logger *slog.Logger, svc domain.TeamService) *TeamController {
	return &TeamController{
		Logger:  logger,
		Service: svc,
	}
}

// ListTeams godoc
// @Summary List teams
// @Description All teams ordered by id, disabled ones included, so events can always resolve their team. Pass include_disabled=false for active teams only.
// @Tags teams
// @Produce json
// @Security SessionCookie
// @Param include_disabled query bool false "include disabled teams (default true)"
// @Success 200 {object} controllers.ListTeamsResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /teams [get]
func (c *TeamController) ListTeams(w http.ResponseWriter, r *http.Request) {
	includeDisabled, err := helpers.QueryBool(r, "include_disabled", true)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	teams, err := c.Service.ListTeams(r.Context(), includeDisabled)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, teams)
}

// CreateTeam godoc
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param team body CreateTeamRequest true "name and display colors"
// @Success 200 {object} controllers.IDResponse "data is the new team id"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /teams [post]
func (c *TeamController) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	id, err := c.Service.CreateTeam(r.Context(), domain.NewTeam(req.Name, req.PrimaryColor, req.SecondaryColor))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, id)
}

// UpdateTeam godoc
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param team body UpdateTeamRequest true "the full team"
// @Success 200 {object} controllers.EmptyResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error (also for an unknown id)"
// @Router /teams [put]
func (c *TeamController) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req UpdateTeamRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	team := &domain.Team{
		ID:             req.ID,
		Name:           req.Name,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		Disabled:       req.Disabled,
	}
	if err := c.Service.UpdateTeam(r.Context(), team); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// DisableTeam godoc
// @Summary Disable a team
// @Tags teams
// @Produce json
// @Security SessionCookie
// @Param id path int true "team id"
// @Success 200 {object} controllers.EmptyResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error (also for an unknown id)"
// @Router /teams/{id} [delete]
func (c *TeamController) DisableTeam(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	if err := c.Service.DisableTeam(r.Context(), id); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
