package controllers

import (
	"log/slog"
	"net/http"

	"teamcalendar/internal/delivery/http/helpers"
	"teamcalendar/internal/delivery/http/middleware"
	"teamcalendar/internal/domain"
)

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Password string `json:"password"`
}

// ChangePasswordRequest is the request body for POST /change_password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Validate implements Validator.
func (c ChangePasswordRequest) Validate() []string {
	if c.NewPassword == "" {
		return []string{"newPassword is required"}
	}
	return nil
}

type AuthController struct {
	Logger   *slog.Logger
	Service  domain.AuthService
	Sessions middleware.SessionStore
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, sessions middleware.SessionStore) *AuthController {
	return &AuthController{
		Logger:   logger,
		Service:  svc,
		Sessions: sessions,
	}
}

// Login godoc
// @Summary Log in with the shared password
// @Description data is true and the session cookie is set when the password matches; a wrong password is data false, not an error.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "password"
// @Success 200 {object} controllers.BoolResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ok, err := c.Service.Authenticate(r.Context(), req.Password)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if ok {
		session := c.Sessions.Load(r)
		session.SetFlag(domain.SessionAuthenticatedKey, true)
		if err := c.Sessions.Save(w, session); err != nil {
			writeServiceError(w, r, c.Logger, err)
			return
		}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ok)
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie. Always succeeds.
// @Tags auth
// @Produce json
// @Success 200 {object} controllers.EmptyResponse
// @Router /logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session := c.Sessions.Load(r)
	session.Clear()
	if err := c.Sessions.Save(w, session); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// LoggedIn godoc
// @Summary Report whether the session is authenticated
// @Tags auth
// @Produce json
// @Success 200 {object} controllers.BoolResponse
// @Router /logged_in [get]
func (c *AuthController) LoggedIn(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Sessions.Load(r).Authenticated())
}

// ChangePassword godoc
// @Summary Change the shared password
// @Description data is false and nothing changes when oldPassword does not match.
// @Tags auth
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param body body ChangePasswordRequest true "old and new password"
// @Success 200 {object} controllers.BoolResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /change_password [post]
func (c *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	changed, err := c.Service.ChangePassword(r.Context(), req.OldPassword, req.NewPassword)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, changed)
}
