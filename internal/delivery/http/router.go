package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"teamcalendar/internal/delivery/http/controllers"
	"teamcalendar/internal/delivery/http/middleware"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Employees *controllers.EmployeeController
	Teams     *controllers.TeamController
	Events    *controllers.EventController
	Auth      *controllers.AuthController
	Health    *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, sessions middleware.SessionStore, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	protected := middleware.RequireAuth(sessions, logger)

	// Employees
	mux.HandleFunc("GET /employees", protected(c.Employees.ListEmployees))
	mux.HandleFunc("POST /employees", protected(c.Employees.CreateEmployee))
	mux.HandleFunc("PUT /employees", protected(c.Employees.UpdateEmployee))
	mux.HandleFunc("DELETE /employees/{id}", protected(c.Employees.DisableEmployee))

	// Teams
	mux.HandleFunc("GET /teams", protected(c.Teams.ListTeams))
	mux.HandleFunc("POST /teams", protected(c.Teams.CreateTeam))
	mux.HandleFunc("PUT /teams", protected(c.Teams.UpdateTeam))
	mux.HandleFunc("DELETE /teams/{id}", protected(c.Teams.DisableTeam))

	// Events
	mux.HandleFunc("GET /events", protected(c.Events.ListEvents))
	mux.HandleFunc("POST /events", protected(c.Events.CreateEvent))
	mux.HandleFunc("PUT /events", protected(c.Events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{id}", protected(c.Events.DeleteEvent))

	// Auth
	mux.HandleFunc("POST /login", c.Auth.Login)
	mux.HandleFunc("POST /logout", c.Auth.Logout)
	mux.HandleFunc("GET /logged_in", c.Auth.LoggedIn)
	mux.HandleFunc("POST /change_password", protected(c.Auth.ChangePassword))

	mux.HandleFunc("GET /health", c.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
