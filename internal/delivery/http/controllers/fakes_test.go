package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"teamcalendar/internal/delivery/http/helpers"
	"teamcalendar/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// decodeEnvelope decodes the recorder body into an APIResponse whose Data is raw JSON.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) (json.RawMessage, *helpers.APIError) {
	t.Helper()
	var body struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body.Data, body.Error
}

// fakeEmployeeService implements domain.EmployeeService for handler tests.
type fakeEmployeeService struct {
	list          []*domain.Employee
	err           error
	createID      int64
	lastInclude   bool
	lastCreate    *domain.Employee
	lastUpdate    *domain.Employee
	lastDisableID int64
}

func (f *fakeEmployeeService) ListEmployees(_ context.Context, includeDisabled bool) ([]*domain.Employee, error) {
	f.lastInclude = includeDisabled
	return f.list, f.err
}

func (f *fakeEmployeeService) CreateEmployee(_ context.Context, e *domain.Employee) (int64, error) {
	f.lastCreate = e
	if f.err != nil {
		return 0, f.err
	}
	return f.createID, nil
}

func (f *fakeEmployeeService) UpdateEmployee(_ context.Context, e *domain.Employee) error {
	f.lastUpdate = e
	return f.err
}

func (f *fakeEmployeeService) DisableEmployee(_ context.Context, id int64) error {
	f.lastDisableID = id
	return f.err
}

// fakeTeamService implements domain.TeamService for handler tests.
type fakeTeamService struct {
	list          []*domain.Team
	err           error
	createID      int64
	lastInclude   bool
	lastCreate    *domain.Team
	lastUpdate    *domain.Team
	lastDisableID int64
}

func (f *fakeTeamService) ListTeams(_ context.Context, includeDisabled bool) ([]*domain.Team, error) {
	f.lastInclude = includeDisabled
	return f.list, f.err
}

func (f *fakeTeamService) CreateTeam(_ context.Context, t *domain.Team) (int64, error) {
	f.lastCreate = t
	if f.err != nil {
		return 0, f.err
	}
	return f.createID, nil
}

func (f *fakeTeamService) UpdateTeam(_ context.Context, t *domain.Team) error {
	f.lastUpdate = t
	return f.err
}

func (f *fakeTeamService) DisableTeam(_ context.Context, id int64) error {
	f.lastDisableID = id
	return f.err
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	list         []*domain.Event
	err          error
	createID     int64
	lastQuery    domain.EventsQuery
	lastCreate   *domain.EventInput
	lastUpdate   *domain.EventInput
	lastDeleteID int64
	calls        int
}

func (f *fakeEventService) ListEvents(_ context.Context, q domain.EventsQuery) ([]*domain.Event, error) {
	f.calls++
	f.lastQuery = q
	return f.list, f.err
}

func (f *fakeEventService) CreateEvent(_ context.Context, in *domain.EventInput) (int64, error) {
	f.calls++
	f.lastCreate = in
	if f.err != nil {
		return 0, f.err
	}
	return f.createID, nil
}

func (f *fakeEventService) UpdateEvent(_ context.Context, in *domain.EventInput) error {
	f.calls++
	f.lastUpdate = in
	return f.err
}

func (f *fakeEventService) DeleteEvent(_ context.Context, id int64) error {
	f.calls++
	f.lastDeleteID = id
	return f.err
}

// fakeAuthService implements domain.AuthService with a plain-text password.
type fakeAuthService struct {
	password string
	err      error
}

func (f *fakeAuthService) Authenticate(_ context.Context, password string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return password == f.password, nil
}

func (f *fakeAuthService) ChangePassword(_ context.Context, oldPassword, newPassword string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if oldPassword != f.password {
		return false, nil
	}
	f.password = newPassword
	return true, nil
}

func (f *fakeAuthService) EnsureCredential(_ context.Context, _ string) error {
	return nil
}
