package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamcalendar/internal/delivery/http/helpers"
	"teamcalendar/internal/domain"
)

func TestEmployeeController_ListEmployees(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		svcErr      error
		wantStatus  int
		wantInclude bool
		wantCode    string
	}{
		{name: "active only by default", wantStatus: http.StatusOK},
		{name: "include disabled", query: "?include_disabled=true", wantStatus: http.StatusOK, wantInclude: true},
		{name: "bad flag", query: "?include_disabled=sometimes", wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{
			name:       "store failure is generic",
			svcErr:     fmt.Errorf("list employees: %w: %w", domain.ErrQuery, errors.New(`relation "employees" does not exist`)),
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEmployeeService{
				list: []*domain.Employee{{ID: 1, Name: "Alice", Color: "#ff0000"}},
				err:  tt.svcErr,
			}
			ctrl := NewEmployeeController(testLogger, svc)
			req := httptest.NewRequest(http.MethodGet, "/employees"+tt.query, nil)
			rr := httptest.NewRecorder()

			ctrl.ListEmployees(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			data, apiErr := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				assert.Equal(t, "null", string(data))
				if tt.wantStatus == http.StatusInternalServerError {
					assert.Equal(t, helpers.MsgInternalError, apiErr.Message)
				}
				return
			}
			require.Nil(t, apiErr)
			assert.Equal(t, tt.wantInclude, svc.lastInclude)
			assert.JSONEq(t, `[{"id":1,"name":"Alice","color":"#ff0000","disabled":false}]`, string(data))
		})
	}
}

func TestEmployeeController_CreateEmployee(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantData   string
	}{
		{name: "success", body: `{"name":"Alice","color":"#ff0000"}`, wantStatus: http.StatusOK, wantData: "7"},
		{name: "missing color", body: `{"name":"Alice"}`, wantStatus: http.StatusBadRequest},
		{name: "whole entity from the settings page", body: `{"id":0,"name":"Alice","color":"#ff0000","disabled":false}`, wantStatus: http.StatusOK, wantData: "7"},
		{name: "malformed json", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{
			name:       "service validation",
			body:       `{"name":"Alice","color":"red"}`,
			svcErr:     fmt.Errorf("%w: color must be a hex color like #1e90ff", domain.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
		},
		{name: "store failure", body: `{"name":"Alice","color":"#ff0000"}`, svcErr: domain.ErrConnection, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEmployeeService{createID: 7, err: tt.svcErr}
			ctrl := NewEmployeeController(testLogger, svc)
			req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			ctrl.CreateEmployee(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			data, apiErr := decodeEnvelope(t, rr)
			if tt.wantData == "" {
				require.NotNil(t, apiErr)
				return
			}
			require.Nil(t, apiErr)
			assert.Equal(t, tt.wantData, string(data))
			assert.Equal(t, &domain.Employee{Name: "Alice", Color: "#ff0000"}, svc.lastCreate)
		})
	}
}

func TestEmployeeController_UpdateEmployee(t *testing.T) {
	t.Run("overwrites every field", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		ctrl := NewEmployeeController(testLogger, svc)
		body := `{"id":3,"name":"Alice","color":"#00ff00","disabled":true}`
		req := httptest.NewRequest(http.MethodPut, "/employees", strings.NewReader(body))
		rr := httptest.NewRecorder()

		ctrl.UpdateEmployee(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"data":null,"error":null}`, rr.Body.String())
		assert.Equal(t, &domain.Employee{ID: 3, Name: "Alice", Color: "#00ff00", Disabled: true}, svc.lastUpdate)
	})

	t.Run("unknown id is reported as an internal error", func(t *testing.T) {
		svc := &fakeEmployeeService{err: fmt.Errorf("update employee 3: %w", domain.ErrNotFound)}
		ctrl := NewEmployeeController(testLogger, svc)
		body := `{"id":3,"name":"Alice","color":"#00ff00","disabled":false}`
		req := httptest.NewRequest(http.MethodPut, "/employees", strings.NewReader(body))
		rr := httptest.NewRecorder()

		ctrl.UpdateEmployee(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		_, apiErr := decodeEnvelope(t, rr)
		require.NotNil(t, apiErr)
		assert.Equal(t, helpers.ErrCodeInternalError, apiErr.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		ctrl := NewEmployeeController(testLogger, svc)
		req := httptest.NewRequest(http.MethodPut, "/employees", strings.NewReader(`{"name":"Alice","color":"#00ff00"}`))
		rr := httptest.NewRecorder()

		ctrl.UpdateEmployee(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Nil(t, svc.lastUpdate)
	})
}

func TestEmployeeController_DisableEmployee(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantStatus int
		wantID     int64
	}{
		{name: "success", id: "4", wantStatus: http.StatusOK, wantID: 4},
		{name: "non numeric id", id: "four", wantStatus: http.StatusBadRequest},
		{name: "zero id", id: "0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEmployeeService{}
			ctrl := NewEmployeeController(testLogger, svc)
			req := httptest.NewRequest(http.MethodDelete, "/employees/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rr := httptest.NewRecorder()

			ctrl.DisableEmployee(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantID, svc.lastDisableID)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			assert.Nil(t, envelope.Data)
		})
	}
}
