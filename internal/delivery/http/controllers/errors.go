package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"teamcalendar/internal/delivery/http/helpers"
	"teamcalendar/internal/domain"
)

// Response envelopes for swagger. Data holds the payload named by the type.
type (
	// IDResponse carries the id of a created record.
	IDResponse struct {
		Data  int64             `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	// BoolResponse carries a yes/no outcome.
	BoolResponse struct {
		Data  bool              `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	// EmptyResponse has null data.
	EmptyResponse struct {
		Data  any               `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
)

// writeServiceError logs err and writes the matching envelope. Store details never reach the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidReference):
		logger.InfoContext(r.Context(), "rejected reference", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unknown team or employee id")
	case errors.Is(err, domain.ErrNotFound):
		logger.WarnContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, helpers.MsgInternalError)
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, helpers.MsgInternalError)
	}
}
