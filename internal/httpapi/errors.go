package httpapi

import (
	"errors"
	"net/http"

	"github.com/odunsi/books/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeErr(w http.ResponseWriter, status int, msg, code string) {
	toJSON(w, status, errorResponse{Error: msg, Code: code})
}

func badRequest(w http.ResponseWriter, msg string) { writeErr(w, http.StatusBadRequest, msg, "") }

// writeReportErr maps engine errors onto HTTP statuses. Repository
// failures surface as 503 so callers can tell "data unavailable" apart
// from a bad request.
func writeReportErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrUnavailable):
		writeErr(w, http.StatusServiceUnavailable, "data unavailable", "data_unavailable")
	case errors.Is(err, errs.ErrInvalid):
		writeErr(w, http.StatusBadRequest, err.Error(), "invalid")
	case errors.Is(err, errs.ErrNotFound):
		writeErr(w, http.StatusNotFound, "not_found", "not_found")
	default:
		writeErr(w, http.StatusInternalServerError, "internal error", "")
	}
}
