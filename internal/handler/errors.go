package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Error codes returned in ErrorDetail.Code.
const (
	codeNotFound            = "not_found"
	codeValidation          = "validation_error"
	codeInvalidActivityDate = "invalid_activity_date"
	codeInvalidStartDate    = "invalid_start_date"
	codeInvalidEndDate      = "invalid_end_date"
	codeBodyTooLarge        = "request_too_large"
	codeMethodNotAllowed    = "method_not_allowed"
	codeInternal            = "internal_error"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// requestError answers 400 for input rejected before reaching the service
// layer (e.g. missing or malformed body, bad path parameter).
func requestError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, codeValidation, message)
}

// serviceError maps an error returned by a service to its HTTP response.
// notFound is the message used for domain.ErrNotFound because the handler is
// the layer that knows what was being looked up. Anything unrecognised is
// logged with the request id and answered with a generic 500.
func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, notFound)
	case errors.Is(err, domain.ErrActivityOutOfRange):
		writeError(w, http.StatusBadRequest, codeInvalidActivityDate, unwrapMessage(err))
	case errors.Is(err, domain.ErrStartInPast):
		writeError(w, http.StatusBadRequest, codeInvalidStartDate, unwrapMessage(err))
	case errors.Is(err, domain.ErrEndBeforeStart):
		writeError(w, http.StatusBadRequest, codeInvalidEndDate, unwrapMessage(err))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, unwrapMessage(err))
	default:
		s.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped validation error.
// e.g. "service.TripService.Create: validation error: destination is too short" → "destination is too short"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 && i+len(marker) < len(msg) {
		return msg[i+len(marker):]
	}
	return msg
}

func (s *Server) routeNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, codeNotFound, "route not found")
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
}
