package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/handler/gen"
)

const (
	codeNotFound         = "not_found"
	codeValidation       = "validation_error"
	codeBadRequest       = "bad_request"
	codeConflict         = "conflict"
	codeTooLarge         = "request_too_large"
	codeInternal         = "internal_error"
	internalErrorMessage = "internal server error"
)

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message (e.g. "trip not found") because the
// handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody(codeNotFound, message)
}

// validationBody returns an ErrorResponse whose message is the part of err
// after the wrapped domain.ErrValidation, e.g. "name is required".
func validationBody(err error) gen.ErrorResponse {
	return errorBody(codeValidation, detailAfter(err, domain.ErrValidation, err.Error()))
}

// requestBody returns an ErrorResponse for input rejected before it reaches
// the service layer.
func requestBody(message string) gen.ErrorResponse {
	return errorBody(codeBadRequest, message)
}

func conflictBody(message string) gen.ErrorResponse {
	return errorBody(codeConflict, message)
}

// requestError handles JSON bodies the generated strict handler could not
// decode.
func requestError(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge,
			errorBody(codeTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)))
	case errors.Is(err, io.EOF):
		writeError(w, http.StatusUnprocessableEntity, errorBody(codeValidation, "request body is required"))
	default:
		cause := err
		if inner := errors.Unwrap(err); inner != nil {
			cause = inner
		}
		writeError(w, http.StatusBadRequest, requestBody("malformed JSON body: "+cause.Error()))
	}
}

// paramError handles path and query parameters the generated router could
// not bind, e.g. a tripId that is not a UUID.
func paramError(w http.ResponseWriter, _ *http.Request, err error) {
	var invalid *gen.InvalidParamFormatError
	if errors.As(err, &invalid) {
		writeError(w, http.StatusBadRequest, requestBody("invalid "+invalid.ParamName+": "+invalid.Err.Error()))
		return
	}
	writeError(w, http.StatusBadRequest, requestBody(err.Error()))
}

// responseError logs an unexpected error returned by a Server method and
// writes an opaque 500.
func responseError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, errorBody(codeInternal, internalErrorMessage))
}

// detailAfter extracts the human-readable part that follows sentinel in a
// wrapped error chain.
// e.g. "service.TripService.Create: validation error: name is required"
// with sentinel domain.ErrValidation yields "name is required".
// Returns fallback when err does not carry text after the sentinel.
func detailAfter(err, sentinel error, fallback string) string {
	if err == nil || !errors.Is(err, sentinel) {
		return fallback
	}
	marker := sentinel.Error() + ": "
	msg := err.Error()
	if i := strings.LastIndex(msg, marker); i >= 0 && i+len(marker) < len(msg) {
		return msg[i+len(marker):]
	}
	return fallback
}
