package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "ibankit/pkg/domain-errors"
)

// ErrorResponse is the JSON body written for every failed request.
// Validation violations also carry the offending and expected values.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	Field            string `json:"field,omitempty"`
	Actual           string `json:"actual,omitempty"`
	Expected         string `json:"expected,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Errors after WriteHeader cannot change the status code, so we ignore encoding errors.
	_ = json.NewEncoder(w).Encode(response)
}

// WriteError centralizes domain error translation to HTTP responses.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		WriteJSON(w, DomainCodeToHTTPStatus(domainErr.Code), ErrorBody(domainErr))
		return
	}

	// Fallback for unexpected errors
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: DomainCodeToHTTPCode(dErrors.CodeInternal),
	})
}

// ErrorBody renders a domain error as a response body. Internal failures
// never expose their message.
func ErrorBody(e *dErrors.Error) ErrorResponse {
	if DomainCodeToHTTPStatus(e.Code) == http.StatusInternalServerError {
		return ErrorResponse{Error: DomainCodeToHTTPCode(dErrors.CodeInternal)}
	}
	return ErrorResponse{
		Error:            DomainCodeToHTTPCode(e.Code),
		ErrorDescription: e.Message,
		Field:            e.Field,
		Actual:           e.Actual,
		Expected:         e.Expected,
	}
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
// Identifier violations are well-formed requests about invalid data.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeValidation:
		return http.StatusBadRequest
	case dErrors.CodeConflict, dErrors.CodeDuplicateStructure:
		return http.StatusConflict
	case dErrors.CodeInternal:
		return http.StatusInternalServerError
	}
	if dErrors.IsViolation(code) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// DomainCodeToHTTPCode translates domain error codes to HTTP error codes (for JSON response).
// Violation codes are passed through unchanged.
func DomainCodeToHTTPCode(code dErrors.Code) string {
	switch code {
	case dErrors.CodeNotFound:
		return "not_found"
	case dErrors.CodeBadRequest:
		return "bad_request"
	case dErrors.CodeValidation:
		return "validation_error"
	case dErrors.CodeConflict, dErrors.CodeDuplicateStructure:
		return "conflict"
	case dErrors.CodeInternal, "":
		return "internal_error"
	}
	if dErrors.IsViolation(code) {
		return string(code)
	}
	return "internal_error"
}
