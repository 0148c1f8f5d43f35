package api

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body returned on backend failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ValidationErrorResponse is the body returned when a request is rejected
// before any backend is touched.
type ValidationErrorResponse struct {
	Error    string   `json:"error"`
	Required []string `json:"required"`
}

// WriteJSON writes data as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes a standardized JSON error response. The cause, when
// present, is surfaced to the caller as a human-readable detail string.
func WriteError(w http.ResponseWriter, statusCode int, message string, cause error) {
	resp := ErrorResponse{Error: message}
	if cause != nil {
		resp.Details = cause.Error()
	}
	WriteJSON(w, statusCode, resp)
}

// WriteValidationError rejects a request with 400 and the list of fields
// the caller must supply.
func WriteValidationError(w http.ResponseWriter, message string, required []string) {
	WriteJSON(w, http.StatusBadRequest, ValidationErrorResponse{Error: message, Required: required})
}
