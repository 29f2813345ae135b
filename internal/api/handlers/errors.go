package handlers

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/moviarr/moviarr/internal/validator"
	"github.com/sirupsen/logrus"
)

// writeJSON writes data as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// errorResponse writes a generic {"error": message} body
func errorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// serverErrorResponse logs the error with stack detail and reports it to
// the client generically. The message is echoed, the stack is not.
func serverErrorResponse(w http.ResponseWriter, r *http.Request, logger *logrus.Logger, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"stack":  string(debug.Stack()),
	}).Error("Request failed")

	errorResponse(w, http.StatusInternalServerError, err.Error())
}

// failedValidationResponse reports every collected violation at once
func failedValidationResponse(w http.ResponseWriter, violations []validator.Violation) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"errors": violations,
	})
}

// NotFound is the handler for requests matching no route
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error":   "not found",
		"message": r.Method + " " + r.URL.Path + " is not a valid route",
	})
}

// MethodNotAllowed is the handler for known paths with the wrong verb
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error":   "method not allowed",
		"message": r.Method + " is not supported for " + r.URL.Path,
	})
}
