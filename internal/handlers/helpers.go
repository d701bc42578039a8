package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Chethumuniraju/stockfolio/internal/client"
)

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method || (method == http.MethodGet && r.Method == http.MethodHead) {
		return true
	}
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	return false
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes a standard error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// WriteAPIError maps a stock API error onto an HTTP status: validation
// failures are the caller's fault (400), missing entities are 404, and
// transport failures surface as 502 so clients can distinguish "backend
// down" from "you asked wrong".
func WriteAPIError(w http.ResponseWriter, err error) error {
	status := http.StatusBadGateway
	switch client.KindOf(err) {
	case client.KindValidation:
		status = http.StatusBadRequest
	case client.KindNotFound:
		status = http.StatusNotFound
	case client.KindNetwork:
		status = http.StatusBadGateway
	}
	return WriteError(w, status, err.Error())
}

// DecodeJSON decodes a request body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
