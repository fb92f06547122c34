// internal/app/system/respond/respond.go

// Package respond writes the JSON envelopes used by every API handler.
package respond

import (
	"encoding/json"
	"net/http"
)

// envelope is the error body shape; successful responses carry their payload
// directly.
type envelope struct {
	Error string `json:"error"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes an error envelope with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, envelope{Error: msg})
}

// BadRequest writes a 400 error envelope.
func BadRequest(w http.ResponseWriter, msg string) {
	Error(w, http.StatusBadRequest, msg)
}

// Unauthorized writes a 401 error envelope.
func Unauthorized(w http.ResponseWriter, msg string) {
	Error(w, http.StatusUnauthorized, msg)
}

// Forbidden writes a 403 error envelope.
func Forbidden(w http.ResponseWriter, msg string) {
	Error(w, http.StatusForbidden, msg)
}

// NotFound writes a 404 error envelope.
func NotFound(w http.ResponseWriter, msg string) {
	Error(w, http.StatusNotFound, msg)
}

// Internal writes a 500 error envelope with a generic message so internal
// details never leak to clients.
func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "internal error")
}

// Decode reads a JSON request body into v, rejecting unknown fields.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
