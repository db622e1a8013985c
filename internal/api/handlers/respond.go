package handlers

import (
	"encoding/json"
	"net/http"
)

// successEnvelope wraps every successful response body
type successEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// errorEnvelope wraps every error response body
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DecodeJSON decodes the request body into dst, rejecting unknown fields
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// RespondJSON writes a success envelope with the given status code
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(successEnvelope{Success: true, Data: data})
}

// RespondError writes an error envelope with the given status code
func RespondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorEnvelope{Success: false, Message: message})
}

// RespondBadRequest writes a 400 error envelope
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized writes a 401 error envelope
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondNotFound writes a 404 error envelope
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict writes a 409 error envelope
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError writes a 500 error envelope with a generic message
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "erro interno do servidor")
}
