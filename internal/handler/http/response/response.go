package response

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint writes: an optional human-readable
// message and an optional body payload.
type Response struct {
	Message string      `json:"message,omitempty"`
	Body    interface{} `json:"body,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(Response{Message: "Failed to encode response"})
	}
}

// Success responses
func Success(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Body: body,
	})
}

func SuccessWithMessage(w http.ResponseWriter, message string, body interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Message: message,
		Body:    body,
	})
}

func Created(w http.ResponseWriter, message string, body interface{}) {
	writeJSON(w, http.StatusCreated, Response{
		Message: message,
		Body:    body,
	})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error responses
func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	resp := Response{Message: message}
	if len(details) > 0 {
		resp.Body = details
	}
	writeJSON(w, http.StatusBadRequest, resp)
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, Response{Message: message})
}

func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, Response{Message: message})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, Response{Message: message})
}

func Conflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, Response{Message: message})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, Response{Message: message})
}
