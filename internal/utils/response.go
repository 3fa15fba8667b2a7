package utils

import (
	"encoding/json"
	"net/http"
	"os"
	"runtime/debug"

	"scorequest/user/internal/models"
)

// JSON writes a JSON response with status code
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// JSONError writes an error envelope in JSON
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, models.ErrorResponse{Message: message})
}

// JSONInternalError writes a 500 envelope. Outside production the
// response carries the current stack for operator diagnosis; clients in
// production only ever see the message.
func JSONInternalError(w http.ResponseWriter, message string) {
	resp := models.ErrorResponse{Message: message}
	if os.Getenv("APP_ENV") != "production" {
		resp.Stack = string(debug.Stack())
	}
	JSON(w, http.StatusInternalServerError, resp)
}
