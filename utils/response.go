package utils

import (
	"encoding/json"
	"net/http"
	"time"
)

type M map[string]interface{}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RespondWithError writes the {success:false,message} envelope most
// routes use for client and server errors.
func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, M{"success": false, "message": msg})
}

// SendResponse writes the generic {status,message,data,timestamp}
// envelope used by the catalog and diagnostic routes. The two envelope
// shapes coexist on purpose; clients depend on both per route.
func SendResponse(w http.ResponseWriter, status int, data any, message string, err error) {
	resp := M{
		"status":    status,
		"message":   message,
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		resp["error"] = err.Error()
	}
	RespondWithJSON(w, status, resp)
}
