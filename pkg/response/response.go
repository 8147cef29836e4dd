// Package response writes the {"success": true, "data": ...} envelope.
package response

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Envelope wraps successful payloads.
type Envelope struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}

// JSON writes data inside a success envelope.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Success: true, Data: data})
}

// OK is JSON with 200.
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}
