package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON renders payload with the given status, falling back to a plain
// 500 when encoding fails mid-stream.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
