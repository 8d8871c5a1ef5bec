// Package health exposes the liveness endpoint used by container probes.
package health

import "net/http"

// Handler responds to GET /health
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
