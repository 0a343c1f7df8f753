package handler

import "net/http"

// HealthBody is the fixed health check payload.
const HealthBody = "OK"

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(HealthBody))
}
