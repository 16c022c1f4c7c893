package httpserver

import (
	"net/http"
)

// HealthCheckHandler returns a liveness probe handler responding 200 OK with
// body "ALIVE". The module has no external dependencies to verify, so
// liveness and readiness coincide.
func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}
