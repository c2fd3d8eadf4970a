// Package httptransport assembles the HTTP surface: ingestion, company
// reads, health, and Prometheus metrics.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registrar is implemented by every handler that mounts routes.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter mounts all registered handlers plus the metrics endpoint.
func NewRouter(handlers ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	for _, h := range handlers {
		h.Register(r)
	}
	return r
}
