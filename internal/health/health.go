// Package health reports process readiness: database connectivity and
// whether the Direct+ client is configured.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"

	"datablock/internal/transport/http/shared"
)

type Handler struct {
	db             *sqlx.DB
	hasCredentials bool
	logger         *slog.Logger
}

func New(db *sqlx.DB, hasCredentials bool, logger *slog.Logger) *Handler {
	return &Handler{
		db:             db,
		hasCredentials: hasCredentials,
		logger:         logger,
	}
}

// Register mounts the health route.
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.handleHealth)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	status := http.StatusOK
	if err := h.db.PingContext(ctx); err != nil {
		h.logger.ErrorContext(ctx, "database ping failed", "error", err.Error())
		dbStatus = "unreachable"
		status = http.StatusServiceUnavailable
	}

	shared.WriteJSON(w, status, map[string]any{
		"status":         statusWord(status),
		"database":       dbStatus,
		"apiCredentials": h.hasCredentials,
	})
}

func statusWord(status int) string {
	if status == http.StatusOK {
		return "ok"
	}
	return "degraded"
}
