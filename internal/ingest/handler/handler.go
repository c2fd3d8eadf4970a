// Package handler exposes the document ingestion endpoint.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"datablock/internal/ingest"
	"datablock/internal/platform/metrics"
	"datablock/internal/platform/middleware"
	"datablock/internal/transport/http/shared"
	domainerrors "datablock/pkg/domain-errors"
)

// Loader runs one batch of documents in a single transaction.
type Loader interface {
	Load(ctx context.Context, docs ...ingest.Document) error
}

type Handler struct {
	logger  *slog.Logger
	loader  Loader
	metrics *metrics.Metrics
}

func New(loader Loader, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		loader:  loader,
		metrics: m,
	}
}

// Register mounts the ingest routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(g chi.Router) {
		g.Use(middleware.Recovery(h.logger))
		g.Use(middleware.RequestID)
		g.Use(middleware.Logger(h.logger))
		g.Use(middleware.Timeout(2 * time.Minute))
		g.Use(middleware.Latency(h.metrics))
		g.Post("/ingest", h.handleIngest)
	})
}

// handleIngest accepts one document or an array of documents and loads them
// as a single batch. Any failure rolls back the whole batch.
func (h *Handler) handleIngest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	docs, err := ingest.DecodeDocuments(r.Body)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid ingest request",
			"request_id", requestID,
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	if len(docs) == 0 {
		shared.WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "empty document batch"))
		return
	}

	if err := h.loader.Load(ctx, docs...); err != nil {
		if domainerrors.HasCode(err, domainerrors.CodeValidation) {
			h.logger.WarnContext(ctx, "ingest batch rejected",
				"request_id", requestID,
				"error", err.Error(),
			)
			shared.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "ingest batch failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		shared.WriteError(w, domainerrors.New(domainerrors.CodeInternal, "failed to load documents"))
		return
	}

	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"documents": len(docs),
		"status":    "loaded",
	})
}
