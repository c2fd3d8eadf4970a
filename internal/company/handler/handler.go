// Package handler exposes the read-only company endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	companyservice "datablock/internal/company/service"
	"datablock/internal/ingest/models"
	"datablock/internal/platform/metrics"
	"datablock/internal/platform/middleware"
	"datablock/internal/transport/http/shared"
	domainerrors "datablock/pkg/domain-errors"
)

// Service defines the company read operations the handler needs.
type Service interface {
	GetByDUNS(ctx context.Context, duns string) (*companyservice.CompanyWithProfile, error)
	List(ctx context.Context, country string, limit, offset int) ([]models.Company, error)
}

type Handler struct {
	logger  *slog.Logger
	service Service
	metrics *metrics.Metrics
}

func New(service Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		metrics: m,
	}
}

// Register mounts the company routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(g chi.Router) {
		g.Use(middleware.Recovery(h.logger))
		g.Use(middleware.RequestID)
		g.Use(middleware.Logger(h.logger))
		g.Use(middleware.Timeout(30 * time.Second))
		g.Use(middleware.Latency(h.metrics))
		g.Get("/companies", h.handleList)
		g.Get("/companies/{duns}", h.handleGet)
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	duns := chi.URLParam(r, "duns")

	result, err := h.service.GetByDUNS(ctx, duns)
	if err != nil {
		if !domainerrors.HasCode(err, domainerrors.CodeNotFound) &&
			!domainerrors.HasCode(err, domainerrors.CodeBadRequest) {
			h.logger.ErrorContext(ctx, "failed to get company",
				"request_id", middleware.GetRequestID(ctx),
				"duns", duns,
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	companies, err := h.service.List(ctx, q.Get("country"), limit, offset)
	if err != nil {
		if !domainerrors.HasCode(err, domainerrors.CodeBadRequest) {
			h.logger.ErrorContext(ctx, "failed to list companies",
				"request_id", middleware.GetRequestID(ctx),
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"companies": companies,
		"count":     len(companies),
	})
}
