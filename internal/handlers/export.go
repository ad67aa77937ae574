// internal/handlers/export.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	redis_a "github.com/electromart/electromart-be/internal/adapters/redis_adapter"
	"github.com/electromart/electromart-be/internal/core/ports"
	"github.com/electromart/electromart-be/internal/handlers/middleware"
	"github.com/electromart/electromart-be/internal/pkg/config"
	"github.com/electromart/electromart-be/internal/workers"
)

// ExportHandler enqueues ledger export jobs and reports their status
type ExportHandler struct {
	client *asynq.Client
	cache  ports.CacheRepository
	config *config.Config
	logger *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(client *asynq.Client, cache ports.CacheRepository, cfg *config.Config, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		client: client,
		cache:  cache,
		config: cfg,
		logger: logger.With(slog.String("handler", "export")),
	}
}

// CreateExport handles POST /api/v1/exports/movements
func (h *ExportHandler) CreateExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := middleware.ActorFromContext(ctx)
	if !ok {
		respondError(h.logger, w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	var req CreateExportRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	jobID := uuid.New().String()
	payload := workers.LedgerExportPayload{
		JobID:       jobID,
		ProductID:   req.ProductID,
		From:        req.From,
		To:          req.To,
		RequestedBy: actorID,
	}

	task, err := workers.NewLedgerExportTask(payload)
	if err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	status := workers.ExportJobStatus{
		JobID:     jobID,
		Status:    workers.ExportStatusQueued,
		UpdatedAt: time.Now(),
	}
	if err := h.cache.SetWithTTL(ctx, workers.ExportJobKey(jobID), status, h.config.Inventory.ExportTTL); err != nil {
		h.logger.WarnContext(ctx, "failed to record queued export status",
			slog.String("job_id", jobID),
			slog.String("error", err.Error()))
	}

	if _, err := h.client.EnqueueContext(ctx, task, asynq.Queue("low")); err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "ledger export enqueued",
		slog.String("job_id", jobID),
		slog.Int64("requested_by", actorID))

	respondJSON(h.logger, w, http.StatusAccepted, map[string]string{
		"job_id": jobID,
		"status": workers.ExportStatusQueued,
	})
}

// GetExport handles GET /api/v1/exports/movements/{jobID}
func (h *ExportHandler) GetExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	jobID := r.PathValue("jobID")

	if _, err := uuid.Parse(jobID); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	var status workers.ExportJobStatus
	if err := h.cache.Get(ctx, workers.ExportJobKey(jobID), &status); err != nil {
		if errors.Is(err, redis_a.ErrCacheMiss) {
			respondError(h.logger, w, http.StatusNotFound, "Export job not found")
			return
		}
		respondDomainError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, status)
}

// CreateExportRequest represents the request body for starting an export
type CreateExportRequest struct {
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	From      *time.Time `json:"from,omitempty"`
	To        *time.Time `json:"to,omitempty"`
}
