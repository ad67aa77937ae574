// internal/handlers/import.go
package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	redis_a "github.com/electromart/electromart-be/internal/adapters/redis_adapter"
	"github.com/electromart/electromart-be/internal/core/ports"
	"github.com/electromart/electromart-be/internal/handlers/middleware"
	"github.com/electromart/electromart-be/internal/workers"
)

// ImportHandler accepts supplier invoice PDFs and queues them for import
type ImportHandler struct {
	client      *asynq.Client
	cache       ports.CacheRepository
	logger      *slog.Logger
	maxFileSize int64
	uploadDir   string
}

// NewImportHandler creates a new import handler
func NewImportHandler(client *asynq.Client, cache ports.CacheRepository, logger *slog.Logger, maxFileSize int64, uploadDir string) *ImportHandler {
	return &ImportHandler{
		client:      client,
		cache:       cache,
		logger:      logger.With(slog.String("handler", "import")),
		maxFileSize: maxFileSize,
		uploadDir:   uploadDir,
	}
}

// ImportInvoicePDF handles POST /api/v1/imports/invoice
func (h *ImportHandler) ImportInvoicePDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := middleware.ActorFromContext(ctx)
	if !ok {
		respondError(h.logger, w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	if header.Header.Get("Content-Type") != "application/pdf" {
		respondError(h.logger, w, http.StatusBadRequest, "Only PDF files are allowed")
		return
	}

	supplierID, err := strconv.ParseInt(r.FormValue("supplier_id"), 10, 64)
	if err != nil || supplierID <= 0 {
		respondError(h.logger, w, http.StatusBadRequest, "supplier_id is required")
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0755); err != nil {
		h.logger.ErrorContext(ctx, "failed to create upload directory",
			slog.String("error", err.Error()))
		respondError(h.logger, w, http.StatusInternalServerError, "Failed to prepare upload")
		return
	}

	tempFile := filepath.Join(h.uploadDir, fmt.Sprintf("%s_%s", uuid.New().String(), header.Filename))
	dst, err := os.Create(tempFile)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create temp file",
			slog.String("error", err.Error()))
		respondError(h.logger, w, http.StatusInternalServerError, "Failed to save upload")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(tempFile)
		h.logger.ErrorContext(ctx, "failed to save file",
			slog.String("error", err.Error()))
		respondError(h.logger, w, http.StatusInternalServerError, "Failed to save upload")
		return
	}

	jobID := uuid.New().String()
	task, err := workers.NewPDFImportTask(workers.PDFImportPayload{
		JobID:      jobID,
		FilePath:   tempFile,
		SupplierID: supplierID,
		ActorID:    actorID,
	})
	if err != nil {
		os.Remove(tempFile)
		respondDomainError(h.logger, w, r, err)
		return
	}

	status := workers.ImportJobStatus{JobID: jobID, Status: "queued", UpdatedAt: time.Now()}
	if err := h.cache.SetWithTTL(ctx, workers.ImportJobKey(jobID), status, 48*time.Hour); err != nil {
		h.logger.WarnContext(ctx, "failed to record queued import status",
			slog.String("job_id", jobID),
			slog.String("error", err.Error()))
	}

	info, err := h.client.EnqueueContext(ctx, task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour))
	if err != nil {
		os.Remove(tempFile)
		respondDomainError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "supplier invoice import queued",
		slog.String("job_id", jobID),
		slog.String("task_id", info.ID),
		slog.Int64("supplier_id", supplierID))

	respondJSON(h.logger, w, http.StatusAccepted, map[string]string{
		"job_id": jobID,
		"status": "queued",
	})
}

// ImportStatus handles GET /api/v1/imports/invoice/{jobID}
func (h *ImportHandler) ImportStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	jobID := r.PathValue("jobID")

	if _, err := uuid.Parse(jobID); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	var status workers.ImportJobStatus
	if err := h.cache.Get(ctx, workers.ImportJobKey(jobID), &status); err != nil {
		if errors.Is(err, redis_a.ErrCacheMiss) {
			respondError(h.logger, w, http.StatusNotFound, "Import job not found")
			return
		}
		respondDomainError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, status)
}
