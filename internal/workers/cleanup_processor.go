// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/hibiken/asynq"

	"github.com/electromart/electromart-be/internal/adapters/storage"
	"github.com/electromart/electromart-be/internal/pkg/config"
)

// exportKeyRe extracts the timestamp baked into export object keys
var exportKeyRe = regexp.MustCompile(`/(\d{8}_\d{6})_`)

// CleanupProcessor handles cleanup tasks
type CleanupProcessor struct {
	storage storage.StorageClient
	config  *config.Config
	logger  *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(storageClient storage.StorageClient, cfg *config.Config, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		storage: storageClient,
		config:  cfg,
		logger:  logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupExpiredExports removes export objects past their TTL. Presigned URLs
// expire on their own; this keeps the bucket from accumulating stale files.
func (p *CleanupProcessor) CleanupExpiredExports(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up expired exports")

	keys, err := p.storage.List(ctx, p.config.Inventory.ExportPrefix)
	if err != nil {
		return fmt.Errorf("failed to list export objects: %w", err)
	}

	cutoff := time.Now().UTC().Add(-p.config.Inventory.ExportTTL)
	var deleted int

	for _, key := range keys {
		m := exportKeyRe.FindStringSubmatch(key)
		if m == nil {
			continue
		}

		createdAt, err := time.Parse("20060102_150405", m[1])
		if err != nil || !createdAt.Before(cutoff) {
			continue
		}

		if err := p.storage.Delete(ctx, key); err != nil {
			p.logger.WarnContext(ctx, "failed to delete expired export",
				slog.String("key", key),
				slog.String("error", err.Error()))
			continue
		}
		deleted++
	}

	p.logger.InfoContext(ctx, "expired exports cleaned up",
		slog.Int("objects_deleted", deleted))

	return nil
}

// CleanupTempFiles removes old temporary files left by aborted imports
func (p *CleanupProcessor) CleanupTempFiles(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up temp files")

	tempDir := p.config.FileProcessing.TempDir
	maxAge := 24 * time.Hour

	var deletedCount int
	err := filepath.Walk(tempDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err != nil {
				p.logger.WarnContext(ctx, "failed to delete temp file",
					slog.String("file", path),
					slog.String("error", err.Error()))
			} else {
				deletedCount++
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to walk temp directory: %w", err)
	}

	p.logger.InfoContext(ctx, "temp files cleaned up",
		slog.Int("files_deleted", deletedCount))

	return nil
}
