// internal/workers/export_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/hibiken/asynq"
	"github.com/tealeg/xlsx/v3"

	"github.com/electromart/electromart-be/internal/adapters/storage"
	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
	"github.com/electromart/electromart-be/internal/pkg/config"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportProcessor materializes movement-ledger exports as spreadsheets in
// object storage. Job status lives in the cache under the export TTL so
// clients can poll without touching the database.
type ExportProcessor struct {
	ledger  ports.LedgerRepository
	storage storage.StorageClient
	cache   ports.CacheRepository
	config  *config.Config
	logger  *slog.Logger
}

// NewExportProcessor creates a new export processor
func NewExportProcessor(
	ledger ports.LedgerRepository,
	storageClient storage.StorageClient,
	cache ports.CacheRepository,
	cfg *config.Config,
	logger *slog.Logger,
) *ExportProcessor {
	return &ExportProcessor{
		ledger:  ledger,
		storage: storageClient,
		cache:   cache,
		config:  cfg,
		logger:  logger.With(slog.String("processor", "export")),
	}
}

// ProcessLedgerExport builds the spreadsheet and uploads it
func (p *ExportProcessor) ProcessLedgerExport(ctx context.Context, t *asynq.Task) error {
	var payload LedgerExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "processing ledger export",
		slog.String("job_id", payload.JobID))

	p.setStatus(ctx, ExportJobStatus{JobID: payload.JobID, Status: ExportStatusRunning})

	entries, err := p.collectEntries(ctx, payload)
	if err != nil {
		p.setStatus(ctx, ExportJobStatus{
			JobID:  payload.JobID,
			Status: ExportStatusFailed,
			Error:  err.Error(),
		})
		return fmt.Errorf("failed to collect ledger entries: %w", err)
	}

	data, err := p.buildSpreadsheet(entries)
	if err != nil {
		p.setStatus(ctx, ExportJobStatus{
			JobID:  payload.JobID,
			Status: ExportStatusFailed,
			Error:  err.Error(),
		})
		return fmt.Errorf("failed to build spreadsheet: %w", err)
	}

	key := fmt.Sprintf("%s/%s_%s.xlsx",
		p.config.Inventory.ExportPrefix,
		time.Now().UTC().Format("20060102_150405"),
		payload.JobID)

	if _, err := p.storage.Upload(ctx, key, bytes.NewReader(data), xlsxContentType); err != nil {
		p.setStatus(ctx, ExportJobStatus{
			JobID:  payload.JobID,
			Status: ExportStatusFailed,
			Error:  err.Error(),
		})
		return fmt.Errorf("failed to upload export: %w", err)
	}

	url, err := p.storage.GetPresignedURL(ctx, key, p.config.Inventory.ExportTTL)
	if err != nil {
		p.logger.WarnContext(ctx, "failed to presign export URL",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	p.setStatus(ctx, ExportJobStatus{
		JobID:  payload.JobID,
		Status: ExportStatusCompleted,
		Rows:   len(entries),
		Key:    key,
		URL:    url,
	})

	p.logger.InfoContext(ctx, "ledger export completed",
		slog.String("job_id", payload.JobID),
		slog.Int("rows", len(entries)),
		slog.String("key", key))

	return nil
}

// collectEntries gathers the movement entries covered by the job. A nil
// product id means every product with a stock level row.
func (p *ExportProcessor) collectEntries(ctx context.Context, payload LedgerExportPayload) ([]domain.MovementEntry, error) {
	filter := domain.MovementFilter{
		From: payload.From,
		To:   payload.To,
	}

	if payload.ProductID != nil {
		return p.ledger.ListForProduct(ctx, *payload.ProductID, filter)
	}

	levels, err := p.ledger.Levels(ctx)
	if err != nil {
		return nil, err
	}

	var entries []domain.MovementEntry
	for _, level := range levels {
		productEntries, err := p.ledger.ListForProduct(ctx, level.ProductID, filter)
		if err != nil {
			return nil, err
		}
		entries = append(entries, productEntries...)
	}

	return entries, nil
}

// buildSpreadsheet renders the entries as a single-sheet workbook
func (p *ExportProcessor) buildSpreadsheet(entries []domain.MovementEntry) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Movements")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headers := []string{
		"Sequence", "Product ID", "Kind", "Qty Delta", "Unit Cost",
		"Reference Table", "Reference ID", "Actor ID", "Note", "Created At",
	}

	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
	}

	for _, entry := range entries {
		row := sheet.AddRow()
		for _, value := range []string{
			strconv.FormatInt(entry.Sequence, 10),
			entry.ProductID.String(),
			string(entry.Kind),
			strconv.Itoa(entry.QtyDelta),
			entry.UnitCost.StringFixed(2),
			entry.ReferenceTable,
			entry.ReferenceID.String(),
			strconv.FormatInt(entry.ActorID, 10),
			entry.Note,
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
		} {
			row.AddCell().Value = value
		}
	}

	for i := range headers {
		sheet.SetColWidth(i+1, i+1, 18)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buffer.Bytes(), nil
}

func (p *ExportProcessor) setStatus(ctx context.Context, status ExportJobStatus) {
	status.UpdatedAt = time.Now()
	if err := p.cache.SetWithTTL(ctx, ExportJobKey(status.JobID), status, p.config.Inventory.ExportTTL); err != nil {
		p.logger.WarnContext(ctx, "failed to record export job status",
			slog.String("job_id", status.JobID),
			slog.String("error", err.Error()))
	}
}
