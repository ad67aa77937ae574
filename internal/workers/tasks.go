// internal/workers/tasks.go
package workers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Task type names registered with the asynq mux
const (
	TypeStockReconcile   = "stock:reconcile"
	TypeLowStockCheck    = "stock:low_alert"
	TypeLedgerExport     = "ledger:export"
	TypeInvoicePDFImport = "invoice:pdf_import"
	TypeSendEmail        = "email:send"
	TypeCleanupExports   = "cleanup:exports"
	TypeCleanupTempFiles = "cleanup:temp_files"
)

// LedgerExportPayload describes an asynchronous movement-ledger export job.
// A nil ProductID exports the full ledger.
type LedgerExportPayload struct {
	JobID       string     `json:"job_id"`
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	From        *time.Time `json:"from,omitempty"`
	To          *time.Time `json:"to,omitempty"`
	RequestedBy int64      `json:"requested_by"`
}

// PDFImportPayload describes a supplier invoice PDF import job
type PDFImportPayload struct {
	JobID      string `json:"job_id"`
	FilePath   string `json:"file_path"`
	SupplierID int64  `json:"supplier_id"`
	ActorID    int64  `json:"actor_id"`
}

// EmailPayload is the payload for outbound notification emails
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NewStockReconcileTask creates a ledger reconciliation task
func NewStockReconcileTask() *asynq.Task {
	return asynq.NewTask(TypeStockReconcile, nil)
}

// NewLowStockCheckTask creates a low-stock sweep task
func NewLowStockCheckTask() *asynq.Task {
	return asynq.NewTask(TypeLowStockCheck, nil)
}

// NewLedgerExportTask creates a ledger export task
func NewLedgerExportTask(payload LedgerExportPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export payload: %w", err)
	}
	return asynq.NewTask(TypeLedgerExport, data), nil
}

// NewPDFImportTask creates a supplier invoice import task
func NewPDFImportTask(payload PDFImportPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pdf import payload: %w", err)
	}
	return asynq.NewTask(TypeInvoicePDFImport, data), nil
}

// NewSendEmailTask creates an email notification task
func NewSendEmailTask(payload EmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal email payload: %w", err)
	}
	return asynq.NewTask(TypeSendEmail, data), nil
}

// ExportJobStatus tracks an export job's lifecycle in the cache. Keys expire
// with the configured export TTL so finished jobs age out on their own.
type ExportJobStatus struct {
	JobID     string    `json:"job_id"`
	Status    string    `json:"status"`
	Rows      int       `json:"rows,omitempty"`
	Key       string    `json:"key,omitempty"`
	URL       string    `json:"url,omitempty"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Export job statuses
const (
	ExportStatusQueued    = "queued"
	ExportStatusRunning   = "running"
	ExportStatusCompleted = "completed"
	ExportStatusFailed    = "failed"
)

// ExportJobKey returns the cache key holding an export job's status
func ExportJobKey(jobID string) string {
	return fmt.Sprintf("export:job:%s", jobID)
}

// ImportJobStatus tracks a supplier invoice import job's lifecycle
type ImportJobStatus struct {
	JobID     string    `json:"job_id"`
	Status    string    `json:"status"`
	InvoiceID string    `json:"invoice_id,omitempty"`
	Lines     int       `json:"lines,omitempty"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ImportJobKey returns the cache key holding an import job's status
func ImportJobKey(jobID string) string {
	return fmt.Sprintf("import:job:%s", jobID)
}
