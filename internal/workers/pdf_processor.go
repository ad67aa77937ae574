// internal/workers/pdf_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"github.com/ledongthuc/pdf"
	"github.com/shopspring/decimal"

	"github.com/electromart/electromart-be/internal/core/ports"
	"github.com/electromart/electromart-be/internal/pkg/config"
)

// PDFProcessor imports supplier invoice PDFs. Each recognized line is matched
// to a catalog product by SKU and the whole document becomes one purchase
// invoice, recorded through the same transactional path as the API.
type PDFProcessor struct {
	invoices ports.InvoiceService
	products ports.ProductRepository
	cache    ports.CacheRepository
	config   *config.Config
	logger   *slog.Logger
}

// NewPDFProcessor creates a new PDF processor
func NewPDFProcessor(
	invoices ports.InvoiceService,
	products ports.ProductRepository,
	cache ports.CacheRepository,
	cfg *config.Config,
	logger *slog.Logger,
) *PDFProcessor {
	return &PDFProcessor{
		invoices: invoices,
		products: products,
		cache:    cache,
		config:   cfg,
		logger:   logger.With(slog.String("processor", "pdf")),
	}
}

// ProcessPDF parses a supplier invoice PDF and records it as a purchase invoice
func (p *PDFProcessor) ProcessPDF(ctx context.Context, t *asynq.Task) error {
	var payload PDFImportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "processing supplier invoice PDF",
		slog.String("job_id", payload.JobID),
		slog.Int64("supplier_id", payload.SupplierID))

	p.setStatus(ctx, ImportJobStatus{JobID: payload.JobID, Status: "processing"})

	lines, err := p.extractInvoiceLines(ctx, payload.FilePath)
	if err != nil {
		p.setStatus(ctx, ImportJobStatus{JobID: payload.JobID, Status: "failed", Error: err.Error()})
		return fmt.Errorf("failed to extract invoice lines: %w", err)
	}

	if len(lines) == 0 {
		err := fmt.Errorf("no recognizable invoice lines in %s", payload.FilePath)
		p.setStatus(ctx, ImportJobStatus{JobID: payload.JobID, Status: "failed", Error: err.Error()})
		return err
	}

	input := ports.CreatePurchaseInvoiceInput{
		SupplierID: payload.SupplierID,
		ActorID:    payload.ActorID,
		Note:       fmt.Sprintf("imported from supplier PDF, job %s", payload.JobID),
	}

	var skipped []string
	for _, line := range lines {
		product, err := p.products.FindBySKU(ctx, line.sku)
		if err != nil {
			p.setStatus(ctx, ImportJobStatus{JobID: payload.JobID, Status: "failed", Error: err.Error()})
			return fmt.Errorf("failed to resolve sku %s: %w", line.sku, err)
		}
		if product == nil {
			skipped = append(skipped, line.sku)
			continue
		}
		input.Lines = append(input.Lines, ports.PurchaseLineInput{
			ProductID: product.ID,
			Quantity:  line.quantity,
			UnitCost:  line.unitCost,
		})
	}

	if len(skipped) > 0 {
		p.logger.WarnContext(ctx, "skipped unknown SKUs during import",
			slog.String("job_id", payload.JobID),
			slog.String("skus", strings.Join(skipped, ",")))
	}

	if len(input.Lines) == 0 {
		err := fmt.Errorf("no invoice lines matched catalog products")
		p.setStatus(ctx, ImportJobStatus{JobID: payload.JobID, Status: "failed", Error: err.Error()})
		return err
	}

	invoice, err := p.invoices.CreatePurchaseInvoice(ctx, input)
	if err != nil {
		p.setStatus(ctx, ImportJobStatus{JobID: payload.JobID, Status: "failed", Error: err.Error()})
		return fmt.Errorf("failed to record imported invoice: %w", err)
	}

	status := "completed"
	if len(skipped) > 0 {
		status = "completed_with_skips"
	}
	p.setStatus(ctx, ImportJobStatus{
		JobID:     payload.JobID,
		Status:    status,
		InvoiceID: invoice.ID.String(),
		Lines:     len(invoice.Details),
	})

	if strings.HasPrefix(payload.FilePath, os.TempDir()) {
		_ = os.Remove(payload.FilePath)
	}

	p.logger.InfoContext(ctx, "supplier invoice imported",
		slog.String("job_id", payload.JobID),
		slog.String("invoice_id", invoice.ID.String()),
		slog.Int("lines", len(invoice.Details)))

	return nil
}

type rawInvoiceLine struct {
	sku      string
	quantity int
	unitCost decimal.Decimal
}

func (p *PDFProcessor) extractInvoiceLines(ctx context.Context, filePath string) ([]rawInvoiceLine, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textLines []string
	totalPages := r.NumPage()

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			p.logger.WarnContext(ctx, "failed to extract text from page",
				slog.Int("page", pageNum),
				slog.String("error", err.Error()))
			continue
		}

		textLines = append(textLines, strings.Split(text, "\n")...)
	}

	return p.parseInvoiceLines(textLines), nil
}

// parseInvoiceLines scans for lines in the supplier layout:
// SKU followed by quantity and a unit price, other text ignored.
func (p *PDFProcessor) parseInvoiceLines(lines []string) []rawInvoiceLine {
	headerRe := regexp.MustCompile(`(?i)(SKU.*QTY.*PRICE|ITEM.*QUANTITY.*COST)`)
	footerRe := regexp.MustCompile(`(?i)(SUBTOTAL|TOTAL DUE|PAYMENT)`)
	lineRe := regexp.MustCompile(`^([A-Z0-9]+(?:-[A-Z0-9]+)+)\s+(\d+)\s+\$?\s*(\d{1,3}(?:,\d{3})*\.\d{2})\s*$`)

	startIdx := 0
	for i, line := range lines {
		if headerRe.MatchString(line) {
			startIdx = i + 1
			break
		}
	}

	var parsed []rawInvoiceLine
	for i := startIdx; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if footerRe.MatchString(line) {
			break
		}

		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		qty, err := strconv.Atoi(m[2])
		if err != nil || qty <= 0 {
			continue
		}

		parsed = append(parsed, rawInvoiceLine{
			sku:      m[1],
			quantity: qty,
			unitCost: p.parseCurrency(m[3]),
		})
	}

	return parsed
}

func (p *PDFProcessor) parseCurrency(val string) decimal.Decimal {
	cleaned := strings.ReplaceAll(val, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (p *PDFProcessor) setStatus(ctx context.Context, status ImportJobStatus) {
	status.UpdatedAt = time.Now()
	if err := p.cache.SetWithTTL(ctx, ImportJobKey(status.JobID), status, p.config.FileProcessing.ProcessingTimeout+24*time.Hour); err != nil {
		p.logger.WarnContext(ctx, "failed to record import job status",
			slog.String("job_id", status.JobID),
			slog.String("error", err.Error()))
	}
}
