// internal/workers/lowstock_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hibiken/asynq"

	"github.com/electromart/electromart-be/internal/core/ports"
	"github.com/electromart/electromart-be/internal/pkg/config"
)

// LowStockProcessor sweeps the projected stock levels against each product's
// threshold and enqueues alert emails for products at or below it
type LowStockProcessor struct {
	ledger   ports.LedgerRepository
	products ports.ProductRepository
	client   *asynq.Client
	config   *config.Config
	logger   *slog.Logger
}

// NewLowStockProcessor creates a new low stock processor
func NewLowStockProcessor(
	ledger ports.LedgerRepository,
	products ports.ProductRepository,
	client *asynq.Client,
	cfg *config.Config,
	logger *slog.Logger,
) *LowStockProcessor {
	return &LowStockProcessor{
		ledger:   ledger,
		products: products,
		client:   client,
		config:   cfg,
		logger:   logger.With(slog.String("processor", "low_stock")),
	}
}

// CheckLowStock scans all stock levels and reports products at or below
// their low-stock threshold
func (p *LowStockProcessor) CheckLowStock(ctx context.Context, t *asynq.Task) error {
	levels, err := p.ledger.Levels(ctx)
	if err != nil {
		return fmt.Errorf("failed to read stock levels: %w", err)
	}

	var alerts []string
	for _, level := range levels {
		product, err := p.products.FindByID(ctx, level.ProductID)
		if err != nil {
			p.logger.WarnContext(ctx, "failed to load product for low stock check",
				slog.String("product_id", level.ProductID.String()),
				slog.String("error", err.Error()))
			continue
		}
		if product == nil || product.DeletedAt != nil {
			continue
		}

		if level.Quantity <= product.LowStockThreshold {
			alerts = append(alerts, fmt.Sprintf("%s (%s): %d on hand, threshold %d",
				product.Name, product.SKU, level.Quantity, product.LowStockThreshold))
		}
	}

	if len(alerts) == 0 {
		p.logger.InfoContext(ctx, "low stock check completed, no alerts")
		return nil
	}

	p.logger.InfoContext(ctx, "low stock products found",
		slog.Int("count", len(alerts)))

	task, err := NewSendEmailTask(EmailPayload{
		To:      p.config.App.AlertEmail,
		Subject: fmt.Sprintf("Low stock alert: %d products", len(alerts)),
		Body:    "The following products are at or below their low stock threshold:\n\n" + strings.Join(alerts, "\n"),
	})
	if err != nil {
		return err
	}

	if _, err := p.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue low stock alert: %w", err)
	}

	return nil
}
