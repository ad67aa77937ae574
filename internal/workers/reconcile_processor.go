// internal/workers/reconcile_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/electromart/electromart-be/internal/core/ports"
)

// ReconcileProcessor rebuilds the materialized stock summary from the ledger.
// The sum of movement deltas is authoritative; this corrects any drift in
// stock_levels left behind by missed invalidations or manual intervention.
type ReconcileProcessor struct {
	ledger ports.LedgerRepository
	logger *slog.Logger
}

// NewReconcileProcessor creates a new reconcile processor
func NewReconcileProcessor(ledger ports.LedgerRepository, logger *slog.Logger) *ReconcileProcessor {
	return &ReconcileProcessor{
		ledger: ledger,
		logger: logger.With(slog.String("processor", "reconcile")),
	}
}

// ReconcileLevels recomputes every stock_levels row from the ledger
func (p *ReconcileProcessor) ReconcileLevels(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "reconciling stock levels from ledger")

	corrected, err := p.ledger.RebuildLevels(ctx)
	if err != nil {
		return fmt.Errorf("failed to rebuild stock levels: %w", err)
	}

	if corrected > 0 {
		p.logger.WarnContext(ctx, "stock level drift corrected",
			slog.Int64("rows_corrected", corrected))
	} else {
		p.logger.InfoContext(ctx, "stock levels consistent with ledger")
	}

	return nil
}
