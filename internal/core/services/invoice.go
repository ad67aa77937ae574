// internal/core/services/invoice.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
)

// InvoiceService validates and persists purchase and sales invoices together
// with their ledger effects, all inside one transaction scope.
type InvoiceService struct {
	products  ports.ProductRepository
	purchases ports.PurchaseInvoiceRepository
	sales     ports.SalesInvoiceRepository
	ledger    ports.LedgerRepository
	tx        ports.Transactor
	cache     ports.CacheRepository
	logger    *slog.Logger
}

var _ ports.InvoiceService = (*InvoiceService)(nil)

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	products ports.ProductRepository,
	purchases ports.PurchaseInvoiceRepository,
	sales ports.SalesInvoiceRepository,
	ledger ports.LedgerRepository,
	tx ports.Transactor,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *InvoiceService {
	return &InvoiceService{
		products:  products,
		purchases: purchases,
		sales:     sales,
		ledger:    ledger,
		tx:        tx,
		cache:     cache,
		logger:    logger.With(slog.String("service", "invoice")),
	}
}

// runOnceRetryOnConflict executes fn, retrying exactly once when two
// transactions raced on the same product's stock. The second failure
// surfaces as the retryable conflict error.
func runOnceRetryOnConflict(ctx context.Context, logger *slog.Logger, fn func() error) error {
	err := fn()
	if err == nil || !domain.IsConflict(err) {
		return err
	}

	logger.WarnContext(ctx, "stock conflict, retrying once",
		slog.String("error", err.Error()))

	return fn()
}

// invalidateStockCache drops cached snapshots for the products after commit
func invalidateStockCache(ctx context.Context, cache ports.CacheRepository, logger *slog.Logger, productIDs []uuid.UUID) {
	if cache == nil {
		return
	}
	keys := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		keys = append(keys, fmt.Sprintf("stock:product:%s", id))
	}
	if err := cache.Delete(ctx, keys...); err != nil {
		logger.WarnContext(ctx, "failed to invalidate stock cache",
			slog.String("error", err.Error()))
	}
}

// CreatePurchaseInvoice persists the header, its detail lines and one
// Purchase movement per line as a single unit of work
func (s *InvoiceService) CreatePurchaseInvoice(ctx context.Context, input ports.CreatePurchaseInvoiceInput) (*domain.PurchaseInvoice, error) {
	invoice := &domain.PurchaseInvoice{
		SupplierID:  input.SupplierID,
		InvoiceDate: input.InvoiceDate,
		ActorID:     input.ActorID,
		Note:        input.Note,
	}
	for _, line := range input.Lines {
		invoice.Details = append(invoice.Details, domain.PurchaseInvoiceDetail{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitCost:  line.UnitCost,
		})
	}

	if err := invoice.Validate(); err != nil {
		return nil, err
	}

	err := runOnceRetryOnConflict(ctx, s.logger, func() error {
		return s.tx.WithinTx(ctx, func(ctx context.Context) error {
			products, err := s.products.FindForUpdate(ctx, productIDsOfPurchase(invoice))
			if err != nil {
				return err
			}
			for i := range invoice.Details {
				if _, ok := products[invoice.Details[i].ProductID]; !ok {
					return domain.NewNotFoundError("product", invoice.Details[i].ProductID.String())
				}
			}

			invoice.PrepareForStorage()
			if err := s.purchases.Save(ctx, invoice); err != nil {
				return err
			}

			for i := range invoice.Details {
				d := &invoice.Details[i]
				entry := &domain.MovementEntry{
					ProductID:      d.ProductID,
					Kind:           domain.MovementPurchase,
					QtyDelta:       d.Quantity,
					UnitCost:       d.UnitCost,
					ReferenceTable: domain.RefPurchaseInvoices,
					ReferenceID:    invoice.ID,
					ActorID:        invoice.ActorID,
				}
				if err := s.ledger.Append(ctx, entry); err != nil {
					return err
				}
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	invalidateStockCache(ctx, s.cache, s.logger, productIDsOfPurchase(invoice))

	s.logger.InfoContext(ctx, "purchase invoice created",
		slog.String("invoice_id", invoice.ID.String()),
		slog.Int64("supplier_id", invoice.SupplierID),
		slog.Int("lines", len(invoice.Details)),
		slog.String("total", invoice.Total.String()))

	return invoice, nil
}

// CreateSalesInvoice persists the header, its detail lines and one Sale
// movement per line. The whole invoice is rejected when any line would drive
// quantity-on-hand negative or is priced below the floor without an override.
func (s *InvoiceService) CreateSalesInvoice(ctx context.Context, input ports.CreateSalesInvoiceInput) (*domain.SalesInvoice, error) {
	invoice := &domain.SalesInvoice{
		CustomerName:    input.CustomerName,
		InvoiceDate:     input.InvoiceDate,
		DiscountTotal:   input.DiscountTotal,
		PaymentMethod:   input.PaymentMethod,
		ActorID:         input.ActorID,
		OverrideActorID: input.OverrideActorID,
		OverrideAt:      input.OverrideAt,
	}
	for _, line := range input.Lines {
		invoice.Details = append(invoice.Details, domain.SalesInvoiceDetail{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Discount:  line.Discount,
		})
	}

	if err := invoice.Validate(); err != nil {
		return nil, err
	}

	err := runOnceRetryOnConflict(ctx, s.logger, func() error {
		return s.tx.WithinTx(ctx, func(ctx context.Context) error {
			// Row locks serialize concurrent sales against the same products
			// so the projected quantities stay valid through commit.
			products, err := s.products.FindForUpdate(ctx, productIDsOfSale(invoice))
			if err != nil {
				return err
			}

			requested := make(map[uuid.UUID]int)
			for i := range invoice.Details {
				d := &invoice.Details[i]
				product, ok := products[d.ProductID]
				if !ok {
					return domain.NewNotFoundError("product", d.ProductID.String())
				}
				if d.UnitPrice.LessThan(product.MinSellingPrice) && !invoice.HasOverride() {
					return domain.NewValidationError("details.unit_price",
						fmt.Sprintf("below minimum selling price for product %s without override", d.ProductID))
				}
				requested[d.ProductID] += d.Quantity
			}

			for productID, qty := range requested {
				onHand, err := s.ledger.SumForProduct(ctx, productID)
				if err != nil {
					return err
				}
				if onHand-qty < 0 {
					return &domain.InsufficientStockError{
						ProductID: productID,
						Available: onHand,
						Requested: qty,
					}
				}
			}

			invoice.PrepareForStorage()
			if err := s.sales.Save(ctx, invoice); err != nil {
				return err
			}

			for i := range invoice.Details {
				d := &invoice.Details[i]
				entry := &domain.MovementEntry{
					ProductID:      d.ProductID,
					Kind:           domain.MovementSale,
					QtyDelta:       -d.Quantity,
					UnitCost:       d.UnitPrice,
					ReferenceTable: domain.RefSalesInvoices,
					ReferenceID:    invoice.ID,
					ActorID:        invoice.ActorID,
				}
				if err := s.ledger.Append(ctx, entry); err != nil {
					return err
				}
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	invalidateStockCache(ctx, s.cache, s.logger, productIDsOfSale(invoice))

	s.logger.InfoContext(ctx, "sales invoice created",
		slog.String("invoice_id", invoice.ID.String()),
		slog.Int("lines", len(invoice.Details)),
		slog.Bool("override", invoice.HasOverride()),
		slog.String("total", invoice.Total.String()))

	return invoice, nil
}

// GetPurchaseInvoice retrieves a purchase invoice aggregate
func (s *InvoiceService) GetPurchaseInvoice(ctx context.Context, id uuid.UUID) (*domain.PurchaseInvoice, error) {
	invoice, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase invoice: %w", err)
	}
	if invoice == nil {
		return nil, domain.NewNotFoundError("purchase invoice", id.String())
	}
	return invoice, nil
}

// GetSalesInvoice retrieves a sales invoice aggregate
func (s *InvoiceService) GetSalesInvoice(ctx context.Context, id uuid.UUID) (*domain.SalesInvoice, error) {
	invoice, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales invoice: %w", err)
	}
	if invoice == nil {
		return nil, domain.NewNotFoundError("sales invoice", id.String())
	}
	return invoice, nil
}

func productIDsOfPurchase(invoice *domain.PurchaseInvoice) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(invoice.Details))
	ids := make([]uuid.UUID, 0, len(invoice.Details))
	for i := range invoice.Details {
		id := invoice.Details[i].ProductID
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

func productIDsOfSale(invoice *domain.SalesInvoice) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(invoice.Details))
	ids := make([]uuid.UUID, 0, len(invoice.Details))
	for i := range invoice.Details {
		id := invoice.Details[i].ProductID
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
