// internal/core/services/returns.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
)

// ReturnsService records sales and purchase returns. The original invoice row
// is never touched; the stock effect is a compensating ledger entry written in
// the same transaction as the return record.
type ReturnsService struct {
	products  ports.ProductRepository
	purchases ports.PurchaseInvoiceRepository
	sales     ports.SalesInvoiceRepository
	returns   ports.ReturnRepository
	ledger    ports.LedgerRepository
	tx        ports.Transactor
	cache     ports.CacheRepository
	logger    *slog.Logger
}

var _ ports.ReturnsService = (*ReturnsService)(nil)

// NewReturnsService creates a new returns service
func NewReturnsService(
	products ports.ProductRepository,
	purchases ports.PurchaseInvoiceRepository,
	sales ports.SalesInvoiceRepository,
	returns ports.ReturnRepository,
	ledger ports.LedgerRepository,
	tx ports.Transactor,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *ReturnsService {
	return &ReturnsService{
		products:  products,
		purchases: purchases,
		sales:     sales,
		returns:   returns,
		ledger:    ledger,
		tx:        tx,
		cache:     cache,
		logger:    logger.With(slog.String("service", "returns")),
	}
}

// CreateSalesReturn records a customer return against a sales invoice and
// appends the compensating ReturnSale entry. The returned quantity, summed
// with all prior returns for the same invoice line, can never exceed the
// quantity originally invoiced.
func (s *ReturnsService) CreateSalesReturn(ctx context.Context, input ports.CreateReturnInput) (*domain.SalesReturn, error) {
	ret := &domain.SalesReturn{
		InvoiceID: input.InvoiceID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Reason:    input.Reason,
		ActorID:   input.ActorID,
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}

	err := runOnceRetryOnConflict(ctx, s.logger, func() error {
		return s.tx.WithinTx(ctx, func(ctx context.Context) error {
			invoice, err := s.sales.FindByID(ctx, ret.InvoiceID)
			if err != nil {
				return err
			}
			if invoice == nil {
				return domain.NewNotFoundError("sales invoice", ret.InvoiceID.String())
			}

			unitPrice, found := salesUnitPrice(invoice, ret.ProductID)
			if !found {
				return domain.NewNotFoundError("invoice line for product", ret.ProductID.String())
			}

			if _, err := s.products.FindForUpdate(ctx, []uuid.UUID{ret.ProductID}); err != nil {
				return err
			}

			invoiced, err := s.sales.InvoicedQuantity(ctx, ret.InvoiceID, ret.ProductID)
			if err != nil {
				return err
			}
			returned, err := s.returns.ReturnedSalesQuantity(ctx, ret.InvoiceID, ret.ProductID)
			if err != nil {
				return err
			}
			if ret.Quantity > invoiced-returned {
				return domain.NewValidationError("quantity",
					fmt.Sprintf("exceeds returnable amount: %d invoiced, %d already returned", invoiced, returned))
			}

			ret.PrepareForStorage()
			if err := s.returns.SaveSalesReturn(ctx, ret); err != nil {
				return err
			}

			entry := &domain.MovementEntry{
				ProductID:      ret.ProductID,
				Kind:           domain.MovementReturnSale,
				QtyDelta:       ret.Quantity,
				UnitCost:       unitPrice,
				ReferenceTable: domain.RefSalesReturns,
				ReferenceID:    ret.ID,
				ActorID:        ret.ActorID,
			}
			return s.ledger.Append(ctx, entry)
		})
	})
	if err != nil {
		return nil, err
	}

	invalidateStockCache(ctx, s.cache, s.logger, []uuid.UUID{ret.ProductID})

	s.logger.InfoContext(ctx, "sales return recorded",
		slog.String("return_id", ret.ID.String()),
		slog.String("invoice_id", ret.InvoiceID.String()),
		slog.String("product_id", ret.ProductID.String()),
		slog.Int("quantity", ret.Quantity))

	return ret, nil
}

// CreatePurchaseReturn records goods sent back to a supplier and appends the
// compensating ReturnPurchase entry. On top of the over-return bound, the
// return is rejected when the goods are no longer on hand.
func (s *ReturnsService) CreatePurchaseReturn(ctx context.Context, input ports.CreateReturnInput) (*domain.PurchaseReturn, error) {
	ret := &domain.PurchaseReturn{
		InvoiceID: input.InvoiceID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Reason:    input.Reason,
		ActorID:   input.ActorID,
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}

	err := runOnceRetryOnConflict(ctx, s.logger, func() error {
		return s.tx.WithinTx(ctx, func(ctx context.Context) error {
			invoice, err := s.purchases.FindByID(ctx, ret.InvoiceID)
			if err != nil {
				return err
			}
			if invoice == nil {
				return domain.NewNotFoundError("purchase invoice", ret.InvoiceID.String())
			}

			unitCost, found := purchaseUnitCost(invoice, ret.ProductID)
			if !found {
				return domain.NewNotFoundError("invoice line for product", ret.ProductID.String())
			}

			if _, err := s.products.FindForUpdate(ctx, []uuid.UUID{ret.ProductID}); err != nil {
				return err
			}

			invoiced, err := s.purchases.InvoicedQuantity(ctx, ret.InvoiceID, ret.ProductID)
			if err != nil {
				return err
			}
			returned, err := s.returns.ReturnedPurchaseQuantity(ctx, ret.InvoiceID, ret.ProductID)
			if err != nil {
				return err
			}
			if ret.Quantity > invoiced-returned {
				return domain.NewValidationError("quantity",
					fmt.Sprintf("exceeds returnable amount: %d invoiced, %d already returned", invoiced, returned))
			}

			onHand, err := s.ledger.SumForProduct(ctx, ret.ProductID)
			if err != nil {
				return err
			}
			if onHand-ret.Quantity < 0 {
				return &domain.InsufficientStockError{
					ProductID: ret.ProductID,
					Available: onHand,
					Requested: ret.Quantity,
				}
			}

			ret.PrepareForStorage()
			if err := s.returns.SavePurchaseReturn(ctx, ret); err != nil {
				return err
			}

			entry := &domain.MovementEntry{
				ProductID:      ret.ProductID,
				Kind:           domain.MovementReturnPurchase,
				QtyDelta:       -ret.Quantity,
				UnitCost:       unitCost,
				ReferenceTable: domain.RefPurchaseReturns,
				ReferenceID:    ret.ID,
				ActorID:        ret.ActorID,
			}
			return s.ledger.Append(ctx, entry)
		})
	})
	if err != nil {
		return nil, err
	}

	invalidateStockCache(ctx, s.cache, s.logger, []uuid.UUID{ret.ProductID})

	s.logger.InfoContext(ctx, "purchase return recorded",
		slog.String("return_id", ret.ID.String()),
		slog.String("invoice_id", ret.InvoiceID.String()),
		slog.String("product_id", ret.ProductID.String()),
		slog.Int("quantity", ret.Quantity))

	return ret, nil
}

func salesUnitPrice(invoice *domain.SalesInvoice, productID uuid.UUID) (decimal.Decimal, bool) {
	for i := range invoice.Details {
		if invoice.Details[i].ProductID == productID {
			return invoice.Details[i].UnitPrice, true
		}
	}
	return decimal.Zero, false
}

func purchaseUnitCost(invoice *domain.PurchaseInvoice, productID uuid.UUID) (decimal.Decimal, bool) {
	for i := range invoice.Details {
		if invoice.Details[i].ProductID == productID {
			return invoice.Details[i].UnitCost, true
		}
	}
	return decimal.Zero, false
}
