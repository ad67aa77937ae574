// internal/core/services/stock_service_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/services"
	"github.com/electromart/electromart-be/test/helpers"
	"github.com/electromart/electromart-be/test/mocks"
)

func newStockService(t *testing.T) (*services.StockService, *mocks.MockLedgerRepository, *mocks.MockProductRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedgerRepository(ctrl)
	products := mocks.NewMockProductRepository(ctrl)
	return services.NewStockService(ledger, products, helpers.TestLogger()), ledger, products
}

func TestStockService_QuantityOnHand(t *testing.T) {
	product := helpers.CreateTestProduct()

	t.Run("sums_signed_deltas", func(t *testing.T) {
		svc, ledger, products := newStockService(t)
		products.EXPECT().FindByID(gomock.Any(), product.ID).Return(product, nil)
		ledger.EXPECT().SumForProduct(gomock.Any(), product.ID).Return(7, nil)

		qty, err := svc.QuantityOnHand(context.Background(), product.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, qty)
	})

	t.Run("unknown_product_is_not_found", func(t *testing.T) {
		svc, _, products := newStockService(t)
		id := uuid.New()
		products.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)

		_, err := svc.QuantityOnHand(context.Background(), id)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestStockService_Snapshot(t *testing.T) {
	tests := []struct {
		name       string
		onHand     int
		threshold  int
		lowStock   bool
		outOfStock bool
	}{
		{name: "healthy_stock", onHand: 20, threshold: 5, lowStock: false, outOfStock: false},
		{name: "at_threshold_is_low", onHand: 5, threshold: 5, lowStock: true, outOfStock: false},
		{name: "zero_is_out_and_low", onHand: 0, threshold: 5, lowStock: true, outOfStock: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := helpers.CreateTestProduct(func(p *domain.Product) {
				p.LowStockThreshold = tt.threshold
			})
			svc, ledger, products := newStockService(t)
			products.EXPECT().FindByID(gomock.Any(), product.ID).Return(product, nil)
			ledger.EXPECT().SumForProduct(gomock.Any(), product.ID).Return(tt.onHand, nil)

			snap, err := svc.Snapshot(context.Background(), product.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.onHand, snap.Quantity)
			assert.Equal(t, tt.lowStock, snap.LowStock)
			assert.Equal(t, tt.outOfStock, snap.OutOfStock)
		})
	}
}

func TestStockService_ListMovements(t *testing.T) {
	product := helpers.CreateTestProduct()
	svc, ledger, products := newStockService(t)

	entries := []domain.MovementEntry{
		*helpers.CreateTestMovement(product.ID),
		*helpers.CreateTestMovement(product.ID, func(e *domain.MovementEntry) {
			e.Kind = domain.MovementSale
			e.QtyDelta = -2
			e.ReferenceTable = domain.RefSalesInvoices
		}),
	}

	products.EXPECT().FindByID(gomock.Any(), product.ID).Return(product, nil)
	ledger.EXPECT().
		ListForProduct(gomock.Any(), product.ID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID, filter domain.MovementFilter) ([]domain.MovementEntry, error) {
			// oversized limits are clamped before hitting the repository
			assert.LessOrEqual(t, filter.Limit, 500)
			return entries, nil
		})

	got, err := svc.ListMovements(context.Background(), product.ID, domain.MovementFilter{Limit: 10000})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
