// internal/workers/stock_processors_test.go
package workers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/pkg/config"
	"github.com/electromart/electromart-be/internal/workers"
	"github.com/electromart/electromart-be/test/helpers"
	"github.com/electromart/electromart-be/test/mocks"
)

func TestReconcileProcessor_ReconcileLevels(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(ledger *mocks.MockLedgerRepository)
		errorContains string
	}{
		{
			name: "no_drift",
			setupMocks: func(ledger *mocks.MockLedgerRepository) {
				ledger.EXPECT().RebuildLevels(gomock.Any()).Return(int64(0), nil)
			},
		},
		{
			name: "drift_corrected",
			setupMocks: func(ledger *mocks.MockLedgerRepository) {
				ledger.EXPECT().RebuildLevels(gomock.Any()).Return(int64(3), nil)
			},
		},
		{
			name: "rebuild_fails",
			setupMocks: func(ledger *mocks.MockLedgerRepository) {
				ledger.EXPECT().RebuildLevels(gomock.Any()).Return(int64(0), errors.New("deadlock detected"))
			},
			errorContains: "failed to rebuild stock levels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger := mocks.NewMockLedgerRepository(ctrl)
			tt.setupMocks(mockLedger)

			processor := workers.NewReconcileProcessor(mockLedger, helpers.TestLogger())
			task := workers.NewStockReconcileTask()

			err := processor.ReconcileLevels(context.Background(), task)

			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLowStockProcessor_CheckLowStock(t *testing.T) {
	mr := miniredis.RunT(t)
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: mr.Addr()})
	defer client.Close()

	cfg := &config.Config{}
	cfg.App.AlertEmail = "ops@electromart.com"

	lowProduct := helpers.CreateTestProduct(func(p *domain.Product) {
		p.Name = "HDMI Cable 2m"
		p.SKU = "CBL-HDMI-2"
		p.LowStockThreshold = 5
	})
	healthyProduct := helpers.CreateTestProduct(func(p *domain.Product) {
		p.Name = "55in LED TV"
		p.SKU = "TV-55-LG"
		p.LowStockThreshold = 2
	})

	t.Run("enqueues_alert_for_products_at_threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLedger := mocks.NewMockLedgerRepository(ctrl)
		mockProducts := mocks.NewMockProductRepository(ctrl)

		mockLedger.EXPECT().Levels(gomock.Any()).Return([]domain.StockLevel{
			{ProductID: lowProduct.ID, Quantity: 5},
			{ProductID: healthyProduct.ID, Quantity: 40},
		}, nil)
		mockProducts.EXPECT().FindByID(gomock.Any(), lowProduct.ID).Return(lowProduct, nil)
		mockProducts.EXPECT().FindByID(gomock.Any(), healthyProduct.ID).Return(healthyProduct, nil)

		processor := workers.NewLowStockProcessor(mockLedger, mockProducts, client, cfg, helpers.TestLogger())

		err := processor.CheckLowStock(context.Background(), nil)
		require.NoError(t, err)
	})

	t.Run("skips_deleted_products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deleted := helpers.CreateTestProduct(func(p *domain.Product) {
			p.LowStockThreshold = 100
		})
		now := deleted.CreatedAt
		deleted.DeletedAt = &now

		mockLedger := mocks.NewMockLedgerRepository(ctrl)
		mockProducts := mocks.NewMockProductRepository(ctrl)

		mockLedger.EXPECT().Levels(gomock.Any()).Return([]domain.StockLevel{
			{ProductID: deleted.ID, Quantity: 0},
		}, nil)
		mockProducts.EXPECT().FindByID(gomock.Any(), deleted.ID).Return(deleted, nil)

		processor := workers.NewLowStockProcessor(mockLedger, mockProducts, client, cfg, helpers.TestLogger())

		err := processor.CheckLowStock(context.Background(), nil)
		require.NoError(t, err)
	})

	t.Run("propagates_levels_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLedger := mocks.NewMockLedgerRepository(ctrl)
		mockProducts := mocks.NewMockProductRepository(ctrl)

		mockLedger.EXPECT().Levels(gomock.Any()).Return(nil, errors.New("connection refused"))

		processor := workers.NewLowStockProcessor(mockLedger, mockProducts, client, cfg, helpers.TestLogger())

		err := processor.CheckLowStock(context.Background(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read stock levels")
	})
}
