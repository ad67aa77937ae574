// internal/core/services/returns_service_test.go
package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
	"github.com/electromart/electromart-be/internal/core/services"
	"github.com/electromart/electromart-be/test/helpers"
	"github.com/electromart/electromart-be/test/mocks"
)

type returnsMocks struct {
	products  *mocks.MockProductRepository
	purchases *mocks.MockPurchaseInvoiceRepository
	sales     *mocks.MockSalesInvoiceRepository
	returns   *mocks.MockReturnRepository
	ledger    *mocks.MockLedgerRepository
}

func newReturnsService(t *testing.T) (*services.ReturnsService, *returnsMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &returnsMocks{
		products:  mocks.NewMockProductRepository(ctrl),
		purchases: mocks.NewMockPurchaseInvoiceRepository(ctrl),
		sales:     mocks.NewMockSalesInvoiceRepository(ctrl),
		returns:   mocks.NewMockReturnRepository(ctrl),
		ledger:    mocks.NewMockLedgerRepository(ctrl),
	}
	svc := services.NewReturnsService(
		m.products, m.purchases, m.sales, m.returns, m.ledger,
		helpers.PassthroughTransactor{}, nil, helpers.TestLogger(),
	)
	return svc, m
}

func testSalesInvoice(productID uuid.UUID, qty int) *domain.SalesInvoice {
	inv := &domain.SalesInvoice{
		ID:            uuid.New(),
		InvoiceDate:   time.Now(),
		PaymentMethod: domain.PaymentCash,
		ActorID:       42,
		Details: []domain.SalesInvoiceDetail{
			{
				ID:        uuid.New(),
				ProductID: productID,
				Quantity:  qty,
				UnitPrice: decimal.NewFromFloat(999.99),
			},
		},
	}
	inv.Details[0].InvoiceID = inv.ID
	return inv
}

func testPurchaseInvoice(productID uuid.UUID, qty int) *domain.PurchaseInvoice {
	inv := &domain.PurchaseInvoice{
		ID:         uuid.New(),
		SupplierID: 1,
		ActorID:    42,
		Details: []domain.PurchaseInvoiceDetail{
			{
				ID:        uuid.New(),
				ProductID: productID,
				Quantity:  qty,
				UnitCost:  decimal.NewFromFloat(720.00),
			},
		},
	}
	inv.Details[0].InvoiceID = inv.ID
	return inv
}

func TestReturnsService_CreateSalesReturn(t *testing.T) {
	product := helpers.CreateTestProduct()
	invoice := testSalesInvoice(product.ID, 5)

	baseInput := func() ports.CreateReturnInput {
		return ports.CreateReturnInput{
			InvoiceID: invoice.ID,
			ProductID: product.ID,
			Quantity:  2,
			Reason:    "customer changed mind",
			ActorID:   42,
		}
	}

	tests := []struct {
		name          string
		input         func() ports.CreateReturnInput
		setupMocks    func(*returnsMocks)
		expectedError bool
		errorContains string
	}{
		{
			name:  "records_return_with_compensating_entry",
			input: baseInput,
			setupMocks: func(m *returnsMocks) {
				m.sales.EXPECT().
					FindByID(gomock.Any(), invoice.ID).
					Return(invoice, nil)
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), []uuid.UUID{product.ID}).
					Return(map[uuid.UUID]*domain.Product{product.ID: product}, nil)
				m.sales.EXPECT().
					InvoicedQuantity(gomock.Any(), invoice.ID, product.ID).
					Return(5, nil)
				m.returns.EXPECT().
					ReturnedSalesQuantity(gomock.Any(), invoice.ID, product.ID).
					Return(0, nil)
				m.returns.EXPECT().
					SaveSalesReturn(gomock.Any(), gomock.Any()).
					Return(nil)
				m.ledger.EXPECT().
					Append(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, entry *domain.MovementEntry) error {
						assert.Equal(t, domain.MovementReturnSale, entry.Kind)
						assert.Equal(t, 2, entry.QtyDelta)
						assert.Equal(t, domain.RefSalesReturns, entry.ReferenceTable)
						assert.True(t, entry.UnitCost.Equal(decimal.NewFromFloat(999.99)))
						return nil
					})
			},
		},
		{
			name: "rejects_return_exceeding_invoiced_quantity",
			input: func() ports.CreateReturnInput {
				in := baseInput()
				in.Quantity = 6
				return in
			},
			setupMocks: func(m *returnsMocks) {
				m.sales.EXPECT().
					FindByID(gomock.Any(), invoice.ID).
					Return(invoice, nil)
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), gomock.Any()).
					Return(map[uuid.UUID]*domain.Product{product.ID: product}, nil)
				m.sales.EXPECT().
					InvoicedQuantity(gomock.Any(), invoice.ID, product.ID).
					Return(5, nil)
				m.returns.EXPECT().
					ReturnedSalesQuantity(gomock.Any(), invoice.ID, product.ID).
					Return(0, nil)
			},
			expectedError: true,
			errorContains: "exceeds returnable amount",
		},
		{
			name: "counts_prior_returns_against_the_bound",
			input: func() ports.CreateReturnInput {
				in := baseInput()
				in.Quantity = 3
				return in
			},
			setupMocks: func(m *returnsMocks) {
				m.sales.EXPECT().
					FindByID(gomock.Any(), invoice.ID).
					Return(invoice, nil)
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), gomock.Any()).
					Return(map[uuid.UUID]*domain.Product{product.ID: product}, nil)
				m.sales.EXPECT().
					InvoicedQuantity(gomock.Any(), invoice.ID, product.ID).
					Return(5, nil)
				m.returns.EXPECT().
					ReturnedSalesQuantity(gomock.Any(), invoice.ID, product.ID).
					Return(3, nil)
			},
			expectedError: true,
			errorContains: "3 already returned",
		},
		{
			name:  "rejects_missing_invoice",
			input: baseInput,
			setupMocks: func(m *returnsMocks) {
				m.sales.EXPECT().
					FindByID(gomock.Any(), invoice.ID).
					Return(nil, nil)
			},
			expectedError: true,
			errorContains: "sales invoice not found",
		},
		{
			name: "rejects_product_not_on_invoice",
			input: func() ports.CreateReturnInput {
				in := baseInput()
				in.ProductID = uuid.New()
				return in
			},
			setupMocks: func(m *returnsMocks) {
				m.sales.EXPECT().
					FindByID(gomock.Any(), invoice.ID).
					Return(invoice, nil)
			},
			expectedError: true,
			errorContains: "invoice line for product not found",
		},
		{
			name: "rejects_zero_quantity",
			input: func() ports.CreateReturnInput {
				in := baseInput()
				in.Quantity = 0
				return in
			},
			setupMocks:    func(m *returnsMocks) {},
			expectedError: true,
			errorContains: "quantity must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReturnsService(t)
			tt.setupMocks(m)

			ret, err := svc.CreateSalesReturn(context.Background(), tt.input())

			if tt.expectedError {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, ret)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, ret)
			assert.NotEqual(t, uuid.Nil, ret.ID)
		})
	}
}

func TestReturnsService_CreatePurchaseReturn(t *testing.T) {
	product := helpers.CreateTestProduct()
	invoice := testPurchaseInvoice(product.ID, 10)

	baseInput := func() ports.CreateReturnInput {
		return ports.CreateReturnInput{
			InvoiceID: invoice.ID,
			ProductID: product.ID,
			Quantity:  4,
			Reason:    "damaged on arrival",
			ActorID:   42,
		}
	}

	tests := []struct {
		name          string
		input         func() ports.CreateReturnInput
		setupMocks    func(*returnsMocks)
		expectedError bool
		errorContains string
		checkError    func(*testing.T, error)
	}{
		{
			name:  "records_return_with_negative_compensating_entry",
			input: baseInput,
			setupMocks: func(m *returnsMocks) {
				m.purchases.EXPECT().
					FindByID(gomock.Any(), invoice.ID).
					Return(invoice, nil)
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), []uuid.UUID{product.ID}).
					Return(map[uuid.UUID]*domain.Product{product.ID: product}, nil)
				m.purchases.EXPECT().
					InvoicedQuantity(gomock.Any(), invoice.ID, product.ID).
					Return(10, nil)
				m.returns.EXPECT().
					ReturnedPurchaseQuantity(gomock.Any(), invoice.ID, product.ID).
					Return(0, nil)
				m.ledger.EXPECT().
					SumForProduct(gomock.Any(), product.ID).
					Return(10, nil)
				m.returns.EXPECT().
					SavePurchaseReturn(gomock.Any(), gomock.Any()).
					Return(nil)
				m.ledger.EXPECT().
					Append(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, entry *domain.MovementEntry) error {
						assert.Equal(t, domain.MovementReturnPurchase, entry.Kind)
						assert.Equal(t, -4, entry.QtyDelta)
						assert.Equal(t, domain.RefPurchaseReturns, entry.ReferenceTable)
						assert.True(t, entry.UnitCost.Equal(decimal.NewFromFloat(720.00)))
						return nil
					})
			},
		},
		{
			name:  "rejects_return_of_stock_already_sold",
			input: baseInput,
			setupMocks: func(m *returnsMocks) {
				m.purchases.EXPECT().
					FindByID(gomock.Any(), invoice.ID).
					Return(invoice, nil)
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), gomock.Any()).
					Return(map[uuid.UUID]*domain.Product{product.ID: product}, nil)
				m.purchases.EXPECT().
					InvoicedQuantity(gomock.Any(), invoice.ID, product.ID).
					Return(10, nil)
				m.returns.EXPECT().
					ReturnedPurchaseQuantity(gomock.Any(), invoice.ID, product.ID).
					Return(0, nil)
				m.ledger.EXPECT().
					SumForProduct(gomock.Any(), product.ID).
					Return(2, nil)
			},
			expectedError: true,
			checkError: func(t *testing.T, err error) {
				var stockErr *domain.InsufficientStockError
				require.ErrorAs(t, err, &stockErr)
				assert.Equal(t, 2, stockErr.Available)
				assert.Equal(t, 4, stockErr.Requested)
			},
		},
		{
			name: "rejects_over_return",
			input: func() ports.CreateReturnInput {
				in := baseInput()
				in.Quantity = 8
				return in
			},
			setupMocks: func(m *returnsMocks) {
				m.purchases.EXPECT().
					FindByID(gomock.Any(), invoice.ID).
					Return(invoice, nil)
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), gomock.Any()).
					Return(map[uuid.UUID]*domain.Product{product.ID: product}, nil)
				m.purchases.EXPECT().
					InvoicedQuantity(gomock.Any(), invoice.ID, product.ID).
					Return(10, nil)
				m.returns.EXPECT().
					ReturnedPurchaseQuantity(gomock.Any(), invoice.ID, product.ID).
					Return(5, nil)
			},
			expectedError: true,
			errorContains: "exceeds returnable amount",
		},
		{
			name:  "rejects_missing_invoice",
			input: baseInput,
			setupMocks: func(m *returnsMocks) {
				m.purchases.EXPECT().
					FindByID(gomock.Any(), invoice.ID).
					Return(nil, nil)
			},
			expectedError: true,
			errorContains: "purchase invoice not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReturnsService(t)
			tt.setupMocks(m)

			ret, err := svc.CreatePurchaseReturn(context.Background(), tt.input())

			if tt.expectedError {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				if tt.checkError != nil {
					tt.checkError(t, err)
				}
				assert.Nil(t, ret)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, ret)
		})
	}
}
