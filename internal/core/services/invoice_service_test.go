// internal/core/services/invoice_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

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

type invoiceMocks struct {
	products  *mocks.MockProductRepository
	purchases *mocks.MockPurchaseInvoiceRepository
	sales     *mocks.MockSalesInvoiceRepository
	ledger    *mocks.MockLedgerRepository
}

func newInvoiceService(t *testing.T) (*services.InvoiceService, *invoiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &invoiceMocks{
		products:  mocks.NewMockProductRepository(ctrl),
		purchases: mocks.NewMockPurchaseInvoiceRepository(ctrl),
		sales:     mocks.NewMockSalesInvoiceRepository(ctrl),
		ledger:    mocks.NewMockLedgerRepository(ctrl),
	}
	svc := services.NewInvoiceService(
		m.products, m.purchases, m.sales, m.ledger,
		helpers.PassthroughTransactor{}, nil, helpers.TestLogger(),
	)
	return svc, m
}

func lockedProducts(products ...*domain.Product) map[uuid.UUID]*domain.Product {
	out := make(map[uuid.UUID]*domain.Product, len(products))
	for _, p := range products {
		out[p.ID] = p
	}
	return out
}

func TestInvoiceService_CreatePurchaseInvoice(t *testing.T) {
	product := helpers.CreateTestProduct()

	tests := []struct {
		name          string
		input         ports.CreatePurchaseInvoiceInput
		setupMocks    func(*invoiceMocks)
		expectedError bool
		errorContains string
	}{
		{
			name:  "persists_header_and_one_movement_per_line",
			input: helpers.CreateTestPurchaseInput(product.ID),
			setupMocks: func(m *invoiceMocks) {
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), []uuid.UUID{product.ID}).
					Return(lockedProducts(product), nil)
				m.purchases.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, inv *domain.PurchaseInvoice) error {
						assert.NotEqual(t, uuid.Nil, inv.ID)
						assert.True(t, inv.Total.Equal(decimal.NewFromFloat(7200.00)),
							"expected total 7200.00, got %s", inv.Total)
						return nil
					})
				m.ledger.EXPECT().
					Append(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, entry *domain.MovementEntry) error {
						assert.Equal(t, domain.MovementPurchase, entry.Kind)
						assert.Equal(t, 10, entry.QtyDelta)
						assert.Equal(t, domain.RefPurchaseInvoices, entry.ReferenceTable)
						return nil
					})
			},
		},
		{
			name: "rejects_empty_lines",
			input: helpers.CreateTestPurchaseInput(product.ID, func(in *ports.CreatePurchaseInvoiceInput) {
				in.Lines = nil
			}),
			setupMocks:    func(m *invoiceMocks) {},
			expectedError: true,
			errorContains: "details must contain at least one line",
		},
		{
			name: "rejects_zero_quantity",
			input: helpers.CreateTestPurchaseInput(product.ID, func(in *ports.CreatePurchaseInvoiceInput) {
				in.Lines[0].Quantity = 0
			}),
			setupMocks:    func(m *invoiceMocks) {},
			expectedError: true,
			errorContains: "quantity must be positive",
		},
		{
			name: "rejects_negative_unit_cost",
			input: helpers.CreateTestPurchaseInput(product.ID, func(in *ports.CreatePurchaseInvoiceInput) {
				in.Lines[0].UnitCost = decimal.NewFromFloat(-1)
			}),
			setupMocks:    func(m *invoiceMocks) {},
			expectedError: true,
			errorContains: "unit_cost cannot be negative",
		},
		{
			name:  "rejects_unknown_product",
			input: helpers.CreateTestPurchaseInput(product.ID),
			setupMocks: func(m *invoiceMocks) {
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), gomock.Any()).
					Return(map[uuid.UUID]*domain.Product{}, nil)
			},
			expectedError: true,
			errorContains: "product not found",
		},
		{
			name:  "aborts_invoice_when_ledger_append_fails",
			input: helpers.CreateTestPurchaseInput(product.ID),
			setupMocks: func(m *invoiceMocks) {
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), gomock.Any()).
					Return(lockedProducts(product), nil)
				m.purchases.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
				m.ledger.EXPECT().
					Append(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			expectedError: true,
			errorContains: "insert failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newInvoiceService(t)
			tt.setupMocks(m)

			invoice, err := svc.CreatePurchaseInvoice(context.Background(), tt.input)

			if tt.expectedError {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, invoice)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, invoice)
		})
	}
}

func TestInvoiceService_CreateSalesInvoice(t *testing.T) {
	product := helpers.CreateTestProduct()
	overrideActor := int64(77)

	tests := []struct {
		name          string
		input         ports.CreateSalesInvoiceInput
		setupMocks    func(*invoiceMocks)
		expectedError bool
		errorContains string
		checkError    func(*testing.T, error)
	}{
		{
			name:  "persists_sale_with_negative_deltas",
			input: helpers.CreateTestSalesInput(product.ID),
			setupMocks: func(m *invoiceMocks) {
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), []uuid.UUID{product.ID}).
					Return(lockedProducts(product), nil)
				m.ledger.EXPECT().
					SumForProduct(gomock.Any(), product.ID).
					Return(10, nil)
				m.sales.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
				m.ledger.EXPECT().
					Append(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, entry *domain.MovementEntry) error {
						assert.Equal(t, domain.MovementSale, entry.Kind)
						assert.Equal(t, -2, entry.QtyDelta)
						assert.Equal(t, domain.RefSalesInvoices, entry.ReferenceTable)
						return nil
					})
			},
		},
		{
			name: "rejects_whole_invoice_when_projection_goes_negative",
			input: helpers.CreateTestSalesInput(product.ID, func(in *ports.CreateSalesInvoiceInput) {
				in.Lines[0].Quantity = 5
			}),
			setupMocks: func(m *invoiceMocks) {
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), gomock.Any()).
					Return(lockedProducts(product), nil)
				m.ledger.EXPECT().
					SumForProduct(gomock.Any(), product.ID).
					Return(3, nil)
			},
			expectedError: true,
			checkError: func(t *testing.T, err error) {
				var stockErr *domain.InsufficientStockError
				require.ErrorAs(t, err, &stockErr)
				assert.Equal(t, product.ID, stockErr.ProductID)
				assert.Equal(t, 3, stockErr.Available)
				assert.Equal(t, 5, stockErr.Requested)
			},
		},
		{
			name: "sums_quantities_across_lines_of_same_product",
			input: helpers.CreateTestSalesInput(product.ID, func(in *ports.CreateSalesInvoiceInput) {
				in.Lines = append(in.Lines, ports.SalesLineInput{
					ProductID: product.ID,
					Quantity:  3,
					UnitPrice: decimal.NewFromFloat(999.99),
					Discount:  decimal.Zero,
				})
			}),
			setupMocks: func(m *invoiceMocks) {
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), gomock.Any()).
					Return(lockedProducts(product), nil)
				m.ledger.EXPECT().
					SumForProduct(gomock.Any(), product.ID).
					Return(4, nil)
			},
			expectedError: true,
			checkError: func(t *testing.T, err error) {
				var stockErr *domain.InsufficientStockError
				require.ErrorAs(t, err, &stockErr)
				assert.Equal(t, 5, stockErr.Requested)
			},
		},
		{
			name: "rejects_price_below_floor_without_override",
			input: helpers.CreateTestSalesInput(product.ID, func(in *ports.CreateSalesInvoiceInput) {
				in.Lines[0].UnitPrice = decimal.NewFromFloat(700.00)
			}),
			setupMocks: func(m *invoiceMocks) {
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), gomock.Any()).
					Return(lockedProducts(product), nil)
			},
			expectedError: true,
			errorContains: "below minimum selling price",
		},
		{
			name: "allows_price_below_floor_with_override",
			input: helpers.CreateTestSalesInput(product.ID, func(in *ports.CreateSalesInvoiceInput) {
				in.Lines[0].UnitPrice = decimal.NewFromFloat(700.00)
				in.OverrideActorID = &overrideActor
				now := in.InvoiceDate
				in.OverrideAt = &now
			}),
			setupMocks: func(m *invoiceMocks) {
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), gomock.Any()).
					Return(lockedProducts(product), nil)
				m.ledger.EXPECT().
					SumForProduct(gomock.Any(), product.ID).
					Return(10, nil)
				m.sales.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
				m.ledger.EXPECT().
					Append(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "rejects_override_actor_without_date",
			input: helpers.CreateTestSalesInput(product.ID, func(in *ports.CreateSalesInvoiceInput) {
				in.OverrideActorID = &overrideActor
			}),
			setupMocks:    func(m *invoiceMocks) {},
			expectedError: true,
			errorContains: "actor and date must be set together",
		},
		{
			name: "rejects_discount_exceeding_line_amount",
			input: helpers.CreateTestSalesInput(product.ID, func(in *ports.CreateSalesInvoiceInput) {
				in.Lines[0].Discount = decimal.NewFromFloat(5000.00)
			}),
			setupMocks:    func(m *invoiceMocks) {},
			expectedError: true,
			errorContains: "cannot exceed the line amount",
		},
		{
			name:  "retries_once_on_lock_conflict_then_succeeds",
			input: helpers.CreateTestSalesInput(product.ID),
			setupMocks: func(m *invoiceMocks) {
				conflictErr := domain.ErrConflict
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), gomock.Any()).
					Return(nil, conflictErr)
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), gomock.Any()).
					Return(lockedProducts(product), nil)
				m.ledger.EXPECT().
					SumForProduct(gomock.Any(), product.ID).
					Return(10, nil)
				m.sales.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
				m.ledger.EXPECT().
					Append(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:  "surfaces_conflict_after_failed_retry",
			input: helpers.CreateTestSalesInput(product.ID),
			setupMocks: func(m *invoiceMocks) {
				m.products.EXPECT().
					FindForUpdate(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrConflict).
					Times(2)
			},
			expectedError: true,
			checkError: func(t *testing.T, err error) {
				assert.True(t, domain.IsConflict(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newInvoiceService(t)
			tt.setupMocks(m)

			invoice, err := svc.CreateSalesInvoice(context.Background(), tt.input)

			if tt.expectedError {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				if tt.checkError != nil {
					tt.checkError(t, err)
				}
				assert.Nil(t, invoice)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, invoice)
		})
	}
}

func TestInvoiceService_CreateSalesInvoice_TotalComputation(t *testing.T) {
	product := helpers.CreateTestProduct(func(p *domain.Product) {
		p.DefaultCost = decimal.NewFromFloat(60.00)
		p.DefaultSellingPrice = decimal.NewFromFloat(120.00)
		p.MinSellingPrice = decimal.NewFromFloat(90.00)
	})
	svc, m := newInvoiceService(t)

	input := helpers.CreateTestSalesInput(product.ID, func(in *ports.CreateSalesInvoiceInput) {
		in.Lines[0].Quantity = 3
		in.Lines[0].UnitPrice = decimal.NewFromFloat(100.00)
		in.Lines[0].Discount = decimal.NewFromFloat(20.00)
		in.DiscountTotal = decimal.NewFromFloat(30.00)
	})

	m.products.EXPECT().
		FindForUpdate(gomock.Any(), gomock.Any()).
		Return(lockedProducts(product), nil)
	m.ledger.EXPECT().
		SumForProduct(gomock.Any(), product.ID).
		Return(10, nil)
	m.sales.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil)
	m.ledger.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil)

	invoice, err := svc.CreateSalesInvoice(context.Background(), input)
	require.NoError(t, err)

	// 3 x 100 - 20 line discount - 30 header discount
	assert.True(t, invoice.Total.Equal(decimal.NewFromFloat(250.00)),
		"expected total 250.00, got %s", invoice.Total)
}

func TestInvoiceService_GetSalesInvoice(t *testing.T) {
	svc, m := newInvoiceService(t)
	id := uuid.New()

	m.sales.EXPECT().
		FindByID(gomock.Any(), id).
		Return(nil, nil)

	invoice, err := svc.GetSalesInvoice(context.Background(), id)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Nil(t, invoice)
}
