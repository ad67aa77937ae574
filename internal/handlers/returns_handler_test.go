// internal/handlers/returns_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
	"github.com/electromart/electromart-be/internal/handlers"
	"github.com/electromart/electromart-be/test/helpers"
	"github.com/electromart/electromart-be/test/mocks"
)

func TestReturnsHandler_CreateSalesReturn(t *testing.T) {
	invoiceID := uuid.New()
	productID := uuid.New()

	validBody := map[string]interface{}{
		"invoice_id": invoiceID,
		"product_id": productID,
		"quantity":   2,
		"reason":     "dead pixels",
	}

	tests := []struct {
		name           string
		body           interface{}
		actorID        int64
		setupMocks     func(*mocks.MockReturnsService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:    "successfully_records_return",
			body:    validBody,
			actorID: 42,
			setupMocks: func(m *mocks.MockReturnsService) {
				m.EXPECT().
					CreateSalesReturn(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, input ports.CreateReturnInput) (*domain.SalesReturn, error) {
						assert.Equal(t, invoiceID, input.InvoiceID)
						assert.Equal(t, productID, input.ProductID)
						assert.Equal(t, 2, input.Quantity)
						assert.Equal(t, int64(42), input.ActorID)

						ret := &domain.SalesReturn{
							InvoiceID: input.InvoiceID,
							ProductID: input.ProductID,
							Quantity:  input.Quantity,
							Reason:    input.Reason,
							ActorID:   input.ActorID,
						}
						ret.PrepareForStorage()
						return ret, nil
					})
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.SalesReturn
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, 2, response.Quantity)
				assert.NotEqual(t, uuid.Nil, response.ID)
			},
		},
		{
			name:           "rejects_request_without_actor",
			body:           validBody,
			actorID:        0,
			setupMocks:     func(m *mocks.MockReturnsService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "rejects_zero_quantity",
			body: map[string]interface{}{
				"invoice_id": invoiceID,
				"product_id": productID,
				"quantity":   0,
			},
			actorID:        42,
			setupMocks:     func(m *mocks.MockReturnsService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "maps_over_return_to_bad_request",
			body:    validBody,
			actorID: 42,
			setupMocks: func(m *mocks.MockReturnsService) {
				m.EXPECT().
					CreateSalesReturn(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewValidationError("quantity",
						"exceeds returnable amount: 2 invoiced, 1 already returned"))
			},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "exceeds returnable amount")
			},
		},
		{
			name:    "maps_missing_invoice_to_not_found",
			body:    validBody,
			actorID: 42,
			setupMocks: func(m *mocks.MockReturnsService) {
				m.EXPECT().
					CreateSalesReturn(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewNotFoundError("sales invoice", invoiceID.String()))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockReturnsService(ctrl)
			tt.setupMocks(mockService)

			handler := handlers.NewReturnsHandler(mockService, helpers.TestLogger())

			req := newInvoiceRequest(t, "POST", "/api/v1/returns/sales", tt.body, tt.actorID)
			w := httptest.NewRecorder()

			handler.CreateSalesReturn(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestReturnsHandler_CreatePurchaseReturn(t *testing.T) {
	invoiceID := uuid.New()
	productID := uuid.New()

	validBody := map[string]interface{}{
		"invoice_id": invoiceID,
		"product_id": productID,
		"quantity":   4,
	}

	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockReturnsService)
		expectedStatus int
	}{
		{
			name: "successfully_records_return",
			setupMocks: func(m *mocks.MockReturnsService) {
				m.EXPECT().
					CreatePurchaseReturn(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, input ports.CreateReturnInput) (*domain.PurchaseReturn, error) {
						ret := &domain.PurchaseReturn{
							InvoiceID: input.InvoiceID,
							ProductID: input.ProductID,
							Quantity:  input.Quantity,
							ActorID:   input.ActorID,
						}
						ret.PrepareForStorage()
						return ret, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "maps_insufficient_on_hand_to_unprocessable",
			setupMocks: func(m *mocks.MockReturnsService) {
				m.EXPECT().
					CreatePurchaseReturn(gomock.Any(), gomock.Any()).
					Return(nil, &domain.InsufficientStockError{
						ProductID: productID,
						Available: 2,
						Requested: 4,
					})
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockReturnsService(ctrl)
			tt.setupMocks(mockService)

			handler := handlers.NewReturnsHandler(mockService, helpers.TestLogger())

			req := newInvoiceRequest(t, "POST", "/api/v1/returns/purchase", validBody, 42)
			w := httptest.NewRecorder()

			handler.CreatePurchaseReturn(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
