// internal/handlers/stock_handler_test.go
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

func TestStockHandler_GetStock(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name           string
		productID      string
		setupMocks     func(*mocks.MockStockService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:      "returns_projection_snapshot",
			productID: productID.String(),
			setupMocks: func(m *mocks.MockStockService) {
				m.EXPECT().
					Snapshot(gomock.Any(), productID).
					Return(&ports.StockSnapshot{
						ProductID: productID,
						Quantity:  3,
						LowStock:  true,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var snapshot ports.StockSnapshot
				require.NoError(t, json.Unmarshal(body, &snapshot))
				assert.Equal(t, 3, snapshot.Quantity)
				assert.True(t, snapshot.LowStock)
				assert.False(t, snapshot.OutOfStock)
			},
		},
		{
			name:           "invalid_uuid_format",
			productID:      "not-a-uuid",
			setupMocks:     func(m *mocks.MockStockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "product_not_found",
			productID: productID.String(),
			setupMocks: func(m *mocks.MockStockService) {
				m.EXPECT().
					Snapshot(gomock.Any(), productID).
					Return(nil, domain.NewNotFoundError("product", productID.String()))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockStockService(ctrl)
			tt.setupMocks(mockService)

			// nil cache exercises the direct service path
			handler := handlers.NewStockHandler(mockService, nil, 100, helpers.TestLogger())

			req := httptest.NewRequest("GET", "/api/v1/stock/"+tt.productID, nil)
			req.SetPathValue("productID", tt.productID)
			w := httptest.NewRecorder()

			handler.GetStock(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestStockHandler_ListMovements(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name           string
		query          string
		setupMocks     func(*mocks.MockStockService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:  "lists_movements_with_default_limit",
			query: "",
			setupMocks: func(m *mocks.MockStockService) {
				m.EXPECT().
					ListMovements(gomock.Any(), productID, gomock.Any()).
					DoAndReturn(func(_ interface{}, _ uuid.UUID, filter domain.MovementFilter) ([]domain.MovementEntry, error) {
						assert.Equal(t, 100, filter.Limit)
						return []domain.MovementEntry{
							{ProductID: productID, Kind: domain.MovementPurchase, QtyDelta: 10},
							{ProductID: productID, Kind: domain.MovementSale, QtyDelta: -2},
						}, nil
					})
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response struct {
					Movements []domain.MovementEntry `json:"movements"`
					Count     int                    `json:"count"`
				}
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, 2, response.Count)
			},
		},
		{
			name:  "clamps_limit_to_page_cap",
			query: "?limit=1000",
			setupMocks: func(m *mocks.MockStockService) {
				m.EXPECT().
					ListMovements(gomock.Any(), productID, gomock.Any()).
					DoAndReturn(func(_ interface{}, _ uuid.UUID, filter domain.MovementFilter) ([]domain.MovementEntry, error) {
						assert.Equal(t, 100, filter.Limit)
						return nil, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "filters_by_kind",
			query: "?kind=sale",
			setupMocks: func(m *mocks.MockStockService) {
				m.EXPECT().
					ListMovements(gomock.Any(), productID, gomock.Any()).
					DoAndReturn(func(_ interface{}, _ uuid.UUID, filter domain.MovementFilter) ([]domain.MovementEntry, error) {
						assert.Equal(t, domain.MovementSale, filter.Kind)
						return nil, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rejects_unknown_kind",
			query:          "?kind=teleport",
			setupMocks:     func(m *mocks.MockStockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects_malformed_time_bound",
			query:          "?from=yesterday",
			setupMocks:     func(m *mocks.MockStockService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockStockService(ctrl)
			tt.setupMocks(mockService)

			handler := handlers.NewStockHandler(mockService, nil, 100, helpers.TestLogger())

			req := httptest.NewRequest("GET", "/api/v1/stock/"+productID.String()+"/movements"+tt.query, nil)
			req.SetPathValue("productID", productID.String())
			w := httptest.NewRecorder()

			handler.ListMovements(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}
