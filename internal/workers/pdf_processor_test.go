// internal/workers/pdf_processor_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/electromart/electromart-be/internal/pkg/config"
	"github.com/electromart/electromart-be/internal/workers"
	"github.com/electromart/electromart-be/test/helpers"
	"github.com/electromart/electromart-be/test/mocks"
)

// minimalPDF is a syntactically valid single-page document with no text
// content, enough to exercise the open-and-extract path.
var minimalPDF = []byte(`%PDF-1.4
1 0 obj<</Type/Catalog/Pages 2 0 R>>endobj 2 0 obj<</Type/Pages/Count 1/Kids[3 0 R]>>endobj 3 0 obj<</Type/Page/Parent 2 0 R/MediaBox[0 0 612 792]>>endobj
xref
0 4
0000000000 65535 f
0000000009 00000 n
0000000052 00000 n
0000000101 00000 n
trailer<</Size 4/Root 1 0 R>>
startxref
164
%%EOF`)

func TestPDFProcessor_ProcessPDF(t *testing.T) {
	tests := []struct {
		name          string
		payload       workers.PDFImportPayload
		setupFile     func(t *testing.T) string
		setupMocks    func(invoices *mocks.MockInvoiceService, products *mocks.MockProductRepository, cache *mocks.MockCacheRepository)
		errorContains string
	}{
		{
			name: "fails_when_pdf_has_no_invoice_lines",
			payload: workers.PDFImportPayload{
				JobID:      uuid.New().String(),
				SupplierID: 7,
				ActorID:    42,
			},
			setupFile: func(t *testing.T) string {
				return helpers.CreateTempFile(t, minimalPDF, ".pdf")
			},
			setupMocks: func(invoices *mocks.MockInvoiceService, products *mocks.MockProductRepository, cache *mocks.MockCacheRepository) {
				// One status write for processing, one for the failure
				cache.EXPECT().
					SetWithTTL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(2).
					Return(nil)
			},
			errorContains: "no recognizable invoice lines",
		},
		{
			name: "fails_when_file_is_missing",
			payload: workers.PDFImportPayload{
				JobID:      uuid.New().String(),
				FilePath:   "/nonexistent/invoice.pdf",
				SupplierID: 7,
				ActorID:    42,
			},
			setupMocks: func(invoices *mocks.MockInvoiceService, products *mocks.MockProductRepository, cache *mocks.MockCacheRepository) {
				cache.EXPECT().
					SetWithTTL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(2).
					Return(nil)
			},
			errorContains: "failed to extract invoice lines",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockInvoices := mocks.NewMockInvoiceService(ctrl)
			mockProducts := mocks.NewMockProductRepository(ctrl)
			mockCache := mocks.NewMockCacheRepository(ctrl)

			processor := workers.NewPDFProcessor(
				mockInvoices, mockProducts, mockCache,
				&config.Config{}, helpers.TestLogger(),
			)

			if tt.setupFile != nil {
				tt.payload.FilePath = tt.setupFile(t)
			}
			tt.setupMocks(mockInvoices, mockProducts, mockCache)

			payloadBytes, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			task := asynq.NewTask(workers.TypeInvoicePDFImport, payloadBytes)
			err = processor.ProcessPDF(context.Background(), task)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}

	t.Run("rejects_malformed_payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		processor := workers.NewPDFProcessor(
			mocks.NewMockInvoiceService(ctrl),
			mocks.NewMockProductRepository(ctrl),
			mocks.NewMockCacheRepository(ctrl),
			&config.Config{}, helpers.TestLogger(),
		)

		task := asynq.NewTask(workers.TypeInvoicePDFImport, []byte("{not json"))
		err := processor.ProcessPDF(context.Background(), task)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal payload")
	})
}
