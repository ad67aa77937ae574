// internal/workers/pdf_parse_test.go
package workers

import (
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electromart/electromart-be/internal/pkg/config"
)

func newParseProcessor() *PDFProcessor {
	return NewPDFProcessor(nil, nil, nil, &config.Config{}, slog.Default())
}

func TestPDFProcessor_ParseInvoiceLines(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []rawInvoiceLine
	}{
		{
			name: "parses_lines_between_header_and_footer",
			lines: []string{
				"ACME ELECTRONICS WHOLESALE",
				"Invoice No. 2026-0815",
				"SKU        QTY    PRICE",
				"TV-55-LG   3      499.99",
				"USB-C-2M   120    $4.50",
				"SUBTOTAL   2039.97",
				"PSU-650W   5      89.00",
			},
			expected: []rawInvoiceLine{
				{sku: "TV-55-LG", quantity: 3, unitCost: decimal.RequireFromString("499.99")},
				{sku: "USB-C-2M", quantity: 120, unitCost: decimal.RequireFromString("4.50")},
			},
		},
		{
			name: "handles_thousands_separators",
			lines: []string{
				"ITEM       QUANTITY   COST",
				"OLED-77-A  2          1,899.00",
			},
			expected: []rawInvoiceLine{
				{sku: "OLED-77-A", quantity: 2, unitCost: decimal.RequireFromString("1899.00")},
			},
		},
		{
			name: "skips_unparseable_and_zero_quantity_lines",
			lines: []string{
				"SKU QTY PRICE",
				"free-form remarks about shipping",
				"CBL-HDMI-1 0 9.99",
				"CBL-HDMI-2 10 19.99",
			},
			expected: []rawInvoiceLine{
				{sku: "CBL-HDMI-2", quantity: 10, unitCost: decimal.RequireFromString("19.99")},
			},
		},
		{
			name: "no_recognizable_lines",
			lines: []string{
				"Thank you for your business",
				"TOTAL DUE 0.00",
			},
			expected: nil,
		},
	}

	p := newParseProcessor()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := p.parseInvoiceLines(tt.lines)
			require.Len(t, parsed, len(tt.expected))
			for i, want := range tt.expected {
				assert.Equal(t, want.sku, parsed[i].sku)
				assert.Equal(t, want.quantity, parsed[i].quantity)
				assert.True(t, want.unitCost.Equal(parsed[i].unitCost),
					"expected %s, got %s", want.unitCost, parsed[i].unitCost)
			}
		})
	}
}

func TestPDFProcessor_ParseCurrency(t *testing.T) {
	p := newParseProcessor()

	assert.True(t, decimal.RequireFromString("1234.56").Equal(p.parseCurrency("$1,234.56")))
	assert.True(t, decimal.RequireFromString("4.50").Equal(p.parseCurrency("4.50")))
	assert.True(t, decimal.Zero.Equal(p.parseCurrency("not-a-number")))
}
