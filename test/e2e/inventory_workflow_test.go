//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/electromart/electromart-be/internal/adapters/db"
	redis_a "github.com/electromart/electromart-be/internal/adapters/redis_adapter"
	"github.com/electromart/electromart-be/internal/core/services"
	"github.com/electromart/electromart-be/internal/handlers"
	"github.com/electromart/electromart-be/internal/handlers/middleware"
	"github.com/electromart/electromart-be/test/helpers"
)

const actorHeader = "X-User-ID"

// InventoryE2ESuite runs the HTTP API against a real PostgreSQL container
// and a miniredis cache, exercising the full purchase/sale/return path
// through handlers, services, repositories and the movement ledger.
type InventoryE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func (s *InventoryE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.server = httptest.NewServer(s.buildRouter())
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *InventoryE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *InventoryE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.testRedis.Server.FlushAll()
}

// buildRouter wires the same stack cmd/api assembles, minus the async
// export/import surface which needs a running worker.
func (s *InventoryE2ESuite) buildRouter() http.Handler {
	logger := helpers.TestLogger()
	cfg := helpers.LoadTestConfig()

	cache := redis_a.NewCache(s.testRedis.Client, time.Minute, logger)

	productRepo := db.NewProductRepository(s.testDB.Database, logger)
	purchaseRepo := db.NewPurchaseInvoiceRepository(s.testDB.Database, logger)
	salesRepo := db.NewSalesInvoiceRepository(s.testDB.Database, logger)
	returnRepo := db.NewReturnRepository(s.testDB.Database, logger)
	ledgerRepo := db.NewLedgerRepository(s.testDB.Database, logger)
	transactor := db.NewTransactor(s.testDB.Database, logger)

	invoiceService := services.NewInvoiceService(productRepo, purchaseRepo, salesRepo, ledgerRepo, transactor, cache, logger)
	returnsService := services.NewReturnsService(productRepo, purchaseRepo, salesRepo, returnRepo, ledgerRepo, transactor, cache, logger)
	stockService := services.NewStockService(ledgerRepo, productRepo, logger)
	productService := services.NewProductService(productRepo, logger)

	productHandler := handlers.NewProductHandler(productService, logger)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, logger)
	returnsHandler := handlers.NewReturnsHandler(returnsService, logger)
	stockHandler := handlers.NewStockHandler(stockService, cache, cfg.Inventory.MovementPageLimit, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/products", productHandler.CreateProduct)
	mux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct)
	mux.Handle("POST /api/v1/invoices/purchase", middleware.RequireActor(http.HandlerFunc(invoiceHandler.CreatePurchase)))
	mux.Handle("POST /api/v1/invoices/sales", middleware.RequireActor(http.HandlerFunc(invoiceHandler.CreateSales)))
	mux.HandleFunc("GET /api/v1/invoices/purchase/{id}", invoiceHandler.GetPurchase)
	mux.HandleFunc("GET /api/v1/invoices/sales/{id}", invoiceHandler.GetSales)
	mux.Handle("POST /api/v1/returns/sales", middleware.RequireActor(http.HandlerFunc(returnsHandler.CreateSalesReturn)))
	mux.Handle("POST /api/v1/returns/purchase", middleware.RequireActor(http.HandlerFunc(returnsHandler.CreatePurchaseReturn)))
	mux.HandleFunc("GET /api/v1/stock/{productID}", stockHandler.GetStock)
	mux.HandleFunc("GET /api/v1/stock/{productID}/movements", stockHandler.ListMovements)

	return middleware.Actor(actorHeader)(mux)
}

func (s *InventoryE2ESuite) TestPurchaseSaleReturnWorkflow() {
	productID := s.createProduct("TV-55-LG", "LG 55 inch OLED TV", 499.99, 899.99, 749.99)

	// Receive stock: 12 units on a purchase invoice.
	purchaseID := s.createPurchase(productID, 12, 499.99)
	s.Equal(12, s.stockQuantity(productID))

	// Sell 5 of them.
	salesID := s.createSale(productID, 5, 899.99, nil)
	s.Equal(7, s.stockQuantity(productID))

	// Customer brings 2 back.
	resp := s.makeRequest("POST", "/returns/sales", map[string]interface{}{
		"invoice_id": salesID,
		"product_id": productID,
		"quantity":   2,
		"reason":     "dead pixels",
	}, "7")
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	s.Equal(9, s.stockQuantity(productID))

	// A third unit can still come back, but not four more.
	resp = s.makeRequest("POST", "/returns/sales", map[string]interface{}{
		"invoice_id": salesID,
		"product_id": productID,
		"quantity":   4,
	}, "7")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Send 3 defective units back to the supplier.
	resp = s.makeRequest("POST", "/returns/purchase", map[string]interface{}{
		"invoice_id": purchaseID,
		"product_id": productID,
		"quantity":   3,
		"reason":     "damaged in transit",
	}, "7")
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	s.Equal(6, s.stockQuantity(productID))

	// The ledger records every step in order.
	resp = s.makeRequest("GET", fmt.Sprintf("/stock/%s/movements", productID), nil, "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var listing struct {
		Movements []struct {
			Kind     string `json:"kind"`
			QtyDelta int    `json:"qty_delta"`
		} `json:"movements"`
		Count int `json:"count"`
	}
	s.decodeResponse(resp, &listing)
	s.Equal(4, listing.Count)
	s.Equal("purchase", listing.Movements[0].Kind)
	s.Equal(12, listing.Movements[0].QtyDelta)
	s.Equal("sale", listing.Movements[1].Kind)
	s.Equal(-5, listing.Movements[1].QtyDelta)
	s.Equal("return_sale", listing.Movements[2].Kind)
	s.Equal(2, listing.Movements[2].QtyDelta)
	s.Equal("return_purchase", listing.Movements[3].Kind)
	s.Equal(-3, listing.Movements[3].QtyDelta)
}

func (s *InventoryE2ESuite) TestOversellRejected() {
	productID := s.createProduct("PS5-SLIM", "PlayStation 5 Slim", 380.00, 549.99, 499.99)
	s.createPurchase(productID, 3, 380.00)

	resp := s.makeRequest("POST", "/invoices/sales", map[string]interface{}{
		"payment_method": "card",
		"lines": []map[string]interface{}{
			{"product_id": productID, "quantity": 5, "unit_price": 549.99},
		},
	}, "7")
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	// The rejected sale left no trace in the ledger.
	s.Equal(3, s.stockQuantity(productID))
}

func (s *InventoryE2ESuite) TestPriceFloorOverride() {
	productID := s.createProduct("SOUND-JBL-5", "JBL 5.1 Soundbar", 210.00, 399.99, 329.99)
	s.createPurchase(productID, 10, 210.00)

	// Below the floor without an authorization pair: rejected.
	resp := s.makeRequest("POST", "/invoices/sales", map[string]interface{}{
		"payment_method": "cash",
		"lines": []map[string]interface{}{
			{"product_id": productID, "quantity": 1, "unit_price": 250.00},
		},
	}, "7")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Half an authorization pair is no authorization at all.
	resp = s.makeRequest("POST", "/invoices/sales", map[string]interface{}{
		"payment_method":    "cash",
		"override_actor_id": 42,
		"lines": []map[string]interface{}{
			{"product_id": productID, "quantity": 1, "unit_price": 250.00},
		},
	}, "7")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Manager override with both actor and timestamp goes through.
	overrideAt := time.Now().UTC().Format(time.RFC3339)
	resp = s.makeRequest("POST", "/invoices/sales", map[string]interface{}{
		"payment_method":    "cash",
		"override_actor_id": 42,
		"override_at":       overrideAt,
		"lines": []map[string]interface{}{
			{"product_id": productID, "quantity": 1, "unit_price": 250.00},
		},
	}, "7")
	s.Equal(http.StatusCreated, resp.StatusCode)

	var invoice struct {
		OverrideActorID *int64 `json:"override_actor_id"`
	}
	s.decodeResponse(resp, &invoice)
	s.NotNil(invoice.OverrideActorID)
	s.Equal(int64(42), *invoice.OverrideActorID)
	s.Equal(9, s.stockQuantity(productID))
}

func (s *InventoryE2ESuite) TestMutationsRequireActor() {
	productID := s.createProduct("USB-C-2M", "USB-C cable 2m", 2.10, 9.99, 4.99)

	resp := s.makeRequest("POST", "/invoices/purchase", map[string]interface{}{
		"supplier_id": 3,
		"lines": []map[string]interface{}{
			{"product_id": productID, "quantity": 100, "unit_cost": 2.10},
		},
	}, "")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// A non-numeric header is as good as no header.
	resp = s.makeRequest("POST", "/invoices/purchase", map[string]interface{}{
		"supplier_id": 3,
		"lines": []map[string]interface{}{
			{"product_id": productID, "quantity": 100, "unit_cost": 2.10},
		},
	}, "not-a-number")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	s.Equal(0, s.stockQuantity(productID))
}

func (s *InventoryE2ESuite) TestConcurrentSalesNeverOversell() {
	productID := s.createProduct("RTX-5070", "GeForce RTX 5070", 520.00, 699.99, 649.99)
	s.createPurchase(productID, 10, 520.00)

	// 15 buyers race for 10 cards, one unit each.
	const buyers = 15
	results := make(chan int, buyers)
	for i := 0; i < buyers; i++ {
		go func() {
			resp := s.makeRequest("POST", "/invoices/sales", map[string]interface{}{
				"payment_method": "card",
				"lines": []map[string]interface{}{
					{"product_id": productID, "quantity": 1, "unit_price": 699.99},
				},
			}, "7")
			resp.Body.Close()
			results <- resp.StatusCode
		}()
	}

	var sold int
	for i := 0; i < buyers; i++ {
		switch code := <-results; code {
		case http.StatusCreated:
			sold++
		case http.StatusUnprocessableEntity, http.StatusConflict:
			// insufficient stock, or lost the row-lock race
		default:
			s.Failf("unexpected status", "got %d", code)
		}
	}

	// Never more units sold than were on hand, and the ledger accounts
	// for every unit that was.
	s.LessOrEqual(sold, 10)
	s.Equal(10-sold, s.stockQuantity(productID))
}

// Helper methods

func (s *InventoryE2ESuite) createProduct(sku, name string, cost, price, floor float64) string {
	resp := s.makeRequest("POST", "/products", map[string]interface{}{
		"sku":                   sku,
		"name":                  name,
		"supplier_id":           3,
		"default_cost":          cost,
		"default_selling_price": price,
		"min_selling_price":     floor,
		"low_stock_threshold":   2,
	}, "")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var product struct {
		ID string `json:"id"`
	}
	s.decodeResponse(resp, &product)
	s.Require().NotEmpty(product.ID)
	return product.ID
}

func (s *InventoryE2ESuite) createPurchase(productID string, qty int, unitCost float64) string {
	resp := s.makeRequest("POST", "/invoices/purchase", map[string]interface{}{
		"supplier_id": 3,
		"lines": []map[string]interface{}{
			{"product_id": productID, "quantity": qty, "unit_cost": unitCost},
		},
	}, "7")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var invoice struct {
		ID string `json:"id"`
	}
	s.decodeResponse(resp, &invoice)
	return invoice.ID
}

func (s *InventoryE2ESuite) createSale(productID string, qty int, unitPrice float64, overrideActor *int64) string {
	body := map[string]interface{}{
		"payment_method": "card",
		"lines": []map[string]interface{}{
			{"product_id": productID, "quantity": qty, "unit_price": unitPrice},
		},
	}
	if overrideActor != nil {
		body["override_actor_id"] = *overrideActor
		body["override_at"] = time.Now().UTC().Format(time.RFC3339)
	}

	resp := s.makeRequest("POST", "/invoices/sales", body, "7")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var invoice struct {
		ID string `json:"id"`
	}
	s.decodeResponse(resp, &invoice)
	return invoice.ID
}

// stockQuantity reads quantity-on-hand through the API. The cache is flushed
// first so the read reflects the latest committed ledger state.
func (s *InventoryE2ESuite) stockQuantity(productID string) int {
	s.testRedis.Server.FlushAll()

	resp := s.makeRequest("GET", fmt.Sprintf("/stock/%s", productID), nil, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var snapshot struct {
		Quantity int `json:"quantity"`
	}
	s.decodeResponse(resp, &snapshot)
	return snapshot.Quantity
}

func (s *InventoryE2ESuite) makeRequest(method, path string, body interface{}, actor string) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.Require().NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor != "" {
		req.Header.Set(actorHeader, actor)
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *InventoryE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(v))
}

func TestInventoryE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(InventoryE2ESuite))
}
