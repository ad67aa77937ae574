// internal/handlers/stock.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
)

// stockCacheTTL bounds staleness of the cached projection; every write path
// invalidates the key anyway, so this only covers missed invalidations.
const stockCacheTTL = 30 * time.Second

// StockHandler handles stock projection HTTP requests
type StockHandler struct {
	service   ports.StockService
	cache     ports.CacheRepository
	pageLimit int
	logger    *slog.Logger
}

// NewStockHandler creates a new stock handler
func NewStockHandler(service ports.StockService, cache ports.CacheRepository, pageLimit int, logger *slog.Logger) *StockHandler {
	if pageLimit <= 0 {
		pageLimit = 100
	}
	return &StockHandler{
		service:   service,
		cache:     cache,
		pageLimit: pageLimit,
		logger:    logger.With(slog.String("handler", "stock")),
	}
}

// GetStock handles GET /api/v1/stock/{productID}
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := uuid.Parse(r.PathValue("productID"))
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var snapshot ports.StockSnapshot
	if h.cache != nil {
		key := fmt.Sprintf("stock:product:%s", productID)
		err = h.cache.GetOrSet(ctx, key, &snapshot, func() (interface{}, error) {
			s, ferr := h.service.Snapshot(ctx, productID)
			if ferr != nil {
				return nil, ferr
			}
			return s, nil
		}, stockCacheTTL)
	} else {
		var s *ports.StockSnapshot
		s, err = h.service.Snapshot(ctx, productID)
		if err == nil {
			snapshot = *s
		}
	}
	if err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, snapshot)
}

// ListMovements handles GET /api/v1/stock/{productID}/movements
func (h *StockHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := uuid.Parse(r.PathValue("productID"))
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	filter, err := h.parseMovementFilter(r)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	movements, err := h.service.ListMovements(ctx, productID, filter)
	if err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"product_id": productID,
		"movements":  movements,
		"count":      len(movements),
	})
}

// parseMovementFilter parses query parameters for the ledger listing
func (h *StockHandler) parseMovementFilter(r *http.Request) (domain.MovementFilter, error) {
	filter := domain.MovementFilter{
		Limit: h.pageLimit,
	}

	if kind := r.URL.Query().Get("kind"); kind != "" {
		mk := domain.MovementKind(kind)
		if !mk.Valid() {
			return filter, fmt.Errorf("unknown movement kind: %s", kind)
		}
		filter.Kind = mk
	}

	filter.ReferenceTable = r.URL.Query().Get("reference_table")

	if from := r.URL.Query().Get("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return filter, fmt.Errorf("from must be RFC3339 formatted")
		}
		filter.From = &t
	}

	if to := r.URL.Query().Get("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return filter, fmt.Errorf("to must be RFC3339 formatted")
		}
		filter.To = &t
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			if l > h.pageLimit {
				l = h.pageLimit
			}
			filter.Limit = l
		}
	}

	if offset := r.URL.Query().Get("offset"); offset != "" {
		if o, err := strconv.Atoi(offset); err == nil && o > 0 {
			filter.Offset = o
		}
	}

	return filter, nil
}
