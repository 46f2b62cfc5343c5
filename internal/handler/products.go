package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"orderdesk/internal/dto"
	"orderdesk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	searchCacheTTL  = 10 * time.Minute
	searchResultCap = 20
	searchCachePfx  = "productsearch:"
)

// ProductSearchHandler backs the quick-create product picker.
// Results are cached in Redis per query string — the catalog changes far
// less often than admins open the picker.
type ProductSearchHandler struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewProductSearchHandler(repo repository.ProductRepository, rdb *redis.Client) *ProductSearchHandler {
	return &ProductSearchHandler{repo: repo, rdb: rdb}
}

// Search returns {id, text} options matching the query, the shape the
// admin select widget consumes.
func (h *ProductSearchHandler) Search(c *gin.Context) {
	q := c.Query("q")
	ctx := c.Request.Context()
	cacheKey := searchCachePfx + q

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.ProductSearchResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query DB
	products, err := h.repo.Search(ctx, q, searchResultCap)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	options := make([]dto.ProductOption, 0, len(products))
	for _, p := range products {
		options = append(options, dto.ProductOption{ID: p.ProductID, Text: p.Name})
	}
	resp := dto.ProductSearchResponse{Data: options}

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, searchCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
