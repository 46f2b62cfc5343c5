package handler

import (
	"net/http"

	"orderdesk/internal/dto"
	"orderdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// OrdersHandler serves the order-edit composition payload and the explicit
// total reconciliation endpoint.
type OrdersHandler struct {
	pages  service.OrderPageService
	totals service.OrderTotalService
}

func NewOrdersHandler(pages service.OrderPageService, totals service.OrderTotalService) *OrdersHandler {
	return &OrdersHandler{pages: pages, totals: totals}
}

// EditPage returns everything the order-edit page renders: customer contact
// details (placeholders when the customer is gone) and the product list.
func (h *OrdersHandler) EditPage(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.pages.EditPage(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Recompute re-runs reconciliation for one order and reports the persisted
// total. Safe to call repeatedly — the operation is idempotent.
func (h *OrdersHandler) Recompute(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	total, err := h.totals.RecomputeTotal(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RecomputeTotalResponse{
		OrderID:      orderID,
		Total:        total,
		TotalDisplay: decimal.NewFromInt(total).Div(decimal.NewFromInt(100)),
	})
}
