package handler

import (
	"net/http"

	"orderdesk/internal/dto"
	"orderdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// LineItemsHandler serves the line-item grid: listing, quick create, inline
// edit, row delete, and the detail view.
type LineItemsHandler struct{ svc service.LineItemService }

func NewLineItemsHandler(svc service.LineItemService) *LineItemsHandler {
	return &LineItemsHandler{svc: svc}
}

// List returns the grid rows for one order. An order with no line items
// yields an empty data array, not an error.
func (h *LineItemsHandler) List(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	rows, err := h.svc.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// Create is the quick-create action: product, quantity, optional line price.
// When discount_price is omitted it is derived from the product's unit price.
func (h *LineItemsHandler) Create(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateLineItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), orderID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get returns the raw persisted fields of one line item.
func (h *LineItemsHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update applies an inline edit of total_num and/or discount_price.
func (h *LineItemsHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateLineItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete removes a grid row.
func (h *LineItemsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
