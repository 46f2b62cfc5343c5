package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orderdesk/internal/dto"
	"orderdesk/internal/handler"
	"orderdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLineItemSvc returns canned responses so handler tests only exercise
// binding, routing, and error mapping.
type stubLineItemSvc struct {
	rows      []dto.LineItemRow
	created   *dto.LineItemResponse
	err       error
	deleted   []int64
	createdIn int64
}

func (s *stubLineItemSvc) Create(_ context.Context, orderID int64, _ dto.CreateLineItemRequest) (*dto.LineItemResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.createdIn = orderID
	return s.created, nil
}

func (s *stubLineItemSvc) Get(_ context.Context, _ int64) (*dto.LineItemResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubLineItemSvc) Update(_ context.Context, _ int64, _ dto.UpdateLineItemRequest) (*dto.LineItemResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubLineItemSvc) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubLineItemSvc) ListByOrder(_ context.Context, _ int64) ([]dto.LineItemRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

var _ service.LineItemService = (*stubLineItemSvc)(nil)

func newTestRouter(svc service.LineItemService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewLineItemsHandler(svc)
	r.GET("/v1/orders/:id/line-items", h.List)
	r.POST("/v1/orders/:id/line-items", h.Create)
	r.PATCH("/v1/line-items/:id", h.Update)
	r.DELETE("/v1/line-items/:id", h.Delete)
	return r
}

func TestListLineItems_OK(t *testing.T) {
	svc := &stubLineItemSvc{rows: []dto.LineItemRow{{ID: 1, ProductName: "Ceramic Mug", TotalNum: 2, DiscountPrice: 2500}}}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders/1/line-items", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []dto.LineItemRow `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Ceramic Mug", body.Data[0].ProductName)
}

func TestListLineItems_BadOrderID(t *testing.T) {
	r := newTestRouter(&stubLineItemSvc{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders/nope/line-items", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateLineItem_Created(t *testing.T) {
	svc := &stubLineItemSvc{created: &dto.LineItemResponse{ID: 7, OrderID: 3, ProductID: 2, TotalNum: 1, DiscountPrice: 1250}}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/orders/3/line-items",
		strings.NewReader(`{"productid": 2, "total_num": 1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(3), svc.createdIn)
}

func TestCreateLineItem_MissingFields(t *testing.T) {
	r := newTestRouter(&stubLineItemSvc{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/orders/3/line-items", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateLineItem_NotFoundMapsTo404(t *testing.T) {
	r := newTestRouter(&stubLineItemSvc{err: service.ErrLineItemNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/v1/line-items/99", strings.NewReader(`{"total_num": 2}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteLineItem_NoContent(t *testing.T) {
	svc := &stubLineItemSvc{}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/line-items/5", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []int64{5}, svc.deleted)
}

func TestDeleteLineItem_InvalidQuantityMapsTo400(t *testing.T) {
	r := newTestRouter(&stubLineItemSvc{err: service.ErrInvalidQuantity})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/line-items/5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
