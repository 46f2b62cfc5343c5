package service

import (
	"context"
	"time"

	"orderdesk/internal/dto"
	"orderdesk/internal/model"
	"orderdesk/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// minorUnitsPerMajor converts stored cents into the major-unit value the
// grid displays.
var minorUnitsPerMajor = decimal.NewFromInt(100)

// LineItemService owns every mutation of order line items. Each successful
// create, update, or delete reconciles the owning order's total before
// returning — mutation and reconciliation commit as one transaction, so a
// caller never observes a committed line item with a stale order total.
type LineItemService interface {
	Create(ctx context.Context, orderID int64, req dto.CreateLineItemRequest) (*dto.LineItemResponse, error)
	Get(ctx context.Context, id int64) (*dto.LineItemResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateLineItemRequest) (*dto.LineItemResponse, error)
	Delete(ctx context.Context, id int64) error
	ListByOrder(ctx context.Context, orderID int64) ([]dto.LineItemRow, error)
}

type lineItemService struct {
	items    repository.OrderInfoRepository
	orders   repository.OrderRepository
	products repository.ProductRepository
	pricer   Pricer
	totals   OrderTotalService
}

func NewLineItemService(
	items repository.OrderInfoRepository,
	orders repository.OrderRepository,
	products repository.ProductRepository,
	pricer Pricer,
	totals OrderTotalService,
) LineItemService {
	return &lineItemService{
		items:    items,
		orders:   orders,
		products: products,
		pricer:   pricer,
		totals:   totals,
	}
}

func (s *lineItemService) Create(ctx context.Context, orderID int64, req dto.CreateLineItemRequest) (*dto.LineItemResponse, error) {
	if req.TotalNum <= 0 {
		return nil, ErrInvalidQuantity
	}
	if req.DiscountPrice != nil && *req.DiscountPrice < 0 {
		return nil, ErrInvalidPrice
	}
	if _, err := s.orders.FindByID(ctx, orderID); err != nil {
		return nil, ErrOrderNotFound
	}
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		return nil, ErrProductNotFound
	}

	var price int64
	if req.DiscountPrice != nil {
		price = *req.DiscountPrice
	} else {
		quoted, err := s.pricer.QuoteLineTotal(ctx, req.ProductID, req.TotalNum)
		if err != nil {
			return nil, err
		}
		price = quoted
	}

	li := &model.OrderInfo{
		OrderID:       orderID,
		ProductID:     req.ProductID,
		Desc:          req.Desc,
		TotalNum:      req.TotalNum,
		DiscountPrice: price,
	}

	err := runTx(ctx, s.items.DB(), func(tx *gorm.DB) error {
		if err := s.items.Create(ctx, tx, li); err != nil {
			return err
		}
		_, err := s.totals.RecomputeTotalTx(ctx, tx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lineItemToResponse(li), nil
}

func (s *lineItemService) Get(ctx context.Context, id int64) (*dto.LineItemResponse, error) {
	li, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, ErrLineItemNotFound
	}
	return lineItemToResponse(li), nil
}

func (s *lineItemService) Update(ctx context.Context, id int64, req dto.UpdateLineItemRequest) (*dto.LineItemResponse, error) {
	li, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, ErrLineItemNotFound
	}

	if req.TotalNum != nil {
		if *req.TotalNum <= 0 {
			return nil, ErrInvalidQuantity
		}
		li.TotalNum = *req.TotalNum
	}
	if req.DiscountPrice != nil {
		if *req.DiscountPrice < 0 {
			return nil, ErrInvalidPrice
		}
		li.DiscountPrice = *req.DiscountPrice
	}
	if req.Desc != nil {
		li.Desc = req.Desc
	}

	err = runTx(ctx, s.items.DB(), func(tx *gorm.DB) error {
		if err := s.items.Update(ctx, tx, li); err != nil {
			return err
		}
		_, err := s.totals.RecomputeTotalTx(ctx, tx, li.OrderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lineItemToResponse(li), nil
}

func (s *lineItemService) Delete(ctx context.Context, id int64) error {
	li, err := s.items.FindByID(ctx, id)
	if err != nil {
		return ErrLineItemNotFound
	}

	return runTx(ctx, s.items.DB(), func(tx *gorm.DB) error {
		if err := s.items.Delete(ctx, tx, id); err != nil {
			return err
		}
		_, err := s.totals.RecomputeTotalTx(ctx, tx, li.OrderID)
		return err
	})
}

func (s *lineItemService) ListByOrder(ctx context.Context, orderID int64) ([]dto.LineItemRow, error) {
	items, err := s.items.ListByOrder(ctx, nil, orderID)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.LineItemRow, 0, len(items))
	for _, li := range items {
		name := ""
		if li.Product != nil {
			name = li.Product.Name
		}
		rows = append(rows, dto.LineItemRow{
			ID:                   li.ID,
			ProductName:          name,
			TotalNum:             li.TotalNum,
			DiscountPrice:        li.DiscountPrice,
			DiscountPriceDisplay: decimal.NewFromInt(li.DiscountPrice).Div(minorUnitsPerMajor),
			CreatedAt:            li.CreatedAt.Format(time.RFC3339),
			UpdatedAt:            li.UpdatedAt.Format(time.RFC3339),
		})
	}
	return rows, nil
}

func lineItemToResponse(li *model.OrderInfo) *dto.LineItemResponse {
	return &dto.LineItemResponse{
		ID:            li.ID,
		OrderID:       li.OrderID,
		ProductID:     li.ProductID,
		Desc:          li.Desc,
		TotalNum:      li.TotalNum,
		DiscountPrice: li.DiscountPrice,
		CreatedAt:     li.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     li.UpdatedAt.Format(time.RFC3339),
	}
}
