package service

import (
	"context"

	"orderdesk/internal/dto"
	"orderdesk/internal/repository"
)

// unknownPlaceholder is rendered in place of each contact field when the
// order references a customer that no longer exists.
const unknownPlaceholder = "unknown"

// OrderPageService assembles the read-only payload for the order-edit page:
// the order's customer contact block plus its line items joined with product
// names. It performs no writes and owns no invariants.
type OrderPageService interface {
	EditPage(ctx context.Context, orderID int64) (*dto.EditOrderPageResponse, error)
}

type orderPageService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	items     repository.OrderInfoRepository
}

func NewOrderPageService(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	items repository.OrderInfoRepository,
) OrderPageService {
	return &orderPageService{orders: orders, customers: customers, items: items}
}

func (s *orderPageService) EditPage(ctx context.Context, orderID int64) (*dto.EditOrderPageResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	info := dto.CustomerInfo{
		Name:    unknownPlaceholder,
		Phone:   unknownPlaceholder,
		Address: unknownPlaceholder,
	}
	if cust, err := s.customers.FindByID(ctx, order.CustomerID); err == nil {
		info = dto.CustomerInfo{
			Name:    cust.Name,
			Phone:   cust.Phone,
			Address: cust.Address,
		}
	}

	items, err := s.items.ListByOrder(ctx, nil, orderID)
	if err != nil {
		return nil, err
	}

	products := make([]dto.EditPageProduct, 0, len(items))
	for _, li := range items {
		name := ""
		if li.Product != nil {
			name = li.Product.Name
		}
		products = append(products, dto.EditPageProduct{
			Name:          name,
			ProductID:     li.ProductID,
			Desc:          li.Desc,
			TotalNum:      li.TotalNum,
			DiscountPrice: li.DiscountPrice,
		})
	}

	return &dto.EditOrderPageResponse{
		OrderID:      order.OrderID,
		CustomerID:   order.CustomerID,
		CustomerInfo: info,
		ProductList:  products,
	}, nil
}
