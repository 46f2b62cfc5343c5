package service_test

import (
	"context"
	"errors"
	"sort"

	"orderdesk/internal/model"
	"orderdesk/internal/repository"

	"gorm.io/gorm"
)

// ── In-memory OrderInfoRepository stub ───────────────────────────────────────

type stubOrderInfoRepo struct {
	items    map[int64]*model.OrderInfo
	nextID   int64
	products *stubProductRepo // when set, ListByOrder fills the Product join
}

func newStubOrderInfoRepo(products *stubProductRepo) *stubOrderInfoRepo {
	return &stubOrderInfoRepo{
		items:    make(map[int64]*model.OrderInfo),
		products: products,
	}
}

func (r *stubOrderInfoRepo) Create(_ context.Context, _ *gorm.DB, li *model.OrderInfo) error {
	if li.ID == 0 {
		r.nextID++
		li.ID = r.nextID
	}
	r.items[li.ID] = li
	return nil
}

func (r *stubOrderInfoRepo) FindByID(_ context.Context, id int64) (*model.OrderInfo, error) {
	li, ok := r.items[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return li, nil
}

func (r *stubOrderInfoRepo) Update(_ context.Context, _ *gorm.DB, li *model.OrderInfo) error {
	if _, ok := r.items[li.ID]; !ok {
		return errors.New("record not found")
	}
	r.items[li.ID] = li
	return nil
}

func (r *stubOrderInfoRepo) Delete(_ context.Context, _ *gorm.DB, id int64) error {
	delete(r.items, id)
	return nil
}

func (r *stubOrderInfoRepo) ListByOrder(_ context.Context, _ *gorm.DB, orderID int64) ([]model.OrderInfo, error) {
	result := make([]model.OrderInfo, 0)
	for _, li := range r.items {
		if li.OrderID != orderID {
			continue
		}
		row := *li
		if r.products != nil {
			if p, ok := r.products.products[li.ProductID]; ok {
				row.Product = p
			}
		}
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *stubOrderInfoRepo) DB() *gorm.DB { return nil }

var _ repository.OrderInfoRepository = (*stubOrderInfoRepo)(nil)

// ── In-memory OrderRepository stub ───────────────────────────────────────────

type stubOrderRepo struct {
	orders map[int64]*model.Order
	// updateTotalCalls counts reconciliation writes so tests can assert
	// when reconciliation did (or did not) run.
	updateTotalCalls int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[int64]*model.Order)}
}

func (r *stubOrderRepo) FindByID(_ context.Context, orderID int64) (*model.Order, error) {
	o, ok := r.orders[orderID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return o, nil
}

func (r *stubOrderRepo) UpdateTotal(_ context.Context, _ *gorm.DB, orderID int64, total int64) error {
	o, ok := r.orders[orderID]
	if !ok {
		return errors.New("record not found")
	}
	o.Total = total
	r.updateTotalCalls++
	return nil
}

func (r *stubOrderRepo) ListIDs(_ context.Context, offset, limit int) ([]int64, error) {
	ids := make([]int64, 0, len(r.orders))
	for id := range r.orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if offset >= len(ids) {
		return nil, nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}
	return ids[offset:end], nil
}

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

// ── In-memory ProductRepository stub ─────────────────────────────────────────

type stubProductRepo struct {
	products map[int64]*model.Product
	nextID   int64
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[int64]*model.Product)}
}

func (r *stubProductRepo) add(name string, price int64) *model.Product {
	r.nextID++
	p := &model.Product{ProductID: r.nextID, Name: name, Price: price}
	r.products[p.ProductID] = p
	return p
}

func (r *stubProductRepo) FindByID(_ context.Context, productID int64) (*model.Product, error) {
	p, ok := r.products[productID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (r *stubProductRepo) Search(_ context.Context, _ string, _ int) ([]model.Product, error) {
	result := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, *p)
	}
	return result, nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── In-memory CustomerRepository stub ────────────────────────────────────────

type stubCustomerRepo struct {
	customers map[int64]*model.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[int64]*model.Customer)}
}

func (r *stubCustomerRepo) FindByID(_ context.Context, customerID int64) (*model.Customer, error) {
	cust, ok := r.customers[customerID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return cust, nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

// ── Recording Pricer stub ────────────────────────────────────────────────────

type recordingPricer struct {
	quote int64
	calls int
}

func (p *recordingPricer) QuoteLineTotal(_ context.Context, _ int64, _ int) (int64, error) {
	p.calls++
	return p.quote, nil
}
