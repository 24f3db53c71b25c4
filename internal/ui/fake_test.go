package ui

import (
	"context"
	"errors"
	"sync"

	"github.com/swtraders/admin/internal/catalog"
)

var errRemote = errors.New("remote says no")

// fakeAPI implements ProductAPI and OrderAPI against in-memory slices,
// counting calls so tests can assert on the refetch discipline.
type fakeAPI struct {
	mu       sync.Mutex
	products []catalog.Product
	orders   []catalog.Order
	nextID   int64

	listProductCalls int
	listOrderCalls   int

	failListProducts bool
	failListOrders   bool
	failMutations    bool
}

func newFakeAPI() *fakeAPI { return &fakeAPI{nextID: 100} }

func (f *fakeAPI) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listProductCalls++
	if f.failListProducts {
		return nil, errRemote
	}
	out := make([]catalog.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeAPI) CreateProduct(ctx context.Context, draft catalog.Product) (catalog.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMutations {
		return catalog.Product{}, errRemote
	}
	f.nextID++
	draft.ID = f.nextID
	f.products = append(f.products, draft)
	return draft, nil
}

func (f *fakeAPI) UpdateProduct(ctx context.Context, id int64, draft catalog.Product) (catalog.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMutations {
		return catalog.Product{}, errRemote
	}
	for i := range f.products {
		if f.products[i].ID == id {
			draft.ID = id
			f.products[i] = draft
			return draft, nil
		}
	}
	return catalog.Product{}, errRemote
}

func (f *fakeAPI) DeleteProduct(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMutations {
		return errRemote
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return errRemote
}

func (f *fakeAPI) ListOrders(ctx context.Context) ([]catalog.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listOrderCalls++
	if f.failListOrders {
		return nil, errRemote
	}
	out := make([]catalog.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeAPI) CreateOrder(ctx context.Context, draft catalog.Order) (catalog.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMutations {
		return catalog.Order{}, errRemote
	}
	f.nextID++
	draft.ID = f.nextID
	f.orders = append(f.orders, draft)
	return draft, nil
}

func (f *fakeAPI) UpdateOrder(ctx context.Context, id int64, draft catalog.Order) (catalog.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMutations {
		return catalog.Order{}, errRemote
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			draft.ID = id
			f.orders[i] = draft
			return draft, nil
		}
	}
	return catalog.Order{}, errRemote
}

func (f *fakeAPI) DeleteOrder(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMutations {
		return errRemote
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return errRemote
}

func (f *fakeAPI) productListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listProductCalls
}

func (f *fakeAPI) orderListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listOrderCalls
}
