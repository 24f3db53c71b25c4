package catalogd

import (
	"context"
	"sync"

	"github.com/swtraders/admin/internal/catalog"
)

// MemStore keeps the catalog in process memory. Good enough for demos and
// for exercising the handlers in tests.
type MemStore struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]catalog.Product
	orders   map[int64]catalog.Order
	// insertion order, so listings are stable
	productIDs []int64
	orderIDs   []int64
}

func NewMemStore() *MemStore {
	return &MemStore{
		products: make(map[int64]catalog.Product),
		orders:   make(map[int64]catalog.Order),
	}
}

func (s *MemStore) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		out = append(out, s.products[id])
	}
	return out, nil
}

func (s *MemStore) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return catalog.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *MemStore) CreateProduct(ctx context.Context, draft catalog.Product) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	draft.ID = s.nextID
	s.products[draft.ID] = draft
	s.productIDs = append(s.productIDs, draft.ID)
	return draft, nil
}

func (s *MemStore) UpdateProduct(ctx context.Context, id int64, draft catalog.Product) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return catalog.Product{}, ErrNotFound
	}
	draft.ID = id
	s.products[id] = draft
	return draft, nil
}

func (s *MemStore) DeleteProduct(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	for i, pid := range s.productIDs {
		if pid == id {
			s.productIDs = append(s.productIDs[:i], s.productIDs[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemStore) ListOrders(ctx context.Context) ([]catalog.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Order, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		out = append(out, s.orders[id])
	}
	return out, nil
}

func (s *MemStore) GetOrder(ctx context.Context, id int64) (catalog.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return catalog.Order{}, ErrNotFound
	}
	return o, nil
}

func (s *MemStore) CreateOrder(ctx context.Context, draft catalog.Order) (catalog.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	draft.ID = s.nextID
	s.orders[draft.ID] = draft
	s.orderIDs = append(s.orderIDs, draft.ID)
	return draft, nil
}

func (s *MemStore) UpdateOrder(ctx context.Context, id int64, draft catalog.Order) (catalog.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return catalog.Order{}, ErrNotFound
	}
	draft.ID = id
	s.orders[id] = draft
	return draft, nil
}

func (s *MemStore) DeleteOrder(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return ErrNotFound
	}
	delete(s.orders, id)
	for i, oid := range s.orderIDs {
		if oid == id {
			s.orderIDs = append(s.orderIDs[:i], s.orderIDs[i+1:]...)
			break
		}
	}
	return nil
}
