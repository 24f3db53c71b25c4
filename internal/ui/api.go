package ui

import (
	"context"
	"time"

	"github.com/swtraders/admin/internal/catalog"
)

// ProductAPI is the slice of the catalog client the product view needs.
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	CreateProduct(ctx context.Context, draft catalog.Product) (catalog.Product, error)
	UpdateProduct(ctx context.Context, id int64, draft catalog.Product) (catalog.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// OrderAPI additionally lists products so the order view can resolve
// names and feed the editor's price lookup.
type OrderAPI interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	ListOrders(ctx context.Context) ([]catalog.Order, error)
	CreateOrder(ctx context.Context, draft catalog.Order) (catalog.Order, error)
	UpdateOrder(ctx context.Context, id int64, draft catalog.Order) (catalog.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// Views outlive any single page request, and an issued call is never
// cancelled (a late response is allowed to land). Each network operation
// therefore runs under its own deadline rather than the request's.
const opTimeout = 15 * time.Second

func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}
