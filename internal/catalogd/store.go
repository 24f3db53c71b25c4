package catalogd

import (
	"context"
	"errors"

	"github.com/swtraders/admin/internal/catalog"
)

// ErrNotFound maps to a 404 at the HTTP layer.
var ErrNotFound = errors.New("not found")

// Store is the persistence surface behind the catalog REST API. The
// Postgres repo implements it for real deployments, the memory store for
// tests and quick local runs.
type Store interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	GetProduct(ctx context.Context, id int64) (catalog.Product, error)
	CreateProduct(ctx context.Context, draft catalog.Product) (catalog.Product, error)
	UpdateProduct(ctx context.Context, id int64, draft catalog.Product) (catalog.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListOrders(ctx context.Context) ([]catalog.Order, error)
	GetOrder(ctx context.Context, id int64) (catalog.Order, error)
	CreateOrder(ctx context.Context, draft catalog.Order) (catalog.Order, error)
	UpdateOrder(ctx context.Context, id int64, draft catalog.Order) (catalog.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}
