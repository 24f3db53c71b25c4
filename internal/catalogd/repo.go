package catalogd

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/swtraders/admin/internal/catalog"
)

// Repo is the Postgres-backed Store.
type Repo struct {
	DB *pgxpool.Pool
}

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 8
	cfg.MinConns = 1
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id           BIGSERIAL PRIMARY KEY,
	name         TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	price        NUMERIC(12,2) NOT NULL CHECK (price >= 0),
	quantity     INT NOT NULL CHECK (quantity >= 0),
	category     TEXT NOT NULL DEFAULT '',
	sku          TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS orders (
	id             BIGSERIAL PRIMARY KEY,
	order_number   TEXT NOT NULL DEFAULT '',
	product_id     BIGINT NOT NULL,
	quantity       INT NOT NULL CHECK (quantity > 0),
	total_price    NUMERIC(12,2) NOT NULL DEFAULT 0,
	status         TEXT NOT NULL DEFAULT 'ORDERED',
	customer_name  TEXT NOT NULL,
	customer_email TEXT NOT NULL DEFAULT '',
	customer_phone TEXT NOT NULL DEFAULT ''
);
`

// EnsureSchema creates the tables on a fresh database. Orders keep a bare
// product_id on purpose: deleting a product neither cascades nor blocks.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.Exec(ctx, schema)
	return err
}

func (r *Repo) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, description, price, quantity, category, sku
	                              FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []catalog.Product{}
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.Category, &p.SKU); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	var p catalog.Product
	err := r.DB.QueryRow(ctx, `SELECT id, name, description, price, quantity, category, sku
	                           FROM products WHERE id=$1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.Category, &p.SKU)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Product{}, ErrNotFound
	}
	return p, err
}

func (r *Repo) CreateProduct(ctx context.Context, draft catalog.Product) (catalog.Product, error) {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO products(name, description, price, quantity, category, sku)
		VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		draft.Name, draft.Description, draft.Price, draft.Quantity, draft.Category, draft.SKU).
		Scan(&draft.ID)
	return draft, err
}

func (r *Repo) UpdateProduct(ctx context.Context, id int64, draft catalog.Product) (catalog.Product, error) {
	tag, err := r.DB.Exec(ctx, `
		UPDATE products SET name=$2, description=$3, price=$4, quantity=$5, category=$6, sku=$7
		WHERE id=$1`,
		id, draft.Name, draft.Description, draft.Price, draft.Quantity, draft.Category, draft.SKU)
	if err != nil {
		return catalog.Product{}, err
	}
	if tag.RowsAffected() == 0 {
		return catalog.Product{}, ErrNotFound
	}
	draft.ID = id
	return draft, nil
}

func (r *Repo) DeleteProduct(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) ListOrders(ctx context.Context) ([]catalog.Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, order_number, product_id, quantity, total_price, status,
		       customer_name, customer_email, customer_phone
		FROM orders ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []catalog.Order{}
	for rows.Next() {
		var o catalog.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.Product.ID, &o.Quantity, &o.TotalPrice,
			&o.Status, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *Repo) GetOrder(ctx context.Context, id int64) (catalog.Order, error) {
	var o catalog.Order
	err := r.DB.QueryRow(ctx, `
		SELECT id, order_number, product_id, quantity, total_price, status,
		       customer_name, customer_email, customer_phone
		FROM orders WHERE id=$1`, id).
		Scan(&o.ID, &o.OrderNumber, &o.Product.ID, &o.Quantity, &o.TotalPrice,
			&o.Status, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Order{}, ErrNotFound
	}
	return o, err
}

func (r *Repo) CreateOrder(ctx context.Context, draft catalog.Order) (catalog.Order, error) {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO orders(order_number, product_id, quantity, total_price, status,
		                   customer_name, customer_email, customer_phone)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`,
		draft.OrderNumber, draft.Product.ID, draft.Quantity, draft.TotalPrice, draft.Status,
		draft.CustomerName, draft.CustomerEmail, draft.CustomerPhone).
		Scan(&draft.ID)
	return draft, err
}

func (r *Repo) UpdateOrder(ctx context.Context, id int64, draft catalog.Order) (catalog.Order, error) {
	tag, err := r.DB.Exec(ctx, `
		UPDATE orders SET order_number=$2, product_id=$3, quantity=$4, total_price=$5,
		                  status=$6, customer_name=$7, customer_email=$8, customer_phone=$9
		WHERE id=$1`,
		id, draft.OrderNumber, draft.Product.ID, draft.Quantity, draft.TotalPrice,
		draft.Status, draft.CustomerName, draft.CustomerEmail, draft.CustomerPhone)
	if err != nil {
		return catalog.Order{}, err
	}
	if tag.RowsAffected() == 0 {
		return catalog.Order{}, ErrNotFound
	}
	draft.ID = id
	return draft, nil
}

func (r *Repo) DeleteOrder(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
