package catalogd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/swtraders/admin/internal/catalog"
)

const (
	// single-order read cache: catalog:order:{id} -> order JSON
	keyOrder = "catalog:order:%d"

	ttlOrder = 5 * time.Minute
)

// OrderCache is a read-through cache in front of single-order lookups.
// A nil *OrderCache is valid and does nothing, so catalogd runs fine
// without Redis.
type OrderCache struct {
	rdb *redis.Client
}

func NewOrderCache(addr string) *OrderCache {
	if addr == "" {
		return nil
	}
	return &OrderCache{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *OrderCache) Get(ctx context.Context, id int64) (catalog.Order, bool) {
	if c == nil {
		return catalog.Order{}, false
	}
	s, err := c.rdb.Get(ctx, fmt.Sprintf(keyOrder, id)).Result()
	if err != nil {
		return catalog.Order{}, false
	}
	var o catalog.Order
	if err := json.Unmarshal([]byte(s), &o); err != nil {
		return catalog.Order{}, false
	}
	return o, true
}

func (c *OrderCache) Put(ctx context.Context, o catalog.Order) {
	if c == nil {
		return
	}
	b, err := json.Marshal(o)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, fmt.Sprintf(keyOrder, o.ID), b, ttlOrder).Err()
}

func (c *OrderCache) Drop(ctx context.Context, id int64) {
	if c == nil {
		return
	}
	_ = c.rdb.Del(ctx, fmt.Sprintf(keyOrder, id)).Err()
}

func (c *OrderCache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
