package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Widget","price":9.99,"quantity":5}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ps, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, int64(1), ps[0].ID)
	assert.Equal(t, "Widget", ps[0].Name)
	assert.Equal(t, 9.99, ps[0].Price)
}

func TestClient_CreateProduct_SendsDraft(t *testing.T) {
	var got Product
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		got.ID = 7
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(got)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	created, err := c.CreateProduct(context.Background(), Product{Name: "Bolt", Price: 1.25, Quantity: 100})
	require.NoError(t, err)
	assert.Equal(t, "Bolt", got.Name)
	assert.Zero(t, got.ID, "draft must not carry an id")
	assert.Equal(t, int64(7), created.ID)
}

func TestClient_UpdateAndDeleteOrder_Paths(t *testing.T) {
	var paths []string
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		methods = append(methods, r.Method)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_ = json.NewEncoder(w).Encode(Order{ID: 3})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.UpdateOrder(context.Background(), 3, Order{OrderNumber: "ORD-3"})
	require.NoError(t, err)
	require.NoError(t, c.DeleteOrder(context.Background(), 3))

	assert.Equal(t, []string{"/orders/3", "/orders/3"}, paths)
	assert.Equal(t, []string{http.MethodPut, http.MethodDelete}, methods)
}

func TestClient_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ListOrders(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_TransportFailureIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL)
	_, err := c.ListProducts(context.Background())
	require.Error(t, err)
}

func TestClient_OrderWireShape(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_ = json.NewEncoder(w).Encode(Order{ID: 1})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.CreateOrder(context.Background(), Order{
		OrderNumber:  "ORD-1",
		Product:      ProductRef{ID: 42},
		Quantity:     3,
		TotalPrice:   29.97,
		Status:       StatusOrdered,
		CustomerName: "Ada",
	})
	require.NoError(t, err)

	// product travels as an object carrying only the id
	prod, ok := raw["product"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), prod["id"])
	assert.Len(t, prod, 1)
	assert.Equal(t, "ORDERED", raw["status"])
	assert.Equal(t, 29.97, raw["totalPrice"])
}
