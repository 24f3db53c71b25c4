package catalogd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/swtraders/admin/internal/catalog"
	"github.com/swtraders/admin/internal/kafkax"
)

// Handler exposes the catalog REST API. Producer and Cache may be nil;
// the API works the same without them.
type Handler struct {
	Store    Store
	Cache    *OrderCache
	Producer *kafkax.Producer
	Service  string
	Log      zerolog.Logger
}

func (h *Handler) Register(r *chi.Mux) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Get("/{id}", h.getProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Post("/", h.createOrder)
		r.Get("/{id}", h.getOrder)
		r.Put("/{id}", h.updateOrder)
		r.Delete("/{id}", h.deleteOrder)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func reqContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 5*time.Second)
}

func urlID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) publish(topic string, env Envelope) {
	if h.Producer == nil {
		return
	}
	h.Producer.Publish(topic, []byte(env.EventID), mustMarshal(env),
		kafkago.Header{Key: "x-event-type", Value: []byte(env.EventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqContext(r)
	defer cancel()
	ps, err := h.Store.ListProducts(ctx)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	ctx, cancel := reqContext(r)
	defer cancel()
	p, err := h.Store.GetProduct(ctx, id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var draft catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if draft.Name == "" || draft.Price < 0 || draft.Quantity < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}
	ctx, cancel := reqContext(r)
	defer cancel()
	p, err := h.Store.CreateProduct(ctx, draft)
	if err != nil {
		writeErr(w, err)
		return
	}
	h.publish(TopicProductEvents, newEnvelope(EventProductCreated, h.Service,
		r.Header.Get("X-Request-Id"), ProductEventPayload{ProductID: p.ID, Product: &p}))
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var draft catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	ctx, cancel := reqContext(r)
	defer cancel()
	p, err := h.Store.UpdateProduct(ctx, id, draft)
	if err != nil {
		writeErr(w, err)
		return
	}
	h.publish(TopicProductEvents, newEnvelope(EventProductUpdated, h.Service,
		r.Header.Get("X-Request-Id"), ProductEventPayload{ProductID: p.ID, Product: &p}))
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	ctx, cancel := reqContext(r)
	defer cancel()
	if err := h.Store.DeleteProduct(ctx, id); err != nil {
		writeErr(w, err)
		return
	}
	h.publish(TopicProductEvents, newEnvelope(EventProductDeleted, h.Service,
		r.Header.Get("X-Request-Id"), ProductEventPayload{ProductID: id}))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqContext(r)
	defer cancel()
	os, err := h.Store.ListOrders(ctx)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, os)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	ctx, cancel := reqContext(r)
	defer cancel()

	if o, hit := h.Cache.Get(ctx, id); hit {
		writeJSON(w, http.StatusOK, o)
		return
	}
	o, err := h.Store.GetOrder(ctx, id)
	if err != nil {
		writeErr(w, err)
		return
	}
	h.Cache.Put(ctx, o)
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var draft catalog.Order
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if draft.Status == "" {
		draft.Status = catalog.StatusOrdered
	}
	if draft.Product.ID == 0 || draft.Quantity <= 0 || draft.CustomerName == "" || !draft.Status.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}
	ctx, cancel := reqContext(r)
	defer cancel()
	o, err := h.Store.CreateOrder(ctx, draft)
	if err != nil {
		writeErr(w, err)
		return
	}
	h.publish(TopicOrderEvents, newEnvelope(EventOrderCreated, h.Service,
		r.Header.Get("X-Request-Id"), OrderEventPayload{OrderID: o.ID, Order: &o}))
	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var draft catalog.Order
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if !draft.Status.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
		return
	}
	ctx, cancel := reqContext(r)
	defer cancel()
	o, err := h.Store.UpdateOrder(ctx, id, draft)
	if err != nil {
		writeErr(w, err)
		return
	}
	h.Cache.Drop(ctx, id)
	h.publish(TopicOrderEvents, newEnvelope(EventOrderUpdated, h.Service,
		r.Header.Get("X-Request-Id"), OrderEventPayload{OrderID: o.ID, Order: &o}))
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	ctx, cancel := reqContext(r)
	defer cancel()
	if err := h.Store.DeleteOrder(ctx, id); err != nil {
		writeErr(w, err)
		return
	}
	h.Cache.Drop(ctx, id)
	h.publish(TopicOrderEvents, newEnvelope(EventOrderDeleted, h.Service,
		r.Header.Get("X-Request-Id"), OrderEventPayload{OrderID: id}))
	w.WriteHeader(http.StatusNoContent)
}
