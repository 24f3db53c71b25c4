package ui

import (
	"net/url"
	"sync"

	"github.com/rs/zerolog"
	"github.com/swtraders/admin/internal/catalog"
)

// OrderView mirrors ProductView for orders. It additionally keeps a
// read-only copy of the product collection: the editor needs it for the
// price lookup and the table needs it to show product names.
type OrderView struct {
	mu  sync.Mutex
	api OrderAPI
	log zerolog.Logger

	orders   []catalog.Order
	products []catalog.Product
	loaded   bool
	loading  bool
	errMsg   string
	success  *banner

	showForm      bool
	form          *OrderForm
	editing       *catalog.Order
	pendingDelete *catalog.Order
}

func NewOrderView(api OrderAPI, log zerolog.Logger) *OrderView {
	return &OrderView{
		api:     api,
		log:     log.With().Str("view", "orders").Logger(),
		success: newBanner(successTTL),
	}
}

// EnsureLoaded fetches orders and products the first time the view is
// shown. The two fetches are independent: a product failure is logged but
// never blocks the order table or raises the error banner.
func (v *OrderView) EnsureLoaded() {
	v.mu.Lock()
	loaded := v.loaded
	v.loaded = true
	v.mu.Unlock()
	if loaded {
		return
	}
	v.fetchOrders()
	v.fetchProducts()
}

func (v *OrderView) fetchOrders() {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	ctx, cancel := opContext()
	defer cancel()
	os, err := v.api.ListOrders(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.errMsg = "Failed to load orders"
		v.log.Error().Err(err).Msg("list orders")
		return
	}
	v.orders = os
	v.errMsg = ""
}

func (v *OrderView) fetchProducts() {
	ctx, cancel := opContext()
	defer cancel()
	ps, err := v.api.ListProducts(ctx)
	if err != nil {
		v.log.Error().Err(err).Msg("load products for lookup")
		return
	}
	v.mu.Lock()
	v.products = ps
	v.mu.Unlock()
}

// ProductName resolves an order's product reference for display.
func (v *OrderView) ProductName(id int64) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, p := range v.products {
		if p.ID == id {
			return p.Name
		}
	}
	return "Unknown"
}

// ToggleCreateForm opens the empty editor, or collapses it when already
// open. Any in-progress edit is abandoned.
func (v *OrderView) ToggleCreateForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	open := v.showForm || v.editing != nil
	v.editing = nil
	if open {
		v.showForm = false
		v.form = nil
		return
	}
	v.showForm = true
	v.form = NewOrderForm(nil, v.products, v.create, v.closeForm)
}

// StartEdit opens the editor pre-filled with the given order, replacing
// the create form if it was open.
func (v *OrderView) StartEdit(id int64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.orders {
		if v.orders[i].ID == id {
			o := v.orders[i]
			v.editing = &o
			v.showForm = false
			v.form = NewOrderForm(&o, v.products, func(draft catalog.Order) { v.update(o.ID, draft) }, v.closeForm)
			return
		}
	}
}

// CancelForm dismisses the open editor through its cancel callback.
func (v *OrderView) CancelForm() {
	v.mu.Lock()
	form := v.form
	v.mu.Unlock()
	if form != nil {
		form.Cancel()
	}
}

func (v *OrderView) closeForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.showForm = false
	v.editing = nil
	v.form = nil
}

// SubmitForm feeds the posted field values into the open editor and
// submits it. The product is applied before the quantity so the derived
// total always reflects the final pair.
func (v *OrderView) SubmitForm(values url.Values) {
	v.mu.Lock()
	form := v.form
	v.mu.Unlock()
	if form == nil {
		return
	}
	for _, name := range []string{"orderNumber", "productId", "quantity", "status", "customerName", "customerEmail", "customerPhone"} {
		if values.Has(name) {
			form.Set(name, values.Get(name))
		}
	}
	_ = form.Submit()
}

func (v *OrderView) create(draft catalog.Order) {
	ctx, cancel := opContext()
	defer cancel()
	if _, err := v.api.CreateOrder(ctx, draft); err != nil {
		v.mu.Lock()
		v.errMsg = "Failed to create order"
		v.mu.Unlock()
		v.log.Error().Err(err).Msg("create order")
		return
	}
	v.success.Set("Order created successfully")
	v.closeForm()
	v.fetchOrders()
}

func (v *OrderView) update(id int64, draft catalog.Order) {
	ctx, cancel := opContext()
	defer cancel()
	if _, err := v.api.UpdateOrder(ctx, id, draft); err != nil {
		v.mu.Lock()
		v.errMsg = "Failed to update order"
		v.mu.Unlock()
		v.log.Error().Err(err).Int64("id", id).Msg("update order")
		return
	}
	v.success.Set("Order updated successfully")
	v.closeForm()
	v.fetchOrders()
}

// RequestDelete stages an order for deletion pending confirmation.
func (v *OrderView) RequestDelete(id int64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.orders {
		if v.orders[i].ID == id {
			o := v.orders[i]
			v.pendingDelete = &o
			return
		}
	}
}

func (v *OrderView) CancelDelete() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pendingDelete = nil
}

func (v *OrderView) ConfirmDelete() {
	v.mu.Lock()
	pending := v.pendingDelete
	v.pendingDelete = nil
	v.mu.Unlock()
	if pending == nil {
		return
	}

	ctx, cancel := opContext()
	defer cancel()
	if err := v.api.DeleteOrder(ctx, pending.ID); err != nil {
		v.mu.Lock()
		v.errMsg = "Failed to delete order"
		v.mu.Unlock()
		v.log.Error().Err(err).Int64("id", pending.ID).Msg("delete order")
		return
	}
	v.success.Set("Order deleted successfully")
	v.fetchOrders()
}

// Orders returns the current collection snapshot.
func (v *OrderView) Orders() []catalog.Order {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]catalog.Order, len(v.orders))
	copy(out, v.orders)
	return out
}

// OrderRow pairs an order with its resolved product name for rendering.
type OrderRow struct {
	catalog.Order
	ProductName string
}

// OrderViewState is a render snapshot of the whole view.
type OrderViewState struct {
	Rows          []OrderRow
	Loading       bool
	Error         string
	Success       string
	FormOpen      bool
	Form          OrderFormState
	PendingDelete *catalog.Order
}

func (v *OrderView) State() OrderViewState {
	v.mu.Lock()
	defer v.mu.Unlock()

	rows := make([]OrderRow, 0, len(v.orders))
	for _, o := range v.orders {
		name := "Unknown"
		for _, p := range v.products {
			if p.ID == o.Product.ID {
				name = p.Name
				break
			}
		}
		rows = append(rows, OrderRow{Order: o, ProductName: name})
	}

	st := OrderViewState{
		Rows:          rows,
		Loading:       v.loading,
		Error:         v.errMsg,
		Success:       v.success.Message(),
		FormOpen:      v.form != nil,
		PendingDelete: v.pendingDelete,
	}
	if v.form != nil {
		st.Form = v.form.State()
	}
	return st
}
