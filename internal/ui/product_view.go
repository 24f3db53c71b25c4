package ui

import (
	"net/url"
	"sync"

	"github.com/rs/zerolog"
	"github.com/swtraders/admin/internal/catalog"
)

// ProductView owns the product collection snapshot and the create/edit/
// delete orchestration around it. The remote store is the source of truth:
// every successful mutation is followed by one full refetch.
type ProductView struct {
	mu  sync.Mutex
	api ProductAPI
	log zerolog.Logger

	products []catalog.Product
	loaded   bool
	loading  bool
	errMsg   string
	success  *banner

	showForm      bool
	form          *ProductForm
	editing       *catalog.Product
	pendingDelete *catalog.Product
}

func NewProductView(api ProductAPI, log zerolog.Logger) *ProductView {
	return &ProductView{
		api:     api,
		log:     log.With().Str("view", "products").Logger(),
		success: newBanner(successTTL),
	}
}

// EnsureLoaded fetches the collection the first time the view is shown.
// Revisiting the tab later renders the last snapshot without a new request.
func (v *ProductView) EnsureLoaded() {
	v.mu.Lock()
	loaded := v.loaded
	v.loaded = true
	v.mu.Unlock()
	if !loaded {
		v.fetch()
	}
}

func (v *ProductView) fetch() {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	ctx, cancel := opContext()
	defer cancel()
	ps, err := v.api.ListProducts(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		// keep whatever snapshot we had
		v.errMsg = "Failed to load products"
		v.log.Error().Err(err).Msg("list products")
		return
	}
	v.products = ps
	v.errMsg = ""
}

// ToggleCreateForm opens the empty editor, or collapses it when already
// open. Either way any in-progress edit is abandoned.
func (v *ProductView) ToggleCreateForm() {
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
	v.form = NewProductForm(nil, v.create, v.closeForm)
}

// StartEdit opens the editor pre-filled with the given row, replacing the
// create form if it was open. Unknown ids are ignored.
func (v *ProductView) StartEdit(id int64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.products {
		if v.products[i].ID == id {
			p := v.products[i]
			v.editing = &p
			v.showForm = false
			v.form = NewProductForm(&p, func(draft catalog.Product) { v.update(p.ID, draft) }, v.closeForm)
			return
		}
	}
}

// CancelForm dismisses the open editor through its cancel callback.
func (v *ProductView) CancelForm() {
	v.mu.Lock()
	form := v.form
	v.mu.Unlock()
	if form != nil {
		form.Cancel()
	}
}

func (v *ProductView) closeForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.showForm = false
	v.editing = nil
	v.form = nil
}

// SubmitForm feeds the posted field values into the open editor and
// submits it. A failed required-field gate leaves the form open and
// issues no network call.
func (v *ProductView) SubmitForm(values url.Values) {
	v.mu.Lock()
	form := v.form
	v.mu.Unlock()
	if form == nil {
		return
	}
	for _, name := range []string{"name", "description", "price", "quantity", "category", "sku"} {
		if values.Has(name) {
			form.Set(name, values.Get(name))
		}
	}
	_ = form.Submit()
}

func (v *ProductView) create(draft catalog.Product) {
	ctx, cancel := opContext()
	defer cancel()
	if _, err := v.api.CreateProduct(ctx, draft); err != nil {
		v.mu.Lock()
		v.errMsg = "Failed to add product"
		v.mu.Unlock()
		v.log.Error().Err(err).Msg("create product")
		return
	}
	v.success.Set("Product added successfully")
	v.closeForm()
	v.fetch()
}

func (v *ProductView) update(id int64, draft catalog.Product) {
	ctx, cancel := opContext()
	defer cancel()
	if _, err := v.api.UpdateProduct(ctx, id, draft); err != nil {
		v.mu.Lock()
		v.errMsg = "Failed to update product"
		v.mu.Unlock()
		v.log.Error().Err(err).Int64("id", id).Msg("update product")
		return
	}
	v.success.Set("Product updated successfully")
	v.closeForm()
	v.fetch()
}

// RequestDelete stages a row for deletion; nothing is sent until the user
// confirms.
func (v *ProductView) RequestDelete(id int64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.products {
		if v.products[i].ID == id {
			p := v.products[i]
			v.pendingDelete = &p
			return
		}
	}
}

func (v *ProductView) CancelDelete() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pendingDelete = nil
}

func (v *ProductView) ConfirmDelete() {
	v.mu.Lock()
	pending := v.pendingDelete
	v.pendingDelete = nil
	v.mu.Unlock()
	if pending == nil {
		return
	}

	ctx, cancel := opContext()
	defer cancel()
	if err := v.api.DeleteProduct(ctx, pending.ID); err != nil {
		v.mu.Lock()
		v.errMsg = "Failed to delete product"
		v.mu.Unlock()
		v.log.Error().Err(err).Int64("id", pending.ID).Msg("delete product")
		return
	}
	v.success.Set("Product deleted successfully")
	v.fetch()
}

// Products returns the current collection snapshot.
func (v *ProductView) Products() []catalog.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]catalog.Product, len(v.products))
	copy(out, v.products)
	return out
}

// ProductViewState is a render snapshot of the whole view.
type ProductViewState struct {
	Products      []catalog.Product
	Loading       bool
	Error         string
	Success       string
	FormOpen      bool
	Form          ProductFormState
	PendingDelete *catalog.Product
}

func (v *ProductView) State() ProductViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	st := ProductViewState{
		Products:      v.products,
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
