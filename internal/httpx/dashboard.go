package httpx

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/swtraders/admin/internal/catalog"
	"github.com/swtraders/admin/internal/ui"
)

// Dashboard translates browser requests into shell/view operations and
// renders the result. All state lives in the views; every POST ends in a
// redirect back to the active tab.
type Dashboard struct {
	Shell *ui.Shell
	Log   zerolog.Logger
}

func (d *Dashboard) Register(r *chi.Mux) {
	r.Get("/", d.root)
	r.Get("/products", d.productsPage)
	r.Get("/orders", d.ordersPage)

	r.Post("/products/form", d.productAction((*ui.ProductView).ToggleCreateForm))
	r.Post("/products/cancel", d.productAction((*ui.ProductView).CancelForm))
	r.Post("/products/save", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		d.Shell.Products.SubmitForm(r.PostForm)
		d.redirect(w, r, ui.TabProducts)
	})
	r.Post("/products/{id}/edit", d.productIDAction((*ui.ProductView).StartEdit))
	r.Post("/products/{id}/delete", d.productIDAction((*ui.ProductView).RequestDelete))
	r.Post("/products/delete/confirm", d.productAction((*ui.ProductView).ConfirmDelete))
	r.Post("/products/delete/cancel", d.productAction((*ui.ProductView).CancelDelete))

	r.Post("/orders/form", d.orderAction((*ui.OrderView).ToggleCreateForm))
	r.Post("/orders/cancel", d.orderAction((*ui.OrderView).CancelForm))
	r.Post("/orders/save", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		d.Shell.Orders.SubmitForm(r.PostForm)
		d.redirect(w, r, ui.TabOrders)
	})
	r.Post("/orders/{id}/edit", d.orderIDAction((*ui.OrderView).StartEdit))
	r.Post("/orders/{id}/delete", d.orderIDAction((*ui.OrderView).RequestDelete))
	r.Post("/orders/delete/confirm", d.orderAction((*ui.OrderView).ConfirmDelete))
	r.Post("/orders/delete/cancel", d.orderAction((*ui.OrderView).CancelDelete))
}

func (d *Dashboard) root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/"+d.Shell.Active(), http.StatusSeeOther)
}

func (d *Dashboard) redirect(w http.ResponseWriter, r *http.Request, tab string) {
	http.Redirect(w, r, "/"+tab, http.StatusSeeOther)
}

func (d *Dashboard) productAction(fn func(*ui.ProductView)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(d.Shell.Products)
		d.redirect(w, r, ui.TabProducts)
	}
}

func (d *Dashboard) productIDAction(fn func(*ui.ProductView, int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64); err == nil {
			fn(d.Shell.Products, id)
		}
		d.redirect(w, r, ui.TabProducts)
	}
}

func (d *Dashboard) orderAction(fn func(*ui.OrderView)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(d.Shell.Orders)
		d.redirect(w, r, ui.TabOrders)
	}
}

func (d *Dashboard) orderIDAction(fn func(*ui.OrderView, int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64); err == nil {
			fn(d.Shell.Orders, id)
		}
		d.redirect(w, r, ui.TabOrders)
	}
}

type productPageData struct {
	Active string
	View   ui.ProductViewState
}

type orderPageData struct {
	Active   string
	View     ui.OrderViewState
	Statuses []catalog.OrderStatus
}

func (d *Dashboard) productsPage(w http.ResponseWriter, r *http.Request) {
	d.Shell.Activate(ui.TabProducts)
	d.Shell.Products.EnsureLoaded()
	d.render(w, "products", productPageData{
		Active: ui.TabProducts,
		View:   d.Shell.Products.State(),
	})
}

func (d *Dashboard) ordersPage(w http.ResponseWriter, r *http.Request) {
	d.Shell.Activate(ui.TabOrders)
	d.Shell.Orders.EnsureLoaded()
	d.render(w, "orders", orderPageData{
		Active:   ui.TabOrders,
		View:     d.Shell.Orders.State(),
		Statuses: catalog.OrderStatuses,
	})
}

func (d *Dashboard) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		d.Log.Error().Err(err).Str("template", name).Msg("render")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
