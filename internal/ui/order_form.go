package ui

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/swtraders/admin/internal/catalog"
)

// OrderForm holds an in-progress order draft. The total price is derived,
// never typed: it is recomputed from the selected product's price whenever
// the product or the quantity changes, and shown read-only.
type OrderForm struct {
	orderNumber   string
	productID     int64
	quantity      int // 0 means "not set yet"
	totalPrice    string
	status        catalog.OrderStatus
	customerName  string
	customerEmail string
	customerPhone string

	products []catalog.Product
	editing  bool
	onSubmit func(catalog.Order)
	onCancel func()
}

func NewOrderForm(existing *catalog.Order, products []catalog.Product, onSubmit func(catalog.Order), onCancel func()) *OrderForm {
	f := &OrderForm{
		status:   catalog.StatusOrdered,
		products: products,
		onSubmit: onSubmit,
		onCancel: onCancel,
	}
	if existing != nil {
		f.editing = true
		f.orderNumber = existing.OrderNumber
		f.productID = existing.Product.ID
		f.quantity = existing.Quantity
		f.totalPrice = catalog.FormatPrice(existing.TotalPrice)
		f.status = existing.Status
		f.customerName = existing.CustomerName
		f.customerEmail = existing.CustomerEmail
		f.customerPhone = existing.CustomerPhone
	}
	return f
}

func (f *OrderForm) findProduct(id int64) (catalog.Product, bool) {
	for _, p := range f.products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

func totalOf(price float64, qty int) string {
	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(int64(qty))).
		Round(2).
		StringFixed(2)
}

// setProduct switches the selected product and recomputes the total using
// the current quantity, or 1 while no quantity has been entered. A stale
// product reference clears the total.
func (f *OrderForm) setProduct(value string) {
	id, _ := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	f.productID = id
	p, ok := f.findProduct(id)
	if !ok {
		f.totalPrice = ""
		return
	}
	qty := f.quantity
	if qty == 0 {
		qty = 1
	}
	f.totalPrice = totalOf(p.Price, qty)
}

// setQuantity parses the quantity (anything unparseable counts as 0) and
// recomputes the total against the currently selected product.
func (f *OrderForm) setQuantity(value string) {
	qty, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		qty = 0
	}
	f.quantity = qty
	p, ok := f.findProduct(f.productID)
	if !ok {
		f.totalPrice = ""
		return
	}
	f.totalPrice = totalOf(p.Price, qty)
}

// Set updates one field of the draft, addressed by its input name.
// totalPrice is not settable from outside.
func (f *OrderForm) Set(name, value string) {
	switch name {
	case "productId":
		f.setProduct(value)
	case "quantity":
		f.setQuantity(value)
	case "orderNumber":
		f.orderNumber = value
	case "status":
		f.status = catalog.OrderStatus(value)
	case "customerName":
		f.customerName = value
	case "customerEmail":
		f.customerEmail = value
	case "customerPhone":
		f.customerPhone = value
	}
}

// Submit validates the required fields and emits the draft. The derived
// total is submitted as part of the draft, an empty total travels as zero.
func (f *OrderForm) Submit() error {
	if f.productID == 0 || f.quantity <= 0 || f.customerName == "" || !f.status.Valid() {
		return ErrMissingRequired
	}
	var total float64
	if f.totalPrice != "" {
		d, err := decimal.NewFromString(f.totalPrice)
		if err == nil {
			total = d.InexactFloat64()
		}
	}
	f.onSubmit(catalog.Order{
		OrderNumber:   f.orderNumber,
		Product:       catalog.ProductRef{ID: f.productID},
		Quantity:      f.quantity,
		TotalPrice:    total,
		Status:        f.status,
		CustomerName:  f.customerName,
		CustomerEmail: f.customerEmail,
		CustomerPhone: f.customerPhone,
	})
	return nil
}

func (f *OrderForm) Cancel() {
	if f.onCancel != nil {
		f.onCancel()
	}
}

// OrderFormState is a render snapshot of the draft.
type OrderFormState struct {
	OrderNumber   string
	ProductID     int64
	Quantity      string
	TotalPrice    string
	Status        catalog.OrderStatus
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Products      []catalog.Product
	Editing       bool
}

func (f *OrderForm) State() OrderFormState {
	qty := ""
	if f.quantity != 0 {
		qty = strconv.Itoa(f.quantity)
	}
	return OrderFormState{
		OrderNumber:   f.orderNumber,
		ProductID:     f.productID,
		Quantity:      qty,
		TotalPrice:    f.totalPrice,
		Status:        f.status,
		CustomerName:  f.customerName,
		CustomerEmail: f.customerEmail,
		CustomerPhone: f.customerPhone,
		Products:      f.products,
		Editing:       f.editing,
	}
}
