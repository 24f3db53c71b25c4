package ui

import (
	"errors"
	"strconv"

	"github.com/swtraders/admin/internal/catalog"
)

// ErrMissingRequired blocks submission while a required field is empty,
// the same gate a required input enforces in a browser. The draft stays
// put and no callback fires.
var ErrMissingRequired = errors.New("required field is empty")

// ProductForm holds an in-progress product draft. Field values are kept
// as the raw strings the user typed; parsing happens at submit. The form
// does no network I/O, it only hands the finished draft to its caller.
type ProductForm struct {
	name        string
	description string
	price       string
	quantity    string
	category    string
	sku         string

	editing  bool
	onSubmit func(catalog.Product)
	onCancel func()
}

func NewProductForm(existing *catalog.Product, onSubmit func(catalog.Product), onCancel func()) *ProductForm {
	f := &ProductForm{onSubmit: onSubmit, onCancel: onCancel}
	if existing != nil {
		f.editing = true
		f.name = existing.Name
		f.description = existing.Description
		f.price = catalog.FormatPrice(existing.Price)
		f.quantity = strconv.Itoa(existing.Quantity)
		f.category = existing.Category
		f.sku = existing.SKU
	}
	return f
}

// Set updates one field of the draft, addressed by its input name.
func (f *ProductForm) Set(name, value string) {
	switch name {
	case "name":
		f.name = value
	case "description":
		f.description = value
	case "price":
		f.price = value
	case "quantity":
		f.quantity = value
	case "category":
		f.category = value
	case "sku":
		f.sku = value
	}
}

// Submit validates the required fields and emits the draft.
func (f *ProductForm) Submit() error {
	if f.name == "" || f.price == "" || f.quantity == "" {
		return ErrMissingRequired
	}
	price, err := strconv.ParseFloat(f.price, 64)
	if err != nil || price < 0 {
		return ErrMissingRequired
	}
	qty, err := strconv.Atoi(f.quantity)
	if err != nil || qty < 0 {
		return ErrMissingRequired
	}
	f.onSubmit(catalog.Product{
		Name:        f.name,
		Description: f.description,
		Price:       price,
		Quantity:    qty,
		Category:    f.category,
		SKU:         f.sku,
	})
	return nil
}

func (f *ProductForm) Cancel() {
	if f.onCancel != nil {
		f.onCancel()
	}
}

// ProductFormState is a render snapshot of the draft.
type ProductFormState struct {
	Name        string
	Description string
	Price       string
	Quantity    string
	Category    string
	SKU         string
	Editing     bool
}

func (f *ProductForm) State() ProductFormState {
	return ProductFormState{
		Name:        f.name,
		Description: f.description,
		Price:       f.price,
		Quantity:    f.quantity,
		Category:    f.category,
		SKU:         f.sku,
		Editing:     f.editing,
	}
}
