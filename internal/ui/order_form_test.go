package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swtraders/admin/internal/catalog"
)

var lookupProducts = []catalog.Product{
	{ID: 1, Name: "Widget", Price: 9.99},
	{ID: 2, Name: "Gadget", Price: 4.5},
}

func newTestOrderForm(submitted *catalog.Order) *OrderForm {
	return NewOrderForm(nil, lookupProducts, func(o catalog.Order) { *submitted = o }, nil)
}

func TestOrderForm_TotalFollowsProductAndQuantity(t *testing.T) {
	var got catalog.Order
	f := newTestOrderForm(&got)

	f.Set("productId", "1")
	f.Set("quantity", "3")
	assert.Equal(t, "29.97", f.State().TotalPrice)

	// clearing the quantity parses to 0, not to "unset"
	f.Set("quantity", "")
	assert.Equal(t, "0.00", f.State().TotalPrice)
}

func TestOrderForm_ProductChangeDefaultsQuantityToOne(t *testing.T) {
	var got catalog.Order
	f := newTestOrderForm(&got)

	f.Set("productId", "2")
	assert.Equal(t, "4.50", f.State().TotalPrice)
}

func TestOrderForm_ProductChangeKeepsExistingQuantity(t *testing.T) {
	var got catalog.Order
	f := newTestOrderForm(&got)

	f.Set("productId", "1")
	f.Set("quantity", "4")
	f.Set("productId", "2")
	assert.Equal(t, "18.00", f.State().TotalPrice)
}

func TestOrderForm_UnknownProductClearsTotal(t *testing.T) {
	var got catalog.Order
	f := newTestOrderForm(&got)

	f.Set("productId", "1")
	f.Set("quantity", "2")
	f.Set("productId", "999")
	assert.Equal(t, "", f.State().TotalPrice)

	// quantity change with no resolvable product keeps it empty
	f.Set("quantity", "5")
	assert.Equal(t, "", f.State().TotalPrice)
}

func TestOrderForm_NonNumericQuantityCountsAsZero(t *testing.T) {
	var got catalog.Order
	f := newTestOrderForm(&got)

	f.Set("productId", "1")
	f.Set("quantity", "abc")
	assert.Equal(t, "0.00", f.State().TotalPrice)
}

func TestOrderForm_TotalPriceNotDirectlySettable(t *testing.T) {
	var got catalog.Order
	f := newTestOrderForm(&got)

	f.Set("productId", "1")
	f.Set("quantity", "3")
	f.Set("totalPrice", "0.01")
	assert.Equal(t, "29.97", f.State().TotalPrice)
}

func TestOrderForm_OtherFieldsLeaveTotalUntouched(t *testing.T) {
	var got catalog.Order
	f := newTestOrderForm(&got)

	f.Set("productId", "1")
	f.Set("quantity", "3")
	f.Set("customerName", "Ada")
	f.Set("orderNumber", "ORD-9")
	f.Set("status", "SHIPPED")
	assert.Equal(t, "29.97", f.State().TotalPrice)
}

func TestOrderForm_SubmitCarriesDerivedTotal(t *testing.T) {
	var got catalog.Order
	f := newTestOrderForm(&got)

	f.Set("orderNumber", "ORD-1")
	f.Set("productId", "1")
	f.Set("quantity", "3")
	f.Set("customerName", "Ada")
	require.NoError(t, f.Submit())

	assert.Equal(t, catalog.ProductRef{ID: 1}, got.Product)
	assert.Equal(t, 3, got.Quantity)
	assert.Equal(t, 29.97, got.TotalPrice)
	assert.Equal(t, catalog.StatusOrdered, got.Status)
}

func TestOrderForm_SubmitBlockedOnMissingRequired(t *testing.T) {
	cases := []struct {
		name  string
		setup func(f *OrderForm)
	}{
		{"no product", func(f *OrderForm) {
			f.Set("quantity", "1")
			f.Set("customerName", "Ada")
		}},
		{"no quantity", func(f *OrderForm) {
			f.Set("productId", "1")
			f.Set("quantity", "")
			f.Set("customerName", "Ada")
		}},
		{"no customer name", func(f *OrderForm) {
			f.Set("productId", "1")
			f.Set("quantity", "1")
		}},
		{"bad status", func(f *OrderForm) {
			f.Set("productId", "1")
			f.Set("quantity", "1")
			f.Set("customerName", "Ada")
			f.Set("status", "LOST")
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			f := NewOrderForm(nil, lookupProducts, func(catalog.Order) { called = true }, nil)
			tc.setup(f)
			assert.ErrorIs(t, f.Submit(), ErrMissingRequired)
			assert.False(t, called, "submit callback must not fire")
		})
	}
}

func TestOrderForm_EditModePrefills(t *testing.T) {
	existing := catalog.Order{
		ID:           5,
		OrderNumber:  "ORD-5",
		Product:      catalog.ProductRef{ID: 2},
		Quantity:     2,
		TotalPrice:   9,
		Status:       catalog.StatusShipped,
		CustomerName: "Grace",
	}
	f := NewOrderForm(&existing, lookupProducts, func(catalog.Order) {}, nil)

	st := f.State()
	assert.True(t, st.Editing)
	assert.Equal(t, "ORD-5", st.OrderNumber)
	assert.Equal(t, int64(2), st.ProductID)
	assert.Equal(t, "2", st.Quantity)
	assert.Equal(t, "9.00", st.TotalPrice)
	assert.Equal(t, catalog.StatusShipped, st.Status)

	// a quantity change re-derives from the referenced product's price
	f.Set("quantity", "3")
	assert.Equal(t, "13.50", f.State().TotalPrice)
}
