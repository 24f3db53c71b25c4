package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swtraders/admin/internal/catalog"
)

func TestProductForm_SubmitEmitsDraft(t *testing.T) {
	var got catalog.Product
	f := NewProductForm(nil, func(p catalog.Product) { got = p }, nil)

	f.Set("name", "Widget")
	f.Set("price", "9.99")
	f.Set("quantity", "5")
	f.Set("sku", "W-1")
	require.NoError(t, f.Submit())

	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, 9.99, got.Price)
	assert.Equal(t, 5, got.Quantity)
	assert.Equal(t, "W-1", got.SKU)
	assert.Zero(t, got.ID)
}

func TestProductForm_RequiredFieldsBlockSubmit(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]string
	}{
		{"empty name", map[string]string{"price": "1.00", "quantity": "1"}},
		{"empty price", map[string]string{"name": "Widget", "quantity": "1"}},
		{"empty quantity", map[string]string{"name": "Widget", "price": "1.00"}},
		{"negative price", map[string]string{"name": "Widget", "price": "-1", "quantity": "1"}},
		{"junk quantity", map[string]string{"name": "Widget", "price": "1.00", "quantity": "many"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			f := NewProductForm(nil, func(catalog.Product) { called = true }, nil)
			for k, v := range tc.fields {
				f.Set(k, v)
			}
			assert.ErrorIs(t, f.Submit(), ErrMissingRequired)
			assert.False(t, called)
		})
	}
}

func TestProductForm_EditModePrefills(t *testing.T) {
	existing := catalog.Product{ID: 3, Name: "Bolt", Price: 1.2, Quantity: 10, Category: "fasteners"}
	f := NewProductForm(&existing, func(catalog.Product) {}, nil)

	st := f.State()
	assert.True(t, st.Editing)
	assert.Equal(t, "Bolt", st.Name)
	assert.Equal(t, "1.20", st.Price)
	assert.Equal(t, "10", st.Quantity)
	assert.Equal(t, "fasteners", st.Category)
}

func TestProductForm_CancelInvokesCallback(t *testing.T) {
	cancelled := false
	f := NewProductForm(nil, func(catalog.Product) {}, func() { cancelled = true })
	f.Cancel()
	assert.True(t, cancelled)
}
