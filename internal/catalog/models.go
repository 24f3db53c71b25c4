package catalog

import "github.com/shopspring/decimal"

// Product is the wire representation used by the catalog API.
// The server assigns IDs; drafts are sent with ID zero.
type Product struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category,omitempty"`
	SKU         string  `json:"sku,omitempty"`
}

// ProductRef is how an order points at its product on the wire:
// an object carrying only the id.
type ProductRef struct {
	ID int64 `json:"id"`
}

type Order struct {
	ID            int64       `json:"id,omitempty"`
	OrderNumber   string      `json:"orderNumber"`
	Product       ProductRef  `json:"product"`
	Quantity      int         `json:"quantity"`
	TotalPrice    float64     `json:"totalPrice"`
	Status        OrderStatus `json:"status"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail,omitempty"`
	CustomerPhone string      `json:"customerPhone,omitempty"`
}

type OrderStatus string

const (
	StatusOrdered   OrderStatus = "ORDERED"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses lists every valid status, in display order.
var OrderStatuses = []OrderStatus{StatusOrdered, StatusShipped, StatusDelivered, StatusCancelled}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusOrdered, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// FormatPrice renders a money amount with exactly two decimal places.
func FormatPrice(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
