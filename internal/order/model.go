package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the order lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInDelivery Status = "in_delivery"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Order is a finalized, priced delivery request.
type Order struct {
	ID              uint            `json:"id"`
	ClientID        uint            `json:"client_id"`
	CourierID       *uint           `json:"courier_id"`
	Status          Status          `json:"status"`
	DeliveryAddress string          `json:"delivery_address"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Items           []OrderItem     `json:"items,omitempty"`
	CreatedDate     time.Time       `json:"created_date"`
}

// OrderItem is a product snapshot taken at order creation. Later edits to
// the catalog do not change it.
type OrderItem struct {
	ID          uint            `json:"id"`
	OrderID     uint            `json:"order_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CreateOrderParams carries the inputs for placing an order. CartID is
// optional; when set, the order is populated from that cart's items.
type CreateOrderParams struct {
	ClientID        uint
	DeliveryAddress string
	CartID          *uint
}

// ListParams filters and pages order listings.
type ListParams struct {
	ClientID *uint
	Status   *Status
	Limit    *int32
	Page     *int32
}
