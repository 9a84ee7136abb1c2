package cart

import (
	"time"

	"mealdash-be/internal/product"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID     uint `json:"id"`
	UserID uint `json:"user_id"`
}

type CartItem struct {
	ID        uint      `json:"id"`
	CartID    uint      `json:"cart_id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemView is a cart line with its product resolved.
type ItemView struct {
	ID       uint             `json:"id"`
	Quantity int              `json:"quantity"`
	Subtotal decimal.Decimal  `json:"subtotal"`
	Product  *product.Product `json:"product"`
}

// View is what GetCart returns: the cart, its lines, and the total
// computed at read time.
type View struct {
	ID         uint            `json:"id"`
	UserID     uint            `json:"user_id"`
	Items      []*ItemView     `json:"items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type AddItemParams struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

type RemoveItemParams struct {
	UserID    uint
	ProductID uint
}

// cartRow is one joined carts/cart_items/products row.
type cartRow struct {
	CartID       uint
	UserID       uint
	ItemID       uint
	ProductID    uint
	Quantity     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ProductName  string
	ProductImage *string
	Price        decimal.Decimal
	Description  string
	StoreID      uint
}
