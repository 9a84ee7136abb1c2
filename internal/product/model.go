package product

import "github.com/shopspring/decimal"

type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Image       *string         `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	StoreID     uint            `json:"store_id"`
}

// Combo is a fixed-price bundle a store sells alongside single products.
type Combo struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Image       *string         `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	StoreID     uint            `json:"store_id"`
}

type CreateProductParams struct {
	Name        string
	Image       *string
	Price       decimal.Decimal
	Description string
	StoreID     uint
}

// UpdateProductParams replaces the full mutable field set.
type UpdateProductParams struct {
	ProductID   uint
	Name        string
	Image       *string
	Price       decimal.Decimal
	Description string
}

type CreateComboParams struct {
	Name        string
	Image       *string
	Price       decimal.Decimal
	Description string
	StoreID     uint
}

type SearchParams struct {
	Name     *string
	StoreID  *uint
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Limit    *int32
	Page     *int32
}
