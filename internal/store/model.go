package store

type Store struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Image       *string `json:"image"`
	CategoryID  uint    `json:"category_id"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	OwnerID     uint    `json:"owner_id"`
}

type ContactInfo struct {
	ID      uint    `json:"id"`
	Value   *string `json:"value"`
	StoreID uint    `json:"store_id"`
}

type CreateStoreParams struct {
	Name        string
	Image       *string
	CategoryID  uint
	Description string
	Address     string
	OwnerID     uint
}

// UpdateStoreParams carries the full mutable field set; update replaces all of it.
type UpdateStoreParams struct {
	StoreID     uint
	Name        string
	Image       *string
	CategoryID  uint
	Description string
	Address     string
}

type SearchParams struct {
	Name       *string
	CategoryID *uint
	Limit      *int32
	Page       *int32
}
