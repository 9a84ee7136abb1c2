package courier

type Type string

const (
	TypeAvailable Type = "available"
	TypeBusy      Type = "busy"
)

type Courier struct {
	ID             uint  `json:"id"`
	UserID         uint  `json:"user_id"`
	CurrentOrderID *uint `json:"current_order_id"`
	Type           Type  `json:"type"`
}
