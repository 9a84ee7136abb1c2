package review

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// StoreReview is a client's rating and comment for a store.
type StoreReview struct {
	ID          uint      `json:"id"`
	ClientID    uint      `json:"client_id"`
	StoreID     uint      `json:"store_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedDate time.Time `json:"created_date"`
}

// CourierReview is a client's rating for a courier.
type CourierReview struct {
	ID          uint      `json:"id"`
	ClientID    uint      `json:"client_id"`
	CourierID   uint      `json:"courier_id"`
	Rating      int       `json:"rating"`
	CreatedDate time.Time `json:"created_date"`
}

type SubmitStoreReviewParams struct {
	ClientID uint
	StoreID  uint
	Rating   int
	Comment  string
}

type SubmitCourierReviewParams struct {
	ClientID  uint
	CourierID uint
	Rating    int
}
