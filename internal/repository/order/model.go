package order

import "time"

type OrderDB struct {
	ID                string
	StoreID           string
	StoreName         string
	StoreAddress      string
	StoreLatitude     float64
	StoreLongitude    float64
	DeliveryAddress   string
	DeliveryLatitude  float64
	DeliveryLongitude float64
	RecipientName     *string
	RecipientPhone    *string
	Notes             *string
	Value             float64
	DeliveryFee       float64
	AppCommission     float64
	Status            string
	Priority          string
	RiderID           *string
	RiderName         *string
	Distance          *float64
	EstimatedTime     *int
	CreatedAt         time.Time
	AcceptedAt        *time.Time
	InProgressAt      *time.Time
	CompletedAt       *time.Time
	CancelledAt       *time.Time
}
