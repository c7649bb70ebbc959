package dto

import "time"

type OrderCreate struct {
	StoreID           string   `json:"storeId"`
	StoreName         string   `json:"storeName"`
	StoreAddress      string   `json:"storeAddress"`
	StoreLatitude     float64  `json:"storeLatitude"`
	StoreLongitude    float64  `json:"storeLongitude"`
	DeliveryAddress   string   `json:"deliveryAddress"`
	DeliveryLatitude  float64  `json:"deliveryLatitude"`
	DeliveryLongitude float64  `json:"deliveryLongitude"`
	RecipientName     *string  `json:"recipientName,omitempty"`
	RecipientPhone    *string  `json:"recipientPhone,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
	Value             float64  `json:"value"`
	DeliveryFee       float64  `json:"deliveryFee"`
	Priority          *string  `json:"priority,omitempty"`
}

type DeliveryOrder struct {
	ID                string     `json:"id"`
	StoreID           string     `json:"storeId"`
	StoreName         string     `json:"storeName"`
	StoreAddress      string     `json:"storeAddress"`
	StoreLatitude     float64    `json:"storeLatitude"`
	StoreLongitude    float64    `json:"storeLongitude"`
	DeliveryAddress   string     `json:"deliveryAddress"`
	DeliveryLatitude  float64    `json:"deliveryLatitude"`
	DeliveryLongitude float64    `json:"deliveryLongitude"`
	RecipientName     *string    `json:"recipientName,omitempty"`
	RecipientPhone    *string    `json:"recipientPhone,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	Value             float64    `json:"value"`
	DeliveryFee       float64    `json:"deliveryFee"`
	AppCommission     float64    `json:"appCommission"`
	Status            string     `json:"status"`
	Priority          string     `json:"priority"`
	RiderID           *string    `json:"riderId,omitempty"`
	RiderName         *string    `json:"riderName,omitempty"`
	Distance          *float64   `json:"distance,omitempty"`
	EstimatedTime     *int       `json:"estimatedTime,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	AcceptedAt        *time.Time `json:"acceptedAt,omitempty"`
	InProgressAt      *time.Time `json:"inProgressAt,omitempty"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	CancelledAt       *time.Time `json:"cancelledAt,omitempty"`
}

type OrderAccept struct {
	RiderID   string `json:"riderId"`
	RiderName string `json:"riderName"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
}

type OrderList struct {
	Orders []DeliveryOrder `json:"orders"`
	Total  int64           `json:"total"`
}
