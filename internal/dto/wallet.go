package dto

import "time"

type Wallet struct {
	ID             string    `json:"id"`
	RiderID        string    `json:"riderId"`
	Balance        float64   `json:"balance"`
	TotalEarned    float64   `json:"totalEarned"`
	TotalWithdrawn float64   `json:"totalWithdrawn"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type WalletTransaction struct {
	ID              string     `json:"id"`
	WalletID        string     `json:"walletId"`
	RiderID         string     `json:"riderId"`
	Type            string     `json:"type"`
	Amount          float64    `json:"amount"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	DeliveryOrderID *string    `json:"deliveryOrderId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
}

type WalletDetails struct {
	Wallet       Wallet              `json:"wallet"`
	Transactions []WalletTransaction `json:"transactions"`
}

type Withdraw struct {
	Amount float64 `json:"amount"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
