package wallet

import "time"

type WalletDB struct {
	ID             string
	RiderID         string
	Balance        float64
	TotalEarned    float64
	TotalWithdrawn float64
	UpdatedAt      time.Time
}

type TransactionDB struct {
	ID              string
	WalletID        string
	RiderID          string
	Type            string
	Amount          float64
	Description     string
	Status          string
	DeliveryOrderID *string
	CreatedAt       time.Time
	CompletedAt     *time.Time
}
