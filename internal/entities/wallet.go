package entities

import "time"

type Wallet struct {
	ID             string
	RiderID        string
	Balance        float64
	TotalEarned    float64
	TotalWithdrawn float64
	UpdatedAt      time.Time
}

type WalletTransaction struct {
	ID              string
	WalletID        string
	RiderID         string
	Type            TransactionType
	Amount          float64
	Description     string
	Status          TransactionStatusType
	DeliveryOrderID *string
	CreatedAt       time.Time
	CompletedAt     *time.Time
}

type TransactionType string

const (
	TransactionCommission TransactionType = "COMMISSION"
	TransactionWithdrawal TransactionType = "WITHDRAWAL"
	TransactionBonus      TransactionType = "BONUS"
	TransactionRefund     TransactionType = "REFUND"
)

func (t TransactionType) String() string {
	return string(t)
}

type TransactionStatusType string

const (
	TransactionPending   TransactionStatusType = "pending"
	TransactionCompleted TransactionStatusType = "completed"
	TransactionFailed    TransactionStatusType = "failed"
	TransactionCancelled TransactionStatusType = "cancelled"
)

func (s TransactionStatusType) String() string {
	return string(s)
}
