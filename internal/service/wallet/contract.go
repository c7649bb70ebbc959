//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_test
package wallet

import (
	"context"

	"motoflash/internal/entities"
)

type Repository interface {
	GetByRiderID(ctx context.Context, riderID string) (*entities.Wallet, error)

	// InsertCommission appends a completed COMMISSION entry and reports
	// whether a row was actually written. A ledger that already holds a
	// completed commission for the same order swallows the insert.
	InsertCommission(ctx context.Context, walletID, riderID string, amount float64, deliveryOrderID string) (bool, error)

	// InsertWithdrawal appends a pending WITHDRAWAL entry.
	InsertWithdrawal(ctx context.Context, walletID, riderID string, amount float64) (*entities.WalletTransaction, error)

	// Credit atomically increments balance and total_earned.
	Credit(ctx context.Context, walletID string, amount float64) error

	// Debit decrements balance and increments total_withdrawn only when
	// the current balance covers the amount, reporting whether it did.
	Debit(ctx context.Context, walletID string, amount float64) (bool, error)

	ListTransactions(ctx context.Context, walletID string, limit int) ([]entities.WalletTransaction, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
