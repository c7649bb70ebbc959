package wallet

import (
	"context"
	"fmt"

	"motoflash/internal/entities"
)

const recentTransactionsLimit = 50

type Wallet struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Wallet {
	return &Wallet{
		repository: repository,
		txManager:  txManager,
	}
}

// CreditCommission appends a completed COMMISSION entry for the order and
// credits the rider's balance. Idempotent per order: a retry that finds
// the entry already recorded leaves the ledger and balance untouched.
func (w *Wallet) CreditCommission(ctx context.Context, riderID string, amount float64, deliveryOrderID string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	return w.txManager.Do(ctx, func(ctx context.Context) error {
		walletEntity, err := w.repository.GetByRiderID(ctx, riderID)
		if err != nil {
			return fmt.Errorf("get wallet for rider %s: %w", riderID, err)
		}

		inserted, err := w.repository.InsertCommission(ctx, walletEntity.ID, riderID, amount, deliveryOrderID)
		if err != nil {
			return fmt.Errorf("insert commission entry: %w", err)
		}
		if !inserted {
			// already credited for this order
			return nil
		}

		if err := w.repository.Credit(ctx, walletEntity.ID, amount); err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}
		return nil
	})
}

// Withdraw records a pending WITHDRAWAL and debits the balance. The debit
// predicate re-checks the balance so concurrent withdrawals cannot drive
// it negative.
func (w *Wallet) Withdraw(ctx context.Context, riderID string, amount float64) (*entities.WalletTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var transaction *entities.WalletTransaction
	err := w.txManager.Do(ctx, func(ctx context.Context) error {
		walletEntity, err := w.repository.GetByRiderID(ctx, riderID)
		if err != nil {
			return fmt.Errorf("get wallet for rider %s: %w", riderID, err)
		}

		if walletEntity.Balance < amount {
			return ErrInsufficientFunds
		}

		debited, err := w.repository.Debit(ctx, walletEntity.ID, amount)
		if err != nil {
			return fmt.Errorf("debit wallet: %w", err)
		}
		if !debited {
			return ErrInsufficientFunds
		}

		transaction, err = w.repository.InsertWithdrawal(ctx, walletEntity.ID, riderID, amount)
		if err != nil {
			return fmt.Errorf("insert withdrawal entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

func (w *Wallet) GetWallet(ctx context.Context, riderID string) (*entities.Wallet, []entities.WalletTransaction, error) {
	walletEntity, err := w.repository.GetByRiderID(ctx, riderID)
	if err != nil {
		return nil, nil, fmt.Errorf("get wallet for rider %s: %w", riderID, err)
	}

	transactions, err := w.repository.ListTransactions(ctx, walletEntity.ID, recentTransactionsLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("list wallet transactions: %w", err)
	}

	return walletEntity, transactions, nil
}
