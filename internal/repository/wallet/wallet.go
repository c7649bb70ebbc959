package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lucsky/cuid"
	"motoflash/internal/entities"
	"motoflash/internal/repository"
	"motoflash/internal/service/wallet"
)

const transactionColumns = `id, wallet_id, rider_id, type, amount, description, status,
	delivery_order_id, created_at, completed_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByRiderID(ctx context.Context, riderID string) (*entities.Wallet, error) {
	query := `
		SELECT id, rider_id, balance, total_earned, total_withdrawn, updated_at
		FROM wallets
		WHERE rider_id = $1`

	var walletDB WalletDB
	err := r.querier.QueryRow(ctx, query, riderID).Scan(
		&walletDB.ID,
		&walletDB.RiderID,
		&walletDB.Balance,
		&walletDB.TotalEarned,
		&walletDB.TotalWithdrawn,
		&walletDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrWalletNotFound
		}
		return nil, fmt.Errorf("unexpected wallet repository getbyriderid error: %w", err)
	}

	return ToDomain(&walletDB), nil
}

// InsertCommission relies on the partial unique index over
// (delivery_order_id) for completed COMMISSION rows: a duplicate credit
// attempt conflicts and writes nothing.
func (r *Repository) InsertCommission(ctx context.Context, walletID, riderID string, amount float64, deliveryOrderID string) (bool, error) {
	query := `
		INSERT INTO wallet_transactions (
			id, wallet_id, rider_id, type, amount, description, status, delivery_order_id, created_at, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (delivery_order_id) WHERE type = 'COMMISSION' AND status = 'completed' DO NOTHING`

	description := fmt.Sprintf("Delivery commission #%s", shortOrderRef(deliveryOrderID))

	result, err := r.querier.Exec(
		ctx,
		query,
		cuid.New(),
		walletID,
		riderID,
		entities.TransactionCommission.String(),
		amount,
		description,
		entities.TransactionCompleted.String(),
		deliveryOrderID,
	)
	if err != nil {
		// A racing duplicate that slips past the conflict arbiter still
		// hits the unique index; treat it as already credited.
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return false, nil
		}
		return false, fmt.Errorf("unexpected wallet repository insert commission error: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *Repository) InsertWithdrawal(ctx context.Context, walletID, riderID string, amount float64) (*entities.WalletTransaction, error) {
	query := `
		INSERT INTO wallet_transactions (
			id, wallet_id, rider_id, type, amount, description, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING ` + transactionColumns

	description := fmt.Sprintf("Withdrawal request of %.2f", amount)

	var transactionDB TransactionDB
	err := r.querier.QueryRow(
		ctx,
		query,
		cuid.New(),
		walletID,
		riderID,
		entities.TransactionWithdrawal.String(),
		amount,
		description,
		entities.TransactionPending.String(),
	).Scan(
		&transactionDB.ID,
		&transactionDB.WalletID,
		&transactionDB.RiderID,
		&transactionDB.Type,
		&transactionDB.Amount,
		&transactionDB.Description,
		&transactionDB.Status,
		&transactionDB.DeliveryOrderID,
		&transactionDB.CreatedAt,
		&transactionDB.CompletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository insert withdrawal error: %w", err)
	}

	return ToTransactionDomain(&transactionDB), nil
}

func (r *Repository) Credit(ctx context.Context, walletID string, amount float64) error {
	query := `
		UPDATE wallets
		SET balance = balance + $1,
			total_earned = total_earned + $1,
			updated_at = NOW()
		WHERE id = $2`

	result, err := r.querier.Exec(ctx, query, amount, walletID)
	if err != nil {
		return fmt.Errorf("unexpected wallet repository credit error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return wallet.ErrWalletNotFound
	}

	return nil
}

// Debit re-checks the balance in the update predicate, so concurrent
// withdrawals cannot drive it negative.
func (r *Repository) Debit(ctx context.Context, walletID string, amount float64) (bool, error) {
	query := `
		UPDATE wallets
		SET balance = balance - $1,
			total_withdrawn = total_withdrawn + $1,
			updated_at = NOW()
		WHERE id = $2 AND balance >= $1`

	result, err := r.querier.Exec(ctx, query, amount, walletID)
	if err != nil {
		return false, fmt.Errorf("unexpected wallet repository debit error: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *Repository) ListTransactions(ctx context.Context, walletID string, limit int) ([]entities.WalletTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, walletID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository list transactions error: %w", err)
	}
	defer rows.Close()

	transactionModels := make([]TransactionDB, 0, limit)
	for rows.Next() {
		var transactionDB TransactionDB
		err := rows.Scan(
			&transactionDB.ID,
			&transactionDB.WalletID,
			&transactionDB.RiderID,
			&transactionDB.Type,
			&transactionDB.Amount,
			&transactionDB.Description,
			&transactionDB.Status,
			&transactionDB.DeliveryOrderID,
			&transactionDB.CreatedAt,
			&transactionDB.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected wallet repository list transactions error: %w", err)
		}
		transactionModels = append(transactionModels, transactionDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected wallet repository list transactions error: %w", err)
	}

	return ToTransactionDomainList(transactionModels), nil
}

func shortOrderRef(orderID string) string {
	if len(orderID) > 8 {
		return orderID[:8]
	}
	return orderID
}
