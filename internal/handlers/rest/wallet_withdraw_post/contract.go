//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_withdraw_post_test
package wallet_withdraw_post

import (
	"context"

	"motoflash/internal/entities"
	"motoflash/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Withdraw(ctx context.Context, riderID string, amount float64) (*entities.WalletTransaction, error)
}
