//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_get_test
package wallet_get

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
	GetWallet(ctx context.Context, riderID string) (*entities.Wallet, []entities.WalletTransaction, error)
}
