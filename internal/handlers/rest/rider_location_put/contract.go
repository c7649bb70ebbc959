//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_location_put_test
package rider_location_put

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
	UpdateLocation(ctx context.Context, location entities.RiderLocation) (*entities.Rider, error)
}
