//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
package rider

import (
	"context"
	"time"

	"motoflash/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Rider, error)
	UpdateLocation(ctx context.Context, location entities.RiderLocation) (*entities.Rider, error)
	AddLoyaltyPoints(ctx context.Context, id string, points int) error
	MarkStaleOffline(ctx context.Context, horizon time.Duration) (int64, error)
}
