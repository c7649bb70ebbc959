//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"motoflash/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderCreate entities.OrderCreate) (*entities.DeliveryOrder, error)
	GetByID(ctx context.Context, id string) (*entities.DeliveryOrder, error)

	// AcceptPending assigns the rider with a conditional update guarded by
	// the pending status, so two concurrent acceptances yield exactly one
	// winner. Losing the race surfaces as ErrOrderNotAvailable.
	AcceptPending(ctx context.Context, acceptance entities.OrderAcceptance) (*entities.DeliveryOrder, error)

	// UpdateStatus transitions the order guarded by the expected prior
	// status and stamps the transition timestamp.
	UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatusType, at time.Time) (*entities.DeliveryOrder, error)

	List(ctx context.Context, filter entities.OrderFilter) ([]entities.DeliveryOrder, int64, error)
}

type PartnerProvider interface {
	GetByID(ctx context.Context, id string) (*entities.Partner, error)
}

type RiderService interface {
	GetRider(ctx context.Context, id string) (*entities.Rider, error)
	AddLoyaltyPoints(ctx context.Context, id string, points int) error
}

type WalletService interface {
	CreditCommission(ctx context.Context, riderID string, amount float64, deliveryOrderID string) error
}

type EtaFactory interface {
	EstimateMinutes(vehicleType entities.VehicleType, distanceKm float64) int
}

// EventPublisher broadcasts lifecycle events. Delivery is best-effort:
// implementations log failures and never fail the committed operation.
type EventPublisher interface {
	OrderStatusChanged(ctx context.Context, event entities.OrderStatusEvent)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
