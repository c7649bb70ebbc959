//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
package matching

import (
	"context"

	"motoflash/internal/entities"
)

type Repository interface {
	// ListOnlineRiders returns every online rider with a known location,
	// joined with the current vehicle, rating aggregate, active order
	// count and maintenance state.
	ListOnlineRiders(ctx context.Context) ([]entities.Rider, error)
}

type EtaFactory interface {
	EstimateMinutes(vehicleType entities.VehicleType, distanceKm float64) int
}
