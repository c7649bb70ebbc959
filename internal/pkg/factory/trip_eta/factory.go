package trip_eta

import (
	"math"

	"motoflash/internal/entities"
)

type TripEtaFactory struct{}

func New() *TripEtaFactory {
	return &TripEtaFactory{}
}

// EstimateMinutes converts a trip distance into an ETA using the average
// speed of the vehicle type, rounded to whole minutes.
func (f *TripEtaFactory) EstimateMinutes(vehicleType entities.VehicleType, distanceKm float64) int {
	speed := vehicleType.SpeedKmh()
	return int(math.Round(distanceKm / speed * 60))
}
