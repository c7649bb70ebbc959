package matching

import (
	"context"
	"fmt"
	"math"

	"motoflash/internal/entities"
	"motoflash/pkg/geo"
)

type Matching struct {
	repository Repository
	etaFactory EtaFactory
}

func New(repository Repository, etaFactory EtaFactory) *Matching {
	return &Matching{
		repository: repository,
		etaFactory: etaFactory,
	}
}

// FindMatchingRiders returns the eligible riders around the store,
// most-preferred first. The list is a snapshot: rider presence may move
// underneath it, and acceptance re-validates everything that matters.
func (m *Matching) FindMatchingRiders(ctx context.Context, criteria entities.MatchingCriteria) ([]entities.MatchCandidate, error) {
	if !isValidCoordinate(criteria.Latitude, criteria.Longitude) {
		return nil, ErrInvalidCoordinate
	}
	if criteria.RadiusKm < 0 {
		return nil, ErrInvalidRadius
	}
	if criteria.RadiusKm == 0 {
		criteria.RadiusKm = entities.DefaultMatchingRadiusKm
	}

	riders, err := m.repository.ListOnlineRiders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list online riders: %w", err)
	}

	var tripKm *float64
	if criteria.TripGeometry != nil {
		g := criteria.TripGeometry
		d := geo.Distance(g.StoreLat, g.StoreLng, g.DeliveryLat, g.DeliveryLng)
		tripKm = &d
	}

	candidates := make([]entities.MatchCandidate, 0, len(riders))
	for i := range riders {
		candidate, ok := m.evaluate(&riders[i], criteria, tripKm)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate)
	}

	rankCandidates(candidates, tripKm != nil)
	return candidates, nil
}

// evaluate applies the eligibility gates and builds the candidate entry.
func (m *Matching) evaluate(rider *entities.Rider, criteria entities.MatchingCriteria, tripKm *float64) (entities.MatchCandidate, bool) {
	if !rider.Locatable() {
		return entities.MatchCandidate{}, false
	}

	distance := geo.Distance(criteria.Latitude, criteria.Longitude, *rider.CurrentLat, *rider.CurrentLng)
	if distance > criteria.RadiusKm {
		return entities.MatchCandidate{}, false
	}

	if rider.HasCriticalMaintenance && !rider.MaintenanceBlockOverride {
		return entities.MatchCandidate{}, false
	}

	if tripKm != nil && *tripKm > rider.VehicleType.MaxTripKm() {
		return entities.MatchCandidate{}, false
	}

	candidate := entities.MatchCandidate{
		ID:            rider.ID,
		Name:          rider.Name,
		Email:         rider.Email,
		DistanceKm:    roundTo2(distance),
		VehicleType:   rider.VehicleType,
		IsPremium:     rider.Premium(),
		AverageRating: rider.AverageRating,
		ActiveOrders:  rider.ActiveOrders,
		CurrentLat:    *rider.CurrentLat,
		CurrentLng:    *rider.CurrentLng,
		IsVerified:    rider.IsVerified,
	}

	if tripKm != nil {
		trip := roundTo2(*tripKm)
		candidate.TripKm = &trip
		eta := m.etaFactory.EstimateMinutes(rider.VehicleType, *tripKm)
		candidate.EstimatedTime = &eta
	}

	return candidate, true
}

func isValidCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
