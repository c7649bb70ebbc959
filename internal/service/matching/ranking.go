package matching

import (
	"sort"

	"motoflash/internal/entities"
)

const (
	// etaDeadbandMinutes keeps ETA from discriminating between candidates
	// whose estimates are within measurement noise of each other.
	etaDeadbandMinutes = 2

	// distanceDeadbandKm does the same for distance-to-store.
	distanceDeadbandKm = 0.1
)

// rankCandidates orders candidates most-preferred first, applying keys in
// sequence until one discriminates: premium tier, vehicle suitability and
// ETA (only with trip geometry), proximity, then reputation.
func rankCandidates(candidates []entities.MatchCandidate, tripKnown bool) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return preferred(&candidates[i], &candidates[j], tripKnown)
	})
}

func preferred(a, b *entities.MatchCandidate, tripKnown bool) bool {
	if a.IsPremium != b.IsPremium {
		return a.IsPremium
	}

	if tripKnown {
		aSuitable := vehicleSuitable(a)
		bSuitable := vehicleSuitable(b)
		if aSuitable != bSuitable {
			return aSuitable
		}
		if a.EstimatedTime != nil && b.EstimatedTime != nil {
			diff := *a.EstimatedTime - *b.EstimatedTime
			if diff < -etaDeadbandMinutes {
				return true
			}
			if diff > etaDeadbandMinutes {
				return false
			}
		}
	}

	diff := a.DistanceKm - b.DistanceKm
	if diff < -distanceDeadbandKm {
		return true
	}
	if diff > distanceDeadbandKm {
		return false
	}

	return a.AverageRating > b.AverageRating
}

// vehicleSuitable mirrors the dispatch caps: a motorcycle fits any trip
// that passed eligibility, a bicycle only a short hop.
func vehicleSuitable(c *entities.MatchCandidate) bool {
	if c.VehicleType != entities.Bicycle {
		return true
	}
	return c.TripKm == nil || *c.TripKm <= entities.Bicycle.MaxTripKm()
}
