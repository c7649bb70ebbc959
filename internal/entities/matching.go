package entities

// MatchingCriteria selects and orders candidate riders for an order.
// Latitude/Longitude locate the store; the optional trip geometry enables
// vehicle-suitability gating and ETA scoring.
type MatchingCriteria struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64

	TripGeometry *TripGeometry
}

type TripGeometry struct {
	StoreLat    float64
	StoreLng    float64
	DeliveryLat float64
	DeliveryLng float64
}

const DefaultMatchingRadiusKm = 5

// MatchCandidate is one ranked entry of the candidate list.
type MatchCandidate struct {
	ID            string
	Name          string
	Email         string
	DistanceKm    float64
	TripKm        *float64
	VehicleType   VehicleType
	EstimatedTime *int
	IsPremium     bool
	AverageRating float64
	ActiveOrders  int
	CurrentLat    float64
	CurrentLng    float64
	IsVerified    bool
}
