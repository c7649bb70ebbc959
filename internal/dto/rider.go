package dto

type MatchCandidate struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	DistanceKm    float64  `json:"distanceKm"`
	TripKm        *float64 `json:"tripKm,omitempty"`
	VehicleType   string   `json:"vehicleType"`
	EstimatedTime *int     `json:"estimatedTime,omitempty"`
	IsPremium     bool     `json:"isPremium"`
	AverageRating float64  `json:"averageRating"`
	ActiveOrders  int      `json:"activeOrders"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	IsVerified    bool     `json:"isVerified"`
}

type MatchList struct {
	Riders []MatchCandidate `json:"riders"`
	Count  int              `json:"count"`
}

type RiderLocationUpdate struct {
	RiderID   string  `json:"riderId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	IsOnline  bool    `json:"isOnline"`
}

type Rider struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	IsOnline      bool     `json:"isOnline"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	LoyaltyPoints int      `json:"loyaltyPoints"`
	AverageRating float64  `json:"averageRating"`
	VehicleType   string   `json:"vehicleType"`
}
