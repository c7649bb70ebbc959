package entities

import "time"

// Rider is the matching-relevant projection of a user row, joined with
// the most recent vehicle and maintenance state.
type Rider struct {
	ID                       string
	Name                     string
	Email                    string
	IsOnline                 bool
	CurrentLat               *float64
	CurrentLng               *float64
	LocationUpdatedAt        *time.Time
	IsSubscriber             bool
	SubscriptionType         SubscriptionType
	MaintenanceBlockOverride bool
	LoyaltyPoints            int
	AverageRating            float64
	IsVerified               bool
	VehicleType              VehicleType
	HasCriticalMaintenance   bool
	ActiveOrders             int
}

// Premium reports whether the rider is on the paid tier that earns the
// higher commission and matching priority.
func (r *Rider) Premium() bool {
	return r.IsSubscriber && r.SubscriptionType == SubscriptionPremium
}

// Locatable reports whether the rider can be considered for matching at
// all: online with a known position.
func (r *Rider) Locatable() bool {
	return r.IsOnline && r.CurrentLat != nil && r.CurrentLng != nil
}

type SubscriptionType string

const (
	SubscriptionStandard SubscriptionType = "standard"
	SubscriptionPremium  SubscriptionType = "premium"
)

func (s SubscriptionType) String() string {
	return string(s)
}

type VehicleType string

const (
	Motorcycle VehicleType = "MOTORCYCLE"
	Bicycle    VehicleType = "BICYCLE"
)

// DefaultVehicleType applies when a rider has no bike record at all.
const DefaultVehicleType = Motorcycle

func (t VehicleType) String() string {
	return string(t)
}

// MaxTripKm is the longest trip a vehicle type is dispatched on: bicycles
// are capped at short hops, motorcycles at the service radius.
func (t VehicleType) MaxTripKm() float64 {
	if t == Bicycle {
		return 3
	}
	return 10
}

// SpeedKmh is the average speed used for ETA estimates.
func (t VehicleType) SpeedKmh() float64 {
	if t == Bicycle {
		return 15
	}
	return 30
}

// RiderLocation is the presence patch reported by the rider app.
type RiderLocation struct {
	RiderID    string
	Latitude   float64
	Longitude  float64
	IsOnline   bool
	ReportedAt time.Time
}
