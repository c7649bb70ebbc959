package rider

import "time"

type RiderDB struct {
	ID                       string
	Name                     string
	Email                    string
	IsOnline                 bool
	CurrentLat               *float64
	CurrentLng               *float64
	LocationUpdatedAt        *time.Time
	IsSubscriber             bool
	SubscriptionType         string
	MaintenanceBlockOverride bool
	LoyaltyPoints            int
	AverageRating            float64
	IsVerified               bool
	VehicleType              string
	HasCriticalMaintenance   bool
	ActiveOrders             int
}
