package rider

import "motoflash/internal/entities"

func ToDomain(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}
	return &entities.Rider{
		ID:                       r.ID,
		Name:                     r.Name,
		Email:                    r.Email,
		IsOnline:                 r.IsOnline,
		CurrentLat:               r.CurrentLat,
		CurrentLng:               r.CurrentLng,
		LocationUpdatedAt:        r.LocationUpdatedAt,
		IsSubscriber:             r.IsSubscriber,
		SubscriptionType:         entities.SubscriptionType(r.SubscriptionType),
		MaintenanceBlockOverride: r.MaintenanceBlockOverride,
		LoyaltyPoints:            r.LoyaltyPoints,
		AverageRating:            r.AverageRating,
		IsVerified:               r.IsVerified,
		VehicleType:              entities.VehicleType(r.VehicleType),
		HasCriticalMaintenance:   r.HasCriticalMaintenance,
		ActiveOrders:             r.ActiveOrders,
	}
}

func ToDomainList(riders []RiderDB) []entities.Rider {
	result := make([]entities.Rider, 0, len(riders))
	for i := range riders {
		result = append(result, *ToDomain(&riders[i]))
	}
	return result
}
