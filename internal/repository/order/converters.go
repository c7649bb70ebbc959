package order

import "motoflash/internal/entities"

func ToDomain(o *OrderDB) *entities.DeliveryOrder {
	if o == nil {
		return nil
	}
	return &entities.DeliveryOrder{
		ID:                o.ID,
		StoreID:           o.StoreID,
		StoreName:         o.StoreName,
		StoreAddress:      o.StoreAddress,
		StoreLatitude:     o.StoreLatitude,
		StoreLongitude:    o.StoreLongitude,
		DeliveryAddress:   o.DeliveryAddress,
		DeliveryLatitude:  o.DeliveryLatitude,
		DeliveryLongitude: o.DeliveryLongitude,
		RecipientName:     o.RecipientName,
		RecipientPhone:    o.RecipientPhone,
		Notes:             o.Notes,
		Value:             o.Value,
		DeliveryFee:       o.DeliveryFee,
		AppCommission:     o.AppCommission,
		Status:            entities.OrderStatusType(o.Status),
		Priority:          entities.OrderPriorityType(o.Priority),
		RiderID:           o.RiderID,
		RiderName:         o.RiderName,
		Distance:          o.Distance,
		EstimatedTime:     o.EstimatedTime,
		CreatedAt:         o.CreatedAt,
		AcceptedAt:        o.AcceptedAt,
		InProgressAt:      o.InProgressAt,
		CompletedAt:       o.CompletedAt,
		CancelledAt:       o.CancelledAt,
	}
}

func ToDomainList(orders []OrderDB) []entities.DeliveryOrder {
	result := make([]entities.DeliveryOrder, 0, len(orders))
	for i := range orders {
		result = append(result, *ToDomain(&orders[i]))
	}
	return result
}
