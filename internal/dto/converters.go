package dto

import "motoflash/internal/entities"

func NewDeliveryOrder(order *entities.DeliveryOrder) DeliveryOrder {
	return DeliveryOrder{
		ID:                order.ID,
		StoreID:           order.StoreID,
		StoreName:         order.StoreName,
		StoreAddress:      order.StoreAddress,
		StoreLatitude:     order.StoreLatitude,
		StoreLongitude:    order.StoreLongitude,
		DeliveryAddress:   order.DeliveryAddress,
		DeliveryLatitude:  order.DeliveryLatitude,
		DeliveryLongitude: order.DeliveryLongitude,
		RecipientName:     order.RecipientName,
		RecipientPhone:    order.RecipientPhone,
		Notes:             order.Notes,
		Value:             order.Value,
		DeliveryFee:       order.DeliveryFee,
		AppCommission:     order.AppCommission,
		Status:            order.Status.String(),
		Priority:          order.Priority.String(),
		RiderID:           order.RiderID,
		RiderName:         order.RiderName,
		Distance:          order.Distance,
		EstimatedTime:     order.EstimatedTime,
		CreatedAt:         order.CreatedAt,
		AcceptedAt:        order.AcceptedAt,
		InProgressAt:      order.InProgressAt,
		CompletedAt:       order.CompletedAt,
		CancelledAt:       order.CancelledAt,
	}
}

func NewMatchCandidate(candidate entities.MatchCandidate) MatchCandidate {
	return MatchCandidate{
		ID:            candidate.ID,
		Name:          candidate.Name,
		Email:         candidate.Email,
		DistanceKm:    candidate.DistanceKm,
		TripKm:        candidate.TripKm,
		VehicleType:   candidate.VehicleType.String(),
		EstimatedTime: candidate.EstimatedTime,
		IsPremium:     candidate.IsPremium,
		AverageRating: candidate.AverageRating,
		ActiveOrders:  candidate.ActiveOrders,
		Latitude:      candidate.CurrentLat,
		Longitude:     candidate.CurrentLng,
		IsVerified:    candidate.IsVerified,
	}
}

func NewWalletTransaction(transaction entities.WalletTransaction) WalletTransaction {
	return WalletTransaction{
		ID:              transaction.ID,
		WalletID:        transaction.WalletID,
		RiderID:         transaction.RiderID,
		Type:            transaction.Type.String(),
		Amount:          transaction.Amount,
		Description:     transaction.Description,
		Status:          transaction.Status.String(),
		DeliveryOrderID: transaction.DeliveryOrderID,
		CreatedAt:       transaction.CreatedAt,
		CompletedAt:     transaction.CompletedAt,
	}
}

func NewWallet(wallet *entities.Wallet) Wallet {
	return Wallet{
		ID:             wallet.ID,
		RiderID:        wallet.RiderID,
		Balance:        wallet.Balance,
		TotalEarned:    wallet.TotalEarned,
		TotalWithdrawn: wallet.TotalWithdrawn,
		UpdatedAt:      wallet.UpdatedAt,
	}
}
