package wallet

import "motoflash/internal/entities"

func ToDomain(w *WalletDB) *entities.Wallet {
	if w == nil {
		return nil
	}
	return &entities.Wallet{
		ID:             w.ID,
		RiderID:        w.RiderID,
		Balance:        w.Balance,
		TotalEarned:    w.TotalEarned,
		TotalWithdrawn: w.TotalWithdrawn,
		UpdatedAt:      w.UpdatedAt,
	}
}

func ToTransactionDomain(t *TransactionDB) *entities.WalletTransaction {
	if t == nil {
		return nil
	}
	return &entities.WalletTransaction{
		ID:              t.ID,
		WalletID:        t.WalletID,
		RiderID:         t.RiderID,
		Type:            entities.TransactionType(t.Type),
		Amount:          t.Amount,
		Description:     t.Description,
		Status:          entities.TransactionStatusType(t.Status),
		DeliveryOrderID: t.DeliveryOrderID,
		CreatedAt:       t.CreatedAt,
		CompletedAt:     t.CompletedAt,
	}
}

func ToTransactionDomainList(transactions []TransactionDB) []entities.WalletTransaction {
	result := make([]entities.WalletTransaction, 0, len(transactions))
	for i := range transactions {
		result = append(result, *ToTransactionDomain(&transactions[i]))
	}
	return result
}
