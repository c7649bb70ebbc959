package order

import (
	"strings"

	"motoflash/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending,
		entities.OrderAccepted,
		entities.OrderInProgress,
		entities.OrderCompleted,
		entities.OrderCancelled:
		return true
	}
	return false
}

// canTransition encodes the order lifecycle. Acceptance is not reachable
// through a plain status update: pending leaves only via AcceptOrder or
// cancellation.
func canTransition(from, to entities.OrderStatusType) bool {
	switch to {
	case entities.OrderInProgress:
		return from == entities.OrderAccepted
	case entities.OrderCompleted:
		return from == entities.OrderInProgress
	case entities.OrderCancelled:
		return !from.Terminal()
	}
	return false
}
