package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidRiderID        = errors.New("invalid rider id")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrOrderNotFound   = errors.New("order not found")
	ErrPartnerNotFound = errors.New("partner not found")
	ErrPartnerBlocked  = errors.New("partner is blocked")

	// ErrOrderNotAvailable is the at-most-one-acceptance signal: the order
	// left the pending state before this attempt committed.
	ErrOrderNotAvailable = errors.New("order is no longer available")

	ErrInvalidTransition = errors.New("invalid status transition")

	ErrRiderBlockedByMaintenance = errors.New("rider blocked by critical maintenance")
)
