package rider

import "errors"

var (
	ErrRiderNotFound     = errors.New("rider not found")
	ErrInvalidRiderID    = errors.New("invalid rider id")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)
