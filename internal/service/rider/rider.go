package rider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"motoflash/internal/entities"
)

type Rider struct {
	repository      Repository
	presenceHorizon time.Duration
}

func New(repository Repository, presenceHorizon time.Duration) *Rider {
	return &Rider{
		repository:      repository,
		presenceHorizon: presenceHorizon,
	}
}

func (s *Rider) GetRider(ctx context.Context, id string) (*entities.Rider, error) {
	if !isValidRiderID(id) {
		return nil, ErrInvalidRiderID
	}

	riderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get rider: %w", err)
	}
	return riderEntity, nil
}

// UpdateLocation records the rider's reported presence. Matching reads
// are allowed to observe a momentarily stale position; acceptance
// re-validates rider state.
func (s *Rider) UpdateLocation(ctx context.Context, location entities.RiderLocation) (*entities.Rider, error) {
	if !isValidRiderID(location.RiderID) {
		return nil, ErrInvalidRiderID
	}
	if !isValidCoordinate(location.Latitude, location.Longitude) {
		return nil, ErrInvalidCoordinate
	}

	if location.ReportedAt.IsZero() {
		location.ReportedAt = time.Now().UTC()
	}

	riderEntity, err := s.repository.UpdateLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("update rider location: %w", err)
	}
	return riderEntity, nil
}

func (s *Rider) AddLoyaltyPoints(ctx context.Context, id string, points int) error {
	if !isValidRiderID(id) {
		return ErrInvalidRiderID
	}

	if err := s.repository.AddLoyaltyPoints(ctx, id, points); err != nil {
		return fmt.Errorf("add loyalty points: %w", err)
	}
	return nil
}

// CleanupStalePresence marks riders offline when their last location
// report is older than the configured horizon.
func (s *Rider) CleanupStalePresence(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.MarkStaleOffline(ctx, s.presenceHorizon)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("presence sweep timed out: %w", err)
		}
		return 0, fmt.Errorf("presence sweep: %w", err)
	}

	return rowsAffected, nil
}
