package rider

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"motoflash/internal/entities"
	"motoflash/internal/service/rider"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// riderProjection joins the matching-relevant view of a user: the most
// recently added bike wins as the current vehicle, ratings and active
// orders come from scalar subqueries so the aggregates stay independent.
const riderProjection = `
	SELECT
		u.id, u.name, u.email, u.is_online, u.current_lat, u.current_lng, u.location_updated_at,
		u.is_subscriber, u.subscription_type, u.maintenance_block_override, u.loyalty_points,
		COALESCE((
			SELECT AVG(r.rating)
			FROM ratings r
			WHERE r.rated_user_id = u.id AND r.delivery_order_id IS NOT NULL
		), 0),
		u.is_verified,
		COALESCE(b.vehicle_type, 'MOTORCYCLE'),
		EXISTS (
			SELECT 1
			FROM maintenance_logs m
			WHERE m.user_id = u.id
			  AND (m.status = 'CRITICO' OR m.wear_percentage >= 0.9)
		),
		(
			SELECT COUNT(*)
			FROM delivery_orders o
			WHERE o.rider_id = u.id AND o.status IN ('accepted', 'inProgress')
		)
	FROM users u
	LEFT JOIN LATERAL (
		SELECT vehicle_type
		FROM bikes
		WHERE user_id = u.id
		ORDER BY created_at DESC
		LIMIT 1
	) b ON TRUE`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Rider, error) {
	query := riderProjection + `
	WHERE u.id = $1`

	riderDB, err := scanRider(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository getbyid error: %w", err)
	}

	return ToDomain(riderDB), nil
}

func (r *Repository) ListOnlineRiders(ctx context.Context) ([]entities.Rider, error) {
	query := riderProjection + `
	WHERE u.is_online AND u.current_lat IS NOT NULL AND u.current_lng IS NOT NULL`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository list online error: %w", err)
	}
	defer rows.Close()

	riderModels := make([]RiderDB, 0, 16)
	for rows.Next() {
		riderDB, err := scanRider(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected rider repository list online error: %w", err)
		}
		riderModels = append(riderModels, *riderDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rider repository list online error: %w", err)
	}

	return ToDomainList(riderModels), nil
}

func (r *Repository) UpdateLocation(ctx context.Context, location entities.RiderLocation) (*entities.Rider, error) {
	builder := qb.
		Update("users").
		Set("is_online", location.IsOnline).
		Set("current_lat", location.Latitude).
		Set("current_lng", location.Longitude).
		Set("location_updated_at", location.ReportedAt).
		Where(sq.Eq{"id": location.RiderID})

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository update location error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository update location error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, rider.ErrRiderNotFound
	}

	return r.GetByID(ctx, location.RiderID)
}

func (r *Repository) AddLoyaltyPoints(ctx context.Context, id string, points int) error {
	query := `
		UPDATE users
		SET loyalty_points = loyalty_points + $1
		WHERE id = $2`

	result, err := r.querier.Exec(ctx, query, points, id)
	if err != nil {
		return fmt.Errorf("unexpected rider repository loyalty points error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return rider.ErrRiderNotFound
	}

	return nil
}

func (r *Repository) MarkStaleOffline(ctx context.Context, horizon time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-horizon)

	query := `
		UPDATE users
		SET is_online = FALSE
		WHERE is_online
		  AND (location_updated_at IS NULL OR location_updated_at < $1)`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected rider repository stale presence error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanRider(row pgx.Row) (*RiderDB, error) {
	var rd RiderDB
	err := row.Scan(
		&rd.ID,
		&rd.Name,
		&rd.Email,
		&rd.IsOnline,
		&rd.CurrentLat,
		&rd.CurrentLng,
		&rd.LocationUpdatedAt,
		&rd.IsSubscriber,
		&rd.SubscriptionType,
		&rd.MaintenanceBlockOverride,
		&rd.LoyaltyPoints,
		&rd.AverageRating,
		&rd.IsVerified,
		&rd.VehicleType,
		&rd.HasCriticalMaintenance,
		&rd.ActiveOrders,
	)
	if err != nil {
		return nil, err
	}
	return &rd, nil
}
